// Public domain.

package dsfilter_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/soniakeys/dwarfscan/internal/dsfilter"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func ExampleReflect() {
	for i := -5; i < 9; i++ {
		fmt.Print(dsfilter.Reflect(i, 4), " ")
	}
	fmt.Println()
	// Output:
	// 3 3 2 1 0 0 1 2 3 3 2 1 0 0
}

func ExampleKernel() {
	k := dsfilter.Kernel(1)
	fmt.Println(len(k))
	for _, v := range k {
		fmt.Printf("%.4f ", v)
	}
	fmt.Println()
	// Output:
	// 9
	// 0.0001 0.0044 0.0540 0.2420 0.3989 0.2420 0.0540 0.0044 0.0001
}

func TestKernel(t *testing.T) {
	for _, s := range []float64{.1, .85, 2, 8.5, 30} {
		k := dsfilter.Kernel(s)
		if len(k)%2 != 1 || len(k) < 3 {
			t.Fatalf("sigma %g: kernel length %d", s, len(k))
		}
		if d := floats.Sum(k) - 1; math.Abs(d) > 1e-12 {
			t.Fatalf("sigma %g: kernel sum off by %g", s, d)
		}
		r := len(k) / 2
		if floats.MaxIdx(k) != r {
			t.Fatalf("sigma %g: kernel max not at center", s)
		}
		for i := 0; i < r; i++ {
			if k[i] != k[len(k)-1-i] {
				t.Fatalf("sigma %g: kernel not symmetric", s)
			}
		}
	}
}

func TestSigma(t *testing.T) {
	if s := dsfilter.Sigma(2.354820045); s != 1 {
		t.Fatal("Sigma(2.354820045) =", s)
	}
}

func TestSmoothConstant(t *testing.T) {
	// reflect boundaries leave a constant field constant, including
	// kernels wider than the grid.
	src := mat.NewDense(5, 7, nil)
	src.Apply(func(_, _ int, _ float64) float64 { return 3 }, src)
	for _, s := range []float64{.5, 2, 20} {
		dst := dsfilter.Smooth(src, s)
		if !mat.EqualApprox(src, dst, 1e-12) {
			t.Fatalf("sigma %g:\n%v", s, mat.Formatted(dst))
		}
	}
}

func TestSmoothConservesMass(t *testing.T) {
	src := mat.NewDense(6, 9, nil)
	src.Set(0, 0, 10)
	src.Set(3, 4, 5)
	src.Set(5, 8, 1)
	for _, s := range []float64{.85, 3, 8.5} {
		dst := dsfilter.Smooth(src, s)
		if d := mat.Sum(dst) - 16; math.Abs(d) > 1e-9 {
			t.Fatalf("sigma %g: mass off by %g", s, d)
		}
	}
}

func TestSmoothShape(t *testing.T) {
	src := mat.NewDense(3, 11, nil)
	src.Set(1, 5, 1)
	dst := dsfilter.Smooth(src, 1)
	if r, c := dst.Dims(); r != 3 || c != 11 {
		t.Fatal("dims", r, c)
	}
	// symmetric about the impulse
	for d := 1; d <= 5; d++ {
		if math.Abs(dst.At(1, 5-d)-dst.At(1, 5+d)) > 1e-12 {
			t.Fatal("asymmetric response at offset", d)
		}
	}
	if mat.Max(dst) != dst.At(1, 5) {
		t.Fatal("maximum moved")
	}
}
