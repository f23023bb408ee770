// Public domain.

package dsfilter_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/soniakeys/dwarfscan/internal/dsfilter"
	"gonum.org/v1/gonum/mat"
)

func ExampleSigmaClippedStats() {
	var data []float64
	for i := 0; i < 20; i++ {
		data = append(data, 9, 10, 11)
	}
	data = append(data, 1000)
	mean, median, std := dsfilter.SigmaClippedStats(data, 3, 5)
	fmt.Printf("%.4f %.4f %.4f\n", mean, median, std)
	// Output:
	// 10.0000 10.0000 0.8165
}

func TestSigmaClippedStatsNoClip(t *testing.T) {
	data := []float64{4, 1, 3, 2}
	mean, median, std := dsfilter.SigmaClippedStats(data, 3, 5)
	if mean != 2.5 || median != 2.5 || math.Abs(std-math.Sqrt(1.25)) > 1e-15 {
		t.Fatal(mean, median, std)
	}
	// input not modified
	if data[0] != 4 || data[3] != 2 {
		t.Fatal("data reordered")
	}
}

func TestSigmaClippedStatsIters(t *testing.T) {
	// each iteration peels one more outlier
	data := []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, -1, 1, -1}
	data = append(data, 20, 200, 2000)
	_, _, s1 := dsfilter.SigmaClippedStats(data, 3, 1)
	_, _, s5 := dsfilter.SigmaClippedStats(data, 3, 5)
	t.Log("std after 1 iteration", s1, "after 5", s5)
	if !(s5 < s1) {
		t.Fatal("more iterations should reject more outliers")
	}
	_, _, s0 := dsfilter.SigmaClippedStats(data, 3, 0)
	if !(s0 > s1) {
		t.Fatal("zero iterations should clip nothing")
	}
}

func TestSigmaClippedStatsEmpty(t *testing.T) {
	mean, median, std := dsfilter.SigmaClippedStats(nil, 3, 5)
	if !math.IsNaN(mean) || !math.IsNaN(median) || !math.IsNaN(std) {
		t.Fatal("want NaN for empty data")
	}
}

func TestThreshold(t *testing.T) {
	f := mat.NewDense(2, 3, []float64{1, 1, 1, 1, 1, 7})
	th, median, std := dsfilter.Threshold(f, 2)
	if median != 1 || std != math.Sqrt(5) || th != 1+2*math.Sqrt(5) {
		t.Fatal(th, median, std)
	}
}
