// Public domain.

package dsfilter_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soniakeys/dwarfscan/internal/dsbin"
	"github.com/soniakeys/dwarfscan/internal/dsfilter"
	"github.com/soniakeys/dwarfscan/internal/dssim"
	"gonum.org/v1/gonum/mat"
)

// field of 10000 background stars over one square degree plus 200 stars
// within 2' of 10, -5.
func testField(seed uint64) *dsbin.Points {
	f := dssim.Box(10, -5, 1, 10000)
	f.Clusters = []dssim.Cluster{{RA: 10, Dec: -5, Radius: 2, N: 200}}
	return dssim.Points(dssim.Generate(f, dssim.NewRand(seed)))
}

var invalidTestCases = []struct {
	name             string
	ra, dec          []float64
	fwhmSmall, fwhmB float64
}{
	{"empty", nil, nil, 2, 20},
	{"mismatched", []float64{1, 2}, []float64{1}, 2, 20},
	{"NaN ra", []float64{1, math.NaN()}, []float64{1, 2}, 2, 20},
	{"Inf dec", []float64{1, 2}, []float64{1, math.Inf(-1)}, 2, 20},
	{"identical", []float64{5, 5, 5}, []float64{3, 3, 3}, 2, 20},
	{"narrow ra", []float64{5, 5.001}, []float64{3, 4}, 2, 20},
	{"zero small", []float64{5, 6}, []float64{3, 4}, 0, 20},
	{"negative big", []float64{5, 6}, []float64{3, 4}, 2, -20},
	{"NaN big", []float64{5, 6}, []float64{3, 4}, 2, math.NaN()},
	{"Inf small", []float64{5, 6}, []float64{3, 4}, math.Inf(1), 20},
}

func TestDetectInvalid(t *testing.T) {
	for _, tc := range invalidTestCases {
		r, err := dsfilter.Detect(tc.ra, tc.dec, tc.fwhmSmall, tc.fwhmB)
		var ie *dsfilter.InvalidInputError
		if !errors.As(err, &ie) {
			t.Fatalf("%s: want InvalidInputError, got %v", tc.name, err)
		}
		if r != nil {
			t.Fatalf("%s: partial result returned", tc.name)
		}
		t.Log(err)
	}
}

func TestDetectShapes(t *testing.T) {
	p := testField(1)
	r, err := dsfilter.Detect(p.RA, p.Dec, 2, 20)
	if err != nil {
		t.Fatal(err)
	}
	if r.Hist.Total() != float64(p.Len()) || r.Hist.N != p.Len() {
		t.Fatal("histogram mass", r.Hist.Total(), "points", p.Len())
	}
	nx, ny := r.Hist.Dims()
	t.Log("grid", nx, "x", ny, "sigma", r.Sigma)
	for _, m := range []*mat.Dense{r.Filtered, r.Clipped} {
		if rows, cols := m.Dims(); rows != ny || cols != nx {
			t.Fatal("field shape", cols, rows, "histogram", nx, ny)
		}
	}
	if r.Extent != r.Hist.Extent {
		t.Fatal("extent mismatch")
	}
	if !(r.Sigma > 0) {
		t.Fatal("sigma", r.Sigma)
	}
}

func TestDetectClipped(t *testing.T) {
	p := testField(2)
	r, err := dsfilter.Detect(p.RA, p.Dec, 2, 20)
	if err != nil {
		t.Fatal(err)
	}
	rows, cols := r.Filtered.Dims()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			f, c := r.Filtered.At(y, x), r.Clipped.At(y, x)
			switch {
			case f < r.Mean && c != r.Mean:
				t.Fatal("value below mean not floored at", x, y)
			case f >= r.Mean && c != f:
				t.Fatal("value above mean changed at", x, y)
			}
		}
	}
}

func TestDetectIdempotent(t *testing.T) {
	p := testField(3)
	r1, err := dsfilter.Detect(p.RA, p.Dec, 2, 20)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := dsfilter.Detect(p.RA, p.Dec, 2, 20)
	if err != nil {
		t.Fatal(err)
	}
	if !mat.Equal(r1.Hist.Counts, r2.Hist.Counts) ||
		!mat.Equal(r1.Filtered, r2.Filtered) ||
		!mat.Equal(r1.Clipped, r2.Clipped) ||
		r1.Sigma != r2.Sigma || r1.Extent != r2.Extent {
		t.Fatal("results differ")
	}
}

func TestDetectUniformMean(t *testing.T) {
	for seed := uint64(0); seed < 3; seed++ {
		s := dssim.Generate(dssim.Box(150, 30, 1.5, 20000), dssim.NewRand(seed))
		p := dssim.Points(s)
		r, err := dsfilter.Detect(p.RA, p.Dec, 2, 20)
		if err != nil {
			t.Fatal(err)
		}
		// normalized kernels and reflect boundaries conserve mass, so the
		// difference has zero net response.
		perBin := r.Hist.Total() / float64(len(r.Filtered.RawMatrix().Data))
		if math.Abs(r.Mean) > 1e-9*perBin {
			t.Fatal("filtered mean", r.Mean, "counts per bin", perBin)
		}
	}
}

func TestDetectMonotonicBig(t *testing.T) {
	f := dssim.Box(10, -5, 1, 2000)
	f.Clusters = []dssim.Cluster{{RA: 10, Dec: -5, Radius: 1.5, N: 200}}
	p := dssim.Points(dssim.Generate(f, dssim.NewRand(4)))
	last := math.Inf(-1)
	for _, big := range []float64{8, 16, 32} {
		r, err := dsfilter.Detect(p.RA, p.Dec, 2, big)
		if err != nil {
			t.Fatal(err)
		}
		c := mat.Max(r.Filtered)
		t.Logf("fwhmBig %2.0f contrast %.3f", big, c)
		if c <= last {
			t.Fatal("contrast did not increase")
		}
		last = c
	}
}

func TestDetectReversedWidths(t *testing.T) {
	p := testField(5)
	r1, err := dsfilter.Detect(p.RA, p.Dec, 2, 20)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := dsfilter.Detect(p.RA, p.Dec, 20, 2)
	if err != nil {
		t.Fatal(err)
	}
	var neg mat.Dense
	neg.Scale(-1, r1.Filtered)
	if !mat.EqualApprox(&neg, r2.Filtered, 1e-12) {
		t.Fatal("reversed widths should invert the filtered field")
	}
}

// 10000 background points, 200 cluster points, threshold median + 10 sigma
// of the clipped field.
func TestDetectCluster(t *testing.T) {
	for seed := uint64(0); seed < 3; seed++ {
		p := testField(seed)
		r, err := dsfilter.Detect(p.RA, p.Dec, 2, 20)
		if err != nil {
			t.Fatal(err)
		}
		th, med, std := dsfilter.Threshold(r.Clipped, 10)
		peaks, err := dsfilter.FindPeaks(r.Clipped, r.Extent, th, 4)
		if err != nil {
			t.Fatal(err)
		}
		t.Logf("seed %d median %.3f std %.3f threshold %.3f peaks %+v",
			seed, med, std, th, peaks)
		if len(peaks) != 1 {
			t.Fatalf("seed %d: %d peaks, want 1", seed, len(peaks))
		}
		pk := peaks[0]
		dx := (pk.RA - 10) * math.Cos(-5*math.Pi/180) * 60
		dy := (pk.Dec + 5) * 60
		if d := math.Hypot(dx, dy); d > 2 {
			t.Fatalf("seed %d: peak %.2f' from cluster", seed, d)
		}
	}
}

func TestDetectRoundTrip(t *testing.T) {
	ra0, dec0 := 210.2, 54.3
	f := dssim.Box(210, 54.5, 1, 3000)
	f.RAMin, f.RAMax = 209, 211 // about one degree on the sky
	f.Clusters = []dssim.Cluster{{RA: ra0, Dec: dec0, Radius: 1.5, N: 150}}
	p := dssim.Points(dssim.Generate(f, dssim.NewRand(6)))
	r, err := dsfilter.Detect(p.RA, p.Dec, 3, 30)
	if err != nil {
		t.Fatal(err)
	}
	th, _, _ := dsfilter.Threshold(r.Clipped, 5)
	peaks, err := dsfilter.FindPeaks(r.Clipped, r.Extent, th, 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(peaks) == 0 {
		t.Fatal("cluster not found")
	}
	nx, ny := r.Hist.Dims()
	x0 := dsbin.Index(ra0, r.Extent.RAMin, r.Extent.RAMax, nx)
	y0 := dsbin.Index(dec0, r.Extent.DecMin, r.Extent.DecMax, ny)
	pk := peaks[0]
	t.Logf("peak %+v, cluster bin %d %d", pk, x0, y0)
	if abs(pk.X-x0) > 1 || abs(pk.Y-y0) > 1 {
		t.Fatal("brightest peak more than one bin from cluster")
	}
	if !r.Extent.Contains(pk.RA, pk.Dec) {
		t.Fatal("peak outside extent")
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
