// Public domain.

// Package dsbin defines the spatial histogram used by dwarfscan: the point
// set of observed positions, its angular extent, and the binning of the
// sky into approximately one arc minute square cells.
package dsbin

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// BinSize is the nominal angular size of a histogram bin on the sky.
var BinSize = unit.AngleFromMin(1)

// InvalidInputError reports malformed or degenerate input.  It is returned
// before any numerical work is done.
type InvalidInputError struct {
	Op     string // operation that rejected the input
	Reason string // the precondition that failed
}

func (e *InvalidInputError) Error() string {
	return e.Op + ": invalid input: " + e.Reason
}

// Invalid constructs an *InvalidInputError.
func Invalid(op, format string, a ...interface{}) error {
	return &InvalidInputError{Op: op, Reason: fmt.Sprintf(format, a...)}
}

// Points is a set of sky positions in decimal degrees.  RA and Dec are
// parallel slices.
type Points struct {
	RA, Dec []float64
}

// Len returns the number of points.
func (p *Points) Len() int { return len(p.RA) }

// Validate checks that p is non-empty, that RA and Dec have equal length,
// and that all values are finite.
func (p *Points) Validate() error {
	const op = "dsbin.Validate"
	switch {
	case p == nil || len(p.RA) == 0 && len(p.Dec) == 0:
		return Invalid(op, "empty point set")
	case len(p.RA) != len(p.Dec):
		return Invalid(op, "mismatched lengths, %d ra and %d dec",
			len(p.RA), len(p.Dec))
	}
	for i, r := range p.RA {
		d := p.Dec[i]
		if math.IsNaN(r) || math.IsInf(r, 0) ||
			math.IsNaN(d) || math.IsInf(d, 0) {
			return Invalid(op, "non-finite position at index %d (%g, %g)",
				i, r, d)
		}
	}
	return nil
}

// Extent holds the bounds of the histogram in decimal degrees.
// It corresponds to the outer bin edges.
type Extent struct {
	RAMin, RAMax, DecMin, DecMax float64
}

// Slice returns the extent as [ra_min, ra_max, dec_min, dec_max].
func (e Extent) Slice() []float64 {
	return []float64{e.RAMin, e.RAMax, e.DecMin, e.DecMax}
}

// Sky maps pixel indexes back to sky coordinates for a grid of nx RA bins
// and ny Dec bins spanning e.  Pixel i of n bins over [lo, hi] maps to
// lo + i*(hi-lo)/n, the lower edge of the bin.
func (e Extent) Sky(x, y, nx, ny int) (ra, dec float64) {
	ra = e.RAMin + float64(x)*(e.RAMax-e.RAMin)/float64(nx)
	dec = e.DecMin + float64(y)*(e.DecMax-e.DecMin)/float64(ny)
	return
}

// Contains reports whether the position lies within e, edges included.
func (e Extent) Contains(ra, dec float64) bool {
	return ra >= e.RAMin && ra <= e.RAMax && dec >= e.DecMin && dec <= e.DecMax
}

// Bins computes the extent of p and the number of bins along each axis.
//
// The RA extent is scaled by the cosine of the mean declination so that
// bins are approximately square on the sky near the field center.  The
// correction is a flat small angle approximation; it degrades for fields
// spanning a large range of declination or near the poles.
//
// Bin counts are the arc minute extents rounded to the nearest integer.
// A count of zero in either axis is an error.
func Bins(p *Points) (nx, ny int, ext Extent, err error) {
	if err = p.Validate(); err != nil {
		return
	}
	ext = Extent{
		RAMin:  floats.Min(p.RA),
		RAMax:  floats.Max(p.RA),
		DecMin: floats.Min(p.Dec),
		DecMax: floats.Max(p.Dec),
	}
	cosDec := unit.AngleFromDeg(stat.Mean(p.Dec, nil)).Cos()
	raSpan := unit.AngleFromDeg((ext.RAMax - ext.RAMin) * cosDec)
	decSpan := unit.AngleFromDeg(ext.DecMax - ext.DecMin)
	nx = int(math.Round(raSpan.Rad() / BinSize.Rad()))
	ny = int(math.Round(decSpan.Rad() / BinSize.Rad()))
	if nx < 1 || ny < 1 {
		err = Invalid("dsbin.Bins",
			"degenerate extent, %d ra bins by %d dec bins", nx, ny)
	}
	return
}

// Histogram holds counts of points by bin.  Counts has one row per Dec bin
// and one column per RA bin.
type Histogram struct {
	Counts *mat.Dense
	Extent Extent
	N      int // number of points binned
}

// New bins the point set p.
func New(p *Points) (*Histogram, error) {
	nx, ny, ext, err := Bins(p)
	if err != nil {
		return nil, err
	}
	h := &Histogram{
		Counts: mat.NewDense(ny, nx, nil),
		Extent: ext,
		N:      p.Len(),
	}
	for i, r := range p.RA {
		x := Index(r, ext.RAMin, ext.RAMax, nx)
		y := Index(p.Dec[i], ext.DecMin, ext.DecMax, ny)
		h.Counts.Set(y, x, h.Counts.At(y, x)+1)
	}
	return h, nil
}

// Dims returns the number of RA bins and Dec bins.
func (h *Histogram) Dims() (nx, ny int) {
	ny, nx = h.Counts.Dims()
	return
}

// Total returns the sum of all bin counts.  It equals N.
func (h *Histogram) Total() float64 {
	return floats.Sum(h.Counts.RawMatrix().Data)
}

// Sky maps pixel indexes of h to sky coordinates.
func (h *Histogram) Sky(x, y int) (ra, dec float64) {
	nx, ny := h.Dims()
	return h.Extent.Sky(x, y, nx, ny)
}

// Index takes a real value and returns the index of the bin containing it,
// for n equal bins spanning [lo, hi].  The last bin includes hi.
func Index(v, lo, hi float64, n int) (ix int) {
	ix = int((v - lo) / (hi - lo) * float64(n))
	switch {
	case ix >= n:
		ix = n - 1
	case ix < 0:
		ix = 0
	}
	return
}
