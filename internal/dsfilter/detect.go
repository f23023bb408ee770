// Public domain.

// Package dsfilter implements the dwarf filter, a difference of Gaussians
// overdensity detector for point sets on the sky, and extraction of peak
// candidates from the filtered field.
package dsfilter

import (
	"math"

	"github.com/soniakeys/dwarfscan/internal/dsbin"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// InvalidInputError is the error type returned for malformed input.
type InvalidInputError = dsbin.InvalidInputError

// Result holds the products of Detect.
type Result struct {
	Hist     *dsbin.Histogram // raw counts
	Extent   dsbin.Extent
	Filtered *mat.Dense // small kernel smoothing minus big kernel smoothing
	Clipped  *mat.Dense // Filtered floored at its own mean
	Mean     float64    // mean of Filtered
	Sigma    float64    // population standard deviation of Filtered
}

// Detect runs the dwarf filter on the positions ra, dec, in degrees.
//
// Positions are binned into about one arc minute bins, the histogram is
// smoothed with Gaussians of FWHM fwhmSmall and fwhmBig arc minutes, and
// the difference small minus big is returned along with the difference
// floored at its mean.  By convention fwhmSmall < fwhmBig.  The ordering
// is not checked; reversed widths invert the sign of the filtered field.
//
// On invalid input the error is an *InvalidInputError and no result is
// returned.
func Detect(ra, dec []float64, fwhmSmall, fwhmBig float64) (*Result, error) {
	if err := checkFWHM(fwhmSmall, fwhmBig); err != nil {
		return nil, err
	}
	h, err := dsbin.New(&dsbin.Points{RA: ra, Dec: dec})
	if err != nil {
		return nil, err
	}
	small := Smooth(h.Counts, Sigma(fwhmSmall))
	big := Smooth(h.Counts, Sigma(fwhmBig))

	var filtered mat.Dense
	filtered.Sub(small, big)

	mean, sigma := stat.PopMeanStdDev(filtered.RawMatrix().Data, nil)

	var clipped mat.Dense
	clipped.Apply(func(_, _ int, v float64) float64 {
		if v < mean {
			return mean
		}
		return v
	}, &filtered)

	return &Result{
		Hist:     h,
		Extent:   h.Extent,
		Filtered: &filtered,
		Clipped:  &clipped,
		Mean:     mean,
		Sigma:    sigma,
	}, nil
}

func checkFWHM(fwhmSmall, fwhmBig float64) error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"fwhmSmall", fwhmSmall}, {"fwhmBig", fwhmBig}} {
		// use ! > to catch NaN as well
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return dsbin.Invalid("dsfilter.Detect",
				"kernel width %s = %g, must be positive and finite", f.name, f.v)
		}
	}
	return nil
}
