// Public domain.

package dsfilter

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Defaults for background statistics of a field.
const (
	ClipSigma = 3
	ClipIters = 5
)

// SigmaClippedStats computes mean, median and standard deviation of data
// after iteratively rejecting outliers.
//
// Each iteration computes the median and population standard deviation of
// the remaining values and rejects values farther than nsigma standard
// deviations from the median.  Iteration stops when nothing is rejected or
// after maxIters iterations.  Data is not modified.
func SigmaClippedStats(data []float64, nsigma float64, maxIters int) (mean, median, std float64) {
	if len(data) == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}
	// work on a sorted copy.  kept values are always a contiguous run.
	s := append([]float64{}, data...)
	sort.Float64s(s)
	for it := 0; it < maxIters; it++ {
		median = sortedMedian(s)
		_, std = stat.PopMeanStdDev(s, nil)
		lo := sort.SearchFloat64s(s, median-nsigma*std)
		// first index with value > median+nsigma*std
		hi := sort.Search(len(s), func(i int) bool {
			return s[i] > median+nsigma*std
		})
		if lo == 0 && hi == len(s) {
			break
		}
		s = s[lo:hi]
		if len(s) == 0 {
			return math.NaN(), math.NaN(), math.NaN()
		}
	}
	mean, std = stat.PopMeanStdDev(s, nil)
	return mean, sortedMedian(s), std
}

func sortedMedian(s []float64) float64 {
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) * .5
}

// Threshold computes a detection threshold for field: the sigma clipped
// median plus nsigma standard deviations of the field.
//
// The median is clipped at ClipSigma over at most ClipIters iterations.
// The standard deviation is the population standard deviation of all
// cells, unclipped.
func Threshold(field *mat.Dense, nsigma float64) (threshold, median, std float64) {
	data := make([]float64, 0, len(field.RawMatrix().Data))
	rows, _ := field.Dims()
	for y := 0; y < rows; y++ {
		data = append(data, field.RawRowView(y)...)
	}
	_, median, _ = SigmaClippedStats(data, ClipSigma, ClipIters)
	_, std = stat.PopMeanStdDev(data, nil)
	return median + nsigma*std, median, std
}
