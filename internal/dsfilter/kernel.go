// Public domain.

package dsfilter

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// FWHMPerSigma is the ratio of full width at half maximum to standard
// deviation for a Gaussian, 2*sqrt(2*ln 2).
const FWHMPerSigma = 2.354820045

// Truncate is the kernel half width in units of sigma.
const Truncate = 4

// Sigma converts a Gaussian FWHM to standard deviation.  Units are
// unchanged; with one arc minute bins, arc minutes are pixels.
func Sigma(fwhm float64) float64 {
	return fwhm / FWHMPerSigma
}

// Kernel returns a normalized 1D Gaussian kernel with standard deviation
// sigma, in pixels.  The kernel has odd length 2r+1 with r = round(4 sigma),
// at least 1, and its center at index r.
func Kernel(sigma float64) []float64 {
	r := int(Truncate*sigma + .5)
	if r < 1 {
		r = 1
	}
	k := make([]float64, 2*r+1)
	inv2s2 := -.5 / (sigma * sigma)
	for i := range k {
		x := float64(i - r)
		k[i] = math.Exp(x * x * inv2s2)
	}
	floats.Scale(1/floats.Sum(k), k)
	return k
}

// Reflect maps index i onto [0, n) by reflection about the array edges,
// repeating the edge sample:
//
//	d c b a | a b c d | d c b a
//
// The mapping is periodic with period 2n so any index is defined.
func Reflect(i, n int) int {
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i
}

// Smooth convolves src with an isotropic Gaussian of standard deviation
// sigma pixels, using reflect boundaries.  The convolution is separable and
// is done as a pass along rows followed by a pass along columns.
// The result has the shape of src.
func Smooth(src mat.Matrix, sigma float64) *mat.Dense {
	k := Kernel(sigma)
	r := len(k) / 2
	rows, cols := src.Dims()
	tmp := mat.NewDense(rows, cols, nil)
	dst := mat.NewDense(rows, cols, nil)

	// window holds reflected samples under the kernel.
	window := make([]float64, len(k))

	// rows
	line := make([]float64, cols)
	for y := 0; y < rows; y++ {
		mat.Row(line, y, src)
		out := tmp.RawRowView(y)
		for x := range out {
			for j := range window {
				window[j] = line[Reflect(x+j-r, cols)]
			}
			out[x] = floats.Dot(k, window)
		}
	}
	// columns
	line = make([]float64, rows)
	for x := 0; x < cols; x++ {
		mat.Col(line, x, tmp)
		for y := 0; y < rows; y++ {
			for j := range window {
				window[j] = line[Reflect(y+j-r, rows)]
			}
			dst.Set(y, x, floats.Dot(k, window))
		}
	}
	return dst
}
