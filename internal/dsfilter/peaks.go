// Public domain.

package dsfilter

import (
	"math"
	"sort"

	"github.com/soniakeys/dwarfscan/internal/dsbin"
	"gonum.org/v1/gonum/mat"
)

// Peak is a local maximum found in a field.
type Peak struct {
	X, Y    int     // pixel indexes, X along RA, Y along Dec
	Value   float64 // field value at X, Y
	RA, Dec float64 // degrees
}

// FindPeaks finds local maxima of field above threshold.
//
// A cell is a candidate if its value exceeds threshold and no cell in the
// square window of half width floor(boxSize/2) centered on it has a greater
// value.  Candidates are then taken in order of decreasing value, ties going
// to the lowest row then column index, and a candidate closer than boxSize
// pixels (Chebyshev distance) to one already taken is the same maximum and
// is dropped.  Peaks are returned in the order taken.
//
// Ext must be the extent used to build field.  RA and Dec of each peak are
// mapped from pixel indexes with dsbin.Extent.Sky.
//
// No cell above threshold is not an error; the result is empty.
func FindPeaks(field *mat.Dense, ext dsbin.Extent, threshold, boxSize float64) ([]Peak, error) {
	const op = "dsfilter.FindPeaks"
	if field == nil || field.IsEmpty() {
		return nil, dsbin.Invalid(op, "empty field")
	}
	if !(boxSize > 0) || math.IsInf(boxSize, 0) {
		return nil, dsbin.Invalid(op, "box size %g, must be positive and finite",
			boxSize)
	}
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return nil, dsbin.Invalid(op, "threshold %g, must be finite", threshold)
	}
	ny, nx := field.Dims()
	half := int(boxSize / 2)

	var cand []Peak
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			v := field.At(y, x)
			if v > threshold && isWindowMax(field, x, y, half, v) {
				cand = append(cand, Peak{X: x, Y: y, Value: v})
			}
		}
	}
	// cand is in row major order already, a stable sort keeps index order
	// among equal values.
	sort.SliceStable(cand, func(i, j int) bool {
		return cand[i].Value > cand[j].Value
	})

	peaks := []Peak{}
next:
	for _, c := range cand {
		for _, p := range peaks {
			if float64(chebyshev(c, p)) < boxSize {
				continue next
			}
		}
		c.RA, c.Dec = ext.Sky(c.X, c.Y, nx, ny)
		peaks = append(peaks, c)
	}
	return peaks, nil
}

// isWindowMax reports whether no cell within half pixels of x, y exceeds v.
func isWindowMax(field *mat.Dense, x, y, half int, v float64) bool {
	ny, nx := field.Dims()
	for wy := max(y-half, 0); wy <= min(y+half, ny-1); wy++ {
		for wx := max(x-half, 0); wx <= min(x+half, nx-1); wx++ {
			if field.At(wy, wx) > v {
				return false
			}
		}
	}
	return true
}

func chebyshev(a, b Peak) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return max(dx, dy)
}
