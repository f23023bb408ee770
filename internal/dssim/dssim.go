// Public domain.

// Package dssim generates synthetic star catalogs: a uniform background
// field with compact clusters injected at known positions.  It is used by
// the command dwsim and by tests of the detector.
package dssim

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/soniakeys/dwarfscan/internal/dsbin"
	"github.com/soniakeys/unit"
	xrand "golang.org/x/exp/rand"
)

// Star is a synthetic catalog row.  RA, Dec in degrees, G and R are
// magnitudes.
type Star struct {
	RA, Dec, G, R float64
}

// Cluster describes stars distributed uniformly within a disk.
type Cluster struct {
	RA, Dec float64 // center, degrees
	Radius  float64 // arc minutes
	N       int
}

// Field describes a synthetic field.  Background stars are uniform in RA
// and Dec over the box.
type Field struct {
	RAMin, RAMax, DecMin, DecMax float64
	N                            int
	Clusters                     []Cluster
}

// Box returns a field of n background stars in a box of side deg degrees
// of declination centered on ra, dec.  The RA side is the same number of
// degrees, not corrected for declination.
func Box(ra, dec, deg float64, n int) Field {
	h := deg / 2
	return Field{RAMin: ra - h, RAMax: ra + h, DecMin: dec - h, DecMax: dec + h, N: n}
}

// Magnitude and g-r color ranges of generated stars.  Cluster members
// have a narrower, bluer color range than the background.
var (
	BackgroundGR = [2]float64{.1, 1.6}
	ClusterGR    = [2]float64{.2, .6}
	GRange       = [2]float64{18, 24}
)

// NewRand returns a PCG generator.  Repeatable output comes from a fixed
// seed.
func NewRand(seed uint64) *xrand.Rand {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(seed)
	return rnd
}

// Generate generates stars of field f using rnd.  Background stars come
// first, followed by the members of each cluster in order.
func Generate(f Field, rnd *xrand.Rand) []Star {
	n := f.N
	for _, c := range f.Clusters {
		n += c.N
	}
	s := make([]Star, 0, n)
	for i := 0; i < f.N; i++ {
		s = append(s, Star{
			RA:  uniform(rnd, f.RAMin, f.RAMax),
			Dec: uniform(rnd, f.DecMin, f.DecMax),
		})
		s[i].G, s[i].R = mags(rnd, BackgroundGR)
	}
	for _, c := range f.Clusters {
		rDeg := unit.AngleFromMin(c.Radius).Deg()
		cosDec := unit.AngleFromDeg(c.Dec).Cos()
		for i := 0; i < c.N; i++ {
			// uniform over the disk, flat sky
			r := rDeg * math.Sqrt(rnd.Float64())
			sa, ca := math.Sincos(2 * math.Pi * rnd.Float64())
			st := Star{RA: c.RA + r*ca/cosDec, Dec: c.Dec + r*sa}
			st.G, st.R = mags(rnd, ClusterGR)
			s = append(s, st)
		}
	}
	return s
}

func uniform(rnd *xrand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rnd.Float64()
}

func mags(rnd *xrand.Rand, gr [2]float64) (g, r float64) {
	g = uniform(rnd, GRange[0], GRange[1])
	return g, g - uniform(rnd, gr[0], gr[1])
}

// Points extracts positions from s.
func Points(s []Star) *dsbin.Points {
	p := &dsbin.Points{
		RA:  make([]float64, len(s)),
		Dec: make([]float64, len(s)),
	}
	for i, st := range s {
		p.RA[i] = st.RA
		p.Dec[i] = st.Dec
	}
	return p
}

// Header is the CSV header row written by WriteCSV.
var Header = []string{"ra", "dec", "g", "r"}

// WriteCSV writes s as CSV with a header row.  Values are written with the
// fewest digits that read back exactly.
func WriteCSV(w io.Writer, s []Star) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	rec := make([]string, 4)
	for _, st := range s {
		for i, v := range [4]float64{st.RA, st.Dec, st.G, st.R} {
			rec[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
