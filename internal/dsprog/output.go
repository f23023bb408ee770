// Public domain.

package dsprog

import (
	"fmt"
	"io"

	"github.com/soniakeys/dwarfscan/internal/dscat"
	"github.com/soniakeys/dwarfscan/internal/dsfilter"
	"github.com/soniakeys/meeus/v3/angle"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

func printHeadings(w io.Writer, opt *outputOptions) {
	fmt.Fprint(w, "Rank    X    Y    Value  ")
	if opt.decimal {
		fmt.Fprint(w, "       RA       Dec")
	} else {
		fmt.Fprint(w, "RA            Dec         ")
	}
	fmt.Fprintln(w, "  Known")
}

// formatPeak formats one line of the peak table.
func (opt *options) formatPeak(rank int, pk dsfilter.Peak, known []dscat.Known) string {
	s := fmt.Sprintf("%4d %4d %4d %8.3f  ", rank, pk.X, pk.Y, pk.Value)
	if opt.decimal {
		s += fmt.Sprintf("%9.4f %+9.4f", pk.RA, pk.Dec)
	} else {
		s += fmt.Sprintf("%.2d  %+.1d",
			sexa.FmtRA(unit.RAFromDeg(pk.RA)),
			sexa.FmtAngle(unit.AngleFromDeg(pk.Dec)))
	}
	if k, sep, ok := nearest(known, pk.RA, pk.Dec, opt.match); ok {
		s += fmt.Sprintf("  %s %.1f'", k.Name, sep.Deg()*60)
	}
	return s
}

// nearest returns the known object nearest ra, dec, if one is within
// radius.
func nearest(known []dscat.Known, ra, dec float64, radius unit.Angle) (k dscat.Known, sep unit.Angle, ok bool) {
	r1, d1 := unit.AngleFromDeg(ra), unit.AngleFromDeg(dec)
	for _, kn := range known {
		s := angle.Sep(r1, d1, unit.AngleFromDeg(kn.RA), unit.AngleFromDeg(kn.Dec))
		if s <= radius && (!ok || s < sep) {
			k, sep, ok = kn, s, true
		}
	}
	return
}
