// Public domain.

package dsprog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/soniakeys/dwarfscan/internal/dscat"
	"github.com/soniakeys/unit"
)

type outputOptions struct {
	headings, decimal bool
}

type options struct {
	outputOptions
	sel                dscat.Selection
	fwhmSmall, fwhmBig float64 // arc min
	box                float64 // bins
	nsigma             float64
	match              unit.Angle
}

func defaultOptions() *options {
	return &options{
		outputOptions: outputOptions{headings: true},
		sel:           dscat.DefaultSelection(),
		fwhmSmall:     2,
		fwhmBig:       20,
		box:           4,
		nsigma:        10,
		match:         unit.AngleFromMin(5),
	}
}

var rxAssign = regexp.MustCompile(`^[ \t]*(.*?)[ \t]*=[ \t]*(.+?)[ \t]*$`)

// parseConfig reads config file lines from r, starting from the default
// options.  The box size defaults to twice fwhmsmall unless given.
func parseConfig(r io.Reader) (*options, error) {
	opt := defaultOptions()
	var boxSpec bool

	// parseFloat parses a finite value not less than lo.  With
	// positive set, lo itself is also excluded.
	parseFloat := func(s string, lo float64, positive bool) (float64, string) {
		f, err := strconv.ParseFloat(s, 64)
		switch {
		case err != nil:
			return 0, err.Error()
		case math.IsNaN(f) || math.IsInf(f, 0):
			return 0, "Value must be finite."
		case f < lo || positive && f == lo:
			if positive {
				return 0, "Value must be positive."
			}
			return 0, fmt.Sprintf("Value less than %g not allowed.", lo)
		}
		return f, ""
	}
	parseAssign := func(ls string) (errStr string) {
		ss := rxAssign.FindStringSubmatch(ls)
		if len(ss) != 3 {
			return "Unrecognized line in config file."
		}
		k, v := strings.ToLower(ss[1]), ss[2]
		var f float64
		switch k {
		case "racol":
			opt.sel.RACol = v
		case "deccol":
			opt.sel.DecCol = v
		case "mag":
			opt.sel.Mag = v
		case "color":
			c1, c2, ok := strings.Cut(v, "-")
			c1, c2 = strings.TrimSpace(c1), strings.TrimSpace(c2)
			if !ok || c1 == "" || c2 == "" {
				return "Color must be two column names separated by -."
			}
			opt.sel.Color = [2]string{c1, c2}
		case "fwhmsmall":
			if f, errStr = parseFloat(v, 0, true); errStr == "" {
				opt.fwhmSmall = f
			}
		case "fwhmbig":
			if f, errStr = parseFloat(v, 0, true); errStr == "" {
				opt.fwhmBig = f
			}
		case "box":
			if f, errStr = parseFloat(v, 1, false); errStr == "" {
				opt.box = f
				boxSpec = true
			}
		case "nsigma":
			if f, errStr = parseFloat(v, 0, false); errStr == "" {
				opt.nsigma = f
			}
		case "match":
			if f, errStr = parseFloat(v, 0, false); errStr == "" {
				opt.match = unit.AngleFromMin(f)
			}
		case "magmin":
			if f, errStr = parseFloat(v, math.Inf(-1), false); errStr == "" {
				opt.sel.MagRange.Min, opt.sel.MagRange.HasMin = f, true
			}
		case "magmax":
			if f, errStr = parseFloat(v, math.Inf(-1), false); errStr == "" {
				opt.sel.MagRange.Max, opt.sel.MagRange.HasMax = f, true
			}
		case "colormin":
			if f, errStr = parseFloat(v, math.Inf(-1), false); errStr == "" {
				opt.sel.ColorRange.Min, opt.sel.ColorRange.HasMin = f, true
			}
		case "colormax":
			if f, errStr = parseFloat(v, math.Inf(-1), false); errStr == "" {
				opt.sel.ColorRange.Max, opt.sel.ColorRange.HasMax = f, true
			}
		default:
			return "Unrecognized keyword in config file."
		}
		return
	}

	for lr := bufio.NewReader(r); ; {
		l, isPre, err := lr.ReadLine()
		switch {
		case err == io.EOF:
			if !boxSpec {
				opt.box = 2 * opt.fwhmSmall
			}
			if (opt.sel.MagRange.HasMin || opt.sel.MagRange.HasMax) &&
				opt.sel.Mag == "" {
				return nil, errors.New("Config file: magmin or magmax without mag.")
			}
			if (opt.sel.ColorRange.HasMin || opt.sel.ColorRange.HasMax) &&
				opt.sel.Color[0] == "" {
				return nil, errors.New("Config file: colormin or colormax without color.")
			}
			return opt, nil
		case err != nil:
			return nil, err
		case isPre:
			return nil, errors.New("Unexpected long line in config file.")
		case len(l) == 0:
			continue
		case l[0] == '#':
			continue
		}
		ls := string(l)
		switch strings.TrimSpace(ls) {
		case "":
			continue
		case "headings":
			opt.headings = true
			continue
		case "noheadings":
			opt.headings = false
			continue
		case "sexagesimal":
			opt.decimal = false
			continue
		case "decimal":
			opt.decimal = true
			continue
		}
		if errStr := parseAssign(ls); errStr > "" {
			return nil, fmt.Errorf("%s\nConfig file line: %s", errStr, ls)
		}
	}
}
