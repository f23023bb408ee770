// Public domain.

// Package dscat reads catalog query results and lists of known objects.
//
// Query results are CSV with a header row naming the columns.  Only the
// position columns and any columns named in a magnitude or color cut are
// used; other columns are ignored.
package dscat

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/soniakeys/dwarfscan/internal/dsbin"
)

// Range is a closed interval, optionally open-ended on either side.
type Range struct {
	Min, Max float64
	HasMin   bool
	HasMax   bool
}

// In reports whether v is within r.
func (r Range) In(v float64) bool {
	return (!r.HasMin || v >= r.Min) && (!r.HasMax || v <= r.Max)
}

// Selection names the columns to read and the cuts to apply.
type Selection struct {
	RACol, DecCol string // default "ra", "dec"

	Mag      string // magnitude column, "" for no magnitude cut
	MagRange Range

	Color      [2]string // color is Color[0] - Color[1], "" for no cut
	ColorRange Range
}

// DefaultSelection has position columns "ra" and "dec" and no cuts.
func DefaultSelection() Selection {
	return Selection{RACol: "ra", DecCol: "dec"}
}

// Stats counts rows read.
type Stats struct {
	Rows     int // data rows read
	Skipped  int // rows with missing or unparsable values
	Rejected int // rows outside a magnitude or color cut
}

// ErrColumn is returned when a named column is not in the header.
var ErrColumn = errors.New("column not found")

// Read reads CSV catalog rows from r and returns positions of rows passing
// the selection.
//
// Rows where a used column is empty, unparsable or not finite are skipped
// and counted, they are not an error.
func Read(r io.Reader, sel Selection) (*dsbin.Points, Stats, error) {
	var st Stats
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			err = errors.New("catalog has no header")
		}
		return nil, st, err
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	names := []string{sel.RACol, sel.DecCol}
	if sel.Mag != "" {
		names = append(names, sel.Mag)
	}
	if sel.Color[0] != "" || sel.Color[1] != "" {
		names = append(names, sel.Color[0], sel.Color[1])
	}
	ix := make([]int, len(names))
	for i, n := range names {
		c, ok := col[strings.ToLower(n)]
		if !ok {
			return nil, st, fmt.Errorf("%w: %q", ErrColumn, n)
		}
		ix[i] = c
	}
	v := make([]float64, len(names))
	p := &dsbin.Points{}
rows:
	for {
		rec, err := cr.Read()
		switch {
		case err == io.EOF:
			return p, st, nil
		case errors.Is(err, csv.ErrFieldCount):
			st.Rows++
			st.Skipped++
			continue
		case err != nil:
			return nil, st, err
		}
		st.Rows++
		for i, c := range ix {
			f, err := strconv.ParseFloat(strings.TrimSpace(rec[c]), 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				st.Skipped++
				continue rows
			}
			v[i] = f
		}
		k := 2
		if sel.Mag != "" {
			if !sel.MagRange.In(v[k]) {
				st.Rejected++
				continue
			}
			k++
		}
		if k < len(v) && !sel.ColorRange.In(v[k]-v[k+1]) {
			st.Rejected++
			continue
		}
		p.RA = append(p.RA, v[0])
		p.Dec = append(p.Dec, v[1])
	}
}

// Known is a known object, a named sky position in degrees.
type Known struct {
	Name    string
	RA, Dec float64
}

// ReadKnown reads a list of known objects.
//
// Each line has a name followed by RA and Dec in decimal degrees, separated
// by white space.  The name is everything before the last two fields and
// may contain spaces.  Empty lines and lines beginning with # are ignored.
func ReadKnown(r io.Reader) ([]Known, error) {
	var kl []Known
	s := bufio.NewScanner(r)
	for ln := 1; s.Scan(); ln++ {
		l := strings.TrimSpace(s.Text())
		if l == "" || l[0] == '#' {
			continue
		}
		f := strings.Fields(l)
		if len(f) < 3 {
			return nil, fmt.Errorf("known object line %d: want name ra dec: %s",
				ln, l)
		}
		ra, err := strconv.ParseFloat(f[len(f)-2], 64)
		if err != nil {
			return nil, fmt.Errorf("known object line %d: %w", ln, err)
		}
		dec, err := strconv.ParseFloat(f[len(f)-1], 64)
		if err != nil {
			return nil, fmt.Errorf("known object line %d: %w", ln, err)
		}
		if dec < -90 || dec > 90 {
			return nil, fmt.Errorf("known object line %d: dec %g out of range",
				ln, dec)
		}
		kl = append(kl, Known{
			Name: strings.Join(f[:len(f)-2], " "),
			RA:   ra,
			Dec:  dec,
		})
	}
	return kl, s.Err()
}
