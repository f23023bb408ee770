// Public domain.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/soniakeys/dwarfscan/internal/dscat"
	"github.com/soniakeys/meeus/v3/angle"
	"github.com/soniakeys/unit"
)

const versionString = "dwscore version 0.1"
const copyrightString = "Public domain."

var col int
var ignored int

func main() {
	// parse command line
	flag.Usage = func() {
		os.Stderr.WriteString(
			"Usage: dwscore [options] <dwarfscan-output> <truth> [radius]\n")
		flag.PrintDefaults()
		os.Stderr.WriteString(`
For full documentation:
   go doc github.com/soniakeys/dwarfscan/dwscore
`)
	}
	flag.IntVar(&col, "c", 4, "column containing RA, Dec follows")
	vers := flag.Bool("v", false, "display version and copyright")
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if n := flag.NArg(); n < 2 || n > 3 {
		flag.Usage()
		os.Exit(1)
	}
	// parse match radius
	radius := 3.
	if flag.NArg() == 3 {
		var err error
		radius, err = strconv.ParseFloat(flag.Arg(2), 64)
		if err != nil || !(radius > 0) {
			log.Fatalln("Bad radius:", flag.Arg(2))
		}
	}
	// read detections (arg 1)
	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalln("dwarfscan output:", err)
	}
	det, err := readPositions(f)
	f.Close()
	if err != nil {
		log.Fatalln("dwarfscan output:", err)
	}
	// read truth (arg 2)
	if f, err = os.Open(flag.Arg(1)); err != nil {
		log.Fatalln("truth file:", err)
	}
	truth, err := dscat.ReadKnown(f)
	f.Close()
	if err != nil {
		log.Fatalln("truth file:", err)
	}
	s := score(det, truth, unit.AngleFromMin(radius))
	// report statistics
	fmt.Println("\nDetections file:   ", flag.Arg(0))
	fmt.Println("Truth file:        ", flag.Arg(1))
	fmt.Println("Detections:        ", len(det))
	fmt.Println("Truth objects:     ", len(truth))
	if ignored != 0 {
		fmt.Println("Lines ignored:     ", ignored)
	}
	fmt.Printf("Match radius:       %g'\n", radius)
	fmt.Println()
	fmt.Printf("Detections matched    %7d\n", s.tp)
	fmt.Printf("Detections spurious   %7d\n", s.fp)
	fmt.Printf("Truth found           %7d\n", s.found)
	fmt.Printf("Truth missed          %7d\n", len(truth)-s.found)
	fmt.Println()
	fmt.Printf("Completeness: %.2f\n", s.completeness())
	fmt.Printf("Purity:       %.2f\n", s.purity())
}

type pos struct{ ra, dec unit.Angle }

// readPositions reads RA and Dec in decimal degrees from columns col and
// col+1 of each line.  Lines without numeric values there are ignored.
func readPositions(r io.Reader) ([]pos, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var p []pos
	for _, line := range strings.Split(string(b), "\n") {
		f := strings.Fields(line)
		if len(f) <= col+1 {
			ignored++
			continue
		}
		ra, err1 := strconv.ParseFloat(f[col], 64)
		dec, err2 := strconv.ParseFloat(f[col+1], 64)
		if err1 != nil || err2 != nil {
			ignored++
			continue
		}
		p = append(p, pos{unit.AngleFromDeg(ra), unit.AngleFromDeg(dec)})
	}
	return p, nil
}

type scores struct {
	tp, fp int // detections matching and not matching a truth object
	found  int // truth objects with at least one matching detection
	nDet   int
	nTruth int
}

func (s scores) completeness() float64 {
	if s.nTruth == 0 {
		return 0
	}
	return float64(s.found) / float64(s.nTruth)
}

func (s scores) purity() float64 {
	if s.nDet == 0 {
		return 0
	}
	return float64(s.tp) / float64(s.nDet)
}

func score(det []pos, truth []dscat.Known, radius unit.Angle) scores {
	s := scores{nDet: len(det), nTruth: len(truth)}
	found := make([]bool, len(truth))
	for _, d := range det {
		matched := false
		for i, k := range truth {
			sep := angle.Sep(d.ra, d.dec,
				unit.AngleFromDeg(k.RA), unit.AngleFromDeg(k.Dec))
			if sep <= radius {
				matched = true
				found[i] = true
			}
		}
		if matched {
			s.tp++
		} else {
			s.fp++
		}
	}
	for _, f := range found {
		if f {
			s.found++
		}
	}
	return s
}
