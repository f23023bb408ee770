// Public domain.

package dsprog

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/soniakeys/dwarfscan/internal/dscat"
	"github.com/soniakeys/dwarfscan/internal/dsfilter"
	"github.com/soniakeys/exit"
)

const versionString = "dwarfscan version 0.1 Go source."
const copyrightString = "Public domain."

// default file names
const (
	configFile = "dwarfscan.config"
	knownFile  = "dwarfscan.known"
)

func Main() {
	defer exit.Handler()

	// these functions terminate on error
	cl := parseCommandLine()
	opt := readConfig(cl)
	known := readKnown(cl)

	// open catalog
	var f *os.File
	if cl.fnCat == "-" {
		f = os.Stdin
		cl.fnCat = "input stream"
	} else {
		var err error
		f, err = os.Open(cl.fnCat)
		if err != nil {
			exit.Log(err)
		}
		defer f.Close()
	}
	if err := scan(os.Stdout, f, opt, known); err != nil {
		log.Println("Catalog:", cl.fnCat)
		exit.Log(err)
	}
}

// scan reads a catalog, filters it, and writes the peak table to w.
//
// Headings are written only after the field is successfully filtered so
// that an error leaves no partial table.
func scan(w io.Writer, cat io.Reader, opt *options, known []dscat.Known) error {
	p, st, err := dscat.Read(cat, opt.sel)
	if err != nil {
		return err
	}
	r, err := dsfilter.Detect(p.RA, p.Dec, opt.fwhmSmall, opt.fwhmBig)
	if err != nil {
		return err
	}
	th, median, std := dsfilter.Threshold(r.Clipped, opt.nsigma)
	peaks, err := dsfilter.FindPeaks(r.Clipped, r.Extent, th, opt.box)
	if err != nil {
		return err
	}
	if opt.headings {
		nx, ny := r.Hist.Dims()
		fmt.Fprintln(w, versionString)
		fmt.Fprintf(w, "Field RA %.4f to %.4f, Dec %+.4f to %+.4f, %d x %d bins.\n",
			r.Extent.RAMin, r.Extent.RAMax, r.Extent.DecMin, r.Extent.DecMax,
			nx, ny)
		fmt.Fprintf(w, "Points %d used, %d skipped, %d rejected.\n",
			p.Len(), st.Skipped, st.Rejected)
		fmt.Fprintf(w, "Filter %g' - %g', sigma %.4f.\n",
			opt.fwhmSmall, opt.fwhmBig, r.Sigma)
		fmt.Fprintf(w, "Threshold %.4f = median %.4f + %g x %.4f.\n",
			th, median, opt.nsigma, std)
		printHeadings(w, &opt.outputOptions)
	}
	for i, pk := range peaks {
		fmt.Fprintln(w, opt.formatPeak(i+1, pk, known))
	}
	return nil
}

type commandLine struct {
	dc    string // config file
	dk    string // known object file
	fnCat string // catalog
}

func parseCommandLine() *commandLine {
	var cl commandLine
	dh := flag.Bool("h", false, "")
	dv := flag.Bool("v", false, "")
	flag.StringVar(&cl.dc, "c", "", "")
	flag.StringVar(&cl.dk, "k", "", "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: dwarfscan [options] <catalog.csv>   scan catalog file
       dwarfscan [options] -               scan catalog from stdin
       dwarfscan -h                        display help and quick reference
       dwarfscan -v                        display version and copyright

Options:
       -c <config-file>
       -k <known-object-file>
`)
	}
	flag.Parse()
	switch {
	case *dh:
		printHelp()
		os.Exit(0)
	case *dv:
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	case flag.NArg() != 1:
		flag.Usage()
		os.Exit(1)
	}
	cl.fnCat = flag.Arg(0)
	return &cl
}

// readConfig reads the config file named on the command line or the
// default config file if present.
func readConfig(cl *commandLine) *options {
	fn := cl.dc
	if fn == "" {
		fn = configFile
	}
	f, err := os.Open(fn)
	if err != nil {
		if cl.dc == "" {
			return defaultOptions()
		}
		exit.Log(err)
	}
	defer f.Close()
	opt, err := parseConfig(f)
	if err != nil {
		exit.Log(err)
	}
	return opt
}

// readKnown reads the known object file named on the command line or the
// default known object file if present.
func readKnown(cl *commandLine) []dscat.Known {
	fn := cl.dk
	if fn == "" {
		fn = knownFile
	}
	f, err := os.Open(fn)
	if err != nil {
		if cl.dk == "" {
			return nil
		}
		exit.Log(err)
	}
	defer f.Close()
	kl, err := dscat.ReadKnown(f)
	if err != nil {
		exit.Log(err)
	}
	return kl
}

func printHelp() {
	fmt.Println(`
Dwarfscan searches a star catalog for compact overdensities such as dwarf
galaxies and star clusters.  Input is a CSV catalog with a header row and
at least columns for RA and Dec in decimal degrees.  Output is a list of
candidate peaks ranked by filtered density, with the nearest known object
if one is within the match radius.

Config file keywords:
   headings
   noheadings
   sexagesimal
   decimal
   fwhmsmall=<arc min>
   fwhmbig=<arc min>
   box=<bins>
   nsigma=<n>
   match=<arc min>
   racol=<column>
   deccol=<column>
   mag=<column>
   magmin=<mag>
   magmax=<mag>
   color=<column>-<column>
   colormin=<mag>
   colormax=<mag>

Known object file lines:
   <name> <RA deg> <Dec deg>

For full documentation:
   go doc github.com/soniakeys/dwarfscan`)
}
