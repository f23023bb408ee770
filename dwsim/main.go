// Public domain.

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/soniakeys/dwarfscan/internal/dssim"
	"github.com/soniakeys/exit"
)

const versionString = "dwsim version 0.1 Go source."
const copyrightString = "Public domain."

// clusterList implements flag.Value for repeated -cluster options.
type clusterList []dssim.Cluster

func (cl *clusterList) String() string {
	s := make([]string, len(*cl))
	for i, c := range *cl {
		s[i] = fmt.Sprintf("%g,%g,%g,%d", c.RA, c.Dec, c.Radius, c.N)
	}
	return strings.Join(s, " ")
}

func (cl *clusterList) Set(s string) error {
	c, err := parseCluster(s)
	if err != nil {
		return err
	}
	*cl = append(*cl, c)
	return nil
}

// parseCluster parses ra,dec,radius,n.
func parseCluster(s string) (c dssim.Cluster, err error) {
	f := strings.Split(s, ",")
	if len(f) != 4 {
		return c, errors.New("want ra,dec,radius,n")
	}
	var v [3]float64
	for i := range v {
		if v[i], err = strconv.ParseFloat(strings.TrimSpace(f[i]), 64); err != nil {
			return
		}
	}
	n, err := strconv.Atoi(strings.TrimSpace(f[3]))
	switch {
	case err != nil:
		return c, err
	case n < 0:
		return c, errors.New("negative star count")
	case v[2] <= 0:
		return c, errors.New("radius must be positive")
	case v[1] < -90 || v[1] > 90:
		return c, errors.New("dec out of range")
	}
	return dssim.Cluster{RA: v[0], Dec: v[1], Radius: v[2], N: n}, nil
}

func main() {
	defer exit.Handler()

	var clusters clusterList
	ra := flag.Float64("ra", 10, "field center RA, degrees")
	dec := flag.Float64("dec", -5, "field center Dec, degrees")
	size := flag.Float64("size", 1, "field size, degrees")
	n := flag.Int("n", 10000, "number of background stars")
	seed := flag.Uint64("seed", 1, "random seed")
	out := flag.String("o", "", "output file, default stdout")
	vers := flag.Bool("v", false, "display version and copyright")
	flag.Var(&clusters, "cluster", "cluster ra,dec,radius_arcmin,n (repeatable)")
	flag.Usage = func() {
		os.Stderr.WriteString("Usage: dwsim [options]\n")
		flag.PrintDefaults()
		os.Stderr.WriteString(`
For full documentation:
   go doc github.com/soniakeys/dwarfscan/dwsim
`)
	}
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() > 0 || *n < 0 || !(*size > 0) {
		flag.Usage()
		os.Exit(1)
	}

	f := dssim.Box(*ra, *dec, *size, *n)
	f.Clusters = clusters
	stars := dssim.Generate(f, dssim.NewRand(*seed))

	w := os.Stdout
	if *out > "" {
		var err error
		if w, err = os.Create(*out); err != nil {
			exit.Log(err)
		}
		defer w.Close()
	}
	bw := bufio.NewWriter(w)
	if err := dssim.WriteCSV(bw, stars); err != nil {
		exit.Log(err)
	}
	if err := bw.Flush(); err != nil {
		exit.Log(err)
	}
}
