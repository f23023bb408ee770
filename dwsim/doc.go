/*
Command dwsim writes a synthetic star catalog for dwarfscan.

Usage

  dwsim [options]

Options:

  -ra=10          field center RA, degrees
  -dec=-5         field center Dec, degrees
  -size=1         field size, degrees
  -n=10000        number of background stars
  -cluster=ra,dec,radius,n
                  inject n stars uniformly within radius arc minutes of
                  ra, dec.  May be repeated.
  -seed=1         random seed
  -o=<file>       output file.  Default is standard output.
  -v              display version and copyright

Output

Output is CSV with a header row and columns ra, dec, g, r.  Background
stars are uniform in RA and Dec over the field.  The field is size degrees
on a side in both RA and Dec, so it is narrower on the sky away from the
equator.  Cluster stars are uniform over a disk on the sky.  Magnitudes g
are uniform from 18 to 24.  Colors g-r are uniform from 0.1 to 1.6 for
background stars and from 0.2 to 0.6 for cluster stars.

Output is repeatable for a given seed.

Example

  dwsim -cluster=10,-5,2,200 -o sim.csv
  dwarfscan sim.csv
*/
package main
