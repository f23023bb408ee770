/*
Command dwscore measures how well dwarfscan recovers a list of known
objects.

  Usage: dwscore [options] <dwarfscan-output> <truth> [radius]
    -c=4: column containing RA, Dec follows
    -v=false: display version and copyright

The command line argument <dwarfscan-output> is a file containing captured
output of dwarfscan run with the config keyword "decimal", so that RA and
Dec are output in decimal degrees.  Headings can be left on.  dwscore
ignores lines where it does not find numeric values in the RA and Dec
columns.

<truth> is a file of known objects in the same format as the dwarfscan
known object file, one object per line with a name followed by RA and Dec
in decimal degrees.  A convenient source of test data is the command
dwsim, which injects clusters at chosen positions.

The optional radius argument is the match radius in arc minutes.  The
default is 3.

A detection within the match radius of any truth object is counted as
matched, otherwise as spurious.  A truth object with at least one
detection within the match radius is counted as found, otherwise as
missed.  Completeness is the fraction of truth objects found.  Purity is
the fraction of detections matched.

Example

  dwsim -cluster=10,-5,2,200 -cluster=10.3,-4.7,1,60 -o sim.csv
  printf "c1 10 -5\nc2 10.3 -4.7\n" > truth.txt
  echo decimal > dwarfscan.config
  dwarfscan sim.csv > sim.out
  dwscore sim.out truth.txt
*/
package main
