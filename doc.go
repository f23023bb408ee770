/*
Command dwarfscan searches a star catalog for compact overdensities such as
dwarf galaxies and star clusters.

Contents

Version 0.1

  Program overview
  Installing
  Command line usage
  File formats
  Algorithm outline


Program overview

Input is a CSV catalog of stars with RA and Dec in decimal degrees, the
result of a query on a survey archive for example.  Output is a list of
candidate overdensities ranked by filtered density.  Candidates near known
objects are labeled with the name of the nearest one.

Sample run:

The companion program dwsim generates synthetic catalogs.  This makes a one
degree field of 10000 background stars with 200 more stars within 2' of
RA 10, Dec -5,

  dwsim -cluster=10,-5,2,200 -o sim.csv

Then "dwarfscan sim.csv" gives output like,

  dwarfscan version 0.1 Go source.
  Field RA 9.5001 to 10.5000, Dec -5.4999 to -4.5001, 60 x 60 bins.
  Points 10200 used, 0 skipped, 0 rejected.
  Filter 2' - 20', sigma 0.7023.
  Threshold 6.7120 = median 0.0000 + 10 x 0.6712.
  Rank    X    Y    Value  RA            Dec           Known
     1   29   29   13.412   0ʰ40ᵐ00ˢ.29  -5°00′18″.1

One candidate is found, within a bin of the injected cluster.


Installing

You need Go installed.  Then

  go install github.com/soniakeys/dwarfscan@latest
  go install github.com/soniakeys/dwarfscan/dwsim@latest
  go install github.com/soniakeys/dwarfscan/dwscore@latest

installs dwarfscan and the companion programs dwsim and dwscore.


Command line usage

Invoking the program without command line arguments (or with invalid
arguments) shows this usage prompt.

  Usage: dwarfscan [options] <catalog.csv>   scan catalog file
         dwarfscan [options] -               scan catalog from stdin
         dwarfscan -h                        display help and quick reference
         dwarfscan -v                        display version and copyright

  Options:
         -c <config-file>
         -k <known-object-file>

The help information lists a quick reference to keywords allowed in the
configuration file.

Without -c, dwarfscan reads dwarfscan.config in the current directory if it
exists.  Without -k, it reads dwarfscan.known in the current directory if
it exists.  A file named with -c or -k is required to exist.


File formats

The catalog is CSV with a header row naming the columns.  Column names are
matched without regard to case.  Lines beginning with # are ignored.  By
default RA and Dec are read from columns named ra and dec.  Other columns
are ignored unless named in the configuration file for a magnitude or
color cut.  Rows with an empty or non-numeric value in a column used are
skipped and counted.  Rows outside a magnitude or color cut are rejected
and counted.

The known object file lists one object per line, a name followed by RA and
Dec in decimal degrees, separated by white space.  The name may contain
spaces.  Empty lines and lines beginning with # are ignored.

  # name          RA         Dec
  Draco           260.0517   57.9153
  Ursa Minor      227.2854   67.2225

dwarfscan.config, the optional configuration file, is a text file with a
simple format.  Empty lines and lines beginning with # are ignored.  Other
lines contain a keyword or an assignment.

Allowable keywords:

   headings
   noheadings
   sexagesimal
   decimal

Headings can be turned off.  RA and Dec are output in sexagesimal by
default or in decimal degrees with the keyword decimal.

Assignments have the form name=value.  White space is optional.

   fwhmsmall=2     FWHM of the small Gaussian, arc minutes
   fwhmbig=20      FWHM of the big Gaussian, arc minutes
   box=4           peak separation in bins, default 2 x fwhmsmall
   nsigma=10       threshold in standard deviations above the median
   match=5         known object match radius, arc minutes
   racol=ra        RA column name
   deccol=dec      Dec column name
   mag=g           magnitude column for a magnitude cut
   magmin=18       minimum magnitude
   magmax=23.5     maximum magnitude
   color=g-r       two magnitude columns for a color cut
   colormin=0      minimum color
   colormax=1      maximum color

Magnitude and color limits are inclusive.  A limit left unspecified is not
applied.

Example:

  # blue stars brighter than 23.5, results for dwscore
  mag=g
  magmax=23.5
  color=g-r
  colormin=0
  colormax=1
  decimal


Algorithm outline

1.  Stars passing the cuts are binned in a two dimensional histogram of
1' square bins.  RA bins are scaled by the cosine of the mean declination
of the field so that bins are approximately square on the sky.

2.  The histogram is smoothed with two Gaussian kernels, a small one
matched to the expected size of an object and a big one tracking the
background.  Smoothing is separable, and at the field edges values are
reflected.

3.  The difference, small minus big, is an estimate of local excess
density.  Values below the mean of the difference are raised to the mean.

4.  A threshold is computed as the sigma clipped median of the field plus
nsigma times its standard deviation.

5.  Peaks are local maxima above the threshold.  They are ranked by value
and a peak within box bins of a higher ranked peak is dropped.

6.  Each peak is converted from bin indexes to RA and Dec at the lower
corner of its bin and compared with the known object list.

-------------
Public domain.
*/
package main
