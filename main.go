// Public domain.

package main

import "github.com/soniakeys/dwarfscan/internal/dsprog"

func main() {
	dsprog.Main()
}
