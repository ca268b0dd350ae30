// SPDX-License-Identifier: MIT

// Command lvalg evaluates vector and matrix operations from the command line
// under a chosen number representation.
//
// Usage:
//
//	lvalg det 1 2 3 4
//	lvalg --repr decimal --precision 50 inverse 2 1 1 3
//	lvalg cross 1 0 0 --with 0,1,0
//	lvalg --config lvalg.yaml solve 2 1 1 3 --with 3,5
package main

import (
	"os"
)

func main() {
	// cobra already printed the error.
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
