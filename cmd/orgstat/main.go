// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
)

// ExitError is the exit code for bad flags, unknown variables and
// insufficient data.
const ExitError = 2

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitError)
	}
}
