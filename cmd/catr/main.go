// catr - concatenate and number lines
//
// catr copies each FILE (or standard input) to standard output, optionally
// numbering all lines or only the non-blank ones.
package main

import (
	"os"

	"github.com/ccollicutt/catr/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
