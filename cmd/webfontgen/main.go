// Command webfontgen converts a set of input font files into a requested
// set of web font formats, optionally emitting a CSS @font-face stylesheet
// referencing the results.
package main

import (
	"os"

	"github.com/foldwell/webfontgen/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
