package ops

import (
	"bytes"
	"fmt"
	"log"
	"os/exec"

	"github.com/foldwell/webfontgen/format"
)

// Woff2Compress takes the first input file (always an output_file[ttf]
// already materialized at its final output-directory path) and runs
// woff2_compress on it. The tool writes its result next to the input with a
// .woff2 extension by its own convention, which is exactly where the
// registry's output_file[woff2] is expected to live.
var Woff2Compress = &Operation{Name: "woff2_compress", Run: woff2Run("woff2_compress", "woff2")}

// Woff2Decompress takes the first input file (always an output_file[woff2])
// and runs woff2_decompress on it, which writes a .ttf file next to it.
var Woff2Decompress = &Operation{Name: "woff2_decompress", Run: woff2Run("woff2_decompress", "ttf")}

// woff2Run builds the Run function shared by Woff2Compress and
// Woff2Decompress: both take a single input, run a single-argument tool,
// and expect the tool to have produced the declared outputs as a
// side-effect of its own file-naming convention.
func woff2Run(tool, verb string) Run {
	return func(inputs, outputs []*format.FontFile, logger *log.Logger) error {
		if len(inputs) == 0 {
			return nil
		}
		input := inputs[0]

		logger.Printf("using %s to convert %s to %s", tool, input.FullPath, verb)

		if err := ensureFileDir(input.FullPath); err != nil {
			return err
		}

		cmd := exec.Command(tool, input.FullPath)
		var stderr bytes.Buffer
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%w: %s conversion failed:\noutput from %s:\n%s", ErrToolFailure, tool, tool, indent(stderr.String(), "  "))
		}

		if missing := missingOutputs(outputs); len(missing) > 0 {
			return missingOutputsError(missing, stderr.String())
		}

		return nil
	}
}
