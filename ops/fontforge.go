package ops

import (
	"bytes"
	"fmt"
	"log"
	"os/exec"
	"strings"

	"github.com/foldwell/webfontgen/format"
)

// FontForge takes the first input file and passes every output path to a
// single FontForge invocation, batching multiple produced formats (e.g. ttf
// and svg from one otf input) into one script run. It flattens CID-keyed
// fonts (otf sources with multiple sub-fonts) into a single font before
// generating, matching the upstream workaround for
// https://github.com/bdusell/webfont-generator/issues/20.
var FontForge = &Operation{Name: "fontforge", Run: func(inputs, outputs []*format.FontFile, logger *log.Logger) error {
	if len(inputs) == 0 {
		return nil
	}
	input := inputs[0]
	outPaths := make([]string, len(outputs))
	for i, f := range outputs {
		outPaths[i] = f.FullPath
	}

	logger.Printf("using fontforge to convert %s to %s", input.FullPath, strings.Join(outPaths, ", "))

	if len(outputs) == 0 {
		return nil
	}
	if err := ensureFileDir(outputs[0].FullPath); err != nil {
		return err
	}

	var script bytes.Buffer
	fmt.Fprintf(&script, "Open(\"%s\")\n", fontForgeEscape(input.FullPath))
	script.WriteString("CIDFlatten()\n")
	for _, path := range outPaths {
		fmt.Fprintf(&script, "Generate(\"%s\")\n", fontForgeEscape(path))
	}

	cmd := exec.Command("fontforge", "-lang=ff", "-script", "-")
	cmd.Stdin = &script
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: fontforge conversion failed:\noutput from fontforge:\n%s", ErrToolFailure, indent(stderr.String(), "  "))
	}

	if missing := missingOutputs(outputs); len(missing) > 0 {
		return missingOutputsError(missing, stderr.String())
	}

	return nil
}}

// fontForgeEscape escapes double quotes for embedding a path literal inside
// a FontForge scripting-language string.
func fontForgeEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
