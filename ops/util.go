package ops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/foldwell/webfontgen/format"
)

// ensureFileDir makes sure the directory containing path exists, creating it
// (and any parents) if necessary.
func ensureFileDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// indent prefixes every line of s with tab, matching the teacher corpus's
// convention of indenting captured subprocess output inside error messages.
func indent(s, tab string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = tab + line
	}
	return strings.Join(lines, "\n")
}

// missingOutputs returns the subset of outputs whose FullPath does not exist
// on disk, preserving order.
func missingOutputs(outputs []*format.FontFile) []*format.FontFile {
	var missing []*format.FontFile
	for _, f := range outputs {
		if _, err := os.Stat(f.FullPath); err != nil {
			missing = append(missing, f)
		}
	}
	return missing
}

func missingOutputsError(missing []*format.FontFile, toolOutput string) error {
	paths := make([]string, len(missing))
	for i, f := range missing {
		paths[i] = f.FullPath
	}
	return fmt.Errorf("%w: %s\noutput from tool:\n%s", ErrMissingOutputs, strings.Join(paths, ", "), indent(toolOutput, "  "))
}
