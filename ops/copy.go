package ops

import (
	"io"
	"log"
	"os"

	"github.com/foldwell/webfontgen/format"
)

// Copy takes the first input file and the first output file — the tree
// shape guarantees a copy[f] vertex has exactly one of each — and copies the
// input's bytes to the output path, creating the output directory first.
// Copying a file onto itself is treated as success, not an error: the
// planner may route a requested output format straight from its matching
// input format without the two paths ever actually diverging on disk.
var Copy = &Operation{Name: "copy", Run: func(inputs, outputs []*format.FontFile, logger *log.Logger) error {
	if len(inputs) == 0 || len(outputs) == 0 {
		return nil
	}
	src, dst := inputs[0].FullPath, outputs[0].FullPath

	if err := ensureFileDir(dst); err != nil {
		return err
	}
	if sameFile(src, dst) {
		return nil
	}

	logger.Printf("copying %s to %s", src, dst)
	return copyFile(src, dst)
}}

// sameFile reports whether src and dst name the same file on disk. It
// returns false (rather than erroring) when either path cannot be stat'd,
// since that simply means they are not (yet) the same file.
func sameFile(src, dst string) bool {
	si, err := os.Stat(src)
	if err != nil {
		return false
	}
	di, err := os.Stat(dst)
	if err != nil {
		return false
	}
	return os.SameFile(si, di)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
