package format

import "path/filepath"

// FontFile is a handle to a font file on disk in a particular format.
//
// Invariant: FullPath == Stem + "." + string(Format), joined on a
// platform-appropriate separator. Stem is the path without its extension; it
// is what MovedAndConvertedTo uses to derive sibling output files, and its
// basename is the identifier FontForge embeds into generated SVG fonts.
type FontFile struct {
	FullPath string
	Stem     string
	Format   Format
}

// New constructs a FontFile whose FullPath is derived from stem and format,
// maintaining the package invariant.
func New(stem string, f Format) *FontFile {
	return &FontFile{FullPath: stem + "." + string(f), Stem: stem, Format: f}
}

// MovedAndConvertedTo derives a new FontFile located in dir, keeping this
// file's base name but changing its format. The returned file's stem is
// dir joined with the basename of this file's stem; its full path appends
// "." + format.
func (f *FontFile) MovedAndConvertedTo(dir string, newFormat Format) *FontFile {
	stem := filepath.Join(dir, filepath.Base(f.Stem))
	return New(stem, newFormat)
}

// Basename returns the base name of FullPath, e.g. "a.ttf" for
// "/out/a.ttf".
func (f *FontFile) Basename() string {
	return filepath.Base(f.FullPath)
}

// SVGID returns the identifier FontForge embeds when generating an SVG font:
// the basename of the stem, with no extension.
func (f *FontFile) SVGID() string {
	return filepath.Base(f.Stem)
}
