package css

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/foldwell/webfontgen/format"
)

// FormatRequest is one entry of the user's ordered (format, inline) list
// driving src: entry order in the emitted block — independent of, and not
// derived from, any ordering the planner used internally.
type FormatRequest struct {
	Format format.Format
	Inline bool
}

var mediaTypes = map[format.Format]string{
	format.EOT:   "application/vnd.ms-fontobject",
	format.OTF:   "application/font-sfnt",
	format.SVG:   "image/svg+xml",
	format.TTF:   "application/font-sfnt",
	format.WOFF:  "application/font-woff",
	format.WOFF2: "application/font-woff2",
}

// cssFormatToken returns the CSS format('...') token for f: eot and ttf get
// their long-form names, every other format is its own tag.
func cssFormatToken(f format.Format) string {
	switch f {
	case format.EOT:
		return "embedded-opentype"
	case format.TTF:
		return "truetype"
	default:
		return string(f)
	}
}

// fileURL builds the non-inline url(...) contents for font_file: prefix
// joined with the file's percent-plus-encoded basename, CSS-url-escaped.
func fileURL(prefix string, file *format.FontFile) string {
	return escapeURL(prefix + quotePlus(file.Basename()))
}

// writeDataURL writes a data: URL embedding file's contents base64-encoded,
// reading the bytes fresh from disk.
func writeDataURL(w io.Writer, f format.Format, file *format.FontFile) error {
	data, err := os.ReadFile(file.FullPath)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data:%s;base64,%s", mediaTypes[f], base64.StdEncoding.EncodeToString(data))
	return err
}

// Generate writes a single @font-face block to w, for the ordered
// (format, inline) list in formats, resolving each format's FontFile from
// files. prefix is prepended to non-inline URLs; fontFamily is the
// font-family value, CSS-string-escaped.
//
// If formats contains (eot, false), it is emitted first regardless of its
// position in the list, as two src: lines: a bare url(...) for IE's old
// format-detection bug, then a second src: line carrying the
// format('embedded-opentype') token with the ?#iefix suffix old IE needs
// to pick the right one. Every other entry is then joined by ",\n" plus
// seven spaces of continuation indent, matching the original generator's
// column alignment under "  src: ".
func Generate(w io.Writer, formats []FormatRequest, files map[format.Format]*format.FontFile, prefix, fontFamily string) error {
	if _, err := fmt.Fprintf(w, "@font-face {\n  font-family: '%s';\n  src: ", escapeString(fontFamily)); err != nil {
		return err
	}

	remaining := make([]FormatRequest, 0, len(formats))
	first := true
	for _, fr := range formats {
		if fr.Format == format.EOT && !fr.Inline {
			continue
		}
		remaining = append(remaining, fr)
	}

	if len(remaining) != len(formats) {
		eotURL := fileURL(prefix, files[format.EOT])
		if _, err := fmt.Fprintf(w, "url(%s);\n  src: url(%s?#iefix) format('embedded-opentype')", eotURL, eotURL); err != nil {
			return err
		}
		first = false
	}

	for _, fr := range remaining {
		if first {
			first = false
		} else {
			if _, err := io.WriteString(w, ",\n       "); err != nil {
				return err
			}
		}

		file := files[fr.Format]
		if _, err := io.WriteString(w, "url("); err != nil {
			return err
		}
		if fr.Inline {
			if err := writeDataURL(w, fr.Format, file); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, fileURL(prefix, file)); err != nil {
				return err
			}
		}
		if fr.Format == format.SVG {
			if _, err := fmt.Fprintf(w, "#%s", escapeURL(quotePath(file.SVGID()))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, ") format('%s')", cssFormatToken(fr.Format)); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, ";\n}\n")
	return err
}
