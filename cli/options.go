package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/foldwell/webfontgen/css"
	"github.com/foldwell/webfontgen/format"
)

// Version is reported by -v/--version.
const Version = "1.3.2"

// defaultFormats is the output format list used when -f/--format is absent,
// matching generate_webfonts.py's 'eot,woff2,woff,ttf,svg'.
var defaultFormats = []format.Format{format.EOT, format.WOFF2, format.WOFF, format.TTF, format.SVG}

// Options is the parsed, validated command line.
type Options struct {
	Inputs     []*format.FontFile
	OutputDir  string
	Formats    []css.FormatRequest
	CSSPath    string
	HasCSS     bool
	Prefix     string
	FontFamily string
	Verbose    bool
	Dot        bool

	ShowVersion bool
	ShowHelp    bool
}

// ParseArgs parses args (not including the program name) into an Options.
// Flag errors are reported through the returned error. -h/--help and
// -v/--version are ordinary boolean flags: they set ShowHelp/ShowVersion on
// the returned Options with a nil error, and the input files and output
// directory are then not checked.
func ParseArgs(args []string, stderr io.Writer) (*Options, error) {
	fs := flag.NewFlagSet("webfontgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { writeUsage(stderr) }

	var output, formatsCSV, cssPath, prefix, fontFamily string
	var verbose, dot, showVersion, showHelp bool

	fs.StringVar(&output, "o", "", "destination directory for converted files")
	fs.StringVar(&output, "output", "", "destination directory for converted files")
	fs.StringVar(&formatsCSV, "f", "", "comma-separated list of output formats")
	fs.StringVar(&formatsCSV, "format", "", "comma-separated list of output formats")
	fs.StringVar(&cssPath, "c", "", "name of generated CSS file, '-' for stdout")
	fs.StringVar(&cssPath, "css", "", "name of generated CSS file, '-' for stdout")
	fs.StringVar(&prefix, "p", "", "prefix of file paths in the generated CSS")
	fs.StringVar(&prefix, "prefix", "", "prefix of file paths in the generated CSS")
	fs.StringVar(&fontFamily, "font-family", "", "font-family value in the generated CSS")
	fs.BoolVar(&verbose, "verbose", false, "show verbose output while running")
	fs.BoolVar(&dot, "dot", false, "print the conversion graph as Graphviz dot instead of converting")
	fs.BoolVar(&showVersion, "v", false, "display version")
	fs.BoolVar(&showVersion, "version", false, "display version")
	fs.BoolVar(&showHelp, "h", false, "show this help message")
	fs.BoolVar(&showHelp, "help", false, "show this help message")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := &Options{
		OutputDir:   output,
		CSSPath:     cssPath,
		HasCSS:      cssWasSet(fs),
		Prefix:      prefix,
		FontFamily:  fontFamily,
		Verbose:     verbose,
		Dot:         dot,
		ShowVersion: showVersion,
		ShowHelp:    showHelp,
	}

	if showVersion || showHelp {
		return opts, nil
	}

	inputPaths := fs.Args()
	if len(inputPaths) == 0 {
		return nil, fmt.Errorf("%w: no input files given", ErrMissingInputs)
	}
	if output == "" {
		return nil, fmt.Errorf("%w: no output directory given (-o/--output)", ErrMissingInputs)
	}

	inputs := make([]*format.FontFile, len(inputPaths))
	for i, path := range inputPaths {
		f, err := inputFontFile(path)
		if err != nil {
			return nil, err
		}
		inputs[i] = f
	}
	opts.Inputs = inputs

	if formatsCSV == "" {
		opts.Formats = make([]css.FormatRequest, len(defaultFormats))
		for i, f := range defaultFormats {
			opts.Formats[i] = css.FormatRequest{Format: f}
		}
	} else {
		formats, err := parseFormatList(formatsCSV)
		if err != nil {
			return nil, err
		}
		opts.Formats = formats
	}

	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix(output)
	}
	if opts.FontFamily == "" {
		base := filepath.Base(inputPaths[0])
		opts.FontFamily = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return opts, nil
}

// cssWasSet exists only so HasCSS can distinguish "no --css flag" from
// "--css ''" (used nowhere in practice, but keeps the zero-value ambiguity
// from silently becoming a bug if it ever is).
func cssWasSet(fs *flag.FlagSet) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "css" || f.Name == "c" {
			set = true
		}
	})
	return set
}

// inputFontFile infers a FontFile's format from path's extension, per
// generate_webfonts.py's os.path.splitext(input_file_name) handling.
func inputFontFile(path string) (*format.FontFile, error) {
	ext := filepath.Ext(path)
	tag := strings.TrimPrefix(ext, ".")
	f, err := format.Parse(tag)
	if err != nil {
		if tag == "" {
			return nil, fmt.Errorf("%w: cannot determine format of %q", format.ErrUnrecognizedFormat, path)
		}
		return nil, fmt.Errorf("%w: %q", format.ErrUnrecognizedFormat, tag)
	}
	stem := strings.TrimSuffix(path, ext)
	return format.New(stem, f), nil
}

// parseFormatList splits a comma-separated -f/--format value into ordered
// FormatRequests, recognizing a ":inline" suffix on any entry.
func parseFormatList(csv string) ([]css.FormatRequest, error) {
	parts := strings.Split(csv, ",")
	out := make([]css.FormatRequest, len(parts))
	for i, part := range parts {
		tag, inline := strings.CutSuffix(part, ":inline")
		f, err := format.Parse(tag)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", format.ErrUnrecognizedFormat, tag)
		}
		out[i] = css.FormatRequest{Format: f, Inline: inline}
	}
	return out, nil
}

// defaultPrefix derives the CSS URL prefix from the output directory,
// matching generate_webfonts.py: split on the OS separator, drop a
// trailing empty component, then rejoin with '/' and a trailing slash.
func defaultPrefix(outputDir string) string {
	parts := strings.Split(outputDir, string(filepath.Separator))
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) > 0 {
		parts = append(parts, "")
	}
	return strings.Join(parts, "/")
}
