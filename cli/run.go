package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/foldwell/webfontgen/css"
	"github.com/foldwell/webfontgen/executor"
	"github.com/foldwell/webfontgen/format"
	"github.com/foldwell/webfontgen/planner"
	"github.com/foldwell/webfontgen/registry"
)

// Run is the whole CLI: parse args, build and execute a plan (or render a
// --dot graph), optionally emit CSS, and return the process exit code.
// Output goes through stdout/stderr rather than the real os.Stdout/Stderr
// so callers (including tests) can capture it.
func Run(args []string, stdout, stderr io.Writer) int {
	opts, err := ParseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		writeUsage(stderr)
		return 1
	}

	if opts.ShowHelp {
		writeUsage(stdout)
		return 0
	}
	if opts.ShowVersion {
		fmt.Fprintln(stdout, Version)
		return 0
	}

	logWriter := io.Writer(io.Discard)
	if opts.Verbose {
		logWriter = stderr
	}
	logger := log.New(logWriter, "", 0)

	if opts.Dot {
		built := registry.Build(opts.Inputs, opts.OutputDir)
		if err := writeDot(stdout, built.Source); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	needed := neededOutputFormats(opts.Inputs, opts.Formats)
	result, err := planner.Plan(opts.Inputs, opts.OutputDir, needed)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if _, err := executor.Run(result.Root, logger); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if opts.HasCSS {
		if err := writeCSS(opts, result, stdout); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	return 0
}

// neededOutputFormats reduces the user's ordered (format, inline) requests
// to the deduplicated set of formats the planner actually has to produce:
// every non-inline entry, plus inline entries whose format isn't already
// satisfied by one of the original input files (inlining still needs bytes
// on disk somewhere, but not a freshly produced file if an input already
// has that format). Mirrors generate_webfonts.py's output_formats
// comprehension.
func neededOutputFormats(inputs []*format.FontFile, formats []css.FormatRequest) []format.Format {
	present := make(map[format.Format]bool, len(inputs))
	for _, f := range inputs {
		present[f.Format] = true
	}

	seen := make(map[format.Format]bool, len(formats))
	var out []format.Format
	for _, fr := range formats {
		if fr.Inline && present[fr.Format] {
			continue
		}
		if seen[fr.Format] {
			continue
		}
		seen[fr.Format] = true
		out = append(out, fr.Format)
	}
	return out
}

// writeCSS resolves the file pool css.Generate reads from — the original
// input files, overlaid with whatever the executor just produced — and
// writes the @font-face block to opts.CSSPath ("-" meaning stdout).
func writeCSS(opts *Options, result *planner.Result, stdout io.Writer) error {
	filePool := make(map[format.Format]*format.FontFile, len(result.FilePool)+len(opts.Inputs))
	for _, f := range opts.Inputs {
		filePool[f.Format] = f
	}
	for f, file := range result.FilePool {
		filePool[f] = file
	}

	w, closeFn, err := openCSSOutput(opts.CSSPath, stdout)
	if err != nil {
		return err
	}
	defer closeFn()

	return css.Generate(w, opts.Formats, filePool, opts.Prefix, opts.FontFamily)
}

func openCSSOutput(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "-" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
