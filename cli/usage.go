package cli

import (
	"fmt"
	"io"
)

// writeUsage prints the CLI's help text, matching the structure of
// generate_webfonts.py's usage() (arguments, required flags, options)
// rather than flag.FlagSet's default alphabetical dump.
func writeUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: webfontgen [options] -o <output-dir> <input-file> ...

  Convert font files to web font formats and optionally emit a CSS
  @font-face stylesheet referencing the results.

Arguments:
  <input-file> ...
                At least one input font file, given after all options.
                Recognized formats are:
                  ttf, otf, woff, woff2, eot, svg
                Given this list of input files, the converter satisfies the
                requested output formats by copying matching input files and
                converting files to fill in the gaps.

Required flags:
  -o, --output <dir>
                Destination directory for converted files.

Options:
  -f, --format <formats>
                Comma-separated list of output formats. Possible formats are:
                  ttf, otf, woff, woff2, eot, svg
                Any format suffixed with ":inline" is embedded in the CSS
                file as a base64 data URL instead of referenced by file.
                Default: eot,woff2,woff,ttf,svg
  -c, --css <file>
                Name of the generated CSS file. Use "-" for stdout. Omit to
                generate no CSS.
  -p, --prefix <prefix>
                Prefix of file paths in the generated CSS. Default is the
                output directory with a trailing slash.
  --font-family <name>
                font-family value used in the generated CSS. Default is the
                base name of the first input file, without its extension.
  --verbose     Log each conversion step as it runs.
  --dot         Print the planning graph as Graphviz dot instead of
                converting anything.
  -v, --version Display the version.
  -h, --help    Show this help message.
`)
}
