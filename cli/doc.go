// Package cli implements the command-line front end for webfontgen: flag
// parsing, inferring input formats from file extensions, wiring the
// planner/executor/css packages together, and mapping their errors onto
// process exit codes.
//
// Flag handling follows the stdlib flag package's native convention — named
// flags first, then positional input files, with "--" terminating flag
// parsing exactly as flag.FlagSet already does — rather than the original
// bdusell/webfont-generator generate_webfonts.py's hand-rolled loop that
// lets flags and positional arguments interleave freely. The observable
// option semantics (each format's optional ":inline" suffix, "-" meaning
// stdout for --css, extension-inferred input formats) are matched exactly.
package cli
