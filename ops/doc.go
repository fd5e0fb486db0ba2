// Package ops declares the conversion adapter contract and the fixed set of
// six operations the planner can place at a graph vertex: noop, copy,
// fontforge, sfntly, woff2_compress and woff2_decompress.
//
// Per the adapter contract, an Operation is invoked at most once per
// executor visit with an ordered sequence of input files, an ordered
// sequence of output files it must produce, and a logger. It must ensure the
// directory of each output path exists, run its underlying tool once, and
// fail with ErrToolFailure or ErrMissingOutputs rather than leave a
// half-finished result. These adapters are out of scope for the planner
// itself (the planner only needs their input/output-format signature and
// failure contract) but are implemented here to the stated contract so the
// executor has something real to invoke.
package ops
