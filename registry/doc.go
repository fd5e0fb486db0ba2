// Package registry declares the fixed topology of conversion operations —
// which (from-format, to-format) edges exist, at what weight — and builds
// the planning graph for a concrete set of input files and output
// directory.
//
// The topology itself never varies: it is always the same six input
// rendezvous vertices, six output rendezvous vertices, one copy vertex per
// format, and one vertex each for fontforge, sfntly, woff2_compress and
// woff2_decompress, wired exactly per the weight table in this package's
// Topology(). What varies per invocation is only which edges leave the
// super-source and the input rendezvous vertices (only those of the
// formats actually supplied) and which concrete *format.FontFile each edge
// carries.
package registry
