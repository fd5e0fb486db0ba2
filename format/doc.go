// Package format defines the closed set of font container formats this
// program understands, and the FontFile handle that flows along the
// conversion graph's edges.
//
// There are exactly six formats: ttf, otf, svg, eot, woff, woff2. Every
// format reference elsewhere in this module is one of these tags; there is
// no open extension point, because the registry package hard-codes which
// conversion tool produces which format.
package format
