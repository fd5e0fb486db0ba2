package registry

import "github.com/foldwell/webfontgen/weight"

// The three tool-cost axes, per the weight table: A counts FontForge
// invocations, B counts other-tool invocations (sfntly, woff2_compress,
// woff2_decompress), C counts copies.
var (
	weightStructural = weight.Zero()
	weightFontForge  = weight.Vector{A: 1}
	weightTool       = weight.Vector{B: 1}
	weightCopy       = weight.Vector{C: 1}
)

// EdgeKind names which tool (or structural rendezvous) an Edge entry in
// Topology represents. It exists only for introspection; the planning
// graph itself is built directly by Build, not looked up by kind.
type EdgeKind string

const (
	KindStructural      EdgeKind = "structural"
	KindCopy            EdgeKind = "copy"
	KindFontForge       EdgeKind = "fontforge"
	KindSfntly          EdgeKind = "sfntly"
	KindWoff2Compress   EdgeKind = "woff2_compress"
	KindWoff2Decompress EdgeKind = "woff2_decompress"
)

// TopologyEdge is one row of the static operation registry: a directed
// connection between two named vertex roles, tagged with the tool that
// traverses it and its weight. From/To are one of "source", "input[f]",
// "output[f]", "copy[f]", or a bare tool name ("fontforge", "sfntly",
// "woff2_compress", "woff2_decompress"), with f substituted for a concrete
// format tag by Topology's caller.
type TopologyEdge struct {
	Kind   EdgeKind
	From   string
	To     string
	Weight weight.Vector
}

// Topology returns the fixed operation registry as data, independent of any
// input/output file set: one entry per edge shape in the spec's edge table,
// with "f" left as a literal placeholder standing for "substitute each
// format this shape applies to". It is consulted only by this package's own
// tests, which assert the weight assignments here match the product
// decision recorded in weight's package doc; --dot does not read it. The
// planning graph itself is built directly by Build, not derived from this
// table.
func Topology() []TopologyEdge {
	return []TopologyEdge{
		{KindStructural, "source", "input[f]", weightStructural},
		{KindStructural, "input[f]", "copy[f]", weightStructural},
		{KindCopy, "copy[f]", "output[f]", weightCopy},

		{KindStructural, "input[f]", "fontforge", weightStructural},
		{KindStructural, "output[f]", "fontforge", weightStructural},
		{KindFontForge, "fontforge", "output[f]", weightFontForge},

		{KindStructural, "input[ttf]", "sfntly", weightStructural},
		{KindStructural, "output[ttf]", "sfntly", weightStructural},
		{KindSfntly, "sfntly", "output[f]", weightTool},

		{KindStructural, "output[ttf]", "woff2_compress", weightStructural},
		{KindWoff2Compress, "woff2_compress", "output[woff2]", weightTool},

		{KindStructural, "output[woff2]", "woff2_decompress", weightStructural},
		{KindWoff2Decompress, "woff2_decompress", "output[ttf]", weightTool},
	}
}

// fontForgeInputFormats lists the formats fontforge accepts as a direct
// input, i.e. whose input[f] rendezvous feeds the fontforge vertex.
var fontForgeInputFormats = []string{"ttf", "otf", "woff", "svg"}

// fontForgeOutputFormats lists the formats fontforge can produce, i.e. whose
// output[f] rendezvous both feeds back into fontforge (as a candidate
// upstream input for a later step) and receives a fontforge → output[f]
// edge.
var fontForgeOutputFormats = []string{"ttf", "otf", "svg"}

// sfntlyOutputFormats lists the formats sfntly produces from a ttf input.
var sfntlyOutputFormats = []string{"woff", "eot"}
