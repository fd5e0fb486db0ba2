package registry

import (
	"sort"

	"github.com/foldwell/webfontgen/format"
	"github.com/foldwell/webfontgen/graph"
	"github.com/foldwell/webfontgen/ops"
)

// Built is the planning graph for one invocation, plus the handles a
// planner needs to run a search and materialize a result: the super-source
// to search from, the per-format output rendezvous vertices to search to,
// and the six pre-constructed output FontFiles those vertices' edges
// reference.
type Built struct {
	Graph   *graph.Graph
	Source  *graph.Vertex
	Outputs map[format.Format]*graph.Vertex
	Files   map[format.Format]*format.FontFile
}

// Build constructs the planning graph for a given ordered set of input
// files and an output directory, exactly per the edge table in this
// package's Topology: a super-source, one input[f]/output[f] rendezvous
// pair and one copy[f] vertex per format, and one vertex each for
// fontforge, sfntly, woff2_compress and woff2_decompress.
//
// inputs may list more than one file per format; when it does, the last
// one wins for that format, matching a dict keyed by format built by
// iterating the list in order. The pre-constructed output FontFiles are
// derived from inputs[0]'s stem (the first file as given, before any
// per-format deduplication), since that is the file the rest of the
// pipeline treats as "the" input when naming its outputs.
func Build(inputs []*format.FontFile, outputDir string) *Built {
	g := graph.New()

	byFormat := make(map[format.Format]*format.FontFile, len(inputs))
	for _, f := range inputs {
		byFormat[f.Format] = f
	}

	var present []format.Format
	for _, f := range format.All {
		if _, ok := byFormat[f]; ok {
			present = append(present, f)
		}
	}
	sort.Slice(present, func(i, j int) bool { return present[i] < present[j] })

	files := make(map[format.Format]*format.FontFile, len(format.All))
	if len(inputs) > 0 {
		for _, f := range format.All {
			files[f] = inputs[0].MovedAndConvertedTo(outputDir, f)
		}
	}

	source := g.NewVertex("source", ops.Noop)
	input := make(map[format.Format]*graph.Vertex, len(format.All))
	output := make(map[format.Format]*graph.Vertex, len(format.All))
	for _, f := range format.All {
		input[f] = g.NewVertex("input["+string(f)+"]", ops.Noop)
		output[f] = g.NewVertex("output["+string(f)+"]", ops.Noop)
	}

	for _, f := range present {
		g.AddEdge(source, input[f], weightStructural, nil)
	}

	for _, f := range format.All {
		copyV := g.NewVertex("copy["+string(f)+"]", ops.Copy)
		if inFile, ok := byFormat[f]; ok {
			g.AddEdge(input[f], copyV, weightStructural, inFile)
		}
		g.AddEdge(copyV, output[f], weightCopy, files[f])
	}

	fontforgeV := g.NewVertex("fontforge", ops.FontForge)
	for _, f := range fontForgeInputFormats {
		ff := format.Format(f)
		if inFile, ok := byFormat[ff]; ok {
			g.AddEdge(input[ff], fontforgeV, weightStructural, inFile)
		}
	}
	for _, f := range fontForgeOutputFormats {
		ff := format.Format(f)
		g.AddEdge(output[ff], fontforgeV, weightStructural, files[ff])
	}
	for _, f := range fontForgeOutputFormats {
		ff := format.Format(f)
		g.AddEdge(fontforgeV, output[ff], weightFontForge, files[ff])
	}

	sfntlyV := g.NewVertex("sfntly", ops.Sfntly)
	if inFile, ok := byFormat[format.TTF]; ok {
		g.AddEdge(input[format.TTF], sfntlyV, weightStructural, inFile)
	}
	g.AddEdge(output[format.TTF], sfntlyV, weightStructural, files[format.TTF])
	for _, f := range sfntlyOutputFormats {
		ff := format.Format(f)
		g.AddEdge(sfntlyV, output[ff], weightTool, files[ff])
	}

	woff2CompressV := g.NewVertex("woff2_compress", ops.Woff2Compress)
	g.AddEdge(output[format.TTF], woff2CompressV, weightStructural, files[format.TTF])
	g.AddEdge(woff2CompressV, output[format.WOFF2], weightTool, files[format.WOFF2])

	woff2DecompressV := g.NewVertex("woff2_decompress", ops.Woff2Decompress)
	g.AddEdge(output[format.WOFF2], woff2DecompressV, weightStructural, files[format.WOFF2])
	g.AddEdge(woff2DecompressV, output[format.TTF], weightTool, files[format.TTF])

	return &Built{Graph: g, Source: source, Outputs: output, Files: files}
}
