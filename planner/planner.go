package planner

import (
	"sort"

	"github.com/foldwell/webfontgen/format"
	"github.com/foldwell/webfontgen/graph"
	"github.com/foldwell/webfontgen/registry"
	"github.com/foldwell/webfontgen/shortestpath"
)

// Result is a completed plan: an executable tree rooted at Root (ready for
// executor.Run), and the file pool the css package reads from — the
// output-directory FontFile of each requested format, keyed by format.
// Input files are not in it.
type Result struct {
	Root     *graph.Vertex
	FilePool map[format.Format]*format.FontFile
}

// Plan builds the registry's planning graph for inputs and outputDir,
// solves shortest paths from the super-source to each requested format's
// output rendezvous vertex, and materializes the resulting sub-tree. It
// returns *UnreachableOutputsError if any requested format has no path
// from the given inputs, listing every such format's expected output path
// (not just the first one found), so a caller can report every failure in
// one pass rather than one-at-a-time.
//
// requested is sorted internally before it drives destination order, so
// that two runs asking for the same format set in different orders build
// byte-identical trees and invoke tools in the same sequence; this mirrors
// dependencies.py:convert_files sorting output_formats before resolving
// destination_vertices. The caller's original order is preserved in the
// returned FilePool only insofar as map iteration doesn't care about it —
// ordering for CSS output is the css package's own concern, driven by its
// own explicit format list, not by this sort.
func Plan(inputs []*format.FontFile, outputDir string, requested []format.Format) (*Result, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}

	sorted := make([]format.Format, len(requested))
	copy(sorted, requested)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	requested = sorted

	built := registry.Build(inputs, outputDir)

	destinations := make([]*graph.Vertex, len(requested))
	for i, f := range requested {
		destinations[i] = built.Outputs[f]
	}

	settled := shortestpath.Solve(built.Source, destinations)

	var unreachable []string
	for i, f := range requested {
		if !settled[destinations[i]] {
			unreachable = append(unreachable, built.Files[f].FullPath)
		}
	}
	if len(unreachable) > 0 {
		return nil, &UnreachableOutputsError{Paths: unreachable}
	}

	root := materialize(built.Source, destinations)

	pool := make(map[format.Format]*format.FontFile, len(requested))
	for _, f := range requested {
		pool[f] = built.Files[f]
	}

	return &Result{Root: root, FilePool: pool}, nil
}
