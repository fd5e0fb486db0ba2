package executor

import (
	"fmt"
	"log"

	"github.com/foldwell/webfontgen/format"
	"github.com/foldwell/webfontgen/graph"
)

// ExecutedStep records one vertex's invocation for tests and diagnostics;
// the CLI discards the trace. It carries no behavioral weight — nothing
// downstream of Run reads it back into planning state.
type ExecutedStep struct {
	Operation string
	Inputs    []*format.FontFile
	Outputs   []*format.FontFile
}

// Run preorder-traverses the tree rooted at root and invokes each vertex's
// operation with the files flowing along its incoming and outgoing edges.
// Preorder guarantees a vertex's producers have already run by the time it
// is visited, so every input file an operation needs already exists on
// disk.
//
// Run stops and returns the trace of steps completed so far, wrapped with
// the failing vertex's operation name, the first time an operation
// returns an error — no partial cleanup, no retry.
func Run(root *graph.Vertex, logger *log.Logger) ([]ExecutedStep, error) {
	var trace []ExecutedStep
	for _, v := range graph.Preorder(root) {
		inputs := filesOf(v.Incoming())
		outputs := filesOf(v.Outgoing())

		if err := v.Op.Run(inputs, outputs, logger); err != nil {
			return trace, fmt.Errorf("%s: %w", v.Op.Name, err)
		}

		trace = append(trace, ExecutedStep{Operation: v.Op.Name, Inputs: inputs, Outputs: outputs})
	}
	return trace, nil
}

// filesOf extracts the File annotation from each edge, dropping edges whose
// File is nil (the super-source's structural edges).
func filesOf(edges []*graph.Edge) []*format.FontFile {
	var files []*format.FontFile
	for _, e := range edges {
		if e.File != nil {
			files = append(files, e.File)
		}
	}
	return files
}
