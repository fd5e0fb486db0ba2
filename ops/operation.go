package ops

import (
	"errors"
	"log"

	"github.com/foldwell/webfontgen/format"
)

// ErrToolFailure indicates an external conversion tool exited with a
// nonzero status. The error wraps the tool's captured, indented stderr.
var ErrToolFailure = errors.New("ops: conversion tool failed")

// ErrMissingOutputs indicates a conversion tool exited zero but one or more
// of its declared output files are absent from disk afterward.
var ErrMissingOutputs = errors.New("ops: declared output file was not produced")

// Run is the adapter contract every Operation implements: given an ordered
// sequence of input files and an ordered sequence of output files it is
// responsible for producing, do the conversion or fail. inputs/outputs are
// derived by the executor from a tree vertex's incoming/outgoing edges.
type Run func(inputs, outputs []*format.FontFile, logger *log.Logger) error

// Operation is a named, stateless conversion procedure. Operations carry no
// state of their own; the planner places a *Operation value on each graph
// vertex, and the executor dispatches to it by identity rather than by a
// type switch. Two vertices sharing the same *Operation pointer (e.g. two
// copy[f] vertices both pointing at the package-level Copy value) are
// invoked independently, once per vertex, with that vertex's own file
// bindings.
type Operation struct {
	Name string
	Run  Run
}
