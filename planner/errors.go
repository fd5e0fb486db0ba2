package planner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoInputs indicates Plan was called with no input files; there is
// nothing for the super-source to reach.
var ErrNoInputs = errors.New("planner: no input files")

// ErrUnreachableOutputs is the sentinel callers check with errors.Is;
// UnreachableOutputsError.Unwrap returns it so a caller that only cares
// "was this an unreachability failure" need not type-assert.
var ErrUnreachableOutputs = errors.New("planner: unreachable output files")

// UnreachableOutputsError reports that one or more requested output formats
// have no path from any supplied input in the registry's topology. Paths
// lists the expected output file path for each unreachable format, in
// sorted format order (Plan sorts the requested formats first), matching
// the error message format the top-level entry point prints.
type UnreachableOutputsError struct {
	Paths []string
}

func (e *UnreachableOutputsError) Error() string {
	return fmt.Sprintf("unreachable output files: %s", strings.Join(e.Paths, ", "))
}

func (e *UnreachableOutputsError) Unwrap() error {
	return ErrUnreachableOutputs
}
