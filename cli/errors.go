package cli

import "errors"

// ErrMissingInputs covers both halves of the spec's MissingInputs error
// kind: no input files were given, or no output directory was given. Both
// are "we don't have enough to build a plan" failures from the caller's
// point of view, so they share one sentinel; the wrapped message says which.
var ErrMissingInputs = errors.New("cli: missing required input")
