package ops

import (
	"log"

	"github.com/foldwell/webfontgen/format"
)

// Noop does nothing regardless of its arguments. It is the operation value
// for the super-source and every rendezvous input/output vertex: those
// vertices exist only to give the solver and executor somewhere to route
// files through, not to perform work.
var Noop = &Operation{Name: "noop", Run: func(inputs, outputs []*format.FontFile, logger *log.Logger) error {
	return nil
}}
