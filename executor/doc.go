// Package executor walks a materialized planner tree and runs each
// vertex's operation, deriving that vertex's input and output files from
// its incoming and outgoing edges.
package executor
