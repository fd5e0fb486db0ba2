// Package planner ties the registry's topology, the shortestpath solver,
// and sub-tree materialization together into one operation: given a set of
// input files, an output directory, and a requested set of output formats,
// produce an executable tree plus the file pool the css package will read
// from once the executor has run.
package planner
