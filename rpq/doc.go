// Package rpq answers regular path queries over a core.Graph: given a
// regex pattern and optional start/final vertex sets, find every (source,
// target) vertex pair connected by a path whose edge-label sequence
// matches the pattern.
//
// Two independent solvers are provided, both grounded on spec.md §4:
//
//   - TensorRPQ builds the query automaton (regexdfa.Compile), promotes
//     the graph (automaton.PromoteGraph), intersects the two
//     (automaton.Intersect), and reads result pairs off the product
//     automaton's transitive closure.
//   - MSBFSRPQ runs a multi-source breadth-first search with one frontier
//     row per graph start vertex, bundled into boolean matrices so a whole
//     BFS layer advances with one boolean matrix multiply per symbol.
//
// Both solvers compute the same relation (see rpq_test.go's equivalence
// checks); TensorRPQ is the simpler fixed-point characterization, MSBFSRPQ
// is the reference's performance-oriented alternative (spec.md §4.D).
package rpq
