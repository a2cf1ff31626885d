// Package engine (formallang/rpq) answers Regular Path Queries over
// edge-labeled directed multigraphs: given a regex over edge labels and a
// graph, find every (source, target) vertex pair joined by a path whose
// label sequence matches the regex.
//
// What is formallang/rpq?
//
//	A thread-safe, boolean-semiring engine that brings together:
//
//	  - Sparse boolean matrices and their semiring operations (OR/AND/Kron)
//	  - Adjacency-matrix finite automata with a cached transitive closure
//	  - Tensor-product automaton intersection
//	  - Two independent RPQ solvers: transitive-closure and multi-source BFS
//
// Everything is organized under five subpackages:
//
//	boolmat/   — sparse boolean matrix type + boolean-semiring kernels
//	core/      — thread-safe edge-labeled directed multigraph
//	automaton/ — AdjacencyMatrixFA, Intersect, PromoteGraph
//	regexdfa/  — regex tokenizer/parser, Thompson NFA, subset construction
//	rpq/       — TensorRPQ and MSBFSRPQ, the two query solvers
//
// A minimal query looks like:
//
//	g := core.NewLabeledCyclesGraph(3, 4, "a", "b")
//	result, err := rpq.TensorRPQ(ctx, "a*", g, []string{"0"}, nil)
//
// See SPEC_FULL.md and DESIGN.md for the full component design and the
// provenance of each package's implementation choices.
package engine
