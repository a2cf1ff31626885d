// Package automaton implements the adjacency-matrix finite automaton
// (AMFA) at the heart of the RPQ engine: a boolean-matrix-backed NFA/DFA
// representation with a cached transitive closure, a tensor-product
// intersector, and the trivial graph-to-NFA promoter spec out as the one
// external capability simple enough to ship a default of.
//
// See state.go for the opaque StateID family, source.go for the
// graph_to_nfa/regex_to_dfa collaborator contract (Source/Transition),
// amfa.go for AdjacencyMatrixFA itself, intersect.go for the tensor
// product, and promote.go for PromoteGraph.
package automaton
