// SPDX-License-Identifier: MIT
package rpq

import (
	"github.com/formallang/rpq/automaton"
	"github.com/formallang/rpq/core"
	"github.com/formallang/rpq/regexdfa"
)

// Pair is a (source, target) vertex pair in a query result set.
type Pair struct {
	U, V string
}

// setup builds the graph AMFA G, the regex AMFA R, and their intersection
// I, shared by both TensorRPQ and MSBFSRPQ (spec.md §4.D's "both begin
// identically" clause).
func setup(pattern string, g *core.Graph, starts, finals []string) (gFA, rFA, iFA *automaton.AdjacencyMatrixFA, err error) {
	if g == nil {
		return nil, nil, nil, ErrNilGraph
	}

	gSrc := automaton.PromoteGraph(g, starts, finals)
	gFA, err = automaton.FromSource(gSrc)
	if err != nil {
		return nil, nil, nil, err
	}

	rSrc, err := regexdfa.Compile(pattern)
	if err != nil {
		return nil, nil, nil, err
	}
	rFA, err = automaton.FromSource(rSrc)
	if err != nil {
		return nil, nil, nil, err
	}

	iFA, err = automaton.Intersect(gFA, rFA)
	if err != nil {
		return nil, nil, nil, err
	}

	return gFA, rFA, iFA, nil
}

// resolveNodes returns starts/finals as given, or every vertex of g when
// the slice is empty, matching automaton.PromoteGraph's own convention so
// the two stay consistent within a single solver call.
func resolveNodes(g *core.Graph, nodes []string) []string {
	if len(nodes) > 0 {
		return nodes
	}
	return g.Vertices()
}
