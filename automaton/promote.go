// SPDX-License-Identifier: MIT
// Package automaton: PromoteGraph, the trivial graph-to-NFA promoter.
//
// spec.md places graph-to-NFA promotion out of scope as an external
// collaborator, but calls it out as "trivial: every node becomes a state,
// edges carry symbols" -- simple enough that this repo ships one concrete
// implementation rather than leaving it as a bare interface with no default.
package automaton

import "github.com/formallang/rpq/core"

// PromoteGraph turns g into a Source: every vertex becomes a NodeState, and
// every edge with a non-empty Label becomes a Transition labeled by it
// (edges with an empty Label carry no alphabet symbol and are skipped, per
// core.Edge.Label's documented convention). An empty starts (or finals)
// means "every vertex is a start (or final)", per spec.md §6.
func PromoteGraph(g *core.Graph, starts, finals []string) Source {
	vertices := g.Vertices()
	states := make([]StateID, len(vertices))
	for i, id := range vertices {
		states[i] = NodeState(id)
	}

	if len(starts) == 0 {
		starts = vertices
	}
	if len(finals) == 0 {
		finals = vertices
	}

	startIDs := make([]StateID, len(starts))
	for i, id := range starts {
		startIDs[i] = NodeState(id)
	}
	finalIDs := make([]StateID, len(finals))
	for i, id := range finals {
		finalIDs[i] = NodeState(id)
	}

	var transitions []Transition
	for _, e := range g.Edges() {
		if e.Label == "" {
			continue
		}
		transitions = append(transitions, Transition{
			From:   NodeState(e.From),
			To:     NodeState(e.To),
			Symbol: e.Label,
		})
		if !e.Directed {
			transitions = append(transitions, Transition{
				From:   NodeState(e.To),
				To:     NodeState(e.From),
				Symbol: e.Label,
			})
		}
	}

	return NewSource(states, startIDs, finalIDs, transitions)
}
