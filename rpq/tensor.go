// SPDX-License-Identifier: MIT
// Package rpq: the transitive-closure solver (spec.md §4.D.1).
package rpq

import (
	"context"

	"github.com/formallang/rpq/automaton"
	"github.com/formallang/rpq/core"
)

// TensorRPQ answers a regular path query via the intersection automaton's
// transitive closure: for each (u, v) in starts x finals and each (rs, rf)
// in start(R) x final(R), (u, v) is a result iff
// I.closure[I.states[(u, rs)], I.states[(v, rf)]] holds.
func TensorRPQ(ctx context.Context, pattern string, g *core.Graph, starts, finals []string) (map[Pair]struct{}, error) {
	_, rFA, iFA, err := setup(pattern, g, starts, finals)
	if err != nil {
		return nil, rpqErrorf("TensorRPQ", err)
	}

	us := resolveNodes(g, starts)
	vs := resolveNodes(g, finals)
	rStarts := rFA.StartIndices()
	rFinals := rFA.FinalIndices()

	result := make(map[Pair]struct{})
	for _, u := range us {
		if err := ctx.Err(); err != nil {
			return nil, rpqErrorf("TensorRPQ", err)
		}
		for _, v := range vs {
			if foundClosurePath(iFA, u, v, rFA, rStarts, rFinals) {
				result[Pair{U: u, V: v}] = struct{}{}
			}
		}
	}

	return result, nil
}

func foundClosurePath(
	iFA *automaton.AdjacencyMatrixFA,
	u, v string,
	rFA *automaton.AdjacencyMatrixFA,
	rStarts, rFinals []int,
) bool {
	for _, rsIdx := range rStarts {
		uIdx, err := iFA.Index(automaton.PairState{A: automaton.NodeState(u), B: rFA.StateAt(rsIdx)})
		if err != nil {
			continue
		}
		for _, rfIdx := range rFinals {
			vIdx, err := iFA.Index(automaton.PairState{A: automaton.NodeState(v), B: rFA.StateAt(rfIdx)})
			if err != nil {
				continue
			}
			ok, _ := iFA.Closure().Get(uIdx, vIdx)
			if ok {
				return true
			}
		}
	}

	return false
}
