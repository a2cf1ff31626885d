// SPDX-License-Identifier: MIT
// Package rpq: the multi-source BFS solver (spec.md §4.D.2).
package rpq

import (
	"context"

	"github.com/formallang/rpq/automaton"
	"github.com/formallang/rpq/boolmat"
	"github.com/formallang/rpq/core"
)

// MSBFSRPQ answers a regular path query with one frontier row per start
// node, advancing every row's search in lock-step via batched boolean
// matmuls: new_front = OR over symbols of front . I.matrices[symbol],
// visited absorbs front, then front keeps only the cells new_front added
// that visited didn't already have. Iterates until the frontier is empty.
func MSBFSRPQ(ctx context.Context, pattern string, g *core.Graph, starts, finals []string) (map[Pair]struct{}, error) {
	_, rFA, iFA, err := setup(pattern, g, starts, finals)
	if err != nil {
		return nil, rpqErrorf("MSBFSRPQ", err)
	}

	us := resolveNodes(g, starts)
	vs := resolveNodes(g, finals)
	rStarts := rFA.StartIndices()
	rFinals := rFA.FinalIndices()

	k := len(us)
	front, err := boolmat.Zeros(k, iFA.StatesNum())
	if err != nil {
		return nil, rpqErrorf("MSBFSRPQ", err)
	}
	for row, u := range us {
		for _, rsIdx := range rStarts {
			idx, err := iFA.Index(automaton.PairState{A: automaton.NodeState(u), B: rFA.StateAt(rsIdx)})
			if err != nil {
				continue
			}
			if err := front.Set(row, idx); err != nil {
				return nil, rpqErrorf("MSBFSRPQ", err)
			}
		}
	}

	visited, err := boolmat.Zeros(k, iFA.StatesNum())
	if err != nil {
		return nil, rpqErrorf("MSBFSRPQ", err)
	}

	symbols := iFA.Symbols()
	for {
		if err := ctx.Err(); err != nil {
			return nil, rpqErrorf("MSBFSRPQ", err)
		}

		nnz, err := boolmat.NNZ(front)
		if err != nil {
			return nil, rpqErrorf("MSBFSRPQ", err)
		}
		if nnz == 0 {
			break
		}

		newFront, err := boolmat.Zeros(k, iFA.StatesNum())
		if err != nil {
			return nil, rpqErrorf("MSBFSRPQ", err)
		}
		for _, sym := range symbols {
			stepped, err := boolmat.MatMul(front, iFA.Matrix(sym))
			if err != nil {
				return nil, rpqErrorf("MSBFSRPQ", err)
			}
			newFront, err = boolmat.Or(newFront, stepped)
			if err != nil {
				return nil, rpqErrorf("MSBFSRPQ", err)
			}
		}

		visited, err = boolmat.Or(visited, front)
		if err != nil {
			return nil, rpqErrorf("MSBFSRPQ", err)
		}
		front, err = boolmat.DiffPositive(newFront, visited)
		if err != nil {
			return nil, rpqErrorf("MSBFSRPQ", err)
		}
	}

	result := make(map[Pair]struct{})
	for row, u := range us {
		for _, v := range vs {
			for _, rfIdx := range rFinals {
				idx, err := iFA.Index(automaton.PairState{A: automaton.NodeState(v), B: rFA.StateAt(rfIdx)})
				if err != nil {
					continue
				}
				ok, err := visited.Get(row, idx)
				if err != nil {
					return nil, rpqErrorf("MSBFSRPQ", err)
				}
				if ok {
					result[Pair{U: u, V: v}] = struct{}{}
					break
				}
			}
		}
	}

	return result, nil
}
