// SPDX-License-Identifier: MIT
// Package automaton: the tensor-product intersector (spec.md §4.C).
package automaton

import "github.com/formallang/rpq/boolmat"

// Intersect returns C such that L(C) = L(a) ∩ L(b): the tensor (Kronecker)
// product automaton. Product state (x, y) gets index idxA(x)*b.StatesNum()
// + idxB(y), matching the Kronecker layout boolmat.Kron produces, per
// spec.md §3/§9's indexing-alignment note. Only symbols present in both a
// and b contribute a product matrix; a symbol in only one factor can never
// be taken simultaneously by both, so it contributes nothing to C.
func Intersect(a, b *AdjacencyMatrixFA) (*AdjacencyMatrixFA, error) {
	if a == nil || b == nil {
		return nil, amfaErrorf("Intersect", ErrNilAutomaton)
	}

	n := a.statesNum * b.statesNum
	states := make(map[StateID]int, n)
	for x, ix := range a.states {
		for y, iy := range b.states {
			states[PairState{A: x, B: y}] = ix*b.statesNum + iy
		}
	}

	start := make(map[int]struct{})
	for x := range a.start {
		for y := range b.start {
			start[x*b.statesNum+y] = struct{}{}
		}
	}

	final := make(map[int]struct{})
	for x := range a.final {
		for y := range b.final {
			final[x*b.statesNum+y] = struct{}{}
		}
	}

	matrices := make(map[string]*boolmat.Matrix)
	for sym, am := range a.matrices {
		bm, ok := b.matrices[sym]
		if !ok {
			continue
		}
		prod, err := boolmat.Kron(am, bm)
		if err != nil {
			return nil, amfaErrorf("Intersect", err)
		}
		matrices[sym] = prod
	}

	return FromParts(n, states, start, final, matrices)
}
