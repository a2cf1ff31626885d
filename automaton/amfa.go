// SPDX-License-Identifier: MIT
// Package automaton: AdjacencyMatrixFA, the per-symbol boolean-matrix NFA
// representation with a cached transitive closure.
package automaton

import (
	"fmt"
	"sort"

	"github.com/formallang/rpq/boolmat"
)

func amfaErrorf(op string, err error) error {
	return fmt.Errorf("automaton.%s: %w", op, err)
}

// AdjacencyMatrixFA is an NFA stored as a per-symbol family of boolean
// matrices, plus a bijective state index, start/final index sets, and an
// eagerly-computed reflexive-transitive closure. Immutable once built: both
// constructors (FromSource, FromParts) return a fully-formed value, and no
// exported method mutates it afterward.
type AdjacencyMatrixFA struct {
	statesNum int
	states    map[StateID]int
	ids       []StateID // ids[i] is the StateID at dense index i; inverse of states
	start     map[int]struct{}
	final     map[int]struct{}
	matrices  map[string]*boolmat.Matrix
	closure   *boolmat.Matrix
}

// StatesNum returns the number of states (N).
func (a *AdjacencyMatrixFA) StatesNum() int { return a.statesNum }

// Index returns the dense index assigned to id, or ErrUnknownState if id is
// not a state of this automaton.
func (a *AdjacencyMatrixFA) Index(id StateID) (int, error) {
	idx, ok := a.states[id]
	if !ok {
		return 0, amfaErrorf("Index", ErrUnknownState)
	}

	return idx, nil
}

// StateAt returns the StateID at dense index i.
func (a *AdjacencyMatrixFA) StateAt(i int) StateID { return a.ids[i] }

// IsStart reports whether dense index i is a start state.
func (a *AdjacencyMatrixFA) IsStart(i int) bool {
	_, ok := a.start[i]
	return ok
}

// IsFinal reports whether dense index i is a final state.
func (a *AdjacencyMatrixFA) IsFinal(i int) bool {
	_, ok := a.final[i]
	return ok
}

// StartIndices returns the sorted dense indices of the start states.
func (a *AdjacencyMatrixFA) StartIndices() []int { return sortedKeys(a.start) }

// FinalIndices returns the sorted dense indices of the final states.
func (a *AdjacencyMatrixFA) FinalIndices() []int { return sortedKeys(a.final) }

// Symbols returns the sorted alphabet of symbols with at least one transition.
func (a *AdjacencyMatrixFA) Symbols() []string {
	out := make([]string, 0, len(a.matrices))
	for sym := range a.matrices {
		out = append(out, sym)
	}
	sort.Strings(out)

	return out
}

// Matrix returns the adjacency matrix for symbol, or nil if the symbol has
// no transitions in this automaton.
func (a *AdjacencyMatrixFA) Matrix(symbol string) *boolmat.Matrix { return a.matrices[symbol] }

// Closure returns the cached reflexive-transitive closure matrix.
func (a *AdjacencyMatrixFA) Closure() *boolmat.Matrix { return a.closure }

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

// FromSource builds an AdjacencyMatrixFA from a collaborator-supplied
// Source (an NFA or DFA description). States are assigned dense indices in
// Source.States() enumeration order. Epsilon transitions (Symbol == "") or
// transitions naming an endpoint outside Source.States() fail loudly with
// ErrEpsilonTransition / ErrBadEndpoint, per the spec's UnsupportedAutomaton
// error kind.
func FromSource(src Source) (*AdjacencyMatrixFA, error) {
	ids := src.States()
	n := len(ids)
	states := make(map[StateID]int, n)
	for i, id := range ids {
		states[id] = i
	}

	start := make(map[int]struct{})
	for _, id := range src.Start() {
		idx, ok := states[id]
		if !ok {
			return nil, amfaErrorf("FromSource", ErrBadEndpoint)
		}
		start[idx] = struct{}{}
	}

	final := make(map[int]struct{})
	for _, id := range src.Final() {
		idx, ok := states[id]
		if !ok {
			return nil, amfaErrorf("FromSource", ErrBadEndpoint)
		}
		final[idx] = struct{}{}
	}

	matrices := make(map[string]*boolmat.Matrix)
	for _, t := range src.Transitions() {
		if t.Symbol == "" {
			return nil, amfaErrorf("FromSource", ErrEpsilonTransition)
		}
		from, ok := states[t.From]
		if !ok {
			return nil, amfaErrorf("FromSource", ErrBadEndpoint)
		}
		to, ok := states[t.To]
		if !ok {
			return nil, amfaErrorf("FromSource", ErrBadEndpoint)
		}
		m, ok := matrices[t.Symbol]
		if !ok {
			var err error
			m, err = boolmat.Zeros(n, n)
			if err != nil {
				return nil, amfaErrorf("FromSource", err)
			}
			matrices[t.Symbol] = m
		}
		if err := m.Set(from, to); err != nil {
			return nil, amfaErrorf("FromSource", err)
		}
	}

	return build(n, states, ids, start, final, matrices)
}

// FromParts builds an AdjacencyMatrixFA directly from explicit fields, used
// by Intersect (the spec's "construction from parameters" path, kept as a
// distinct builder from FromSource per the §9 redesign note rather than one
// optional-everything constructor).
func FromParts(
	statesNum int,
	states map[StateID]int,
	start, final map[int]struct{},
	matrices map[string]*boolmat.Matrix,
) (*AdjacencyMatrixFA, error) {
	ids := make([]StateID, statesNum)
	for id, idx := range states {
		if idx < 0 || idx >= statesNum {
			return nil, amfaErrorf("FromParts", ErrBadEndpoint)
		}
		ids[idx] = id
	}

	startCopy := make(map[int]struct{}, len(start))
	for i := range start {
		startCopy[i] = struct{}{}
	}
	finalCopy := make(map[int]struct{}, len(final))
	for i := range final {
		finalCopy[i] = struct{}{}
	}
	matricesCopy := make(map[string]*boolmat.Matrix, len(matrices))
	for sym, m := range matrices {
		matricesCopy[sym] = m
	}

	return build(statesNum, states, ids, startCopy, finalCopy, matricesCopy)
}

// build assembles the immutable value and computes its closure. Shared by
// FromSource and FromParts.
func build(
	n int,
	states map[StateID]int,
	ids []StateID,
	start, final map[int]struct{},
	matrices map[string]*boolmat.Matrix,
) (*AdjacencyMatrixFA, error) {
	closure, err := evalTransitiveClosure(n, matrices)
	if err != nil {
		return nil, amfaErrorf("build", err)
	}

	return &AdjacencyMatrixFA{
		statesNum: n,
		states:    states,
		ids:       ids,
		start:     start,
		final:     final,
		matrices:  matrices,
		closure:   closure,
	}, nil
}

// evalTransitiveClosure computes U^N where U = I OR (union of all labeled
// adjacency matrices). Any exponent >= N-1 suffices since a reachable pair
// is reachable in at most N-1 labeled steps plus the reflexive self-loop
// from I; N is used for simplicity, per spec.md §4.B.
func evalTransitiveClosure(n int, matrices map[string]*boolmat.Matrix) (*boolmat.Matrix, error) {
	if n == 0 {
		return boolmat.Zeros(1, 1) // degenerate, never reached via FromSource/FromParts with n>0
	}

	u, err := boolmat.Identity(n)
	if err != nil {
		return nil, err
	}
	for _, m := range matrices {
		u, err = boolmat.Or(u, m)
		if err != nil {
			return nil, err
		}
	}

	return boolmat.Power(u, n)
}

// Accepts reports whether some labeled path starting at a start state,
// reading word in order, ends at a final state. Simulator states are
// (position, automaton-state) pairs explored breadth-first, per spec.md's
// state-machine note; RowTrueCols is iterated directly, with no redundant
// re-test of the cell (see spec.md §9's called-out fix).
func (a *AdjacencyMatrixFA) Accepts(word []string) (bool, error) {
	type config struct{ pos, state int }
	seen := make(map[config]struct{})
	queue := make([]config, 0, len(a.start))
	for s := range a.start {
		c := config{0, s}
		seen[c] = struct{}{}
		queue = append(queue, c)
	}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		if c.pos == len(word) {
			if a.IsFinal(c.state) {
				return true, nil
			}
			continue
		}

		m := a.matrices[word[c.pos]]
		if m == nil {
			continue // no transitions for this symbol: branch dies
		}
		cols, err := m.RowTrueCols(c.state)
		if err != nil {
			return false, amfaErrorf("Accepts", err)
		}
		for _, to := range cols {
			next := config{c.pos + 1, to}
			if _, dup := seen[next]; dup {
				continue
			}
			seen[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	return false, nil
}

// IsEmpty reports whether no start state can reach any final state, i.e.
// L(automaton) = emptyset. Uses the cached closure, so it is O(|start|*|final|).
func (a *AdjacencyMatrixFA) IsEmpty() bool {
	for s := range a.start {
		for f := range a.final {
			ok, _ := a.closure.Get(s, f) // s,f are always valid indices
			if ok {
				return false
			}
		}
	}

	return true
}
