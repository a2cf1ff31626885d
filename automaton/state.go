// SPDX-License-Identifier: MIT
package automaton

// StateID is the opaque automaton-state identifier the spec calls for in
// place of Python's arbitrary hashable values: graph vertex IDs,
// regex/DFA state labels, and nested tuples for tensor-product states.
// Every concrete implementation below is built from comparable fields, so
// a StateID is always safe to use as a map key.
type StateID interface {
	String() string
}

// NodeState wraps a core.Graph vertex ID, promoted 1:1 into an automaton
// state by PromoteGraph.
type NodeState string

// String implements StateID.
func (n NodeState) String() string { return string(n) }

// SymbolicState wraps an opaque state label supplied by a regex/DFA
// collaborator (regexdfa or otherwise).
type SymbolicState string

// String implements StateID.
func (s SymbolicState) String() string { return string(s) }

// PairState is a tensor-product state: idx((a,b)) = idxA(a)*M + idxB(b),
// computed by Intersect. A and B may themselves be PairState, so products
// of products nest without loss.
type PairState struct {
	A, B StateID
}

// String implements StateID.
func (p PairState) String() string {
	return "(" + p.A.String() + "," + p.B.String() + ")"
}
