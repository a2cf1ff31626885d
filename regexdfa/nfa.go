// SPDX-License-Identifier: MIT
// Package regexdfa: Thompson-fragment NFA construction. Grounded on the
// fragment/closure vocabulary of
// other_examples/379e7514_KromDaniel-regengo__internal-compiler-thompson.go,
// reimplemented over a plain epsilon/symbol adjacency rather than a
// regexp/syntax.Prog.
package regexdfa

// nfaState is one Thompson-construction NFA state: epsilon edges plus
// symbol edges, both possibly multi-valued (nondeterminism).
type nfaState struct {
	eps []int
	sym map[string][]int
}

// nfaBuilder accumulates states as a fragment tree is built bottom-up.
type nfaBuilder struct {
	states []nfaState
}

func (b *nfaBuilder) newState() int {
	b.states = append(b.states, nfaState{sym: make(map[string][]int)})
	return len(b.states) - 1
}

func (b *nfaBuilder) addEps(from, to int) {
	b.states[from].eps = append(b.states[from].eps, to)
}

func (b *nfaBuilder) addSym(from int, symbol string, to int) {
	b.states[from].sym[symbol] = append(b.states[from].sym[symbol], to)
}

// fragment is a Thompson fragment: exactly one start state and one accept
// state, connected however the combinator below wires them.
type fragment struct {
	start, accept int
}

// litFragment builds start --symbol--> accept.
func (b *nfaBuilder) litFragment(symbol string) fragment {
	start, accept := b.newState(), b.newState()
	b.addSym(start, symbol, accept)

	return fragment{start, accept}
}

// epsFragment builds start --eps--> accept, the empty-word language.
func (b *nfaBuilder) epsFragment() fragment {
	start, accept := b.newState(), b.newState()
	b.addEps(start, accept)

	return fragment{start, accept}
}

// concatFragment sequences f1 then f2.
func (b *nfaBuilder) concatFragment(f1, f2 fragment) fragment {
	b.addEps(f1.accept, f2.start)
	return fragment{f1.start, f2.accept}
}

// altFragment unions f1 and f2.
func (b *nfaBuilder) altFragment(f1, f2 fragment) fragment {
	start, accept := b.newState(), b.newState()
	b.addEps(start, f1.start)
	b.addEps(start, f2.start)
	b.addEps(f1.accept, accept)
	b.addEps(f2.accept, accept)

	return fragment{start, accept}
}

// starFragment builds the Kleene closure of f.
func (b *nfaBuilder) starFragment(f fragment) fragment {
	start, accept := b.newState(), b.newState()
	b.addEps(start, f.start)
	b.addEps(start, accept)
	b.addEps(f.accept, f.start)
	b.addEps(f.accept, accept)

	return fragment{start, accept}
}
