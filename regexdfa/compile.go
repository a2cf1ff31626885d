// SPDX-License-Identifier: MIT
package regexdfa

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/formallang/rpq/automaton"
)

// Compile parses pattern and returns the deterministic automaton.Source
// that recognizes L(pattern), ready for automaton.FromSource.
func Compile(pattern string) (automaton.Source, error) {
	b, start, err := parse(pattern)
	if err != nil {
		return nil, fmt.Errorf("regexdfa.Compile: %w", err)
	}

	return subsetConstruct(b, start), nil
}

// stateSet is a sorted, deduplicated slice of NFA state indices, used both
// as a DFA state's identity and as its map key (via its string rendering).
type stateSet []int

func (s stateSet) key() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// epsilonClosure returns the sorted, deduplicated set of states reachable
// from seeds via zero or more epsilon transitions.
func epsilonClosure(b *nfaBuilder, seeds []int) stateSet {
	seen := make(map[int]struct{}, len(seeds))
	stack := append([]int(nil), seeds...)
	for _, s := range seeds {
		seen[s] = struct{}{}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range b.states[s].eps {
			if _, ok := seen[next]; !ok {
				seen[next] = struct{}{}
				stack = append(stack, next)
			}
		}
	}

	out := make(stateSet, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Ints(out)

	return out
}

// move returns the sorted, deduplicated set of NFA states reachable from
// any state in from by consuming symbol.
func move(b *nfaBuilder, from stateSet, symbol string) []int {
	seen := make(map[int]struct{})
	for _, s := range from {
		for _, next := range b.states[s].sym[symbol] {
			seen[next] = struct{}{}
		}
	}

	out := make([]int, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Ints(out)

	return out
}

// alphabet collects every distinct symbol appearing on any transition of b.
func alphabet(b *nfaBuilder) []string {
	seen := make(map[string]struct{})
	for _, st := range b.states {
		for sym := range st.sym {
			seen[sym] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for sym := range seen {
		out = append(out, sym)
	}
	sort.Strings(out)

	return out
}

// subsetConstruct performs the standard NFA-to-DFA subset construction,
// folding in epsilon-closure so the result is epsilon-free by construction,
// and wraps it directly as an automaton.Source -- grounded on the
// subset-construction loop of
// other_examples/5fb3f861_shadowCow-cow-lang-go__lang-automata-nfa_to_dfa.go,
// generalized to the RPQ engine's string-label alphabet.
func subsetConstruct(b *nfaBuilder, start fragment) automaton.Source {
	syms := alphabet(b)

	startSet := epsilonClosure(b, []int{start.start})
	order := []string{startSet.key()}
	sets := map[string]stateSet{startSet.key(): startSet}

	var transitions []automaton.Transition
	visited := map[string]struct{}{startSet.key(): {}}
	queue := []stateSet{startSet}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, sym := range syms {
			moved := move(b, cur, sym)
			if len(moved) == 0 {
				continue
			}
			next := epsilonClosure(b, moved)
			key := next.key()
			if _, ok := visited[key]; !ok {
				visited[key] = struct{}{}
				sets[key] = next
				order = append(order, key)
				queue = append(queue, next)
			}
			transitions = append(transitions, automaton.Transition{
				From:   automaton.SymbolicState(cur.key()),
				To:     automaton.SymbolicState(key),
				Symbol: sym,
			})
		}
	}

	states := make([]automaton.StateID, 0, len(order))
	var final []automaton.StateID
	for _, key := range order {
		states = append(states, automaton.SymbolicState(key))
		if containsAccept(sets[key], start.accept) {
			final = append(final, automaton.SymbolicState(key))
		}
	}

	return automaton.NewSource(states, []automaton.StateID{automaton.SymbolicState(startSet.key())}, final, transitions)
}

func containsAccept(set stateSet, accept int) bool {
	for _, s := range set {
		if s == accept {
			return true
		}
	}
	return false
}
