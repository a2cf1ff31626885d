package automaton_test

import (
	"testing"

	"github.com/formallang/rpq/automaton"
	"github.com/stretchr/testify/require"
)

// buildLinear builds 0 -a-> 1 -b-> 2, start={0}, final={2}: scenario S4's graph.
func buildLinear(t *testing.T) *automaton.AdjacencyMatrixFA {
	t.Helper()
	n0, n1, n2 := automaton.NodeState("0"), automaton.NodeState("1"), automaton.NodeState("2")
	src := automaton.NewSource(
		[]automaton.StateID{n0, n1, n2},
		[]automaton.StateID{n0},
		[]automaton.StateID{n2},
		[]automaton.Transition{
			{From: n0, To: n1, Symbol: "a"},
			{From: n1, To: n2, Symbol: "b"},
		},
	)
	fa, err := automaton.FromSource(src)
	require.NoError(t, err)

	return fa
}

func TestFromSourceEpsilonRejected(t *testing.T) {
	n0, n1 := automaton.NodeState("0"), automaton.NodeState("1")
	src := automaton.NewSource(
		[]automaton.StateID{n0, n1},
		[]automaton.StateID{n0},
		[]automaton.StateID{n1},
		[]automaton.Transition{{From: n0, To: n1, Symbol: ""}},
	)
	_, err := automaton.FromSource(src)
	require.ErrorIs(t, err, automaton.ErrEpsilonTransition)
}

func TestFromSourceBadEndpoint(t *testing.T) {
	n0, n1 := automaton.NodeState("0"), automaton.NodeState("1")
	ghost := automaton.NodeState("ghost")
	src := automaton.NewSource(
		[]automaton.StateID{n0, n1},
		[]automaton.StateID{n0},
		[]automaton.StateID{n1},
		[]automaton.Transition{{From: n0, To: ghost, Symbol: "a"}},
	)
	_, err := automaton.FromSource(src)
	require.ErrorIs(t, err, automaton.ErrBadEndpoint)
}

// TestAcceptsScenarioS5 mirrors spec.md S5: regex a(a|b)*b as an AMFA built by
// hand (states 0..2, 0 start, 2 final, a:0->1,1->1 b:1->1,1->2; we only
// need an automaton whose accepted language matches a(a|b)*b's examples).
func TestAcceptsScenarioS5(t *testing.T) {
	s0, s1, s2 := automaton.NodeState("0"), automaton.NodeState("1"), automaton.NodeState("2")
	src := automaton.NewSource(
		[]automaton.StateID{s0, s1, s2},
		[]automaton.StateID{s0},
		[]automaton.StateID{s2},
		[]automaton.Transition{
			{From: s0, To: s1, Symbol: "a"},
			{From: s1, To: s1, Symbol: "a"},
			{From: s1, To: s1, Symbol: "b"},
			{From: s1, To: s2, Symbol: "b"},
		},
	)
	fa, err := automaton.FromSource(src)
	require.NoError(t, err)

	ok, err := fa.Accepts([]string{"a", "b"})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = fa.Accepts([]string{"a", "a", "b"})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = fa.Accepts([]string{"b"})
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = fa.Accepts(nil)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestIsEmptyScenarioS6 mirrors spec.md S6.
func TestIsEmptyScenarioS6(t *testing.T) {
	n0 := automaton.NodeState("0")

	noStart := automaton.NewSource([]automaton.StateID{n0}, nil, []automaton.StateID{n0}, nil)
	fa, err := automaton.FromSource(noStart)
	require.NoError(t, err)
	require.True(t, fa.IsEmpty())

	startIsFinal := automaton.NewSource(
		[]automaton.StateID{n0}, []automaton.StateID{n0}, []automaton.StateID{n0}, nil,
	)
	fa, err = automaton.FromSource(startIsFinal)
	require.NoError(t, err)
	require.False(t, fa.IsEmpty(), "reflexive closure makes a start==final state non-empty")
}

// TestClosureCorrectness mirrors spec.md testable property #1: closure[i,j]
// iff some (possibly empty) word takes i to j.
func TestClosureCorrectness(t *testing.T) {
	fa := buildLinear(t)
	idx0, err := fa.Index(automaton.NodeState("0"))
	require.NoError(t, err)
	idx1, err := fa.Index(automaton.NodeState("1"))
	require.NoError(t, err)
	idx2, err := fa.Index(automaton.NodeState("2"))
	require.NoError(t, err)

	cl := fa.Closure()
	ok, _ := cl.Get(idx0, idx0) // empty word
	require.True(t, ok)
	ok, _ = cl.Get(idx0, idx1) // "a"
	require.True(t, ok)
	ok, _ = cl.Get(idx0, idx2) // "a b"
	require.True(t, ok)
	ok, _ = cl.Get(idx2, idx0) // no path back
	require.False(t, ok)
}

func TestAcceptsLinearChain(t *testing.T) {
	fa := buildLinear(t)

	ok, err := fa.Accepts([]string{"a", "b"})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = fa.Accepts([]string{"b", "a"})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIdempotence(t *testing.T) {
	fa := buildLinear(t)
	a1, err1 := fa.Accepts([]string{"a", "b"})
	a2, err2 := fa.Accepts([]string{"a", "b"})
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, a1, a2)
	require.Equal(t, fa.IsEmpty(), fa.IsEmpty())
}
