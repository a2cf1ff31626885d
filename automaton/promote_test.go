package automaton_test

import (
	"testing"

	"github.com/formallang/rpq/automaton"
	"github.com/formallang/rpq/core"
	"github.com/stretchr/testify/require"
)

func TestPromoteGraphExplicitStartsFinals(t *testing.T) {
	g := core.NewLabeledCyclesGraph(3, 4, "a", "b")

	src := automaton.PromoteGraph(g, []string{"0"}, []string{"0", "1", "2", "3", "4", "5"})
	fa, err := automaton.FromSource(src)
	require.NoError(t, err)

	require.ElementsMatch(t, []int{0}, fa.StartIndices())
	require.Len(t, fa.FinalIndices(), 6)
	require.ElementsMatch(t, []string{"a", "b"}, fa.Symbols())
}

// TestPromoteGraphEmptyStartsFinalsMeansEveryVertex mirrors spec.md §6's
// "missing/empty starts means every node is a start" rule.
func TestPromoteGraphEmptyStartsFinalsMeansEveryVertex(t *testing.T) {
	g := core.NewLabeledCyclesGraph(3, 4, "a", "b")

	src := automaton.PromoteGraph(g, nil, nil)
	fa, err := automaton.FromSource(src)
	require.NoError(t, err)

	require.Len(t, fa.StartIndices(), fa.StatesNum())
	require.Len(t, fa.FinalIndices(), fa.StatesNum())
}

// TestPromoteGraphScenarioS1 exercises spec.md S1 end to end at the
// automaton layer: tensor_rpq("a*", graph, {0}, {0..5}) == {(0,0),(0,1),(0,2)}.
func TestPromoteGraphScenarioS1(t *testing.T) {
	g := core.NewLabeledCyclesGraph(3, 4, "a", "b")
	src := automaton.PromoteGraph(g, []string{"0"}, []string{"0", "1", "2", "3", "4", "5"})
	fa, err := automaton.FromSource(src)
	require.NoError(t, err)

	// a* as a single-state DFA: start == final, self-loop on "a".
	r0 := automaton.SymbolicState("r0")
	aStar, err := automaton.FromSource(automaton.NewSource(
		[]automaton.StateID{r0}, []automaton.StateID{r0}, []automaton.StateID{r0},
		[]automaton.Transition{{From: r0, To: r0, Symbol: "a"}},
	))
	require.NoError(t, err)
	inter, err := automaton.Intersect(fa, aStar)
	require.NoError(t, err)

	idx0, err := inter.Index(automaton.PairState{A: automaton.NodeState("0"), B: r0})
	require.NoError(t, err)
	idx1, err := inter.Index(automaton.PairState{A: automaton.NodeState("1"), B: r0})
	require.NoError(t, err)
	idx2, err := inter.Index(automaton.PairState{A: automaton.NodeState("2"), B: r0})
	require.NoError(t, err)
	idx3, err := inter.Index(automaton.PairState{A: automaton.NodeState("3"), B: r0})
	require.NoError(t, err)

	cl := inter.Closure()
	ok, _ := cl.Get(idx0, idx1)
	require.True(t, ok)
	ok, _ = cl.Get(idx0, idx2)
	require.True(t, ok)
	ok, _ = cl.Get(idx0, idx3)
	require.False(t, ok, "no all-'a' path from 0 to 3")
}
