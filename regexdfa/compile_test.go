package regexdfa_test

import (
	"testing"

	"github.com/formallang/rpq/automaton"
	"github.com/formallang/rpq/regexdfa"
	"github.com/stretchr/testify/require"
)

func compileToFA(t *testing.T, pattern string) *automaton.AdjacencyMatrixFA {
	t.Helper()
	src, err := regexdfa.Compile(pattern)
	require.NoError(t, err)
	fa, err := automaton.FromSource(src)
	require.NoError(t, err)
	return fa
}

func TestCompileLiteral(t *testing.T) {
	fa := compileToFA(t, "a")
	ok, err := fa.Accepts([]string{"a"})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = fa.Accepts([]string{"b"})
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = fa.Accepts(nil)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCompileConcatenation(t *testing.T) {
	fa := compileToFA(t, "a b")
	ok, err := fa.Accepts([]string{"a", "b"})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = fa.Accepts([]string{"a"})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCompileUnion(t *testing.T) {
	fa := compileToFA(t, "a|b")
	for _, word := range [][]string{{"a"}, {"b"}} {
		ok, err := fa.Accepts(word)
		require.NoError(t, err)
		require.True(t, ok, "%v should be accepted", word)
	}

	ok, err := fa.Accepts([]string{"c"})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCompileStar(t *testing.T) {
	fa := compileToFA(t, "a*")
	for _, word := range [][]string{nil, {"a"}, {"a", "a"}, {"a", "a", "a"}} {
		ok, err := fa.Accepts(word)
		require.NoError(t, err)
		require.True(t, ok, "%v should be accepted", word)
	}

	ok, err := fa.Accepts([]string{"b"})
	require.NoError(t, err)
	require.False(t, ok)
}

// TestCompileScenarioS5 mirrors spec.md S5: a(a|b)*b accepts "ab", "aab",
// "abb", "aaabbb"-like alternating runs, but not "a" or "b" alone.
func TestCompileScenarioS5(t *testing.T) {
	fa := compileToFA(t, "a(a|b)*b")

	accepted := [][]string{
		{"a", "b"},
		{"a", "a", "b"},
		{"a", "b", "b"},
		{"a", "a", "b", "a", "b"},
	}
	for _, word := range accepted {
		ok, err := fa.Accepts(word)
		require.NoError(t, err)
		require.True(t, ok, "%v should be accepted", word)
	}

	rejected := [][]string{
		{"a"},
		{"b"},
		nil,
		{"b", "a"},
	}
	for _, word := range rejected {
		ok, err := fa.Accepts(word)
		require.NoError(t, err)
		require.False(t, ok, "%v should be rejected", word)
	}
}

func TestCompileWhitespaceInsensitive(t *testing.T) {
	withSpaces := compileToFA(t, "a (a|b)* b")
	withoutSpaces := compileToFA(t, "a(a|b)*b")

	word := []string{"a", "a", "b", "b"}
	ok1, err := withSpaces.Accepts(word)
	require.NoError(t, err)
	ok2, err := withoutSpaces.Accepts(word)
	require.NoError(t, err)
	require.Equal(t, ok2, ok1)
	require.True(t, ok1)
}

func TestCompileMultiCharacterSymbol(t *testing.T) {
	fa := compileToFA(t, "foo bar")
	ok, err := fa.Accepts([]string{"foo", "bar"})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = fa.Accepts([]string{"foobar"})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCompileParenGrouping(t *testing.T) {
	fa := compileToFA(t, "(a|b)c")
	for _, word := range [][]string{{"a", "c"}, {"b", "c"}} {
		ok, err := fa.Accepts(word)
		require.NoError(t, err)
		require.True(t, ok, "%v should be accepted", word)
	}

	ok, err := fa.Accepts([]string{"c"})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCompileInvalidRegexUnclosedParen(t *testing.T) {
	_, err := regexdfa.Compile("(a|b")
	require.ErrorIs(t, err, regexdfa.ErrInvalidRegex)
}

func TestCompileInvalidRegexDanglingOperator(t *testing.T) {
	_, err := regexdfa.Compile(")a")
	require.ErrorIs(t, err, regexdfa.ErrInvalidRegex)
}

func TestCompileInvalidRegexTrailingTokens(t *testing.T) {
	_, err := regexdfa.Compile("a)")
	require.ErrorIs(t, err, regexdfa.ErrInvalidRegex)
}

// TestCompileEmptyTermIsEmptyWord covers "()" parsing to the empty-word
// fragment rather than an error, matching parseTerm's nil-factor case.
func TestCompileEmptyTermIsEmptyWord(t *testing.T) {
	fa := compileToFA(t, "()")
	ok, err := fa.Accepts(nil)
	require.NoError(t, err)
	require.True(t, ok)
}
