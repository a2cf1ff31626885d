// Package regexdfa is the default regex-to-DFA collaborator the RPQ engine
// consumes through automaton.Source (spec.md §6 names this an external,
// black-box capability; this package is the one concrete implementation
// this repo ships so the engine is runnable end to end).
//
// Grammar, grounded on original_source/project/regex_utils.py's use of
// pyformlang.regular_expression.Regex (see SPEC_FULL.md's SUPPLEMENTED
// FEATURES section):
//
//	symbol      := any maximal run of characters that are not '(', ')', '|', '*', or whitespace
//	atom        := symbol | '(' expr ')'
//	factor      := atom '*'*          (repeated stars are accepted)
//	term        := factor*            (concatenation by juxtaposition)
//	expr        := term ('|' term)*   (union, lowest precedence)
//
// Whitespace between tokens is an inert separator: "a b" and "ab" differ
// only when "ab" would otherwise be read as one multi-character symbol
// (there is no such ambiguity around an operator, so "a(a|b)*b" needs no
// spaces at all).
//
// Compile builds a Thompson-construction NFA (token.go/nfa.go) and performs
// subset construction directly into an epsilon-free automaton.Source
// (compile.go) -- there is no separate epsilon-elimination pass because
// subset construction's epsilon-closure step removes epsilons by
// construction.
package regexdfa
