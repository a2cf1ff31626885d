// SPDX-License-Identifier: MIT
// Package automaton: sentinel error set.
package automaton

import "errors"

var (
	// ErrEpsilonTransition is returned when a Source contains a transition
	// with an empty Symbol (an epsilon). Collaborators must eliminate
	// epsilons before producing a Source; this is the spec's
	// UnsupportedAutomaton error kind.
	ErrEpsilonTransition = errors.New("automaton: epsilon transition in source")

	// ErrBadEndpoint is returned when a transition names a state not present
	// in Source.States(). Also an UnsupportedAutomaton condition.
	ErrBadEndpoint = errors.New("automaton: transition endpoint not in state set")

	// ErrUnknownState is returned when a caller asks for the dense index of
	// a StateID the AMFA does not recognize.
	ErrUnknownState = errors.New("automaton: unknown state")

	// ErrNilAutomaton indicates a nil *AdjacencyMatrixFA was used as an operand.
	ErrNilAutomaton = errors.New("automaton: nil automaton")
)
