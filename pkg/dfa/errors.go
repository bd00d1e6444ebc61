package dfa

import "fmt"

// InvalidAutomatonError reports a malformed automaton definition. It
// is returned by the builder and the constructor, never by execution.
type InvalidAutomatonError struct {
	Reason string
}

func (e *InvalidAutomatonError) Error() string {
	return "invalid automaton: " + e.Reason
}

// InvalidInputError reports an input symbol outside the automaton's
// alphabet. Position is the zero-based index of the symbol in the
// input sequence.
type InvalidInputError struct {
	Symbol   Symbol
	Position int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: symbol %q at position %d is not in the alphabet",
		string(e.Symbol), e.Position)
}

// InvalidTransitionError reports an undefined transition reached
// during execution.
type InvalidTransitionError struct {
	State    State
	Symbol   Symbol
	Position int
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: no transition from state %q on symbol %q at position %d",
		string(e.State), string(e.Symbol), e.Position)
}
