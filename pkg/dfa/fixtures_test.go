package dfa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// modThree recognizes binary numbers and lands in state S<n mod 3>.
// All states are accepting, so it computes rather than filters.
func modThree(t *testing.T) *Automaton {
	t.Helper()
	a, err := NewBuilder().
		States("S0", "S1", "S2").
		Symbols("0", "1").
		Initial("S0").
		Finals("S0", "S1", "S2").
		Transition("S0", "0", "S0").
		Transition("S0", "1", "S1").
		Transition("S1", "0", "S2").
		Transition("S1", "1", "S0").
		Transition("S2", "0", "S1").
		Transition("S2", "1", "S2").
		Build()
	require.NoError(t, err)
	return a
}

// evenOdd accepts binary strings with an even number of 1s.
func evenOdd(t *testing.T) *Automaton {
	t.Helper()
	a, err := NewBuilder().
		States("Even", "Odd").
		Symbols("0", "1").
		Initial("Even").
		Finals("Even").
		Transition("Even", "0", "Even").
		Transition("Even", "1", "Odd").
		Transition("Odd", "0", "Odd").
		Transition("Odd", "1", "Even").
		Build()
	require.NoError(t, err)
	return a
}

// partial has no transition out of "stuck", so executions reaching it
// fail on the next symbol.
func partial(t *testing.T) *Automaton {
	t.Helper()
	a, err := NewBuilder().
		States("start", "stuck").
		Symbols("a", "b").
		Initial("start").
		Finals("stuck").
		Transition("start", "a", "stuck").
		Diagnostics(NopSink).
		Build()
	require.NoError(t, err)
	return a
}

// captureSink records completeness warnings for assertions.
type captureSink struct {
	warnings []CompletenessWarning
}

func (c *captureSink) IncompleteTransitionFunction(w CompletenessWarning) {
	c.warnings = append(c.warnings, w)
}
