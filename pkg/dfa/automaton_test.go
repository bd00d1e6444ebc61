package dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAlphabet(t *testing.T, symbols ...Symbol) Alphabet {
	t.Helper()
	a, err := NewAlphabet(symbols...)
	require.NoError(t, err)
	return a
}

func TestNewRejectsEmptyStateSet(t *testing.T) {
	_, err := New(NewStateSet(), mustAlphabet(t, "a"), "q0", NewStateSet(), nil)
	var invalid *InvalidAutomatonError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "state set is empty")
}

func TestNewRejectsEmptyAlphabet(t *testing.T) {
	_, err := New(NewStateSet("q0"), Alphabet{}, "q0", NewStateSet(), nil)
	var invalid *InvalidAutomatonError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "alphabet is empty")
}

func TestNewRejectsUnknownInitialState(t *testing.T) {
	_, err := New(NewStateSet("q0"), mustAlphabet(t, "a"), "q9", NewStateSet(), nil,
		WithDiagnostics(NopSink))
	var invalid *InvalidAutomatonError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, `initial state "q9"`)
}

func TestNewRejectsUnsetInitialState(t *testing.T) {
	_, err := New(NewStateSet("q0"), mustAlphabet(t, "a"), "", NewStateSet(), nil)
	var invalid *InvalidAutomatonError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "initial state is not set")
}

func TestNewRejectsUnknownFinalState(t *testing.T) {
	_, err := New(NewStateSet("q0"), mustAlphabet(t, "a"), "q0", NewStateSet("q7"), nil)
	var invalid *InvalidAutomatonError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, `final state "q7"`)
}

func TestNewRejectsUndeclaredTransitionTarget(t *testing.T) {
	delta := NewTransitionFunction()
	delta.Define("q0", "a", "ghost")

	_, err := New(NewStateSet("q0"), mustAlphabet(t, "a"), "q0", NewStateSet(), delta)
	var invalid *InvalidAutomatonError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, `"ghost"`)
}

func TestNewEmitsCompletenessWarning(t *testing.T) {
	sink := &captureSink{}
	delta := NewTransitionFunction()
	delta.Define("q0", "a", "q1")

	_, err := New(NewStateSet("q0", "q1"), mustAlphabet(t, "a", "b"), "q0",
		NewStateSet("q1"), delta, WithDiagnostics(sink))
	require.NoError(t, err)

	require.Len(t, sink.warnings, 1)
	w := sink.warnings[0]
	assert.Equal(t, 3, w.TotalMissing)
	assert.Contains(t, w.Missing, TransitionKey{From: "q0", Input: "b"})
	assert.Contains(t, w.Missing, TransitionKey{From: "q1", Input: "a"})
}

func TestNewCompleteFunctionNoWarning(t *testing.T) {
	sink := &captureSink{}
	delta := NewTransitionFunction()
	delta.Define("q0", "a", "q0")

	_, err := New(NewStateSet("q0"), mustAlphabet(t, "a"), "q0", NewStateSet("q0"),
		delta, WithDiagnostics(sink))
	require.NoError(t, err)
	assert.Empty(t, sink.warnings)
}

func TestAutomatonImmuneToLaterDeltaMutation(t *testing.T) {
	delta := NewTransitionFunction()
	delta.Define("q0", "a", "q0")

	a, err := New(NewStateSet("q0", "q1"), mustAlphabet(t, "a"), "q0",
		NewStateSet("q0"), delta, WithDiagnostics(NopSink))
	require.NoError(t, err)

	// Redefining the source function after construction must not be
	// visible through the automaton.
	delta.Define("q0", "a", "q1")
	to, ok := a.Transitions().Apply("q0", "a")
	require.True(t, ok)
	assert.Equal(t, State("q0"), to)
}

func TestFingerprintStableAcrossDeclarationOrder(t *testing.T) {
	first, err := NewBuilder().
		States("S0", "S1").
		Symbols("0", "1").
		Initial("S0").
		Finals("S0").
		Transition("S0", "0", "S0").
		Transition("S0", "1", "S1").
		Transition("S1", "0", "S1").
		Transition("S1", "1", "S0").
		Build()
	require.NoError(t, err)

	second, err := NewBuilder().
		Symbols("1", "0").
		States("S1", "S0").
		Finals("S0").
		Initial("S0").
		Transition("S1", "1", "S0").
		Transition("S1", "0", "S1").
		Transition("S0", "1", "S1").
		Transition("S0", "0", "S0").
		Build()
	require.NoError(t, err)

	assert.Equal(t, first.Fingerprint(), second.Fingerprint())
}

func TestFingerprintDistinguishesDefinitions(t *testing.T) {
	assert.NotEqual(t, modThree(t).Fingerprint(), evenOdd(t).Fingerprint())
}

func TestAccessors(t *testing.T) {
	a := evenOdd(t)
	assert.Equal(t, State("Even"), a.InitialState())
	assert.Equal(t, []State{"Even", "Odd"}, a.States().States())
	assert.Equal(t, []Symbol{"0", "1"}, a.Alphabet().Symbols())
	assert.True(t, a.IsFinal("Even"))
	assert.False(t, a.IsFinal("Odd"))
	assert.Contains(t, a.String(), "2 states")
}
