package dfafile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/dfakit/pkg/dfa"
)

func modThreeDef() *Definition {
	return &Definition{
		Name:        "mod-three",
		States:      []string{"S0", "S1", "S2"},
		Alphabet:    []string{"0", "1"},
		Initial:     "S0",
		FinalStates: []string{"S0", "S1", "S2"},
		Transitions: map[string]string{
			"S0,0": "S0",
			"S0,1": "S1",
			"S1,0": "S2",
			"S1,1": "S0",
			"S2,0": "S1",
			"S2,1": "S2",
		},
	}
}

func TestDefinitionAutomaton(t *testing.T) {
	a, err := modThreeDef().Automaton()
	require.NoError(t, err)

	result, err := a.ExecuteString("1101")
	require.NoError(t, err)
	assert.Equal(t, dfa.State("S1"), result.FinalState)
	assert.True(t, result.Accepted)
}

func TestDefinitionAutomatonPropagatesBuildError(t *testing.T) {
	def := modThreeDef()
	def.Initial = "S9"

	_, err := def.Automaton()
	var invalid *dfa.InvalidAutomatonError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, `initial state "S9"`)
}

func TestDefinitionCustomSeparator(t *testing.T) {
	def := &Definition{
		States:      []string{"off", "on"},
		Alphabet:    []string{"toggle"},
		Initial:     "off",
		FinalStates: []string{"on"},
		Transitions: map[string]string{
			"off|toggle": "on",
			"on|toggle":  "off",
		},
		Separator: "|",
	}
	a, err := def.Automaton()
	require.NoError(t, err)

	final, accepted, err := dfa.Compile(a).Run([]dfa.Symbol{"toggle"})
	require.NoError(t, err)
	assert.Equal(t, dfa.State("on"), final)
	assert.True(t, accepted)
}

func TestFromAutomatonRoundTrip(t *testing.T) {
	original, err := modThreeDef().Automaton()
	require.NoError(t, err)

	def := FromAutomaton(original, "mod-three")
	rebuilt, err := def.Automaton()
	require.NoError(t, err)

	// Structurally identical automata share a fingerprint.
	assert.Equal(t, original.Fingerprint(), rebuilt.Fingerprint())
	assert.Equal(t, "mod-three", def.Name)
	assert.Len(t, def.Transitions, 6)
}
