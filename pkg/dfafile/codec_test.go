package dfafile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modThreeJSON = `{
  "name": "mod-three",
  "states": ["S0", "S1", "S2"],
  "alphabet": ["0", "1"],
  "initialState": "S0",
  "finalStates": ["S0", "S1", "S2"],
  "transitions": {
    "S0,0": "S0",
    "S0,1": "S1",
    "S1,0": "S2",
    "S1,1": "S0",
    "S2,0": "S1",
    "S2,1": "S2"
  }
}`

const evenOddYAML = `name: even-odd
states: [Even, Odd]
alphabet: ["0", "1"]
initialState: Even
finalStates: [Even]
transitions:
  "Even,0": Even
  "Even,1": Odd
  "Odd,0": Odd
  "Odd,1": Even
`

func TestParseJSON(t *testing.T) {
	def, err := ParseJSON([]byte(modThreeJSON))
	require.NoError(t, err)
	assert.Equal(t, "mod-three", def.Name)
	assert.Equal(t, "S0", def.Initial)
	assert.Len(t, def.Transitions, 6)

	a, err := def.Automaton()
	require.NoError(t, err)
	result, err := a.ExecuteString("1110")
	require.NoError(t, err)
	assert.Equal(t, "S2", string(result.FinalState))
}

func TestParseJSONMalformed(t *testing.T) {
	_, err := ParseJSON([]byte("{not json"))
	require.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	def, err := ParseJSON([]byte(modThreeJSON))
	require.NoError(t, err)

	data, err := ToJSON(def, true)
	require.NoError(t, err)

	again, err := ParseJSON(data)
	require.NoError(t, err)
	assert.Equal(t, def, again)
}

func TestParseYAML(t *testing.T) {
	def, err := ParseYAML([]byte(evenOddYAML))
	require.NoError(t, err)

	a, err := def.Automaton()
	require.NoError(t, err)
	result, err := a.ExecuteString("110101")
	require.NoError(t, err)
	assert.Equal(t, "Odd", string(result.FinalState))
	assert.False(t, result.Accepted)
}

func TestYAMLRoundTrip(t *testing.T) {
	def, err := ParseYAML([]byte(evenOddYAML))
	require.NoError(t, err)

	data, err := ToYAML(def)
	require.NoError(t, err)

	again, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, def, again)
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"m.json", "m.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, modThreeDef(), true))

		def, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, modThreeDef(), def)
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "m.toml"))
	require.Error(t, err)
}

func TestSaveUnknownExtension(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "m.toml"), modThreeDef(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown definition file format")
}
