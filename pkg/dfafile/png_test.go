package dfafile

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPNG(t *testing.T) {
	a, err := modThreeDef().Automaton()
	require.NoError(t, err)

	opts := DefaultPNGOptions()
	opts.Width = 400
	opts.Height = 300
	opts.Title = "mod three"

	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, a, opts))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 400, bounds.Dx())
	assert.Equal(t, 300, bounds.Dy())
}

func TestRenderPNGSingleState(t *testing.T) {
	def := &Definition{
		States:      []string{"only"},
		Alphabet:    []string{"a"},
		Initial:     "only",
		FinalStates: []string{"only"},
		Transitions: map[string]string{"only,a": "only"},
	}
	a, err := def.Automaton()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, a, DefaultPNGOptions()))
	assert.NotZero(t, buf.Len())
}
