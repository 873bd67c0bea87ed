package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff8000")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, eps)
	assert.InDelta(t, 128.0/255, c.G, eps)
	assert.InDelta(t, 0.0, c.B, eps)
	assert.Equal(t, 1.0, c.A)

	_, err = ParseHex("fff")
	assert.Error(t, err)
	_, err = ParseHex("#zzzzzz")
	assert.Error(t, err)
	assert.Panics(t, func() { Hex("nope") })
}

func TestRandomRoverColorsOpaque(t *testing.T) {
	rc := RandomRoverColors(NewRand(7))
	for _, c := range rc {
		assert.Equal(t, 1.0, c.A)
		assert.GreaterOrEqual(t, c.R, 0.0)
		assert.Less(t, c.R, 1.0)
	}
	assert.NotEqual(t, DefaultRoverColors(), rc)
}

func TestMaterialWithLeavesBaseUntouched(t *testing.T) {
	red := Color{1, 0, 0, 1}
	m := Materials.Rover.WithColor(red).WithAmbient(0.9)

	assert.Equal(t, red, m.Color)
	assert.Equal(t, 0.9, m.Ambient)
	assert.Equal(t, Palette.Mars, Materials.Rover.Color)
	assert.Equal(t, 0.5, Materials.Rover.Ambient)
}
