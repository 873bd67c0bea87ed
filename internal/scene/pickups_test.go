package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrystalCollectedOnce(t *testing.T) {
	cs := NewCrystalSystem([]mgl64.Vec3{{0, 0, 0}}, []Color{Palette.White})

	calls := 0
	onCollect := func(int) { calls++ }

	assert.Equal(t, 1, cs.Check(1, 1, onCollect))
	assert.False(t, cs.Crystals[0].Live)
	assert.Equal(t, 0, cs.Check(1, 1, onCollect))
	assert.Equal(t, 1, calls)

	cs.Respawn()
	cs.Respawn()
	assert.True(t, cs.Crystals[0].Live)
	assert.Equal(t, 1, cs.Check(1, 1, onCollect))
	assert.Equal(t, 2, calls)
}

func TestCrystalHitboxUsesScaledLocation(t *testing.T) {
	cs := NewCrystalSystem([]mgl64.Vec3{{20, 0, -30}}, []Color{Palette.White})

	assert.False(t, cs.Hits(0, 20, -30))
	assert.True(t, cs.Hits(0, 10, -15))
	assert.True(t, cs.Hits(0, 12.5, -17.5))
	assert.False(t, cs.Hits(0, 12.6, -15))
}

func TestCrystalColorsCycle(t *testing.T) {
	l, err := DefaultLayout()
	require.NoError(t, err)

	cs := NewCrystalSystem(l.Crystals, l.CrystalColors)
	require.Len(t, cs.Crystals, 28)
	assert.Equal(t, l.CrystalColors[0], cs.Crystals[5].Color)
	assert.Equal(t, l.CrystalColors[2], cs.Crystals[7].Color)
	assert.Equal(t, 28, cs.LiveCount())
}

func TestCrystalSystemWithoutColors(t *testing.T) {
	locs := []mgl64.Vec3{{1, 0, 1}, {2, 0, 2}}
	var cs *CrystalSystem
	require.NotPanics(t, func() { cs = NewCrystalSystem(locs, nil) })
	require.Len(t, cs.Crystals, 2)
	for _, c := range cs.Crystals {
		assert.Equal(t, Palette.White, c.Color)
	}
}
