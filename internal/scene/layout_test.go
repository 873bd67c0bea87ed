package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout(t *testing.T) {
	l, err := DefaultLayout()
	require.NoError(t, err)

	assert.Len(t, l.Walls, 10)
	assert.Len(t, l.Crystals, 28)
	assert.Len(t, l.CrystalColors, 5)
	assert.Equal(t, mgl64.Vec3{45, 0, 150}, l.Base)
	assert.Equal(t, NewWallBox(-4.7, -27.6, 55, -85), l.Walls[0])
	assert.False(t, l.Walls.Collides(0, 0), "rover spawn must be clear")
}

func TestParseLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "walls: [[["},
		{"short wall", "walls:\n  - [[1, 2]]\ncrystalColors:\n  - [1, 1, 1, 1]\n"},
		{"short crystal", "crystals:\n  - [1, 2]\ncrystalColors:\n  - [1, 1, 1, 1]\n"},
		{"short color", "crystalColors:\n  - [1, 1, 1]\n"},
		{"no colors", "crystals:\n  - [1, 2, 3]\n"},
		{"short base", "crystalColors:\n  - [1, 1, 1, 1]\nbase: [1, 2]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.yaml")
	data := "walls:\n  - [[0, 0], [1, 1]]\ncrystals:\n  - [2, 0, 2]\ncrystalColors:\n  - [1, 0, 0, 1]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	l, err := LoadLayout(path)
	require.NoError(t, err)
	assert.Len(t, l.Walls, 1)
	assert.Equal(t, []mgl64.Vec3{{2, 0, 2}}, l.Crystals)

	_, err = LoadLayout(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
