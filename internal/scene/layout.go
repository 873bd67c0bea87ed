package scene

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

//go:embed layout.yaml
var defaultLayoutYAML []byte

// Layout is the static placement data for walls, crystals and the base.
type Layout struct {
	Walls         Walls
	Crystals      []mgl64.Vec3
	CrystalColors []Color
	Base          mgl64.Vec3
}

type layoutFile struct {
	Walls         [][][]float64 `yaml:"walls"`
	Crystals      [][]float64   `yaml:"crystals"`
	CrystalColors [][]float64   `yaml:"crystalColors"`
	Base          []float64     `yaml:"base"`
}

// DefaultLayout decodes the embedded layout.
func DefaultLayout() (Layout, error) {
	return ParseLayout(defaultLayoutYAML)
}

// LoadLayout reads a layout file from disk.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout: %w", err)
	}
	return ParseLayout(data)
}

// ParseLayout decodes YAML layout data and validates every tuple length.
func ParseLayout(data []byte) (Layout, error) {
	var f layoutFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}

	var l Layout
	for i, w := range f.Walls {
		if len(w) != 2 || len(w[0]) != 2 || len(w[1]) != 2 {
			return Layout{}, fmt.Errorf("wall %d: want two [x, z] corners", i)
		}
		l.Walls = append(l.Walls, NewWallBox(w[0][0], w[0][1], w[1][0], w[1][1]))
	}
	for i, c := range f.Crystals {
		if len(c) != 3 {
			return Layout{}, fmt.Errorf("crystal %d: want [x, y, z]", i)
		}
		l.Crystals = append(l.Crystals, mgl64.Vec3{c[0], c[1], c[2]})
	}
	for i, c := range f.CrystalColors {
		if len(c) != 4 {
			return Layout{}, fmt.Errorf("crystal color %d: want [r, g, b, a]", i)
		}
		l.CrystalColors = append(l.CrystalColors, Color{R: c[0], G: c[1], B: c[2], A: c[3]})
	}
	if len(l.CrystalColors) == 0 {
		return Layout{}, fmt.Errorf("layout has no crystal colors")
	}
	if f.Base != nil {
		if len(f.Base) != 3 {
			return Layout{}, fmt.Errorf("base: want [x, y, z]")
		}
		l.Base = mgl64.Vec3{f.Base[0], f.Base[1], f.Base[2]}
	}
	return l, nil
}
