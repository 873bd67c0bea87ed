package scene

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a linear RGBA colour with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Hex parses "#rrggbb" or "rrggbb" into an opaque colour. It panics on
// malformed input since every call site passes a literal.
func Hex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("hex colour %q: want 6 digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("hex colour %q: %w", s, err)
	}
	return Color{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
		A: 1,
	}, nil
}

func (c Color) Float32() [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

var Palette = struct {
	White      Color
	Black      Color
	Mars       Color
	RoverBody  Color
	RoverWheel Color
	RoverSolar Color
	RoverRadio Color
	BaseMiddle Color
}{
	White:      Color{1, 1, 1, 1},
	Black:      Hex("#000000"),
	Mars:       Hex("#ffa436"),
	RoverBody:  Hex("#fff652"),
	RoverWheel: Hex("#858585"),
	RoverSolar: Hex("#0015ff"),
	RoverRadio: Hex("#858585"),
	BaseMiddle: Hex("#fff305"),
}

// RoverPart indexes the recolourable rover parts.
type RoverPart int

const (
	PartBody RoverPart = iota
	PartWheel
	PartSolarPanels
	PartRadio

	roverPartCount
)

// RoverColors holds one colour per rover part.
type RoverColors [roverPartCount]Color

func DefaultRoverColors() RoverColors {
	return RoverColors{Palette.RoverBody, Palette.RoverWheel, Palette.RoverSolar, Palette.RoverRadio}
}

// RandomRoverColors picks an opaque random colour for every part.
func RandomRoverColors(r *Rand) RoverColors {
	var rc RoverColors
	for i := range rc {
		rc[i] = Color{R: r.Float64(), G: r.Float64(), B: r.Float64(), A: 1}
	}
	return rc
}
