package scene

import "github.com/go-gl/mathgl/mgl64"

// Crystal is a collectible. Collected crystals stay in the scene and render
// as their broken variant.
type Crystal struct {
	Location mgl64.Vec3
	Color    Color
	Live     bool
}

type CrystalSystem struct {
	Crystals []Crystal
	// Hitbox is the half-width of the square collection test.
	Hitbox float64
	// MagicScale maps layout coordinates into rover collision space (x and z only).
	MagicScale float64
}

func NewCrystalSystem(locations []mgl64.Vec3, colors []Color) *CrystalSystem {
	cs := &CrystalSystem{
		Crystals:   make([]Crystal, len(locations)),
		Hitbox:     CollisionHitbox,
		MagicScale: CollisionMagicScale,
	}
	if len(colors) == 0 {
		colors = []Color{Palette.White}
	}
	for i, loc := range locations {
		cs.Crystals[i] = Crystal{
			Location: loc,
			Color:    colors[i%len(colors)],
			Live:     true,
		}
	}
	return cs
}

// Respawn makes every crystal live again.
func (cs *CrystalSystem) Respawn() {
	for i := range cs.Crystals {
		cs.Crystals[i].Live = true
	}
}

// Hits reports whether crystal i overlaps a rover at (x, z), ignoring Live.
func (cs *CrystalSystem) Hits(i int, x, z float64) bool {
	c := &cs.Crystals[i]
	cx := c.Location.X() * cs.MagicScale
	cz := c.Location.Z() * cs.MagicScale
	return cx <= x+cs.Hitbox && cx >= x-cs.Hitbox &&
		cz <= z+cs.Hitbox && cz >= z-cs.Hitbox
}

// Check collects every live crystal touching the rover at (x, z) and calls
// onCollect once per newly collected crystal.
func (cs *CrystalSystem) Check(x, z float64, onCollect func(i int)) int {
	n := 0
	for i := range cs.Crystals {
		if !cs.Crystals[i].Live || !cs.Hits(i, x, z) {
			continue
		}
		cs.Crystals[i].Live = false
		n++
		if onCollect != nil {
			onCollect(i)
		}
	}
	return n
}

func (cs *CrystalSystem) LiveCount() int {
	n := 0
	for _, c := range cs.Crystals {
		if c.Live {
			n++
		}
	}
	return n
}
