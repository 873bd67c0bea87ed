package mesh

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// hash2D returns a deterministic 64-bit hash for (x,y) under the given seed.
func hash2D(seed uint64, x, y int) uint64 {
	ux := uint64(uint32(x))
	uy := uint64(uint32(y))
	h := seed
	h ^= ux * 0x9E3779B185EBCA87
	h ^= uy * 0xC2B2AE3D27D4EB4F
	return splitmix64(h)
}

// unit maps a hash to [0, 1).
func unit(h uint64) float64 {
	return float64(h>>11) * (1.0 / (1 << 53))
}

func smoothstep(t float64) float64 { return t * t * (3 - 2*t) }

func floorInt(v float64) int {
	i := int(v)
	if float64(i) > v {
		i--
	}
	return i
}

// valueNoise is bilinear value noise on the integer lattice, in [0, 1).
func valueNoise(seed uint64, x, y float64) float64 {
	x0, y0 := floorInt(x), floorInt(y)
	tx, ty := smoothstep(x-float64(x0)), smoothstep(y-float64(y0))

	a := unit(hash2D(seed, x0, y0))
	b := unit(hash2D(seed, x0+1, y0))
	c := unit(hash2D(seed, x0, y0+1))
	d := unit(hash2D(seed, x0+1, y0+1))

	top := a + (b-a)*tx
	bot := c + (d-c)*tx
	return top + (bot-top)*ty
}

// fbm sums octaves of value noise, normalized back to [0, 1).
func fbm(seed uint64, x, y float64, octaves int) float64 {
	sum, amp, norm := 0.0, 1.0, 0.0
	for o := 0; o < octaves; o++ {
		sum += amp * valueNoise(seed+uint64(o)*0x632BE59BD9B4E019, x, y)
		norm += amp
		amp *= 0.5
		x *= 2
		y *= 2
	}
	return sum / norm
}
