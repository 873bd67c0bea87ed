package mesh

import (
	"image"
	"image/color"
)

// tiledNoise is value noise whose lattice wraps every period cells.
func tiledNoise(seed uint64, x, y float64, period int) float64 {
	x0, y0 := floorInt(x), floorInt(y)
	tx, ty := smoothstep(x-float64(x0)), smoothstep(y-float64(y0))
	wrap := func(v int) int {
		v %= period
		if v < 0 {
			v += period
		}
		return v
	}
	xa, xb := wrap(x0), wrap(x0+1)
	ya, yb := wrap(y0), wrap(y0+1)

	a := unit(hash2D(seed, xa, ya))
	b := unit(hash2D(seed, xb, ya))
	c := unit(hash2D(seed, xa, yb))
	d := unit(hash2D(seed, xb, yb))

	top := a + (b-a)*tx
	bot := c + (d-c)*tx
	return top + (bot-top)*ty
}

func gray(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Soil is a seamless grey grain texture; the material colour tints it.
func Soil(size int, seed uint64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	const cells = 8
	scale := float64(cells) / float64(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x)*scale, float64(y)*scale
			n, amp, norm, period := 0.0, 1.0, 0.0, cells
			for o := 0; o < 4; o++ {
				n += amp * tiledNoise(seed+uint64(o), fx, fy, period)
				norm += amp
				amp *= 0.5
				fx, fy = fx*2, fy*2
				period *= 2
			}
			n /= norm
			grain := unit(hash2D(seed^0x5EED, x, y)) - 0.5
			v := 0.62 + 0.35*n + 0.06*grain
			g := gray(v)
			img.SetRGBA(x, y, color.RGBA{R: g, G: g, B: g, A: 255})
		}
	}
	return img
}

// NightSky is black with scattered stars and a faint band of haze.
func NightSky(size int, seed uint64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	period := max(size/16, 1)
	for y := 0; y < size; y++ {
		band := 1 - 2*abs(float64(y)/float64(size)-0.5)
		for x := 0; x < size; x++ {
			haze := 0.05 * band * band * tiledNoise(seed, float64(x)/16, float64(y)/16, period)
			v := haze
			if h := hash2D(seed, x, y); unit(h) < 0.0025 {
				v += 0.4 + 0.6*unit(splitmix64(h))
			}
			g := gray(v)
			img.SetRGBA(x, y, color.RGBA{R: g, G: g, B: gray(v * 1.1), A: 255})
		}
	}
	return img
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
