package terrainrgb

import (
	"image/color"
)

/*
	Terrain-RGB encodes a height in the three colour channels:

	height = -10000 + ((R * 256 * 256 + G * 256 + B) * 0.1)

	Solving for x = (R * 256 * 256 + G * 256 + B) gives x = 10 * height + 100000,
	and R, G and B are the base 256 digits of x.
*/

const maxX = 256*256*256 - 1

// HeightToRgb calculates rgb values from height
func HeightToRgb(height float64) color.RGBA {
	x := int64(10*height + 100000)
	if x < 0 {
		x = 0
	}
	if x > maxX {
		x = maxX
	}

	return color.RGBA{
		R: uint8(x >> 16),
		G: uint8(x >> 8),
		B: uint8(x),
		A: 255,
	}
}

// RgbToHeight calculates height from given rgb values
func RgbToHeight(c color.RGBA) float64 {
	x := int64(c.R)<<16 | int64(c.G)<<8 | int64(c.B)

	return -10000.0 + float64(x)*0.1
}
