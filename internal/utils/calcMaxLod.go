package utils

import (
	"image"
	"math"
)

// CalcMaxLodFromImage calculates the maximum LOD based on the larger edge of img
func CalcMaxLodFromImage(img image.Image) uint8 {
	w := img.Bounds().Dx()
	if h := img.Bounds().Dy(); h > w {
		w = h
	}

	tilesPerRowCol := math.Ceil(float64(w) / TileSize)
	if tilesPerRowCol <= 1 {
		return 0
	}

	return uint8(math.Ceil(math.Log2(tilesPerRowCol)))
}
