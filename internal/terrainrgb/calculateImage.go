package terrainrgb

import (
	"image"

	"github.com/gruppe-adler/usgs-dem/internal/dem"
)

// CalculateImage renders the profiles as a Terrain-RGB image. Every profile
// becomes one pixel column, its first sample at the bottom. Samples missing
// from profiles that stopped early stay transparent.
func CalculateImage(f dem.File, elevOffset float64) *image.RGBA {
	cols, rows := f.Dims()
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))

	for c, p := range f.Profiles {
		for r, z := range p.Elevations {
			img.SetRGBA(c, rows-1-r, HeightToRgb(float64(z)+elevOffset))
		}
	}

	return img
}
