package preview

import (
	"image"
	"image/color"
	"math"

	"github.com/gruppe-adler/usgs-dem/internal/dem"
)

// Render draws the profiles as a grayscale image, lowest elevation black and
// highest white. Profiles run bottom to top like in the terrain-rgb image;
// missing samples are black.
func Render(f dem.File) *image.Gray16 {
	cols, rows := f.Dims()
	img := image.NewGray16(image.Rect(0, 0, cols, rows))

	lo, hi := int32(math.MaxInt32), int32(math.MinInt32)
	for _, p := range f.Profiles {
		for _, z := range p.Elevations {
			if z < lo {
				lo = z
			}
			if z > hi {
				hi = z
			}
		}
	}

	span := float64(hi) - float64(lo)
	for c, p := range f.Profiles {
		for r, z := range p.Elevations {
			v := uint16(math.MaxUint16)
			if span > 0 {
				v = uint16((float64(z) - float64(lo)) / span * math.MaxUint16)
			}
			img.SetGray16(c, rows-1-r, color.Gray16{Y: v})
		}
	}

	return img
}
