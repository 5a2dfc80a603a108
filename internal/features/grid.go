package features

import (
	"github.com/gruppe-adler/usgs-dem/internal/dem"
)

// Grid places the samples of a decoded file on a regular grid. Column c
// lies at x = c * CellSize, sample r of a profile at y = r * CellSize, so
// the first sample of every profile is the southern edge.
type Grid struct {
	File     dem.File
	CellSize float64
	// Offset is added to every elevation.
	Offset float64
}

// Dims returns the number of columns and the longest profile length.
func (g Grid) Dims() (c, r int) {
	return g.File.Dims()
}

// Z returns the elevation at (c, r) including the offset.
func (g Grid) Z(c, r int) (float64, bool) {
	z, ok := g.File.Z(c, r)
	if !ok {
		return 0, false
	}
	return float64(z) + g.Offset, true
}

// X returns the coordinate for the column at the index c.
func (g Grid) X(c int) float64 {
	return float64(c) * g.CellSize
}

// Y returns the coordinate for the sample at the index r.
func (g Grid) Y(r int) float64 {
	return float64(r) * g.CellSize
}

// Bounds returns the extent of the grid in feature coordinates.
func (g Grid) Bounds() (width, height float64) {
	c, r := g.Dims()
	if c > 0 {
		width = g.X(c - 1)
	}
	if r > 0 {
		height = g.Y(r - 1)
	}
	return width, height
}

// Range returns the lowest and highest elevation in the grid.
func (g Grid) Range() (lo, hi float64, ok bool) {
	for c, p := range g.File.Profiles {
		for r := range p.Elevations {
			z, _ := g.Z(c, r)
			if !ok || z < lo {
				lo = z
			}
			if !ok || z > hi {
				hi = z
			}
			ok = true
		}
	}
	return lo, hi, ok
}
