package features

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"
)

// Contours builds contour lines every interval metres. Lines are simplified
// with the Douglas-Peucker threshold tolerance unless it is 0.
func Contours(grid Grid, interval, tolerance float64) *geojson.FeatureCollection {
	contours := geojson.NewFeatureCollection()

	lo, hi, ok := grid.Range()
	if !ok || interval <= 0 {
		return contours
	}

	var simplifier *simplify.DouglasPeuckerSimplifier
	if tolerance > 0 {
		simplifier = simplify.DouglasPeucker(tolerance)
	}

	for height := math.Floor(lo/interval) * interval; height <= hi; height += interval {
		for _, line := range MarchingSquares(grid, height) {
			if simplifier != nil {
				line = simplifier.LineString(line)
			}
			if len(line) < 2 {
				continue
			}

			f := geojson.NewFeature(line)
			f.Properties["elevation"] = height
			contours.Append(f)
		}
	}

	return contours
}

// Profiles builds one line per profile along its ground trace, from the first
// to the last decoded sample.
func Profiles(grid Grid) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for c, p := range grid.File.Profiles {
		if len(p.Elevations) == 0 {
			continue
		}

		line := orb.LineString{
			orb.Point{grid.X(c), grid.Y(0)},
			orb.Point{grid.X(c), grid.Y(len(p.Elevations) - 1)},
		}

		f := geojson.NewFeature(line)
		f.Properties["column"] = p.Column
		f.Properties["declared"] = p.Declared
		f.Properties["points"] = len(p.Elevations)
		f.Properties["complete"] = p.Complete()
		fc.Append(f)
	}

	return fc
}
