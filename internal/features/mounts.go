package features

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Mounts finds the peaks of the grid: samples above sea level whose eight
// direct neighbours are all lower. Edge samples are never peaks. The result
// is ordered by ascending elevation.
func Mounts(grid Grid) *geojson.FeatureCollection {
	mounts := geojson.NewFeatureCollection()
	cols, rows := grid.Dims()

	for col := 1; col < cols-1; col++ {
		for row := 1; row < rows-1; row++ {
			elevation, ok := grid.Z(col, row)

			// we'll only create mounts for peaks, which are above the water level
			if !ok || elevation <= 0 {
				continue
			}

			if !isPeak(grid, col, row, elevation) {
				continue
			}

			feature := geojson.NewFeature(orb.Point{grid.X(col), grid.Y(row)})
			feature.Properties["elevation"] = elevation
			feature.Properties["text"] = fmt.Sprintf("%.0f", math.Round(elevation))
			mounts.Append(feature)
		}
	}

	sort.SliceStable(mounts.Features, func(i, j int) bool {
		return mounts.Features[i].Properties["elevation"].(float64) < mounts.Features[j].Properties["elevation"].(float64)
	})

	return mounts
}

// isPeak compares the sample with all direct neighbours. Equal or missing
// neighbours disqualify it so that plateaus do not produce mounts.
func isPeak(grid Grid, col, row int, elevation float64) bool {
	for c := col - 1; c <= col+1; c++ {
		for r := row - 1; r <= row+1; r++ {
			if c == col && r == row {
				continue
			}

			z, ok := grid.Z(c, r)
			if !ok || z >= elevation {
				return false
			}
		}
	}
	return true
}
