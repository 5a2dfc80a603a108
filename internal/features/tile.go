package features

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/project"
)

const tileSize = mvt.DefaultExtent

// VectorTile encodes the layers as a single gzipped Mapbox vector tile
// covering the whole grid. The longer grid edge spans the tile extent and
// y grows downwards as the tile format expects. The collections are not
// modified.
func VectorTile(grid Grid, collections map[string]*geojson.FeatureCollection) ([]byte, error) {
	width, height := grid.Bounds()
	size := width
	if height > size {
		size = height
	}

	factor := 1.0
	if size > 0 {
		factor = float64(tileSize) / size
	}

	clones := make(map[string]*geojson.FeatureCollection, len(collections))
	for name, fc := range collections {
		clones[name] = DeepCloneFeatureCollection(fc)
	}

	layers := mvt.NewLayers(clones)
	for _, l := range layers {
		l.Version = 2
		for _, f := range l.Features {
			f.Geometry = project.Geometry(f.Geometry, func(p orb.Point) orb.Point {
				return orb.Point{p[0] * factor, (height - p[1]) * factor}
			})
		}
	}

	layers.Clip(mvt.MapboxGLDefaultExtentBound)
	layers.RemoveEmpty(0, 0)

	return mvt.MarshalGzipped(layers)
}
