package features

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// CloneFeature deep clones given feature
func CloneFeature(f *geojson.Feature) *geojson.Feature {
	newFeature := geojson.NewFeature(orb.Clone(f.Geometry))

	newFeature.ID = f.ID
	newFeature.Type = f.Type
	newFeature.Properties = f.Properties.Clone()
	newFeature.BBox = append(geojson.BBox(nil), f.BBox...)

	return newFeature
}

// DeepCloneFeatureCollection deep clones given feature collection
func DeepCloneFeatureCollection(fc *geojson.FeatureCollection) *geojson.FeatureCollection {
	newFc := geojson.NewFeatureCollection()

	newFc.Features = make([]*geojson.Feature, len(fc.Features))
	for i, f := range fc.Features {
		newFc.Features[i] = CloneFeature(f)
	}
	newFc.BBox = append(geojson.BBox(nil), fc.BBox...)

	return newFc
}
