package tilejson

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/gruppe-adler/usgs-dem/internal/dem"
)

// VectorLayer represents a vector layer of a tile.json
type VectorLayer struct {
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}

// TileJSON represents a tile.json
type TileJSON struct {
	TileJSON     string        `json:"tilejson"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Scheme       string        `json:"scheme"`
	Minzoom      uint8         `json:"minzoom"`
	Maxzoom      uint8         `json:"maxzoom"`
	VectorLayers []VectorLayer `json:"vector_layers,omitempty"`
}

var vectorLayerFields = map[string]map[string]string{
	"profiles": {
		"column":   "Number",
		"declared": "Number",
		"points":   "Number",
		"complete": "Boolean",
	},
	"mounts": {
		"elevation": "Number",
		"text":      "String",
	},
}

// New builds the tile.json document for a tile set rendered from a DEM file.
func New(maxLod uint8, info dem.Info, layerName string, vectorLayerNames []string) TileJSON {
	vectorLayers := make([]VectorLayer, len(vectorLayerNames))
	for i, name := range vectorLayerNames {
		fields, found := vectorLayerFields[name]
		if !found {
			fields = map[string]string{}
		}

		vectorLayers[i] = VectorLayer{ID: name, Fields: fields}
	}

	name := strings.TrimSpace(info.FileName)
	description := fmt.Sprintf("%s tiles of the elevation model '%s'", layerName, name)
	if d := strings.TrimSpace(info.Description); d != "" {
		description += " (" + d + ")"
	}

	return TileJSON{
		TileJSON:     "2.2.0",
		Name:         fmt.Sprintf("%s %s Tiles", name, layerName),
		Description:  description,
		Scheme:       "xyz",
		Minzoom:      0,
		Maxzoom:      maxLod,
		VectorLayers: vectorLayers,
	}
}

// Write a tile.json into outputDirectory
func Write(outputDirectory string, maxLod uint8, info dem.Info, layerName string, vectorLayerNames []string) error {
	bytes, err := json.MarshalIndent(New(maxLod, info, layerName, vectorLayerNames), "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(path.Join(outputDirectory, "tile.json"), bytes, 0o644)
}
