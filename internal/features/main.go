package features

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/gruppe-adler/usgs-dem/internal/logging"
	"github.com/gruppe-adler/usgs-dem/internal/tilejson"
	"github.com/gruppe-adler/usgs-dem/internal/utils"
	"github.com/gruppe-adler/usgs-dem/internal/validate"
)

var layerNames = []string{"profiles", "contours", "mounts"}

// Run is the features sub-command: it writes profile traces, contour lines
// and mounts as GeoJSON plus one vector tile holding all three layers.
func Run(flagSet *flag.FlagSet, args []string, stdout io.Writer) error {
	start := time.Now()

	outputPtr := flagSet.String("out", "", "Path to output directory")
	inputPtr := flagSet.String("in", "", "Path to DEM file")
	configPtr := flagSet.String("config", "", "Path to config file")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if err := validate.InputFile(*inputPtr); err != nil {
		return err
	}
	if err := validate.OutputDirectory(*outputPtr); err != nil {
		return err
	}

	cfg, err := utils.Setup(*configPtr)
	if err != nil {
		return err
	}

	ctx := logging.WithInput(context.Background(), *inputPtr)

	f, err := utils.LoadDEM(ctx, *inputPtr)
	if err != nil {
		return err
	}

	grid := Grid{File: f, CellSize: cfg.CellSize, Offset: cfg.ElevationOffset}

	timer := time.Now()
	collections := map[string]*geojson.FeatureCollection{
		"profiles": Profiles(grid),
		"contours": Contours(grid, cfg.ContourInterval, cfg.Simplify),
		"mounts":   Mounts(grid),
	}
	slog.InfoContext(ctx, "built features",
		"profiles", len(collections["profiles"].Features),
		"contours", len(collections["contours"].Features),
		"mounts", len(collections["mounts"].Features),
		"took", time.Since(timer).String())

	for _, name := range layerNames {
		if err := writeGeoJSON(path.Join(*outputPtr, name+".geojson"), collections[name]); err != nil {
			return err
		}
	}

	data, err := VectorTile(grid, collections)
	if err != nil {
		return fmt.Errorf("encode vector tile: %w", err)
	}
	if err := os.WriteFile(path.Join(*outputPtr, "features.pbf"), data, 0o644); err != nil {
		return err
	}

	if err := tilejson.Write(*outputPtr, 0, f.Info, "Mapbox Vector", layerNames); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %d layers to %s in %s\n", len(layerNames), *outputPtr, time.Since(start).String())

	return nil
}

func writeGeoJSON(filePath string, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, data, 0o644)
}
