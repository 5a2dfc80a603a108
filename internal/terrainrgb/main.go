package terrainrgb

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gruppe-adler/usgs-dem/internal/logging"
	"github.com/gruppe-adler/usgs-dem/internal/mbtiles"
	"github.com/gruppe-adler/usgs-dem/internal/tilejson"
	"github.com/gruppe-adler/usgs-dem/internal/utils"
	"github.com/gruppe-adler/usgs-dem/internal/validate"
)

// MBTilesName is the file the tiles are stored in.
const MBTilesName = "terrainrgb.mbtiles"

// Run is the terrainrgb sub-command: it renders the DEM as Terrain-RGB
// tiles into an mbtiles file and writes a matching tile.json.
func Run(flagSet *flag.FlagSet, args []string, stdout io.Writer) (err error) {
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

	timer := time.Now()
	img := CalculateImage(f, cfg.ElevationOffset)
	maxLod := utils.CalcMaxLodFromImage(img)
	slog.InfoContext(ctx, "calculated image", "width", img.Bounds().Dx(), "height", img.Bounds().Dy(), "maxLod", maxLod, "took", time.Since(timer).String())

	name := strings.TrimSpace(f.Info.FileName)
	mbt, err := mbtiles.Open(path.Join(*outputPtr, MBTilesName), name, "png")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := mbt.Close(); err == nil {
			err = cerr
		}
	}()

	err = mbt.InsertMeta(map[string]string{
		"type":        "baselayer",
		"description": strings.TrimSpace(f.Info.Description),
		"minzoom":     "0",
		"maxzoom":     strconv.Itoa(int(maxLod)),
		"encoding":    "terrain-rgb",
	})
	if err != nil {
		return err
	}

	for lod := uint8(0); lod <= maxLod; lod++ {
		timer = time.Now()
		if err := utils.BuildTileSet(ctx, lod, img, mbt.InsertTile); err != nil {
			return fmt.Errorf("build tiles for LOD %d: %w", lod, err)
		}
		slog.InfoContext(ctx, "finished tiles", "lod", lod, "took", time.Since(timer).String())
	}

	if err := tilejson.Write(*outputPtr, maxLod, f.Info, "Mapbox Terrain-RGB", nil); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %d LODs to %s in %s\n", int(maxLod)+1, path.Join(*outputPtr, MBTilesName), time.Since(start).String())

	return nil
}
