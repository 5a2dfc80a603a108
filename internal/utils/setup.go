package utils

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gruppe-adler/usgs-dem/internal/config"
	"github.com/gruppe-adler/usgs-dem/internal/dem"
	"github.com/gruppe-adler/usgs-dem/internal/logging"
)

// Setup loads the configuration and installs the default logger.
func Setup(configPath string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		logging.Init(os.Stderr, "info", "text")
		return nil, err
	}

	logging.Init(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	return cfg, nil
}

// LoadDEM decodes the DEM at inputPath and logs how long it took and which
// profiles stopped early.
func LoadDEM(ctx context.Context, inputPath string) (dem.File, error) {
	timer := time.Now()
	slog.InfoContext(ctx, "loading DEM")

	logger := slog.Default().With("input", inputPath)
	f, err := dem.Read(inputPath, dem.WithLogger(logger))
	if err != nil {
		return dem.File{}, err
	}

	partial := 0
	for _, p := range f.Profiles {
		if !p.Complete() {
			partial++
			slog.DebugContext(ctx, "profile stopped early", "column", p.Column, "declared", p.Declared, "points", len(p.Elevations), "reason", p.Stop)
		}
	}

	slog.InfoContext(ctx, "loaded DEM", "columns", f.Info.Columns, "rows", f.Info.Rows, "partial", partial, "took", time.Since(timer).String())

	return f, nil
}
