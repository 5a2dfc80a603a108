package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "USGSDEM"

// Config holds the settings used by the sub-commands.
type Config struct {
	LogLevel  string
	LogFormat string

	// ElevationOffset is added to every sample before rendering.
	ElevationOffset float64
	PreviewSizes    []uint

	// CellSize is the distance between samples in feature coordinates.
	CellSize float64
	// ContourInterval is the elevation step between contour lines.
	ContourInterval float64
	// Simplify is the Douglas-Peucker threshold for contour lines, 0 disables it.
	Simplify float64

	Compression string
}

func defaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("render.elevation_offset", 0.0)
	v.SetDefault("render.preview_sizes", "128,256,512,1024")
	v.SetDefault("features.cell_size", 30.0)
	v.SetDefault("features.contour_interval", 10.0)
	v.SetDefault("features.simplify", 0.0)
	v.SetDefault("export.compression", "snappy")
}

// Load reads the configuration. An empty path skips the config file.
func Load(path string) (*Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	sizes, err := parseSizes(v.GetStringSlice("render.preview_sizes"))
	if err != nil {
		return nil, err
	}

	cellSize := v.GetFloat64("features.cell_size")
	if cellSize <= 0 {
		return nil, fmt.Errorf("features.cell_size must be greater than 0")
	}

	return &Config{
		LogLevel:        v.GetString("log.level"),
		LogFormat:       v.GetString("log.format"),
		ElevationOffset: v.GetFloat64("render.elevation_offset"),
		PreviewSizes:    sizes,
		CellSize:        cellSize,
		ContourInterval: v.GetFloat64("features.contour_interval"),
		Simplify:        v.GetFloat64("features.simplify"),
		Compression:     strings.ToLower(v.GetString("export.compression")),
	}, nil
}

// parseSizes accepts both list values and comma separated strings.
func parseSizes(values []string) ([]uint, error) {
	var sizes []uint

	for _, value := range values {
		for _, s := range strings.Split(value, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}

			n, err := strconv.ParseUint(s, 10, 32)
			if err != nil || n == 0 {
				return nil, fmt.Errorf("invalid preview size %q", s)
			}
			sizes = append(sizes, uint(n))
		}
	}

	return sizes, nil
}
