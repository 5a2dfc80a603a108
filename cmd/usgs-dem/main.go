package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gruppe-adler/usgs-dem/internal/export"
	"github.com/gruppe-adler/usgs-dem/internal/features"
	"github.com/gruppe-adler/usgs-dem/internal/info"
	"github.com/gruppe-adler/usgs-dem/internal/preview"
	"github.com/gruppe-adler/usgs-dem/internal/terrainrgb"
)

type command struct {
	name        string
	description string
	run         func(*flag.FlagSet, []string, io.Writer) error
}

var subCommands []command

func init() {
	subCommands = []command{
		{"info", "Decode a DEM file and print its header and profiles.", info.Run},
		{"terrainrgb", "Build Terrain-RGB tiles (mbtiles) from a DEM file.", terrainrgb.Run},
		{"preview", "Build grayscale preview images from a DEM file.", preview.Run},
		{"features", "Build profile, contour and mount layers (GeoJSON and MVT).", features.Run},
		{"export", "Export decoded profiles as parquet or csv.", export.Run},
		{"help", "Print this message.", func(*flag.FlagSet, []string, io.Writer) error {
			printUsage(os.Stdout)
			return nil
		}},
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "USAGE:\n    %s [SUBCOMMAND] [SUBCOMMAND FLAGS]\n    %s <DEM file>\n\n", os.Args[0], os.Args[0])
	fmt.Fprint(w, "SUBCOMMANDS: \n")

	for _, c := range subCommands {
		fmt.Fprintf(w, "%12s    %s\n", c.name, c.description)
	}

	fmt.Fprintf(w, "\nUse -h as SUBCOMMAND FLAG to print help for each subcommand.\n\n")
}

// lookup returns the sub-command for args. A first argument that is not a
// sub-command name is the input file of info.
func lookup(args []string) (command, []string) {
	for _, c := range subCommands {
		if c.name == args[0] {
			return c, args[1:]
		}
	}
	return subCommands[0], args
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "No input file specified.")
		printUsage(os.Stderr)
		os.Exit(-1)
	}

	cmd, args := lookup(os.Args[1:])

	set := flag.NewFlagSet(cmd.name, flag.ExitOnError)
	if err := cmd.run(set, args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(-1)
	}
}
