package export

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gruppe-adler/usgs-dem/internal/logging"
	"github.com/gruppe-adler/usgs-dem/internal/utils"
	"github.com/gruppe-adler/usgs-dem/internal/validate"
)

// Run is the export sub-command: it writes the decoded profiles as a
// parquet or csv file.
func Run(flagSet *flag.FlagSet, args []string, stdout io.Writer) error {
	start := time.Now()

	outputPtr := flagSet.String("out", "", "Path to output file")
	inputPtr := flagSet.String("in", "", "Path to DEM file")
	formatPtr := flagSet.String("format", "parquet", "Output format: parquet | csv")
	configPtr := flagSet.String("config", "", "Path to config file")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if err := validate.InputFile(*inputPtr); err != nil {
		return err
	}
	if *outputPtr == "" {
		return fmt.Errorf("no output file specified")
	}
	if *formatPtr != "parquet" && *formatPtr != "csv" {
		return fmt.Errorf("invalid output format %q", *formatPtr)
	}

	cfg, err := utils.Setup(*configPtr)
	if err != nil {
		return err
	}

	codec, err := Codec(cfg.Compression)
	if err != nil {
		return err
	}

	ctx := logging.WithInput(context.Background(), *inputPtr)

	f, err := utils.LoadDEM(ctx, *inputPtr)
	if err != nil {
		return err
	}

	out, err := os.Create(*outputPtr)
	if err != nil {
		return err
	}

	if *formatPtr == "csv" {
		err = CSV(out, f)
	} else {
		err = Parquet(out, f, codec)
	}

	// the parquet writer already closed the file
	if cerr := out.Close(); err == nil && !errors.Is(cerr, os.ErrClosed) {
		err = cerr
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Exported %d profiles to %s in %s\n", len(f.Profiles), *outputPtr, time.Since(start).String())

	return nil
}
