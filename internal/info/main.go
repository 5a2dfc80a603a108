package info

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/gruppe-adler/usgs-dem/internal/dem"
	"github.com/gruppe-adler/usgs-dem/internal/logging"
	"github.com/gruppe-adler/usgs-dem/internal/report"
	"github.com/gruppe-adler/usgs-dem/internal/utils"
	"github.com/gruppe-adler/usgs-dem/internal/validate"
)

// Run is the info sub-command: it decodes the file given as the only
// positional argument and prints the report.
func Run(flagSet *flag.FlagSet, args []string, stdout io.Writer) error {
	formatPtr := flagSet.String("format", "text", "Report format: text | json")
	configPtr := flagSet.String("config", "", "Path to config file")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	inputPath := flagSet.Arg(0)
	if err := validate.InputFile(inputPath); err != nil {
		return err
	}
	if *formatPtr != "text" && *formatPtr != "json" {
		return fmt.Errorf("invalid report format %q", *formatPtr)
	}

	if _, err := utils.Setup(*configPtr); err != nil {
		return err
	}

	ctx := logging.WithInput(context.Background(), inputPath)

	if *formatPtr == "json" {
		f, err := dem.Read(inputPath)
		if err != nil {
			return err
		}
		return report.WriteJSON(stdout, f)
	}

	fmt.Fprintf(stdout, "Reading %q...", inputPath)
	f, err := dem.Read(inputPath)
	if err != nil {
		fmt.Fprintln(stdout)
		return err
	}
	fmt.Fprintln(stdout, "Done.")

	for _, p := range f.Profiles {
		if !p.Complete() {
			slog.DebugContext(ctx, "profile stopped early", "column", p.Column, "declared", p.Declared, "points", len(p.Elevations), "reason", p.Stop)
		}
	}

	return report.WriteText(stdout, f)
}
