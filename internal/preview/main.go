package preview

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/nfnt/resize"
	"golang.org/x/sync/errgroup"

	"github.com/gruppe-adler/usgs-dem/internal/logging"
	"github.com/gruppe-adler/usgs-dem/internal/utils"
	"github.com/gruppe-adler/usgs-dem/internal/validate"
)

// Run is the preview sub-command: it writes a grayscale rendering of the
// DEM at full resolution and scaled to every configured height.
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

	img := Render(f)
	if img.Bounds().Empty() {
		return fmt.Errorf("%s has no samples to render", *inputPtr)
	}

	if err := Build(ctx, img, *outputPtr, cfg.PreviewSizes); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %d preview images to %s in %s\n", len(cfg.PreviewSizes)+1, *outputPtr, time.Since(start).String())

	return nil
}

// Build writes img as preview.png and, for every size, a copy scaled to that
// height as preview_<size>.png.
func Build(ctx context.Context, img image.Image, outputDirectory string, sizes []uint) error {
	if err := saveImage(path.Join(outputDirectory, "preview.png"), img); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, size := range sizes {
		size := size
		g.Go(func() error {
			timer := time.Now()

			// width 0 keeps the aspect ratio
			scaled := resize.Resize(0, size, img, resize.MitchellNetravali)
			if err := saveImage(path.Join(outputDirectory, fmt.Sprintf("preview_%d.png", size)), scaled); err != nil {
				return err
			}

			slog.DebugContext(ctx, "built preview", "size", size, "took", time.Since(timer).String())
			return nil
		})
	}

	return g.Wait()
}

func saveImage(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
