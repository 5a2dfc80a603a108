package utils

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"runtime"

	"github.com/nfnt/resize"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// TileSize is the edge length of a rendered tile in pixels.
const TileSize = 256

// TileSink receives the PNG encoded tile at (z, x, y). y counts from the top.
// It may be called from several goroutines at once.
type TileSink func(z, x, y uint, data []byte) error

var sem = semaphore.NewWeighted(int64(runtime.NumCPU()))

// BuildTileSet cuts img into 2^lod x 2^lod tiles, scales every tile to
// TileSize and hands it to sink.
func BuildTileSet(ctx context.Context, lod uint8, img image.Image, sink TileSink) error {
	tilesPerRowCol := 1 << lod

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	tileWidth := width / tilesPerRowCol
	tileHeight := height / tilesPerRowCol

	// remaining pixels go to the first rows / cols
	widthRemainder := width % tilesPerRowCol
	heightRemainder := height % tilesPerRowCol

	g, ctx := errgroup.WithContext(ctx)

	for col := 0; col < tilesPerRowCol; col++ {
		for row := 0; row < tilesPerRowCol; row++ {
			col, row := col, row

			x := bounds.Min.X + tileWidth*col + min(col, widthRemainder)
			y := bounds.Min.Y + tileHeight*row + min(row, heightRemainder)
			w := tileWidth
			h := tileHeight
			if col < widthRemainder {
				w++
			}
			if row < heightRemainder {
				h++
			}
			if w == 0 || h == 0 {
				continue
			}

			rect := image.Rect(x, y, x+w, y+h)

			g.Go(func() error {
				if err := sem.Acquire(ctx, 1); err != nil {
					return err
				}
				defer sem.Release(1)

				data, err := createTile(img, rect)
				if err != nil {
					return err
				}

				return sink(uint(lod), uint(col), uint(row), data)
			})
		}
	}

	return g.Wait()
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func createTile(img image.Image, rect image.Rectangle) ([]byte, error) {
	var sub image.Image = img
	if si, ok := img.(subImager); ok {
		sub = si.SubImage(rect)
	}

	// nearest neighbour keeps encoded elevations intact
	tile := resize.Resize(TileSize, TileSize, sub, resize.NearestNeighbor)

	var buf bytes.Buffer
	if err := png.Encode(&buf, tile); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
