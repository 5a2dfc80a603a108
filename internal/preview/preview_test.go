package preview

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gruppe-adler/usgs-dem/internal/dem"
)

func TestRender(t *testing.T) {
	f := dem.File{Profiles: []dem.Profile{
		{Elevations: []int32{100, 200}},
		{Elevations: []int32{300}},
	}}

	img := Render(f)

	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("unexpected bounds: %v", b)
	}
	if y := img.Gray16At(0, 1).Y; y != 0 {
		t.Fatalf("expected lowest sample black, got %d", y)
	}
	if y := img.Gray16At(1, 1).Y; y != 0xffff {
		t.Fatalf("expected highest sample white, got %d", y)
	}
	if y := img.Gray16At(0, 0).Y; y != 0x7fff {
		t.Fatalf("expected middle grey, got %d", y)
	}
}

func TestRenderFlat(t *testing.T) {
	img := Render(dem.File{Profiles: []dem.Profile{{Elevations: []int32{5, 5}}}})
	if y := img.Gray16At(0, 0).Y; y != 0xffff {
		t.Fatalf("expected flat terrain to render white, got %d", y)
	}
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	img := image.NewGray16(image.Rect(0, 0, 40, 20))

	if err := Build(context.Background(), img, dir, []uint{10, 64}); err != nil {
		t.Fatalf("Build: %v", err)
	}

	for name, want := range map[string]image.Point{
		"preview.png":    {40, 20},
		"preview_10.png": {20, 10},
		"preview_64.png": {128, 64},
	} {
		file, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		cfg, err := png.DecodeConfig(file)
		file.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if cfg.Width != want.X || cfg.Height != want.Y {
			t.Fatalf("%s: expected %v, got %dx%d", name, want, cfg.Width, cfg.Height)
		}
	}
}
