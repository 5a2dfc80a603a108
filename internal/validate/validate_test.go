package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInputFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ELEV1.dem")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := InputFile(file); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
	if err := InputFile(""); err == nil || err.Error() != "no input file specified" {
		t.Fatalf("unexpected error for empty path: %v", err)
	}
	if err := InputFile(dir); err == nil || !strings.Contains(err.Error(), "no input file named") {
		t.Fatalf("unexpected error for directory: %v", err)
	}
}

func TestOutputDirectory(t *testing.T) {
	dir := t.TempDir()

	if err := OutputDirectory(dir); err != nil {
		t.Fatalf("expected valid output, got %v", err)
	}
	if err := OutputDirectory(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
	if err := OutputDirectory(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
