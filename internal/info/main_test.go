package info

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeDEM writes a file with one header block and one single block record
// per entry of columns.
func writeDEM(t *testing.T, columns ...[]int) string {
	t.Helper()

	header := bytes.Repeat([]byte{' '}, 1024)
	copy(header, "ELEV1")
	copy(header[853:], fmt.Sprintf("%6d%6d", 7, len(columns)))

	data := header
	for i, samples := range columns {
		record := bytes.Repeat([]byte{' '}, 1024)
		copy(record, fmt.Sprintf("%6d%6d%6d%6d", 1, i+1, len(samples), 1))
		for j, z := range samples {
			copy(record[146+6*j:], fmt.Sprintf("%6d", z))
		}
		data = append(data, record...)
	}

	path := filepath.Join(t.TempDir(), "ELEV1.dem")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestRunText(t *testing.T) {
	path := writeDEM(t, []int{1, 2, 3}, []int{4})

	var out bytes.Buffer
	if err := Run(flag.NewFlagSet("info", flag.ContinueOnError), []string{path}, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		fmt.Sprintf("Reading %q...Done.\n", path),
		"Description: <none>\n",
		"Rows       : 7\n",
		"Columns    : 2\n",
		"Records    : 2\n",
		"\nColumn: 1\nPoints: 3\n1, 2, 3\n",
		"\nColumn: 2\nPoints: 1\n4\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestRunJSON(t *testing.T) {
	path := writeDEM(t, []int{5, 6})

	var out bytes.Buffer
	if err := Run(flag.NewFlagSet("info", flag.ContinueOnError), []string{"-format", "json", path}, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var doc struct {
		Records  int `json:"records"`
		Profiles []struct {
			Elevations []int32 `json:"elevations"`
		} `json:"profiles"`
	}
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Records != 1 || len(doc.Profiles[0].Elevations) != 2 {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func TestRunMissingInput(t *testing.T) {
	var out bytes.Buffer

	err := Run(flag.NewFlagSet("info", flag.ContinueOnError), nil, &out)
	if err == nil || err.Error() != "no input file specified" {
		t.Fatalf("unexpected error: %v", err)
	}

	missing := filepath.Join(t.TempDir(), "missing.dem")
	err = Run(flag.NewFlagSet("info", flag.ContinueOnError), []string{missing}, &out)
	if err == nil || !strings.Contains(err.Error(), "no input file named") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunDecodeFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.dem")
	if err := os.WriteFile(path, []byte("short"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out bytes.Buffer
	if err := Run(flag.NewFlagSet("info", flag.ContinueOnError), []string{path}, &out); err == nil {
		t.Fatalf("expected decode error")
	}
}
