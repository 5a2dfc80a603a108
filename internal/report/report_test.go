package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gruppe-adler/usgs-dem/internal/dem"
)

func testFile() dem.File {
	elevations := make([]int32, 12)
	for i := range elevations {
		elevations[i] = int32(i - 2)
	}

	return dem.File{
		Info: dem.Info{FileName: "ELEV1", Rows: 5, Columns: 2},
		Profiles: []dem.Profile{
			{Column: 1, Declared: 12, Elevations: elevations},
			{Column: 2, Declared: 4, Elevations: []int32{7}, Stop: dem.StopParse},
		},
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummary(&buf, testFile()); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}

	want := "FileName   : ELEV1\nDescription: <none>\nRows       : 5\nColumns    : 2\nRecords    : 2\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected summary:\n%s", got)
	}
}

func TestWriteProfileTenPerLine(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteProfile(&buf, testFile().Profiles[0]); err != nil {
		t.Fatalf("WriteProfile: %v", err)
	}

	want := "\nColumn: 1\nPoints: 12\n-2, -1, 0, 1, 2, 3, 4, 5, 6, 7\n8, 9\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected profile:\n%q", got)
	}
}

func TestWriteProfileEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteProfile(&buf, dem.Profile{Column: 3}); err != nil {
		t.Fatalf("WriteProfile: %v", err)
	}

	if got := buf.String(); got != "\nColumn: 3\nPoints: 0\n" {
		t.Fatalf("unexpected profile: %q", got)
	}
}

func TestWriteTextKeepsDescription(t *testing.T) {
	f := testFile()
	f.Info.Description = "Some quad"

	var buf bytes.Buffer
	if err := WriteText(&buf, f); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Description: Some quad\n") {
		t.Fatalf("expected description in output:\n%s", out)
	}
	if strings.Count(out, "Column: ") != 2 {
		t.Fatalf("expected two profiles in output:\n%s", out)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, testFile()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if doc.Records != 2 || doc.Columns != 2 {
		t.Fatalf("unexpected counts: %+v", doc)
	}
	second := doc.Profiles[1]
	if second.Complete || second.Stop != "unparsable sample" || second.Points != 1 || second.Declared != 4 {
		t.Fatalf("unexpected partial profile: %+v", second)
	}
}
