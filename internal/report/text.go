package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/gruppe-adler/usgs-dem/internal/dem"
)

const (
	noDescription   = "<none>"
	samplesPerLine  = 10
	sampleSeparator = ", "
)

// WriteSummary writes the header block of the report.
func WriteSummary(w io.Writer, f dem.File) error {
	description := f.Info.Description
	if description == "" {
		description = noDescription
	}

	_, err := fmt.Fprintf(w, "FileName   : %s\nDescription: %s\nRows       : %d\nColumns    : %d\nRecords    : %d\n",
		f.Info.FileName, description, f.Info.Rows, f.Info.Columns, len(f.Profiles))
	return err
}

// WriteProfile writes one profile: its column, the number of decoded
// samples and the samples ten per line.
func WriteProfile(w io.Writer, p dem.Profile) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\nColumn: %d\nPoints: %d", p.Column, len(p.Elevations))

	for i, z := range p.Elevations {
		if i%samplesPerLine == 0 {
			bw.WriteByte('\n')
		} else {
			bw.WriteString(sampleSeparator)
		}
		bw.WriteString(strconv.FormatInt(int64(z), 10))
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// WriteText writes the summary followed by every profile.
func WriteText(w io.Writer, f dem.File) error {
	if err := WriteSummary(w, f); err != nil {
		return err
	}

	for _, p := range f.Profiles {
		if err := WriteProfile(w, p); err != nil {
			return err
		}
	}

	return nil
}
