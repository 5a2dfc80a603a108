package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/gruppe-adler/usgs-dem/internal/dem"
)

// CSV writes one row per sample: column, sample index and elevation.
func CSV(w io.Writer, f dem.File) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"column", "index", "elevation"}); err != nil {
		return err
	}

	for _, p := range f.Profiles {
		column := strconv.Itoa(p.Column)
		for i, z := range p.Elevations {
			if err := writer.Write([]string{column, strconv.Itoa(i), strconv.FormatInt(int64(z), 10)}); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
