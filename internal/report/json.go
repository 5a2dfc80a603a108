package report

import (
	"encoding/json"
	"io"

	"github.com/gruppe-adler/usgs-dem/internal/dem"
)

// Document is the JSON representation of a decoded file.
type Document struct {
	FileName    string    `json:"fileName"`
	Description string    `json:"description"`
	Rows        int       `json:"rows"`
	Columns     int       `json:"columns"`
	Records     int       `json:"records"`
	Profiles    []Profile `json:"profiles"`
}

// Profile is the JSON representation of one elevation profile.
type Profile struct {
	Column     int     `json:"column"`
	Declared   int     `json:"declared"`
	Points     int     `json:"points"`
	Complete   bool    `json:"complete"`
	Stop       string  `json:"stop"`
	Elevations []int32 `json:"elevations"`
}

// NewDocument converts a decoded file.
func NewDocument(f dem.File) Document {
	doc := Document{
		FileName:    f.Info.FileName,
		Description: f.Info.Description,
		Rows:        f.Info.Rows,
		Columns:     f.Info.Columns,
		Records:     len(f.Profiles),
		Profiles:    make([]Profile, len(f.Profiles)),
	}

	for i, p := range f.Profiles {
		elevations := p.Elevations
		if elevations == nil {
			elevations = []int32{}
		}

		doc.Profiles[i] = Profile{
			Column:     p.Column,
			Declared:   p.Declared,
			Points:     len(p.Elevations),
			Complete:   p.Complete(),
			Stop:       p.Stop.String(),
			Elevations: elevations,
		}
	}

	return doc
}

// WriteJSON writes the decoded file as an indented JSON document.
func WriteJSON(w io.Writer, f dem.File) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(NewDocument(f))
}
