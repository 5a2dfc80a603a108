package dem

// Info is the decoded file header.
type Info struct {
	// FileName keeps the field's trailing padding ("ELEV1" followed by
	// spaces); trim it for display.
	FileName    string
	Description string
	Rows        int
	Columns     int
}

// StopReason tells why decoding of a profile ended.
type StopReason int

const (
	StopNone   StopReason = iota // All declared samples were decoded.
	StopParse                    // A sample field did not parse as an integer.
	StopBlocks                   // The record's blocks ran out before the declared count.
)

func (s StopReason) String() string {
	switch s {
	case StopNone:
		return "complete"
	case StopParse:
		return "unparsable sample"
	case StopBlocks:
		return "blocks exhausted"
	default:
		return "unknown"
	}
}

// Profile is one decoded elevation profile record (a raster column).
type Profile struct {
	Column     int
	Declared   int // sample count from the record preamble
	Elevations []int32
	Stop       StopReason
}

// Complete reports whether every declared sample was decoded.
func (p Profile) Complete() bool {
	return p.Stop == StopNone
}

// File is a fully decoded DEM file.
type File struct {
	Info     Info
	Profiles []Profile
}

// Dims returns the number of columns and the length of the longest profile.
func (f File) Dims() (c, r int) {
	for _, p := range f.Profiles {
		if len(p.Elevations) > r {
			r = len(p.Elevations)
		}
	}
	return len(f.Profiles), r
}

// Z returns the elevation at column c, sample r and whether it exists.
// Profiles that stopped early have no value past their last sample.
func (f File) Z(c, r int) (int32, bool) {
	if c < 0 || c >= len(f.Profiles) {
		return 0, false
	}
	e := f.Profiles[c].Elevations
	if r < 0 || r >= len(e) {
		return 0, false
	}
	return e[r], true
}
