package dem

// DecodeInfo decodes the file header and leaves the decoder at the first
// profile record.
//
// Header metadata other than name, description and dimensions is skipped.
// A file shorter than one block is not reported here; the first profile
// read fails instead.
func (d *Decoder) DecodeInfo() (Info, error) {
	var (
		info Info
		err  error
	)

	if info.FileName, err = d.readField(nameWidth); err != nil {
		return Info{}, err
	}
	if info.Description, err = d.readField(descriptionWidth); err != nil {
		return Info{}, err
	}

	// a short file fails the dimension parse below
	if err = d.skipTo(dimensionsOffset); err != nil {
		return Info{}, err
	}

	view, err := d.peek(firstRecordOffset - dimensionsOffset)
	if err != nil {
		return Info{}, err
	}
	if !scanInts(view, &info.Rows, &info.Columns) {
		return Info{}, newError(CodeMalformedHeader, dimensionsOffset, "dimensions are not two integers", nil)
	}
	if info.Columns < 0 {
		return Info{}, newError(CodeMalformedHeader, dimensionsOffset, "negative column count", nil)
	}

	if err = d.skipTo(firstRecordOffset); err != nil {
		return Info{}, err
	}

	return info, nil
}
