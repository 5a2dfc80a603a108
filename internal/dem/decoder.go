package dem

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
)

// Layout constants of the format.
const (
	blockSize = 1024 // physical block, the unit of bulk reads

	nameWidth         = 40
	descriptionWidth  = 40
	dimensionsOffset  = 853
	firstRecordOffset = 1024

	recordHeaderWidth = 146 // record preamble region in the first block
	sampleWidth       = 6
	firstBlockSamples = 146
	nextBlockSamples  = 170
	firstBlockPadding = 2
	nextBlockPadding  = 4

	maxPrealloc = 1024 // profiles reserved before any record is read
)

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger used for diagnostics. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *Decoder) {
		d.logger = l
	}
}

// WithMismatchHandler sets the function called when a profile's column id
// differs from its 1-based position in the file. The default handler logs a
// warning. Mismatches never fail decoding.
func WithMismatchHandler(fn func(index, column int)) Option {
	return func(d *Decoder) {
		d.mismatch = fn
	}
}

// Decoder reads a DEM file from a byte stream.
//
// The stream is consumed strictly forward. Record preambles are inspected
// through a bounded look-ahead before the record is read in one piece, so no
// seeking is required and compressed streams can be decoded directly.
type Decoder struct {
	r        *bufio.Reader
	pos      int64
	logger   *slog.Logger
	mismatch func(index, column int)
}

// NewDecoder returns a Decoder reading from r. r must be positioned at the
// start of the file.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	d := &Decoder{r: bufio.NewReaderSize(r, blockSize)}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	if d.mismatch == nil {
		d.mismatch = func(index, column int) {
			d.logger.Warn("column id does not match record position", "record", index, "column", column)
		}
	}
	return d
}

// Decode decodes a complete file from r.
func Decode(r io.Reader, opts ...Option) (File, error) {
	return NewDecoder(r, opts...).Decode()
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int64 {
	return d.pos
}

// Decode decodes the header followed by exactly one profile per column.
// The first fatal error aborts the whole decode.
func (d *Decoder) Decode() (File, error) {
	info, err := d.DecodeInfo()
	if err != nil {
		return File{}, err
	}

	// the column count comes from the file; missing records fail on read
	f := File{Info: info, Profiles: make([]Profile, 0, min(info.Columns, maxPrealloc))}

	for i := 0; i < info.Columns; i++ {
		p, err := d.DecodeProfile()
		if err != nil {
			return File{}, fmt.Errorf("profile %d of %d: %w", i+1, info.Columns, err)
		}

		if p.Column != i+1 {
			d.mismatch(i+1, p.Column)
		}

		f.Profiles = append(f.Profiles, p)
	}

	return f, nil
}

// readExact reads exactly n bytes and advances the offset.
func (d *Decoder) readExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	got, err := io.ReadFull(d.r, buf)
	start := d.pos
	d.pos += int64(got)
	if err != nil {
		return nil, truncated(start, n, err)
	}
	return buf, nil
}

// readBlocks reads n physical blocks. The buffer grows with the data actually
// read so a bogus sample count cannot force a huge allocation up front.
func (d *Decoder) readBlocks(n int) ([]byte, error) {
	want := int64(n) * blockSize
	start := d.pos
	buf, err := io.ReadAll(io.LimitReader(d.r, want))
	d.pos += int64(len(buf))
	if err != nil {
		return nil, truncated(start, int(want), err)
	}
	if int64(len(buf)) < want {
		return nil, truncated(start, int(want), io.ErrUnexpectedEOF)
	}
	return buf, nil
}

func (d *Decoder) readField(width int) (string, error) {
	b, err := d.readExact(width)
	if err != nil {
		return "", err
	}
	return trimLeadingSpaces(b), nil
}

// skipTo discards input up to the absolute offset. It is a no-op if the
// offset was already passed. Running out of input is not an error here;
// any other read failure is.
func (d *Decoder) skipTo(offset int64) error {
	if offset <= d.pos {
		return nil
	}
	start := d.pos
	n, err := d.r.Discard(int(offset - d.pos))
	d.pos += int64(n)
	if err != nil && !isEOF(err) {
		return truncated(start, int(offset-start), err)
	}
	return nil
}

// peek returns up to n bytes of look-ahead. A short view at the end of the
// input is returned without error.
func (d *Decoder) peek(n int) ([]byte, error) {
	view, err := d.r.Peek(n)
	if err != nil && !isEOF(err) {
		return nil, truncated(d.pos, n, err)
	}
	return view, nil
}
