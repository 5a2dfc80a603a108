package export

import (
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/gruppe-adler/usgs-dem/internal/dem"
)

var codecs = map[string]compress.Compression{
	"none":   compress.Codecs.Uncompressed,
	"snappy": compress.Codecs.Snappy,
	"gzip":   compress.Codecs.Gzip,
	"zstd":   compress.Codecs.Zstd,
	"brotli": compress.Codecs.Brotli,
}

// Codec looks up a parquet compression codec by name.
func Codec(name string) (compress.Compression, error) {
	c, ok := codecs[name]
	if !ok {
		return compress.Codecs.Uncompressed, fmt.Errorf("unknown compression %q", name)
	}
	return c, nil
}

// Parquet writes the profiles as a parquet file. If w is an io.Closer it is
// closed once the footer is written.
func Parquet(w io.Writer, f dem.File, codec compress.Compression) error {
	rec := Record(memory.NewGoAllocator(), f)
	defer rec.Release()

	props := parquet.NewWriterProperties(parquet.WithCompression(codec))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())

	writer, err := pqarrow.NewFileWriter(rec.Schema(), w, props, arrowProps)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	if err := writer.Write(rec); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write parquet record: %w", err)
	}

	return writer.Close()
}
