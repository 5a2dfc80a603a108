package export

import (
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/gruppe-adler/usgs-dem/internal/dem"
)

// Schema returns the arrow schema of exported profiles. The file header is
// stored as schema metadata.
func Schema(info dem.Info) *arrow.Schema {
	md := arrow.NewMetadata(
		[]string{"file_name", "description", "rows", "columns"},
		[]string{
			strings.TrimSpace(info.FileName),
			strings.TrimSpace(info.Description),
			strconv.Itoa(info.Rows),
			strconv.Itoa(info.Columns),
		},
	)

	return arrow.NewSchema([]arrow.Field{
		{Name: "column", Type: arrow.PrimitiveTypes.Int32},
		{Name: "declared", Type: arrow.PrimitiveTypes.Int32},
		{Name: "complete", Type: arrow.FixedWidthTypes.Boolean},
		{Name: "stop", Type: arrow.BinaryTypes.String},
		{Name: "elevations", Type: arrow.ListOf(arrow.PrimitiveTypes.Int32)},
	}, &md)
}

// Record converts the profiles into one arrow record, one row per profile.
// The caller must release the record.
func Record(mem memory.Allocator, f dem.File) arrow.Record {
	b := array.NewRecordBuilder(mem, Schema(f.Info))
	defer b.Release()

	columns := b.Field(0).(*array.Int32Builder)
	declared := b.Field(1).(*array.Int32Builder)
	complete := b.Field(2).(*array.BooleanBuilder)
	stop := b.Field(3).(*array.StringBuilder)
	elevations := b.Field(4).(*array.ListBuilder)
	values := elevations.ValueBuilder().(*array.Int32Builder)

	for _, p := range f.Profiles {
		columns.Append(int32(p.Column))
		declared.Append(int32(p.Declared))
		complete.Append(p.Complete())
		stop.Append(p.Stop.String())
		elevations.Append(true)
		values.AppendValues(p.Elevations, nil)
	}

	return b.NewRecord()
}
