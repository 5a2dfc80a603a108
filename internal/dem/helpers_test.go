package dem

import (
	"bytes"
	"fmt"
)

func spaces(n int) []byte {
	return bytes.Repeat([]byte{' '}, n)
}

// testHeader builds a header block with the given name, description and
// dimension text.
func testHeader(name, description, dims string) []byte {
	b := spaces(firstRecordOffset)
	copy(b[0:nameWidth], name)
	copy(b[nameWidth:nameWidth+descriptionWidth], description)
	copy(b[dimensionsOffset:], dims)
	return b
}

// testRecord builds a profile record declaring len(fields) samples, or
// declared if it is not negative. Fields are placed into their 6 byte slots
// verbatim.
func testRecord(column, declared int, fields ...string) []byte {
	if declared < 0 {
		declared = len(fields)
	}

	blocks := BlockCount(declared)
	b := spaces(blocks * blockSize)
	copy(b, fmt.Sprintf("%6d%6d%6d%6d", 1, column, declared, 1))

	off := recordHeaderWidth
	block, slot := 0, 0
	for _, f := range fields {
		quota := firstBlockSamples
		if block > 0 {
			quota = nextBlockSamples
		}
		if slot == quota {
			if block == 0 {
				off += firstBlockPadding
			} else {
				off += nextBlockPadding
			}
			block++
			slot = 0
		}
		if off+sampleWidth > len(b) {
			break
		}
		copy(b[off:off+sampleWidth], fmt.Sprintf("%6s", f))
		off += sampleWidth
		slot++
	}

	return b
}

func sampleFields(values ...int32) []string {
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = fmt.Sprintf("%d", v)
	}
	return fields
}

func sequence(n int, base int32) []int32 {
	v := make([]int32, n)
	for i := range v {
		v[i] = base + int32(i)
	}
	return v
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}
