package dem

import (
	"io"
)

// BlockCount returns the number of physical blocks a record with the given
// number of samples occupies. Every record occupies at least one block.
func BlockCount(samples int) int {
	n := (samples*sampleWidth + blockSize - 1) / blockSize
	if n < 1 {
		return 1
	}
	return n
}

// DecodeProfile decodes the next elevation profile record.
//
// The preamble (row id, column id, sample count and profile type) is parsed
// from a look-ahead view of the first block, then the whole record is read.
// A sample field that does not parse ends the profile early with StopParse;
// this is not an error. On success the decoder is left at the next block
// boundary.
func (d *Decoder) DecodeProfile() (Profile, error) {
	start := d.pos

	view, err := d.peek(blockSize)
	if err != nil {
		return Profile{}, err
	}

	var row, column, count, kind int
	if !scanInts(view, &row, &column, &count, &kind) {
		if len(view) < blockSize {
			return Profile{}, truncated(start, blockSize, io.ErrUnexpectedEOF)
		}
		return Profile{}, newError(CodeMalformedRecord, start, "preamble is not four integers", nil)
	}
	if count < 0 {
		return Profile{}, newError(CodeMalformedRecord, start, "negative sample count", nil)
	}

	blocks := BlockCount(count)

	buf, err := d.readBlocks(blocks)
	if err != nil {
		return Profile{}, err
	}

	p := Profile{Column: column, Declared: count}
	p.Elevations, p.Stop = extractSamples(buf, blocks, count)

	return p, nil
}

// extractSamples walks the blocks of a record. The first block holds the
// preamble region and up to 146 samples, every later block up to 170; blocks
// end in 2 and 4 bytes of padding respectively.
func extractSamples(buf []byte, blocks, count int) ([]int32, StopReason) {
	capacity := firstBlockSamples + (blocks-1)*nextBlockSamples
	if count < capacity {
		capacity = count
	}

	samples := make([]int32, 0, capacity)
	remaining := count
	off := recordHeaderWidth

	for block := 0; block < blocks; block++ {
		quota, padding := firstBlockSamples, firstBlockPadding
		if block > 0 {
			quota, padding = nextBlockSamples, nextBlockPadding
		}

		for i := 0; i < quota; i++ {
			if remaining == 0 {
				return samples, StopNone
			}

			z, _, ok := scanInt(buf[off : off+sampleWidth])
			if !ok {
				return samples, StopParse
			}

			samples = append(samples, int32(z))
			off += sampleWidth
			remaining--
		}

		off += padding
	}

	if remaining > 0 {
		return samples, StopBlocks
	}
	return samples, StopNone
}
