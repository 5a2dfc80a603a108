package dem

import (
	"bufio"
	"compress/gzip"
	"os"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Read decodes the digital elevation model at the given path. Gzip
// compressed files are decompressed transparently.
func Read(path string, opts ...Option) (File, error) {
	file, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer file.Close()

	br := bufio.NewReaderSize(file, blockSize)

	magic, _ := br.Peek(len(gzipMagic))
	if len(magic) == len(gzipMagic) && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return File{}, err
		}
		defer gz.Close()

		return Decode(gz, opts...)
	}

	return Decode(br, opts...)
}
