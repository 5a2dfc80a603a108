package dem

import (
	"errors"
	"io"
	"strconv"
)

// ReadFixedField reads exactly width bytes from r and returns them with
// leading spaces removed. Trailing spaces are kept.
//
// A short read yields an error matching ErrTruncatedInput.
func ReadFixedField(r io.Reader, width int) (string, error) {
	buf := make([]byte, width)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", truncated(0, width, err)
	}

	return trimLeadingSpaces(buf), nil
}

func trimLeadingSpaces(field []byte) string {
	i := 0
	for i < len(field) && field[i] == ' ' {
		i++
	}
	return string(field[i:])
}

// truncated converts a failed fixed width read into a decoder error.
func truncated(offset int64, want int, err error) error {
	if isEOF(err) {
		return newError(CodeTruncatedInput, offset, "need "+strconv.Itoa(want)+" bytes", err)
	}
	return newError(CodeTruncatedInput, offset, "", err)
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// scanInt parses a decimal integer token from the start of b. Leading
// whitespace is skipped, an optional sign is accepted and the token ends at
// the first non digit byte. It returns the value and the number of bytes
// consumed, or ok == false if no digits were found.
func scanInt(b []byte) (v int, n int, ok bool) {
	for n < len(b) && isSpace(b[n]) {
		n++
	}

	start := n
	if n < len(b) && (b[n] == '+' || b[n] == '-') {
		n++
	}

	digits := n
	for n < len(b) && b[n] >= '0' && b[n] <= '9' {
		n++
	}
	if n == digits {
		return 0, 0, false
	}

	v, err := strconv.Atoi(string(b[start:n]))
	if err != nil {
		return 0, 0, false
	}

	return v, n, true
}

// scanInts parses len(dst) consecutive integer tokens from b.
func scanInts(b []byte, dst ...*int) bool {
	for _, d := range dst {
		v, n, ok := scanInt(b)
		if !ok {
			return false
		}
		*d = v
		b = b[n:]
	}
	return true
}
