package dem

import (
	"fmt"
)

// Code identifies the class of a decoding failure.
type Code int

const (
	CodeTruncatedInput  Code = iota + 1 // Fewer bytes available than a fixed width read needs.
	CodeMalformedHeader                 // Header dimensions are not two integers.
	CodeMalformedRecord                 // Record preamble is not four integers.
)

func (c Code) String() string {
	switch c {
	case CodeTruncatedInput:
		return "truncated input"
	case CodeMalformedHeader:
		return "malformed header"
	case CodeMalformedRecord:
		return "malformed record"
	default:
		return "unknown"
	}
}

var (
	// ErrTruncatedInput matches any error raised because the input ended early.
	ErrTruncatedInput = &Error{code: CodeTruncatedInput}
	// ErrMalformedHeader matches any error raised for unparsable header dimensions.
	ErrMalformedHeader = &Error{code: CodeMalformedHeader}
	// ErrMalformedRecord matches any error raised for an unparsable record preamble.
	ErrMalformedRecord = &Error{code: CodeMalformedRecord}
)

// Error is returned by the decoder for every fatal condition.
//
// It carries the failure class, the absolute byte offset at which the
// failing read started and, if there is one, the underlying error.
type Error struct {
	code   Code
	offset int64
	msg    string
	err    error
}

func newError(code Code, offset int64, msg string, err error) error {
	return &Error{code: code, offset: offset, msg: msg, err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	s := fmt.Sprintf("%s at offset %d", e.code, e.offset)
	if e.msg != "" {
		s += ": " + e.msg
	}
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

// Code returns the failure class.
func (e *Error) Code() Code {
	return e.code
}

// Offset returns the absolute byte offset of the failing read.
func (e *Error) Offset() int64 {
	return e.offset
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// Is reports whether target is an *Error of the same class, so that the
// package sentinels can be used with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.code == e.code
}
