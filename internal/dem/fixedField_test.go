package dem

import (
	"errors"
	"strings"
	"testing"
)

func TestReadFixedFieldTrimsLeadingOnly(t *testing.T) {
	got, err := ReadFixedField(strings.NewReader("  abc  rest"), 7)
	if err != nil {
		t.Fatalf("ReadFixedField: %v", err)
	}
	if got != "abc  " {
		t.Fatalf("expected %q, got %q", "abc  ", got)
	}
}

func TestReadFixedFieldAllSpaces(t *testing.T) {
	got, err := ReadFixedField(strings.NewReader(strings.Repeat(" ", 40)), 40)
	if err != nil {
		t.Fatalf("ReadFixedField: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}
}

func TestReadFixedFieldShortInput(t *testing.T) {
	_, err := ReadFixedField(strings.NewReader("abc"), 40)
	if !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
}

func TestScanInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
		n    int
		ok   bool
	}{
		{"   123", 123, 6, true},
		{"  -42 ", -42, 5, true},
		{"\n +7x", 7, 4, true},
		{"12ab  ", 12, 2, true},
		{"      ", 0, 0, false},
		{"  ab  ", 0, 0, false},
		{"    - ", 0, 0, false},
	}

	for _, c := range cases {
		v, n, ok := scanInt([]byte(c.in))
		if v != c.want || n != c.n || ok != c.ok {
			t.Errorf("scanInt(%q) = %d, %d, %v; want %d, %d, %v", c.in, v, n, ok, c.want, c.n, c.ok)
		}
	}
}
