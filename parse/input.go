// Package parse provides the parser-combinator foundation used by snacks:
// cursors over text, the Parser function type, structured parse errors and
// a set of primitive parsers.
//
// A cursor is an immutable view of the remaining input. Every parser takes a
// cursor and returns the cursor that remains after it, so backtracking is a
// matter of keeping the old value around.
package parse

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// Input is the capability set shared by all cursors. I is the cursor type
// itself, so that splitting a String yields Strings and splitting Bytes
// yields Bytes.
//
// Lengths and offsets are measured in bytes.
type Input[I any] interface {
	// Len returns the number of bytes remaining.
	Len() int

	// Offset returns the position of the cursor in the original source.
	Offset() int

	// Index returns the byte index of the leftmost occurrence of needle,
	// or -1 if needle does not occur.
	Index(needle string) int

	// HasPrefix reports whether the remaining input starts with prefix.
	HasPrefix(prefix string) bool

	// DecodeRune decodes the rune starting at byte i. It returns
	// (utf8.RuneError, 0) when i is past the end.
	DecodeRune(i int) (rune, int)

	// TakeSplit splits the cursor at byte n. rest starts at n, taken holds
	// the n bytes before it.
	TakeSplit(n int) (rest, taken I)

	// String returns the remaining input.
	String() string
}

// String is a cursor over a Go string.
type String struct {
	s   string
	off int
}

// NewString returns a cursor positioned at the start of s.
func NewString(s string) String {
	return String{s: s}
}

func (c String) Len() int    { return len(c.s) }
func (c String) Offset() int { return c.off }

func (c String) Index(needle string) int {
	return strings.Index(c.s, needle)
}

func (c String) HasPrefix(prefix string) bool {
	return strings.HasPrefix(c.s, prefix)
}

func (c String) DecodeRune(i int) (rune, int) {
	if i >= len(c.s) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(c.s[i:])
}

func (c String) TakeSplit(n int) (String, String) {
	return String{s: c.s[n:], off: c.off + n}, String{s: c.s[:n], off: c.off}
}

func (c String) String() string { return c.s }

// Bytes is a cursor over a byte slice. The slice is never modified.
type Bytes struct {
	b   []byte
	off int
}

// NewBytes returns a cursor positioned at the start of b.
func NewBytes(b []byte) Bytes {
	return Bytes{b: b}
}

func (c Bytes) Len() int    { return len(c.b) }
func (c Bytes) Offset() int { return c.off }

func (c Bytes) Index(needle string) int {
	return bytes.Index(c.b, []byte(needle))
}

func (c Bytes) HasPrefix(prefix string) bool {
	return len(c.b) >= len(prefix) && string(c.b[:len(prefix)]) == prefix
}

func (c Bytes) DecodeRune(i int) (rune, int) {
	if i >= len(c.b) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(c.b[i:])
}

func (c Bytes) TakeSplit(n int) (Bytes, Bytes) {
	return Bytes{b: c.b[n:], off: c.off + n}, Bytes{b: c.b[:n:n], off: c.off}
}

func (c Bytes) String() string { return string(c.b) }

// Raw returns the remaining bytes without copying.
func (c Bytes) Raw() []byte { return c.b }
