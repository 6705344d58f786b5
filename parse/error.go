package parse

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrorKind identifies the parser that failed.
type ErrorKind int

const (
	KindTag ErrorKind = iota
	KindChar
	KindOneOf
	KindNoneOf
	KindIsA
	KindIsNot
	KindAlphaNumeric
	KindTakeWhile1
	KindAlt
	KindEof
	KindVerify
	KindNotFound
	KindSeparatedListEmpty
	KindEmptyNeedle
	KindProduction
)

var kindNames = [...]string{
	KindTag:                "tag",
	KindChar:               "char",
	KindOneOf:              "one of",
	KindNoneOf:             "none of",
	KindIsA:                "is a",
	KindIsNot:              "is not",
	KindAlphaNumeric:       "alphanumeric",
	KindTakeWhile1:         "take while",
	KindAlt:                "alternative",
	KindEof:                "end of input",
	KindVerify:             "verify",
	KindNotFound:           "not found",
	KindSeparatedListEmpty: "separated list empty",
	KindEmptyNeedle:        "empty needle",
	KindProduction:         "production",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a recoverable parse failure. Offset is the absolute position in
// the source at which the failing parser was applied.
type Error struct {
	Kind   ErrorKind
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
}

// Fail returns an *Error of the given kind positioned at in.
func Fail[I Input[I]](in I, kind ErrorKind) *Error {
	return &Error{Kind: kind, Offset: in.Offset()}
}

// KindOf reports the kind of the *Error wrapped in err.
func KindOf(err error) (ErrorKind, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind, true
	}
	return 0, false
}

// IsKind reports whether err wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// Position is a human-readable location in a source text.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionOf converts a byte offset in src into a 1-based line and column.
// Columns count runes. Offsets past the end are clamped.
func PositionOf(src string, offset int) Position {
	if offset > len(src) {
		offset = len(src)
	}
	if offset < 0 {
		offset = 0
	}
	head := src[:offset]
	line := strings.Count(head, "\n") + 1
	lineStart := strings.LastIndexByte(head, '\n') + 1
	return Position{
		Offset: offset,
		Line:   line,
		Column: utf8.RuneCountInString(head[lineStart:]) + 1,
	}
}
