package parse

import "strings"

// Tag matches the literal t.
func Tag[I Input[I]](t string) Parser[I, I] {
	return func(in I) (I, I, error) {
		if !in.HasPrefix(t) {
			return in, in, Fail(in, KindTag)
		}
		rest, taken := in.TakeSplit(len(t))
		return rest, taken, nil
	}
}

// Char matches the single rune c.
func Char[I Input[I]](c rune) Parser[I, rune] {
	return runeParser[I](func(r rune) bool { return r == c }, KindChar)
}

// OneOf matches one rune contained in chars.
func OneOf[I Input[I]](chars string) Parser[I, rune] {
	return runeParser[I](func(r rune) bool { return strings.ContainsRune(chars, r) }, KindOneOf)
}

// NoneOf matches one rune not contained in chars.
func NoneOf[I Input[I]](chars string) Parser[I, rune] {
	return runeParser[I](func(r rune) bool { return !strings.ContainsRune(chars, r) }, KindNoneOf)
}

func runeParser[I Input[I]](pred func(rune) bool, kind ErrorKind) Parser[I, rune] {
	return func(in I) (I, rune, error) {
		r, size := in.DecodeRune(0)
		if size == 0 || !pred(r) {
			return in, 0, Fail(in, kind)
		}
		rest, _ := in.TakeSplit(size)
		return rest, r, nil
	}
}

// IsA matches the longest non-empty run of runes contained in chars.
func IsA[I Input[I]](chars string) Parser[I, I] {
	return TakeWhile1Kind[I](func(r rune) bool { return strings.ContainsRune(chars, r) }, KindIsA)
}

// IsNot matches the longest non-empty run of runes not contained in chars.
func IsNot[I Input[I]](chars string) Parser[I, I] {
	return TakeWhile1Kind[I](func(r rune) bool { return !strings.ContainsRune(chars, r) }, KindIsNot)
}

// TakeWhile matches the longest, possibly empty, run of runes satisfying pred.
// It never fails.
func TakeWhile[I Input[I]](pred func(rune) bool) Parser[I, I] {
	return func(in I) (I, I, error) {
		rest, taken := in.TakeSplit(Span(in, pred))
		return rest, taken, nil
	}
}

// TakeWhile1 is like TakeWhile but requires at least one rune.
func TakeWhile1[I Input[I]](pred func(rune) bool) Parser[I, I] {
	return TakeWhile1Kind[I](pred, KindTakeWhile1)
}

// TakeWhile1Kind is TakeWhile1 reporting failures with the given kind.
func TakeWhile1Kind[I Input[I]](pred func(rune) bool, kind ErrorKind) Parser[I, I] {
	return func(in I) (I, I, error) {
		n := Span(in, pred)
		if n == 0 {
			return in, in, Fail(in, kind)
		}
		rest, taken := in.TakeSplit(n)
		return rest, taken, nil
	}
}

// Alphanumeric0 matches a possibly empty run of ASCII letters and digits.
func Alphanumeric0[I Input[I]]() Parser[I, I] {
	return TakeWhile[I](IsAlphanumeric)
}

// Alphanumeric1 matches a non-empty run of ASCII letters and digits.
func Alphanumeric1[I Input[I]]() Parser[I, I] {
	return TakeWhile1Kind[I](IsAlphanumeric, KindAlphaNumeric)
}

// Eof succeeds only on empty input.
func Eof[I Input[I]]() Parser[I, I] {
	return func(in I) (I, I, error) {
		if in.Len() != 0 {
			return in, in, Fail(in, KindEof)
		}
		return in, in, nil
	}
}

// IsAlphanumeric reports whether r is an ASCII letter or digit.
func IsAlphanumeric(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// Span returns the byte length of the leading runes of in that satisfy pred.
func Span[I Input[I]](in I, pred func(rune) bool) int {
	n := 0
	for {
		r, size := in.DecodeRune(n)
		if size == 0 || !pred(r) {
			return n
		}
		n += size
	}
}
