package snacks

import "github.com/cato-001/snacks/parse"

func isAlphanumDot(r rune) bool {
	return parse.IsAlphanumeric(r) || r == '.'
}

// AlphaNumDot0 matches a possibly empty run of ASCII letters, digits and dots.
func AlphaNumDot0[I parse.Input[I]](in I) (I, I, error) {
	return parse.TakeWhile[I](isAlphanumDot)(in)
}

// AlphaNumDot1 matches a non-empty run of ASCII letters, digits and dots.
func AlphaNumDot1[I parse.Input[I]](in I) (I, I, error) {
	return parse.TakeWhile1Kind[I](isAlphanumDot, parse.KindAlphaNumeric)(in)
}
