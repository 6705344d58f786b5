package snacks

import "github.com/cato-001/snacks/parse"

// Weblink matches an http or https link: the scheme followed by
// slash-separated runs of link characters.
//
//	rest, link, _ := snacks.Weblink(parse.NewString("https://github.com/cato-001/snacks.git other"))
//	// rest: " other", link: "https://github.com/cato-001/snacks.git"
func Weblink[I parse.Input[I]](in I) (I, I, error) {
	scheme := parse.Alt(parse.Tag[I]("https://"), parse.Tag[I]("http://"))
	path := RecognizeSeparated0(LinkChar[I], parse.Char[I]('/'))
	return parse.Recognize(parse.Pair(scheme, path))(in)
}

// LinkChar matches one or more characters allowed in a link segment:
// ASCII letters, digits, '-', '_' and '.'.
func LinkChar[I parse.Input[I]](in I) (I, I, error) {
	return parse.TakeWhile1Kind[I](isLinkChar, parse.KindAlphaNumeric)(in)
}

func isLinkChar(r rune) bool {
	return parse.IsAlphanumeric(r) || r == '-' || r == '_' || r == '.'
}

// Hashtag matches '#' followed by one or more non-whitespace runes and
// returns the tag without the '#'.
func Hashtag[I parse.Input[I]](in I) (I, I, error) {
	return parse.Preceded(parse.Char[I]('#'), parse.IsNot[I](" \t\r\n"))(in)
}
