package snacks

import (
	"slices"
	"testing"

	"github.com/cato-001/snacks/parse"
)

type S = parse.String

func braces() parse.Parser[S, S] {
	return parse.Delimited(parse.Char[S]('{'), parse.Alphanumeric1[S](), parse.Char[S]('}'))
}

func strs(values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func assertStrings(t *testing.T, got []S, want []string) {
	t.Helper()
	if !slices.Equal(strs(got), want) {
		t.Errorf("values = %q, want %q", strs(got), want)
	}
}

func assertRest(t *testing.T, rest S, want string) {
	t.Helper()
	if rest.String() != want {
		t.Errorf("rest = %q, want %q", rest.String(), want)
	}
}
