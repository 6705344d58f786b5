// Package ebnflex builds item parsers from EBNF grammars.
//
// Grammars use the notation of golang.org/x/exp/ebnf. A production is
// matched directly against a cursor: tokens match literally, ranges match a
// single rune, and alternatives pick the longest match.
package ebnflex

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/cato-001/snacks/parse"
	"golang.org/x/exp/ebnf"
)

// LoadGrammar loads an EBNF grammar from a file.
func LoadGrammar(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return ParseGrammar(filename, f)
}

// ParseGrammar parses an EBNF grammar read from r. name is used in error
// positions.
func ParseGrammar(name string, r io.Reader) (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return grammar, nil
}

// Production returns a parser recognizing the longest match of the named
// production at the start of the input. Empty matches fail with
// parse.KindProduction.
func Production[I parse.Input[I]](grammar ebnf.Grammar, name string) (parse.Parser[I, I], error) {
	prod, ok := grammar[name]
	if !ok || prod.Expr == nil {
		return nil, fmt.Errorf("production %q is not defined", name)
	}
	return func(in I) (I, I, error) {
		m := newMatcher(grammar, in)
		n := m.matchName(name, 0)
		if n <= 0 {
			return in, in, parse.Fail(in, parse.KindProduction)
		}
		rest, taken := in.TakeSplit(n)
		return rest, taken, nil
	}, nil
}

const noMatch = -1

// memoKey is used for memoization of match results.
type memoKey struct {
	name   string
	offset int
}

// matcher holds the state of a single match attempt.
type matcher[I parse.Input[I]] struct {
	grammar  ebnf.Grammar
	input    I
	memo     map[memoKey]int  // match length, or noMatch
	visiting map[memoKey]bool // cycle detection
}

func newMatcher[I parse.Input[I]](grammar ebnf.Grammar, input I) *matcher[I] {
	return &matcher[I]{
		grammar:  grammar,
		input:    input,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

// match returns the length of the match of expr at offset, or noMatch.
func (m *matcher[I]) match(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case *ebnf.Token:
		return m.matchToken(e.String, offset)

	case *ebnf.Range:
		return m.matchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := m.match(item, offset+total)
			if n == noMatch {
				return noMatch
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := noMatch
		for _, alt := range e {
			if n := m.match(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			n := m.match(e.Body, offset+total)
			if n <= 0 {
				return total
			}
			total += n
		}

	case *ebnf.Option:
		if n := m.match(e.Body, offset); n != noMatch {
			return n
		}
		return 0

	case *ebnf.Group:
		return m.match(e.Body, offset)

	case *ebnf.Name:
		return m.matchName(e.String, offset)

	default:
		return noMatch
	}
}

// matchName matches a named production with memoization and cycle detection.
func (m *matcher[I]) matchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}
	if result, ok := m.memo[key]; ok {
		return result
	}

	// Left recursion: the production is already being matched here.
	if m.visiting[key] {
		return noMatch
	}

	prod, ok := m.grammar[name]
	if !ok || prod.Expr == nil {
		m.memo[key] = noMatch
		return noMatch
	}

	m.visiting[key] = true
	result := m.match(prod.Expr, offset)
	delete(m.visiting, key)

	m.memo[key] = result
	return result
}

func (m *matcher[I]) matchToken(token string, offset int) int {
	if offset > m.input.Len() {
		return noMatch
	}
	rest, _ := m.input.TakeSplit(offset)
	if !rest.HasPrefix(token) {
		return noMatch
	}
	return len(token)
}

// matchRange matches a single rune in a range such as "a" … "z".
func (m *matcher[I]) matchRange(begin, end string, offset int) int {
	lo, loSize := utf8.DecodeRuneInString(begin)
	hi, hiSize := utf8.DecodeRuneInString(end)
	if loSize != len(begin) || hiSize != len(end) {
		return noMatch
	}
	r, size := m.input.DecodeRune(offset)
	if size == 0 || r < lo || r > hi {
		return noMatch
	}
	return size
}
