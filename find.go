package snacks

import "github.com/cato-001/snacks/parse"

// IntoParser is a parser that appends its results to a caller-owned buffer
// instead of allocating one.
type IntoParser[I, O any] func(in I, buf *[]O) (rest I, err error)

// Finder runs an item parser at every occurrence of a needle.
//
// The needle is located with a plain substring search and the item parser
// is applied at the start of the occurrence, so the item usually matches
// the needle itself as part of its grammar. When the item fails, scanning
// resumes one needle length after the occurrence.
type Finder[I parse.Input[I], O any] struct {
	needle string
	item   parse.Parser[I, O]
}

// NewFinder returns a Finder for needle and item. An empty needle makes
// every scan fail with parse.KindEmptyNeedle.
func NewFinder[I parse.Input[I], O any](needle string, item parse.Parser[I, O]) *Finder[I, O] {
	return &Finder[I, O]{needle: needle, item: item}
}

// First returns the result of the first successful item parse.
// It fails with parse.KindNotFound when the needle runs out first.
func (f *Finder[I, O]) First(in I) (I, O, error) {
	var zero O
	if f.needle == "" {
		return in, zero, parse.Fail(in, parse.KindEmptyNeedle)
	}
	start := in
	for {
		index := start.Index(f.needle)
		if index < 0 {
			return in, zero, parse.Fail(start, parse.KindNotFound)
		}
		at, _ := start.TakeSplit(index)
		rest, value, err := f.item(at)
		if err != nil {
			start, _ = at.TakeSplit(len(f.needle))
			continue
		}
		return rest, value, nil
	}
}

// All collects the results of every successful item parse.
// Finding nothing is not an error: the result is empty.
func (f *Finder[I, O]) All(in I) (I, []O, error) {
	var buf []O
	rest, err := f.AllInto(in, &buf)
	if err != nil {
		return in, nil, err
	}
	if buf == nil {
		buf = []O{}
	}
	return rest, buf, nil
}

// AllInto is All appending to buf. The returned cursor is the scan
// position after the last needle occurrence that was examined.
func (f *Finder[I, O]) AllInto(in I, buf *[]O) (I, error) {
	if f.needle == "" {
		return in, parse.Fail(in, parse.KindEmptyNeedle)
	}
	start := in
	for {
		index := start.Index(f.needle)
		if index < 0 {
			return start, nil
		}
		at, _ := start.TakeSplit(index)
		rest, value, err := f.item(at)
		if err != nil {
			start, _ = at.TakeSplit(len(f.needle))
			continue
		}
		*buf = append(*buf, value)
		if rest.Len() >= at.Len() {
			// the item matched nothing; step over the needle so the scan advances
			rest, _ = at.TakeSplit(len(f.needle))
		}
		start = rest
	}
}

// FindFirst returns a parser yielding the first item found at an
// occurrence of needle.
//
//	in := parse.NewString("This is a {text} with some {special} {words}!")
//	braces := parse.Delimited(parse.Char[parse.String]('{'), parse.Alphanumeric1[parse.String](), parse.Char[parse.String]('}'))
//	rest, word, err := snacks.FindFirst("{", braces)(in)
//	// rest: " with some {special} {words}!", word: "text"
func FindFirst[I parse.Input[I], O any](needle string, item parse.Parser[I, O]) parse.Parser[I, O] {
	return NewFinder(needle, item).First
}

// FindAll returns a parser collecting every item found at an occurrence of
// needle.
func FindAll[I parse.Input[I], O any](needle string, item parse.Parser[I, O]) parse.Parser[I, []O] {
	return NewFinder(needle, item).All
}

// FindAllInto is FindAll writing into a caller-provided buffer.
func FindAllInto[I parse.Input[I], O any](needle string, item parse.Parser[I, O]) IntoParser[I, O] {
	return NewFinder(needle, item).AllInto
}
