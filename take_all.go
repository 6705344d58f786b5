package snacks

import "github.com/cato-001/snacks/parse"

// Taker collects consecutive items, each optionally preceded by a prefix.
// A failing prefix is ignored and the item is tried where the prefix would
// have started. The first failing item ends the run.
type Taker[I parse.Input[I], P, O any] struct {
	prefix parse.Parser[I, P]
	item   parse.Parser[I, O]
}

// NewTaker returns a Taker. prefix may be nil.
func NewTaker[I parse.Input[I], P, O any](prefix parse.Parser[I, P], item parse.Parser[I, O]) *Taker[I, P, O] {
	return &Taker[I, P, O]{prefix: prefix, item: item}
}

// All returns every collected item. It never fails; the returned cursor is
// positioned after the last collected item, or at in when there was none.
func (t *Taker[I, P, O]) All(in I) (I, []O, error) {
	buf := []O{}
	rest, err := t.AllInto(in, &buf)
	return rest, buf, err
}

// AllInto is All appending to buf.
func (t *Taker[I, P, O]) AllInto(in I, buf *[]O) (I, error) {
	start := in
	for {
		cur := start
		if t.prefix != nil {
			if rest, _, err := t.prefix(start); err == nil {
				cur = rest
			}
		}
		rest, value, err := t.item(cur)
		if err != nil || rest.Len() >= start.Len() {
			return start, nil
		}
		*buf = append(*buf, value)
		start = rest
	}
}

// TakeAll returns a parser collecting items, each optionally preceded by
// prefix.
//
//	in := parse.NewString("An example #sentence with #cool tags!")
//	tag := parse.Preceded(parse.OneOf[parse.String]("#"), parse.IsNot[parse.String](" "))
//	rest, tags, _ := snacks.TakeAll(parse.IsNot[parse.String]("#"), tag)(in)
//	// rest: " tags!", tags: ["sentence", "cool"]
func TakeAll[I parse.Input[I], P, O any](prefix parse.Parser[I, P], item parse.Parser[I, O]) parse.Parser[I, []O] {
	return NewTaker(prefix, item).All
}

// TakeAllInto is TakeAll writing into a caller-provided buffer.
func TakeAllInto[I parse.Input[I], P, O any](prefix parse.Parser[I, P], item parse.Parser[I, O]) IntoParser[I, O] {
	return NewTaker(prefix, item).AllInto
}
