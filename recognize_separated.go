package snacks

import "github.com/cato-001/snacks/parse"

// SeparatedRun recognizes the longest prefix matching
// item (separator item)* and reports the consumed span. The individual
// item values are discarded.
type SeparatedRun[I parse.Input[I], O, S any] struct {
	item      parse.Parser[I, O]
	separator parse.Parser[I, S]
	required  bool
}

// Recognize returns the rest of the input and the recognized span. A trailing
// separator that is not followed by an item is left in the rest.
func (r *SeparatedRun[I, O, S]) Recognize(in I) (I, I, error) {
	cur, _, err := r.item(in)
	if err != nil {
		if r.required {
			return in, in, parse.Fail(in, parse.KindSeparatedListEmpty)
		}
		rest, span := in.TakeSplit(0)
		return rest, span, nil
	}
	for {
		next, _, err := r.separator(cur)
		if err != nil {
			break
		}
		next, _, err = r.item(next)
		if err != nil || next.Len() >= cur.Len() {
			break
		}
		cur = next
	}
	rest, span := in.TakeSplit(in.Len() - cur.Len())
	return rest, span, nil
}

// RecognizeSeparated0 returns a parser for zero or more separated items.
// It never fails; with no items the span is empty.
//
//	in := parse.NewString("all, comma, separated-elements")
//	rest, span, _ := snacks.RecognizeSeparated0(parse.Alphanumeric1[parse.String](), parse.IsA[parse.String](",; "))(in)
//	// rest: "-elements", span: "all, comma, separated"
func RecognizeSeparated0[I parse.Input[I], O, S any](item parse.Parser[I, O], separator parse.Parser[I, S]) parse.Parser[I, I] {
	r := &SeparatedRun[I, O, S]{item: item, separator: separator}
	return r.Recognize
}

// RecognizeSeparated1 is RecognizeSeparated0 requiring at least one item.
// It fails with parse.KindSeparatedListEmpty otherwise.
func RecognizeSeparated1[I parse.Input[I], O, S any](item parse.Parser[I, O], separator parse.Parser[I, S]) parse.Parser[I, I] {
	r := &SeparatedRun[I, O, S]{item: item, separator: separator, required: true}
	return r.Recognize
}
