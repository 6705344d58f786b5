package snacks

import (
	"testing"

	"github.com/cato-001/snacks/parse"
)

func TestFindAllInEmpty(t *testing.T) {
	rest, values, err := FindAll("http", braces())(parse.NewString(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRest(t, rest, "")
	if values == nil || len(values) != 0 {
		t.Errorf("values = %#v, want empty non-nil slice", values)
	}
}

func TestFindAllCollectsValues(t *testing.T) {
	in := parse.NewString("This is a {text} with some {special} {words}!")
	rest, values, err := FindAll("{", braces())(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRest(t, rest, "!")
	assertStrings(t, values, []string{"text", "special", "words"})
}

func TestFindAllWithoutNeedle(t *testing.T) {
	in := parse.NewString("nothing to see")
	rest, values, err := FindAll("{", braces())(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRest(t, rest, "nothing to see")
	if len(values) != 0 {
		t.Errorf("len(values) = %d, want 0", len(values))
	}
}

func TestFindAllOverBytes(t *testing.T) {
	item := parse.Delimited(parse.Char[parse.Bytes]('{'), parse.Alphanumeric1[parse.Bytes](), parse.Char[parse.Bytes]('}'))
	in := parse.NewBytes([]byte("a {b} c {d}."))

	rest, values, err := FindAll("{", item)(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rest.String() != "." {
		t.Errorf("rest = %q, want %q", rest.String(), ".")
	}
	if len(values) != 2 || values[0].String() != "b" || values[1].String() != "d" {
		t.Fatalf("values = %v, want [b d]", values)
	}
	if values[1].Offset() != 9 {
		t.Errorf("values[1].Offset() = %d, want %d", values[1].Offset(), 9)
	}
}

func TestFindAllSkipsFailedItems(t *testing.T) {
	in := parse.NewString("{bad {good} {} {fine}")
	rest, values, err := FindAll("{", braces())(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRest(t, rest, "")
	assertStrings(t, values, []string{"good", "fine"})
}

func TestFindAllZeroLengthItem(t *testing.T) {
	in := parse.NewString("axbxc")
	rest, values, err := FindAll("x", parse.Tag[S](""))(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRest(t, rest, "c")
	if len(values) != 2 {
		t.Errorf("len(values) = %d, want 2", len(values))
	}
}

func TestFindAllIntoAppends(t *testing.T) {
	in := parse.NewString("This is a {text} with some {special} {words}!")
	buf := []S{parse.NewString("zero")}

	rest, err := FindAllInto("{", braces())(in, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRest(t, rest, "!")
	assertStrings(t, buf, []string{"zero", "text", "special", "words"})
}

func TestFindFirst(t *testing.T) {
	in := parse.NewString("This is a {text} with some {special} {words}!")
	rest, value, err := FindFirst("{", braces())(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRest(t, rest, " with some {special} {words}!")
	if value.String() != "text" {
		t.Errorf("value = %q, want %q", value.String(), "text")
	}
}

func TestFindFirstNotFound(t *testing.T) {
	tests := []string{
		"",
		"no braces here",
		"{ broken } {",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, _, err := FindFirst("{", braces())(parse.NewString(input))
			if !parse.IsKind(err, parse.KindNotFound) {
				t.Errorf("err = %v, want kind %s", err, parse.KindNotFound)
			}
		})
	}
}

func TestFindFirstSkipsWholeNeedle(t *testing.T) {
	// After a failed attempt at "aaab" the scan resumes two bytes later, so
	// the overlapping occurrence at offset 1 is never tried.
	_, _, err := FindFirst("aa", parse.Tag[S]("aab"))(parse.NewString("aaab"))
	if !parse.IsKind(err, parse.KindNotFound) {
		t.Errorf("err = %v, want kind %s", err, parse.KindNotFound)
	}
}

func TestFindEmptyNeedle(t *testing.T) {
	in := parse.NewString("{a}")

	if _, _, err := FindFirst("", braces())(in); !parse.IsKind(err, parse.KindEmptyNeedle) {
		t.Errorf("FindFirst err = %v, want kind %s", err, parse.KindEmptyNeedle)
	}
	if _, _, err := FindAll("", braces())(in); !parse.IsKind(err, parse.KindEmptyNeedle) {
		t.Errorf("FindAll err = %v, want kind %s", err, parse.KindEmptyNeedle)
	}
	var buf []S
	if _, err := FindAllInto("", braces())(in, &buf); !parse.IsKind(err, parse.KindEmptyNeedle) {
		t.Errorf("FindAllInto err = %v, want kind %s", err, parse.KindEmptyNeedle)
	}
}

func TestFinderIsReusable(t *testing.T) {
	f := NewFinder("{", braces())

	for i := 0; i < 2; i++ {
		_, values, err := f.All(parse.NewString("{a} {b}"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertStrings(t, values, []string{"a", "b"})
	}
}
