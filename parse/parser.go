package parse

// Parser consumes a prefix of in and returns the remaining cursor and the
// parsed value. On failure rest is meaningless and err is usually an *Error.
type Parser[I, O any] func(in I) (rest I, out O, err error)

// Tuple holds the outputs of Pair.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Map applies fn to the output of p.
func Map[I, A, B any](p Parser[I, A], fn func(A) B) Parser[I, B] {
	return func(in I) (I, B, error) {
		rest, a, err := p(in)
		if err != nil {
			var zero B
			return in, zero, err
		}
		return rest, fn(a), nil
	}
}

// Value replaces the output of p with v.
func Value[I, O, V any](v V, p Parser[I, O]) Parser[I, V] {
	return Map(p, func(O) V { return v })
}

// Void discards the output of p.
func Void[I, O any](p Parser[I, O]) Parser[I, struct{}] {
	return Value(struct{}{}, p)
}

// Recognize returns the input consumed by p instead of its output.
func Recognize[I Input[I], O any](p Parser[I, O]) Parser[I, I] {
	return func(in I) (I, I, error) {
		rest, _, err := p(in)
		if err != nil {
			return in, in, err
		}
		rest, taken := in.TakeSplit(in.Len() - rest.Len())
		return rest, taken, nil
	}
}

// Verify fails with KindVerify when check rejects the output of p.
func Verify[I Input[I], O any](p Parser[I, O], check func(O) bool) Parser[I, O] {
	return func(in I) (I, O, error) {
		rest, out, err := p(in)
		if err != nil {
			return in, out, err
		}
		if !check(out) {
			var zero O
			return in, zero, Fail(in, KindVerify)
		}
		return rest, out, nil
	}
}

// Alt tries each parser in order and returns the first success.
func Alt[I Input[I], O any](ps ...Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		for _, p := range ps {
			if rest, out, err := p(in); err == nil {
				return rest, out, nil
			}
		}
		var zero O
		return in, zero, Fail(in, KindAlt)
	}
}

// Pair runs a then b and returns both outputs.
func Pair[I, A, B any](a Parser[I, A], b Parser[I, B]) Parser[I, Tuple[A, B]] {
	return func(in I) (I, Tuple[A, B], error) {
		var t Tuple[A, B]
		rest, av, err := a(in)
		if err != nil {
			return in, t, err
		}
		rest, bv, err := b(rest)
		if err != nil {
			return in, t, err
		}
		t.First, t.Second = av, bv
		return rest, t, nil
	}
}

// Preceded runs first then second and returns the output of second.
func Preceded[I, A, B any](first Parser[I, A], second Parser[I, B]) Parser[I, B] {
	return Map(Pair(first, second), func(t Tuple[A, B]) B { return t.Second })
}

// Terminated runs first then second and returns the output of first.
func Terminated[I, A, B any](first Parser[I, A], second Parser[I, B]) Parser[I, A] {
	return Map(Pair(first, second), func(t Tuple[A, B]) A { return t.First })
}

// Delimited runs open, inner and close and returns the output of inner.
func Delimited[I, A, B, C any](open Parser[I, A], inner Parser[I, B], close Parser[I, C]) Parser[I, B] {
	return Preceded(open, Terminated(inner, close))
}
