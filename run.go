package snacks

import (
	"errors"
	"fmt"

	"github.com/cato-001/snacks/parse"
)

// Run applies p to in and returns only its output. A parse failure is
// turned into an error naming the failing parser and the line and column
// relative to in; the *parse.Error stays reachable with errors.As.
func Run[I parse.Input[I], O any](p parse.Parser[I, O], in I) (O, error) {
	_, out, err := p(in)
	if err == nil {
		return out, nil
	}
	var zero O
	var perr *parse.Error
	if errors.As(err, &perr) {
		pos := parse.PositionOf(in.String(), perr.Offset-in.Offset())
		return zero, fmt.Errorf("parse %s at %s: %w", perr.Kind, pos, err)
	}
	return zero, fmt.Errorf("parse: %w", err)
}
