package lexical

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by Parse for blank input.
	ErrEmpty = errors.New("lexical: empty input")

	// ErrSyntax is wrapped by every Parse error caused by malformed text.
	ErrSyntax = errors.New("lexical: invalid number text")
)

// RangeError reports a value whose magnitude has no scale word, or that
// cannot be represented by the requested integer type.
type RangeError struct {
	Value  string // decimal value or input text
	Groups int    // three-digit groups required, 0 when unknown
}

func (e *RangeError) Error() string {
	if e.Groups > maxGroups {
		return fmt.Sprintf("lexical: %s needs %d digit groups, at most %d are named",
			e.Value, e.Groups, maxGroups)
	}
	return fmt.Sprintf("lexical: %s out of range", e.Value)
}

func syntaxError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrSyntax}, args...)...)
}
