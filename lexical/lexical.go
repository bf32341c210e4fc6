// Package lexical spells non-negative integers as English words so that
// numbers can be ordered by their names rather than by their values.
//
// The word form is built from three-digit groups. Words inside a group and
// the group's scale word are joined by hyphens, groups by single spaces:
//
//	1_004_567_890 → "one-billion four-million five-hundred-sixty-seven-thousand eight-hundred-ninety"
//
// Groups equal to zero are omitted entirely, and "zero" only ever appears
// alone.
//
// The package provides:
//
//   - Format and FormatBig turn an integer into its name.
//   - Parse turns a name back into an integer.
//   - Compare and Sort order integers by their names.
//   - Number wraps a uint64 whose text form is its name.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Scale words stop at quintillion, so FormatBig rejects values of
//     10^21 and above with a *RangeError. Every uint64 is in range.
//   - Only the canonical American short scale without "and" is produced.
package lexical

import "math/big"

// Number is an integer whose text form is its English name.
type Number uint64

// New wraps v as a Number.
func New(v uint64) Number { return Number(v) }

// Uint64 returns the wrapped value unchanged.
func (n Number) Uint64() uint64 { return uint64(n) }

// String returns the English name of n.
func (n Number) String() string { return Format(uint64(n)) }

// MarshalText implements encoding.TextMarshaler using the English name.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(Format(uint64(n))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by parsing an English name.
func (n *Number) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

// Format returns the English name of v.
// Zero returns "zero". Every uint64 has a name, so Format cannot fail.
func Format(v uint64) string {
	return render(groupsOf(v))
}

// FormatBig returns the English name of v.
// It returns a *RangeError if v is nil, negative, or 10^21 or greater.
func FormatBig(v *big.Int) (string, error) {
	if v == nil {
		return "", &RangeError{Value: "<nil>"}
	}
	if v.Sign() < 0 {
		return "", &RangeError{Value: v.String()}
	}
	if v.Cmp(bigLimit) >= 0 {
		digits := len(v.Text(10))
		return "", &RangeError{Value: v.String(), Groups: (digits + 2) / 3}
	}
	if v.IsUint64() {
		return Format(v.Uint64()), nil
	}
	return render(bigGroupsOf(v)), nil
}

// Parse converts English number text produced by Format back to an integer.
// Input is whitespace-normalized and case-insensitive, and words may be
// separated by hyphens or spaces.
//
// Returns ErrEmpty for blank input, an error wrapping ErrSyntax for text
// that is not a number name, and a *RangeError for names above MaxUint64.
func Parse(s string) (uint64, error) {
	return parse(s)
}
