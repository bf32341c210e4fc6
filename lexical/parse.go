// Text-to-number parsing for English number names.
package lexical

import (
	"math"
	"strings"
	"unicode"
)

// wordValues maps every name below one hundred to its value.
// Built at package level to avoid repeated allocation on every parse call.
var wordValues = func() map[string]uint64 {
	m := make(map[string]uint64, len(small)+len(tens))
	for i, w := range small {
		m[w] = uint64(i)
	}
	for i, w := range tens {
		if w != "" {
			m[w] = uint64(i * 10)
		}
	}
	return m
}()

// scalePositions maps each scale word to its group position.
var scalePositions = func() map[string]int {
	m := make(map[string]int, len(scales)-1)
	for i, w := range scales {
		if w != "" {
			m[w] = i
		}
	}
	return m
}()

// scaleValues holds 1000^position for each scale position.
var scaleValues = func() [maxGroups]uint64 {
	var out [maxGroups]uint64
	v := uint64(1)
	for i := range out {
		out[i] = v
		v *= groupBase
	}
	return out
}()

// isSeparator reports whether r separates words in a number name.
func isSeparator(r rune) bool {
	return r == '-' || unicode.IsSpace(r)
}

// parse converts English cardinal text to uint64.
//
// Words missing before "hundred" or a scale word imply "one", so
// "hundred-thousand" parses as 100000. Scale words must be strictly
// descending and each group may hold at most one "hundred".
func parse(s string) (uint64, error) {
	text := strings.TrimSpace(s)
	tokens := strings.FieldsFunc(strings.ToLower(text), isSeparator)
	if len(tokens) == 0 {
		return 0, ErrEmpty
	}

	if len(tokens) == 1 && tokens[0] == wordZero {
		return 0, nil
	}

	var (
		total      uint64 // sum of fully resolved scaled groups
		hundreds   uint64 // hundreds part of the group under construction
		rest       uint64 // 0–99 part of the group under construction
		hasHundred bool
		lastScale  = maxGroups
	)

	for _, tok := range tokens {
		if val, ok := wordValues[tok]; ok {
			if val == 0 {
				return 0, syntaxError("unexpected %q in compound", wordZero)
			}
			// Only a tens word may be followed by a ones word.
			if rest != 0 && (rest < 20 || rest%10 != 0 || val >= 10) {
				return 0, syntaxError("unexpected %q", tok)
			}
			rest += val
			continue
		}

		if tok == wordHundred {
			if hasHundred || rest >= 10 {
				return 0, syntaxError("misplaced %q", wordHundred)
			}
			if rest == 0 {
				rest = 1
			}
			hundreds, rest, hasHundred = rest*hundred, 0, true
			continue
		}

		pos, ok := scalePositions[tok]
		if !ok {
			return 0, syntaxError("unknown word %q", tok)
		}
		if pos >= lastScale {
			return 0, syntaxError("scale %q out of order", tok)
		}

		group := hundreds + rest
		if group == 0 {
			group = 1
		}
		mul := scaleValues[pos]
		if group > math.MaxUint64/mul {
			return 0, &RangeError{Value: text}
		}
		product := group * mul
		if total > math.MaxUint64-product {
			return 0, &RangeError{Value: text}
		}
		total += product

		hundreds, rest, hasHundred = 0, 0, false
		lastScale = pos
	}

	group := hundreds + rest
	if total > math.MaxUint64-group {
		return 0, &RangeError{Value: text}
	}
	return total + group, nil
}
