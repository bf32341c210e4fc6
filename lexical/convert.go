// Unexported conversion functions for English number-to-text conversion.
package lexical

import (
	"math/big"
	"slices"
	"strings"
)

const growConvert = 96 // estimated bytes for a full uint64 conversion

var (
	bigGroupBase = big.NewInt(groupBase)

	// bigLimit is the first value without a scale word (10^21).
	bigLimit = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(3 * maxGroups)), nil)
)

// groupsOf splits v into three-digit groups, most significant first.
func groupsOf(v uint64) []int {
	groups := make([]int, 0, maxGroups)
	for v > 0 {
		groups = append(groups, int(v%groupBase))
		v /= groupBase
	}
	slices.Reverse(groups)
	return groups
}

// bigGroupsOf is groupsOf for arbitrary precision values. v must be positive.
func bigGroupsOf(v *big.Int) []int {
	var (
		q   = new(big.Int).Set(v)
		m   = new(big.Int)
		out []int
	)
	for q.Sign() > 0 {
		q.DivMod(q, bigGroupBase, m)
		out = append(out, int(m.Int64()))
	}
	slices.Reverse(out)
	return out
}

// render writes the words for groups into a new string.
// Callers must ensure len(groups) <= maxGroups.
func render(groups []int) string {
	if len(groups) == 0 {
		return wordZero
	}

	var b strings.Builder
	b.Grow(growConvert)

	for i, g := range groups {
		if g == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		writeGroup(&b, g)

		if pos := len(groups) - i - 1; pos > 0 {
			b.WriteByte('-')
			b.WriteString(scales[pos])
		}
	}

	return b.String()
}

// writeGroup writes a number in [1, 999] as hyphenated English into b.
func writeGroup(b *strings.Builder, n int) {
	h := n / hundred
	r := n % hundred

	if h > 0 {
		b.WriteString(small[h])
		b.WriteByte('-')
		b.WriteString(wordHundred)
		if r == 0 {
			return
		}
		b.WriteByte('-')
	}

	if r < len(small) {
		b.WriteString(small[r])
		return
	}

	b.WriteString(tens[r/10])
	if o := r % 10; o > 0 {
		b.WriteByte('-')
		b.WriteString(small[o])
	}
}
