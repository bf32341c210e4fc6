// Ordering of integers by their English names.
package lexical

import (
	"cmp"
	"slices"
	"strings"
)

// Compare orders a and b by their names, returning -1, 0 or +1 like
// strings.Compare.
func Compare(a, b uint64) int {
	if a == b {
		return 0
	}
	return strings.Compare(Format(a), Format(b))
}

// keyed pairs a value with its precomputed name.
type keyed struct {
	name  string
	value uint64
}

// Sort orders values in place by their names. Each distinct value is
// formatted once, however many comparisons the sort makes.
func Sort(values []uint64) {
	if len(values) < 2 {
		return
	}

	names := make(map[uint64]string, len(values))
	keys := make([]keyed, len(values))
	for i, v := range values {
		name, ok := names[v]
		if !ok {
			name = Format(v)
			names[v] = name
		}
		keys[i] = keyed{name: name, value: v}
	}

	slices.SortStableFunc(keys, func(a, b keyed) int {
		return cmp.Compare(a.name, b.name)
	})

	for i, k := range keys {
		values[i] = k.value
	}
}

// Names returns the names of values in order.
func Names(values []uint64) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Format(v)
	}
	return out
}
