package lexical

import (
	"math"
	"slices"
	"strings"
	"testing"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b uint64
		want int
	}{
		{8, 18, -1},    // eight, eighteen
		{80, 88, -1},   // eighty, eighty-eight
		{0, 2, 1},      // zero, two
		{1000, 10, -1}, // one-thousand, ten
		{42, 42, 0},
		{1, 100, -1}, // one, one-hundred
	}

	for _, tt := range cases {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := strings.Compare(Format(tt.a), Format(tt.b)); got != tt.want {
			t.Errorf("strings.Compare on names of %d, %d = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSortFirstHundred(t *testing.T) {
	t.Parallel()

	values := make([]uint64, 100)
	for i := range values {
		values[i] = uint64(i)
	}
	Sort(values)

	wantHead := []uint64{8, 18, 80, 88, 85, 84}
	if !slices.Equal(values[:len(wantHead)], wantHead) {
		t.Errorf("Sort head = %v, want %v", values[:len(wantHead)], wantHead)
	}
	wantTail := []uint64{22, 2, 0}
	if !slices.Equal(values[len(values)-len(wantTail):], wantTail) {
		t.Errorf("Sort tail = %v, want %v", values[len(values)-len(wantTail):], wantTail)
	}

	names := Names(values)
	if !slices.IsSorted(names) {
		t.Errorf("Names(Sort(0..99)) not sorted: %v", names)
	}
}

func TestSortMatchesStringOrder(t *testing.T) {
	t.Parallel()

	values := []uint64{1, 2, 3, 10, 100, 1000, 1_000_567, math.MaxUint64, 0, 3, 1}
	Sort(values)

	want := []uint64{math.MaxUint64, 1, 1, 100, 1_000_567, 1000, 10, 3, 3, 2, 0}
	if !slices.Equal(values, want) {
		t.Errorf("Sort = %v, want %v", values, want)
	}
}

func TestSortDeterministic(t *testing.T) {
	t.Parallel()

	base := []uint64{5, 500, 5_000_000, 15, 50, 55, 0, 999, 1_000_001}
	first := slices.Clone(base)
	Sort(first)

	for range 10 {
		again := slices.Clone(base)
		slices.Reverse(again)
		Sort(again)
		if !slices.Equal(first, again) {
			t.Fatalf("Sort not reproducible: %v vs %v", first, again)
		}
	}
}

func TestSortSmallInputs(t *testing.T) {
	t.Parallel()

	Sort(nil)

	one := []uint64{7}
	Sort(one)
	if one[0] != 7 {
		t.Errorf("Sort([7]) = %v", one)
	}
}

func BenchmarkSort(b *testing.B) {
	values := make([]uint64, 1000)
	for b.Loop() {
		for i := range values {
			values[i] = uint64(i)
		}
		Sort(values)
	}
}
