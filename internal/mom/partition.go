package mom

import "cmp"

// PartitionByValue rearranges s around a pivot value that must occur in
// s: afterwards every element left of the returned index is <= pivot,
// every element right of it is > pivot, and s[p] == pivot.
//
// The pivot is given as a value rather than an index because the
// selection engine computes it from a separate medians buffer. The
// first occurrence is located and moved to the end, then a single
// Lomuto-style left-to-right pass accumulates the <= boundary.
// Elements equal to the pivot land on the left side.
//
// A pivot value absent from s is a broken engine invariant, not an
// input error, and panics.
func PartitionByValue[T cmp.Ordered](s []T, pivot T, st *Stats) int {
	st.partition()

	r := len(s) - 1
	loc := -1
	for i := 0; i <= r; i++ {
		st.comparison()
		if s[i] == pivot {
			loc = i
			break
		}
	}
	if loc < 0 {
		panic("mom: pivot value not present in window")
	}
	s[loc], s[r] = s[r], s[loc]
	st.swap()

	i := 0
	for j := 0; j < r; j++ {
		st.comparison()
		if s[j] <= pivot {
			s[i], s[j] = s[j], s[i]
			st.swap()
			i++
		}
	}
	s[i], s[r] = s[r], s[i]
	st.swap()

	return i
}
