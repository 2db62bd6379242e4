package mom

import "cmp"

// SmallSort reorders s ascending in place using insertion sort.
//
// It is meant for the five-element groups of the selection engine,
// where the quadratic cost amortizes to O(1) per group. It is correct
// for any length and never allocates.
func SmallSort[T cmp.Ordered](s []T, st *Stats) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 {
			st.comparison()
			if s[j] <= key {
				break
			}
			s[j+1] = s[j]
			st.swap()
			j--
		}
		s[j+1] = key
	}
}
