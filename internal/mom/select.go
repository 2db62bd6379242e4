package mom

import (
	"cmp"
	"errors"
)

// ErrInvalidRank is returned when the requested rank lies outside
// [1, len(s)], including any rank against an empty slice.
var ErrInvalidRank = errors.New("mom: rank out of range")

// groupSize is the block width of the median-of-medians scheme. Five
// is the classic choice: the pivot is then guaranteed to dominate at
// least 3/10 of the window, which is what makes the recurrence linear.
const groupSize = 5

// SelectKth returns the value that would occupy 1-based rank k if s
// were sorted ascending, in worst-case O(n) time.
//
// The slice is reordered in place as a side effect; its multiset of
// values is unchanged. st may be nil when operation counts are not
// wanted.
func SelectKth[T cmp.Ordered](s []T, k int, st *Stats) (T, error) {
	var zero T

	n := len(s)
	if k < 1 || k > n {
		return zero, ErrInvalidRank
	}

	// One median per group of up to five elements. The buffer is
	// scoped to this frame; sibling and parent frames each size their
	// own.
	g := (n + groupSize - 1) / groupSize
	medians := make([]T, 0, g)

	full := n / groupSize
	for i := 0; i < full; i++ {
		group := s[i*groupSize : (i+1)*groupSize]
		SmallSort(group, st)
		medians = append(medians, group[2])
	}
	if rest := n % groupSize; rest > 0 {
		group := s[full*groupSize:]
		SmallSort(group, st)
		medians = append(medians, group[rest/2])
	}

	pivot := medians[0]
	if g > 1 {
		// Median of the medians, lower median for even g. The buffer
		// has size n/5, so this side of the recursion contributes a
		// geometric series to the total work.
		p, err := SelectKth(medians, (g+1)/2, st)
		if err != nil {
			return zero, err
		}
		pivot = p
	}

	pos := PartitionByValue(s, pivot, st)

	rank := pos + 1 // 1-based rank of the pivot within this window
	switch {
	case rank == k:
		return s[pos], nil
	case rank > k:
		return SelectKth(s[:pos], k, st)
	default:
		return SelectKth(s[pos+1:], k-rank, st)
	}
}
