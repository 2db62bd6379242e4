package mom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkPartitioned(t *testing.T, s []int, pivot int, p int) {
	t.Helper()

	require.GreaterOrEqual(t, p, 0)
	require.Less(t, p, len(s))
	assert.Equal(t, pivot, s[p])
	for i := 0; i < p; i++ {
		assert.LessOrEqual(t, s[i], pivot, "left side at %d", i)
	}
	for i := p + 1; i < len(s); i++ {
		assert.Greater(t, s[i], pivot, "right side at %d", i)
	}
}

func TestPartitionByValue(t *testing.T) {
	s := []int{25, 21, 98, 100, 76, 22, 43, 60, 89, 42}
	p := PartitionByValue(s, 43, nil)
	checkPartitioned(t, s, 43, p)
	assert.Equal(t, 4, p) // 43 is the 5th smallest
}

func TestPartitionByValue_Extremes(t *testing.T) {
	s := []int{3, 1, 2}
	p := PartitionByValue(s, 1, nil)
	checkPartitioned(t, s, 1, p)
	assert.Equal(t, 0, p)

	s = []int{3, 1, 2}
	p = PartitionByValue(s, 3, nil)
	checkPartitioned(t, s, 3, p)
	assert.Equal(t, 2, p)
}

func TestPartitionByValue_Duplicates(t *testing.T) {
	// Equal elements classify as <= and land left of the boundary;
	// with an all-duplicate run the pivot ends up rightmost.
	s := []int{4, 4, 4, 1, 4}
	p := PartitionByValue(s, 4, nil)
	checkPartitioned(t, s, 4, p)
	assert.Equal(t, 4, p)
}

func TestPartitionByValue_SingleElement(t *testing.T) {
	s := []int{5}
	p := PartitionByValue(s, 5, nil)
	assert.Equal(t, 0, p)
	assert.Equal(t, []int{5}, s)
}

func TestPartitionByValue_MissingPivotPanics(t *testing.T) {
	assert.Panics(t, func() {
		PartitionByValue([]int{1, 2, 3}, 99, nil)
	})
}

func TestPartitionByValue_PreservesMultiset(t *testing.T) {
	s := []int{9, 7, 7, 7, 2}
	before := countValues(s)
	PartitionByValue(s, 7, nil)
	assert.Equal(t, before, countValues(s))
}

func countValues(s []int) map[int]int {
	m := make(map[int]int, len(s))
	for _, v := range s {
		m[v]++
	}
	return m
}
