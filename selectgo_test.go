package selectgo_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/hupe1980/selectgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectKth(t *testing.T) {
	s := []int{25, 21, 98, 100, 76, 22, 43, 60, 89, 42}

	v, err := selectgo.SelectKth(s, 5)
	require.NoError(t, err)
	assert.Equal(t, 43, v)
}

func TestSelectKth_MutatesButPreservesMultiset(t *testing.T) {
	s := []int{9, 7, 7, 7, 2}
	want := []int{2, 7, 7, 7, 9}

	v, err := selectgo.SelectKth(s, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	slices.Sort(s)
	assert.Equal(t, want, s)
}

func TestSelectKth_InvalidRank(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		k      int
	}{
		{name: "zero rank", values: []int{1, 2, 3}, k: 0},
		{name: "rank above length", values: []int{1, 2, 3}, k: 4},
		{name: "negative rank", values: []int{1, 2, 3}, k: -7},
		{name: "empty slice", values: []int{}, k: 1},
		{name: "single above length", values: []int{5}, k: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := selectgo.SelectKth(tt.values, tt.k)

			var ir *selectgo.ErrInvalidRank
			require.ErrorAs(t, err, &ir)
			assert.Equal(t, tt.k, ir.Rank)
			assert.Equal(t, len(tt.values), ir.Length)
			assert.NotNil(t, errors.Unwrap(err))
		})
	}
}

func TestSelectKth_SingleElement(t *testing.T) {
	v, err := selectgo.SelectKth([]int{5}, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestMinMaxMedian(t *testing.T) {
	s := []float64{3.5, -1.25, 8, 0.5}

	minVal, err := selectgo.Min(slices.Clone(s))
	require.NoError(t, err)
	assert.Equal(t, -1.25, minVal)

	maxVal, err := selectgo.Max(slices.Clone(s))
	require.NoError(t, err)
	assert.Equal(t, 8.0, maxVal)

	// Lower median of four values.
	median, err := selectgo.Median(slices.Clone(s))
	require.NoError(t, err)
	assert.Equal(t, 0.5, median)

	_, err = selectgo.Median([]float64{})
	var ir *selectgo.ErrInvalidRank
	assert.ErrorAs(t, err, &ir)
}

func TestSelector_Strings(t *testing.T) {
	sel := selectgo.New[string]()

	v, err := sel.SelectKth([]string{"pear", "apple", "fig", "kiwi"}, 3)
	require.NoError(t, err)
	assert.Equal(t, "kiwi", v)
}

func TestSelector_Stats(t *testing.T) {
	sel := selectgo.New[int]()

	s := []int{25, 21, 98, 100, 76, 22, 43, 60, 89, 42}
	v, stats, err := sel.SelectKthStats(s, 5)
	require.NoError(t, err)
	assert.Equal(t, 43, v)
	assert.NotZero(t, stats.Comparisons)
	assert.NotZero(t, stats.Partitions)
}

func TestSelector_MetricsCollector(t *testing.T) {
	collector := &selectgo.BasicMetricsCollector{}
	sel := selectgo.New[int](selectgo.WithMetricsCollector(collector))

	_, err := sel.SelectKth([]int{3, 1, 2}, 2)
	require.NoError(t, err)

	_, err = sel.SelectKth([]int{3, 1, 2}, 9)
	require.Error(t, err)

	assert.Equal(t, int64(2), collector.SelectCount.Load())
	assert.Equal(t, int64(1), collector.SelectErrors.Load())
	assert.NotZero(t, collector.Comparisons.Load())
}

func TestSelector_NilOptionFallbacks(t *testing.T) {
	sel := selectgo.New[int](
		selectgo.WithLogger(nil),
		selectgo.WithMetricsCollector(nil),
	)

	v, err := sel.SelectKth([]int{2, 1}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}
