package selectgo

import (
	"cmp"
	"time"

	"github.com/hupe1980/selectgo/internal/mom"
)

// Selector performs deterministic rank selection over slices of T.
// The zero configuration neither logs nor collects metrics; a Selector
// is safe for concurrent use as long as no slice is shared between
// in-flight calls.
type Selector[T cmp.Ordered] struct {
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Selector with the given options.
func New[T cmp.Ordered](optFns ...Option) *Selector[T] {
	opts := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Selector[T]{
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}
}

// SelectKth returns the value at 1-based sorted rank k, in worst-case
// O(n) time. values is partitioned in place as a side effect; its
// multiset of values is unchanged. Ranks outside [1, len(values)]
// return *ErrInvalidRank.
func (s *Selector[T]) SelectKth(values []T, k int) (T, error) {
	v, _, err := s.SelectKthStats(values, k)
	return v, err
}

// SelectKthStats behaves like SelectKth and additionally reports the
// operation counts of the call.
func (s *Selector[T]) SelectKthStats(values []T, k int) (T, Stats, error) {
	start := time.Now()

	var st mom.Stats
	v, err := mom.SelectKth(values, k, &st)
	err = translateError(err, k, len(values))

	stats := Stats{
		Comparisons: st.Comparisons,
		Swaps:       st.Swaps,
		Partitions:  st.Partitions,
	}

	s.metrics.RecordSelect(k, len(values), stats, time.Since(start), err)
	s.logger.LogSelect(k, len(values), stats, err)

	return v, stats, err
}

// Min returns the smallest value (rank 1).
func (s *Selector[T]) Min(values []T) (T, error) {
	return s.SelectKth(values, 1)
}

// Max returns the largest value (rank len(values)).
func (s *Selector[T]) Max(values []T) (T, error) {
	return s.SelectKth(values, len(values))
}

// Median returns the lower median (rank (n+1)/2).
func (s *Selector[T]) Median(values []T) (T, error) {
	return s.SelectKth(values, (len(values)+1)/2)
}

// SelectKth returns the value at 1-based sorted rank k of values using
// a default Selector. See Selector.SelectKth.
func SelectKth[T cmp.Ordered](values []T, k int) (T, error) {
	return New[T]().SelectKth(values, k)
}

// Min returns the smallest value of values.
func Min[T cmp.Ordered](values []T) (T, error) {
	return New[T]().Min(values)
}

// Max returns the largest value of values.
func Max[T cmp.Ordered](values []T) (T, error) {
	return New[T]().Max(values)
}

// Median returns the lower median of values.
func Median[T cmp.Ordered](values []T) (T, error) {
	return New[T]().Median(values)
}
