package selectgo

import (
	"sync/atomic"
	"time"
)

// Stats reports the primitive operation counts of one selection.
type Stats struct {
	Comparisons uint64 // element-to-element comparisons
	Swaps       uint64 // element moves and exchanges
	Partitions  uint64 // partition passes over a window
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    selectCounter   prometheus.Counter
//	    selectHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSelect(k, n int, stats selectgo.Stats, d time.Duration, err error) {
//	    p.selectCounter.Inc()
//	    // ... record error state, duration, operation counts, etc.
//	}
type MetricsCollector interface {
	// RecordSelect is called after each selection operation. k is the
	// requested rank, n the slice length at call time, stats the
	// operation counts, duration the time taken. err is nil on success.
	RecordSelect(k, n int, stats Stats, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSelect(int, int, Stats, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SelectCount      atomic.Int64
	SelectErrors     atomic.Int64
	SelectTotalNanos atomic.Int64
	Comparisons      atomic.Uint64
	Swaps            atomic.Uint64
	Partitions       atomic.Uint64
}

// RecordSelect implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSelect(k, n int, stats Stats, duration time.Duration, err error) {
	b.SelectCount.Add(1)
	b.SelectTotalNanos.Add(duration.Nanoseconds())
	b.Comparisons.Add(stats.Comparisons)
	b.Swaps.Add(stats.Swaps)
	b.Partitions.Add(stats.Partitions)
	if err != nil {
		b.SelectErrors.Add(1)
	}
}

// AverageSelectNanos returns the mean selection latency in nanoseconds.
func (b *BasicMetricsCollector) AverageSelectNanos() int64 {
	count := b.SelectCount.Load()
	if count == 0 {
		return 0
	}
	return b.SelectTotalNanos.Load() / count
}
