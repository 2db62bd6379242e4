// Package selectgo provides deterministic rank selection (order
// statistics) for Go slices.
//
// SelectKth returns the value that would occupy 1-based rank k if the
// slice were sorted ascending, without sorting it. The pivot is chosen
// with the median-of-medians scheme, so the worst case is O(n) — there
// is no quadratic degradation on adversarial inputs, unlike randomized
// quickselect.
//
// # Quick Start
//
//	v, err := selectgo.SelectKth([]int{25, 21, 98, 100, 76}, 2)
//	// v == 25, the 2nd smallest
//
//	median, _ := selectgo.Median(values)
//
// For repeated use with logging or metrics, configure a Selector:
//
//	sel := selectgo.New[float64](
//	    selectgo.WithLogger(selectgo.NewTextLogger(slog.LevelDebug)),
//	    selectgo.WithMetricsCollector(collector),
//	)
//	v, err := sel.SelectKth(values, k)
//
// # Mutation
//
// Selection partitions the caller's slice in place: after a call the
// element order is unspecified, but the multiset of values is
// unchanged. Clone the slice first if the order matters.
//
// # Failure
//
// A rank outside [1, len(values)], including any rank against an empty
// slice, returns *ErrInvalidRank. No in-band sentinel value is ever
// used; every element value is a legitimate result.
package selectgo
