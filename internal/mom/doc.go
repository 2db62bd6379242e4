// Package mom implements deterministic rank selection using the
// median-of-medians pivot scheme (Blum, Floyd, Pratt, Rivest, Tarjan).
//
// Unlike randomized quickselect, the pivot is guaranteed to discard a
// constant fraction of the window at every level, giving a worst-case
// linear bound: T(n) = T(n/5) + T(7n/10) + O(n) = O(n).
//
// All operations reorder the caller's slice in place and never copy,
// grow, or shrink it. The engine is strictly single-threaded.
package mom
