// Package testutil provides testing utilities for selectgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random input slices and computing
// exact order statistics by full sort as ground truth.
//
// # Random Input Generation
//
//	rng := testutil.NewRNG(seed)
//	s := rng.Ints(10000, 1<<20)          // uniform [0, max)
//	s := rng.IntsWithDuplicates(10000, 8) // only 8 distinct values
//
// # Ground Truth
//
//	want := testutil.KthBySort(s, k)
package testutil
