// Package matrix implements square-matrix multiplication via Strassen's
// divide-and-conquer scheme.
//
// Strassen replaces the eight block products of the naive recursion
// with seven, trading them for extra block additions, which lowers the
// asymptotic cost from O(n^3) to roughly O(n^2.81). Inputs must be
// square with a power-of-two dimension; callers with other shapes
// should zero-pad first.
//
// # Quick Start
//
//	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]int{{5, 6}, {7, 8}})
//	c, _ := matrix.Strassen(context.Background(), a, b)
//	// c = [[19, 22], [43, 50]]
//
// The seven block products of each level are independent; pass
// matrix.WithParallelDepth to fan them out across goroutines.
package matrix
