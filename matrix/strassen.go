package matrix

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultLeafSize is the dimension at or below which the recursion
// switches to the naive kernel. Below this point the extra block
// additions of Strassen cost more than they save.
const DefaultLeafSize = 64

// Options configures a Strassen multiplication.
type Options struct {
	// LeafSize is the base-case dimension; values < 1 are clamped to 1.
	LeafSize int
	// ParallelDepth is how many recursion levels fan the seven block
	// products out across goroutines. 0 keeps the whole computation on
	// the calling goroutine.
	ParallelDepth int
}

// WithLeafSize sets the base-case dimension of the recursion.
func WithLeafSize(n int) func(*Options) {
	return func(o *Options) {
		o.LeafSize = n
	}
}

// WithParallelDepth enables parallel computation of the independent
// block products down to the given recursion depth.
func WithParallelDepth(d int) func(*Options) {
	return func(o *Options) {
		o.ParallelDepth = d
	}
}

// Strassen returns the product a × b using Strassen's seven-product
// recursion. Both operands must be square with the same power-of-two
// dimension. Each recursion frame allocates its own quadrant and
// product scratch matrices and drops them on return.
//
// The context is checked once per frame; cancellation aborts the
// computation with the context's error.
func Strassen[T Number](ctx context.Context, a, b *Matrix[T], optFns ...func(*Options)) (*Matrix[T], error) {
	opts := Options{LeafSize: DefaultLeafSize}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.LeafSize < 1 {
		opts.LeafSize = 1
	}

	if a.n != b.n {
		return nil, &ErrDimensionMismatch{Expected: a.n, Actual: b.n}
	}
	if a.n&(a.n-1) != 0 {
		return nil, &ErrInvalidDimension{Dimension: a.n}
	}

	c := New[T](a.n)
	if err := strassen(ctx, c, a, b, &opts, opts.ParallelDepth); err != nil {
		return nil, err
	}
	return c, nil
}

func strassen[T Number](ctx context.Context, c, a, b *Matrix[T], opts *Options, depth int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n := a.n
	if n <= opts.LeafSize {
		mulInto(c, a, b)
		return nil
	}

	h := n / 2
	a11, a12, a21, a22 := split(a)
	b11, b12, b21, b22 := split(b)

	// Seven products in place of eight:
	//
	//	P1 = A11 (B12 - B22)    P2 = (A11 + A12) B22
	//	P3 = (A21 + A22) B11    P4 = A22 (B21 - B11)
	//	P5 = (A11 + A22)(B11 + B22)
	//	P6 = (A12 - A22)(B21 + B22)
	//	P7 = (A11 - A21)(B11 + B12)
	xs := [7]*Matrix[T]{
		a11, sum(a11, a12), sum(a21, a22), a22,
		sum(a11, a22), diff(a12, a22), diff(a11, a21),
	}
	ys := [7]*Matrix[T]{
		diff(b12, b22), b22, b11, diff(b21, b11),
		sum(b11, b22), sum(b21, b22), sum(b11, b12),
	}

	var ps [7]*Matrix[T]
	for i := range ps {
		ps[i] = New[T](h)
	}

	if depth > 0 {
		g, gctx := errgroup.WithContext(ctx)
		for i := range ps {
			i := i
			g.Go(func() error {
				return strassen(gctx, ps[i], xs[i], ys[i], opts, depth-1)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		for i := range ps {
			if err := strassen(ctx, ps[i], xs[i], ys[i], opts, 0); err != nil {
				return err
			}
		}
	}

	// C11 = P5 + P4 - P2 + P6    C12 = P1 + P2
	// C21 = P3 + P4              C22 = P5 + P1 - P3 - P7
	c11 := sum(ps[4], ps[3])
	subInto(c11, c11, ps[1])
	addInto(c11, c11, ps[5])

	c12 := sum(ps[0], ps[1])
	c21 := sum(ps[2], ps[3])

	c22 := sum(ps[4], ps[0])
	subInto(c22, c22, ps[2])
	subInto(c22, c22, ps[6])

	join(c, c11, c12, c21, c22)
	return nil
}

// sum and diff allocate the result; used for the per-frame S matrices.

func sum[T Number](a, b *Matrix[T]) *Matrix[T] {
	c := New[T](a.n)
	addInto(c, a, b)
	return c
}

func diff[T Number](a, b *Matrix[T]) *Matrix[T] {
	c := New[T](a.n)
	subInto(c, a, b)
	return c
}

// split copies m into its four half-size quadrants.
func split[T Number](m *Matrix[T]) (m11, m12, m21, m22 *Matrix[T]) {
	h := m.n / 2
	m11, m12 = New[T](h), New[T](h)
	m21, m22 = New[T](h), New[T](h)
	for i := 0; i < h; i++ {
		top := m.data[i*m.n:]
		bottom := m.data[(i+h)*m.n:]
		copy(m11.data[i*h:(i+1)*h], top[:h])
		copy(m12.data[i*h:(i+1)*h], top[h:m.n])
		copy(m21.data[i*h:(i+1)*h], bottom[:h])
		copy(m22.data[i*h:(i+1)*h], bottom[h:m.n])
	}
	return m11, m12, m21, m22
}

// join writes the four quadrants back into dst.
func join[T Number](dst, c11, c12, c21, c22 *Matrix[T]) {
	h := dst.n / 2
	for i := 0; i < h; i++ {
		top := dst.data[i*dst.n:]
		bottom := dst.data[(i+h)*dst.n:]
		copy(top[:h], c11.data[i*h:(i+1)*h])
		copy(top[h:dst.n], c12.data[i*h:(i+1)*h])
		copy(bottom[:h], c21.data[i*h:(i+1)*h])
		copy(bottom[h:dst.n], c22.data[i*h:(i+1)*h])
	}
}
