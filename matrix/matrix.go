package matrix

// Number constrains the element types the package operates on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Matrix is a square n×n matrix over a flat row-major backing slice.
type Matrix[T Number] struct {
	n    int
	data []T
}

// New returns a zero-valued n×n matrix. It panics for n < 1; sizing is
// caller misuse, not a runtime condition.
func New[T Number](n int) *Matrix[T] {
	if n < 1 {
		panic("matrix: non-positive dimension")
	}
	return &Matrix[T]{n: n, data: make([]T, n*n)}
}

// FromRows builds a matrix from row slices. All rows must have the
// same length as the row count.
func FromRows[T Number](rows [][]T) (*Matrix[T], error) {
	n := len(rows)
	if n < 1 {
		return nil, &ErrInvalidDimension{Dimension: n}
	}
	m := New[T](n)
	for i, row := range rows {
		if len(row) != n {
			return nil, &ErrDimensionMismatch{Expected: n, Actual: len(row)}
		}
		copy(m.data[i*n:(i+1)*n], row)
	}
	return m, nil
}

// Dim returns the matrix dimension n.
func (m *Matrix[T]) Dim() int { return m.n }

// At returns the element at row i, column j.
func (m *Matrix[T]) At(i, j int) T { return m.data[i*m.n+j] }

// Set stores v at row i, column j.
func (m *Matrix[T]) Set(i, j int, v T) { m.data[i*m.n+j] = v }

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := New[T](m.n)
	copy(c.data, m.data)
	return c
}

// Equal reports whether two matrices have the same dimension and
// elements.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m.n != o.n {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Add returns the elementwise sum a + b.
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if a.n != b.n {
		return nil, &ErrDimensionMismatch{Expected: a.n, Actual: b.n}
	}
	c := New[T](a.n)
	addInto(c, a, b)
	return c, nil
}

// Sub returns the elementwise difference a - b.
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if a.n != b.n {
		return nil, &ErrDimensionMismatch{Expected: a.n, Actual: b.n}
	}
	c := New[T](a.n)
	subInto(c, a, b)
	return c, nil
}

// Mul returns the naive O(n^3) product a × b. It is the ground truth
// for Strassen and the leaf-level kernel of its recursion.
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if a.n != b.n {
		return nil, &ErrDimensionMismatch{Expected: a.n, Actual: b.n}
	}
	c := New[T](a.n)
	mulInto(c, a, b)
	return c, nil
}

// The *Into helpers assume equal dimensions; callers validate.

func addInto[T Number](dst, a, b *Matrix[T]) {
	for i := range dst.data {
		dst.data[i] = a.data[i] + b.data[i]
	}
}

func subInto[T Number](dst, a, b *Matrix[T]) {
	for i := range dst.data {
		dst.data[i] = a.data[i] - b.data[i]
	}
}

func mulInto[T Number](dst, a, b *Matrix[T]) {
	n := dst.n
	for i := 0; i < n; i++ {
		row := dst.data[i*n : (i+1)*n]
		for j := range row {
			row[j] = 0
		}
		for p := 0; p < n; p++ {
			av := a.data[i*n+p]
			if av == 0 {
				continue
			}
			brow := b.data[p*n : (p+1)*n]
			for j, bv := range brow {
				row[j] += av * bv
			}
		}
	}
}
