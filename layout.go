package lapgo

import "fmt"

// MatrixLayout describes how a flat element buffer maps onto a logical
// m x n matrix: row-major (C order) or column-major (Fortran order), plus
// the stride (leading dimension) of the major axis.
//
// MatrixLayout is an immutable value. It performs no allocation and has no
// fallible operations; solvers use it to decide how a buffer must be
// presented to the column-major kernel.
type MatrixLayout struct {
	rowMajor bool
	rows     int
	cols     int
	lda      int
}

// RowMajor returns the layout of a packed row-major rows x cols matrix.
// Consecutive memory addresses walk along a row; the stride is cols.
func RowMajor(rows, cols int) MatrixLayout {
	return MatrixLayout{rowMajor: true, rows: rows, cols: cols, lda: cols}
}

// ColMajor returns the layout of a packed column-major rows x cols matrix.
// Consecutive memory addresses walk along a column; the stride is rows.
func ColMajor(rows, cols int) MatrixLayout {
	return MatrixLayout{rowMajor: false, rows: rows, cols: cols, lda: rows}
}

// WithStride returns a copy of l with an explicit leading dimension.
// Panics if lda is smaller than the minor dimension it strides over.
func (l MatrixLayout) WithStride(lda int) MatrixLayout {
	minor := l.cols
	if !l.rowMajor {
		minor = l.rows
	}
	if lda < minor {
		panic(fmt.Sprintf("lapgo: stride %d smaller than minor dimension %d", lda, minor))
	}
	l.lda = lda
	return l
}

// Dims returns the logical (rows, cols) of the matrix.
func (l MatrixLayout) Dims() (rows, cols int) {
	return l.rows, l.cols
}

// Stride returns the leading dimension of the major axis.
func (l MatrixLayout) Stride() int {
	return l.lda
}

// IsRowMajor reports whether consecutive addresses walk along a row.
func (l MatrixLayout) IsRowMajor() bool {
	return l.rowMajor
}

// Len returns the number of elements a packed buffer for l must hold.
func (l MatrixLayout) Len() int {
	return l.rows * l.cols
}

// Transposed returns the layout describing the transpose of the same
// buffer: majorness flipped, dimensions swapped, stride unchanged. No data
// moves; a row-major m x n buffer read column-major as n x m is exactly
// the transposed matrix.
func (l MatrixLayout) Transposed() MatrixLayout {
	return MatrixLayout{rowMajor: !l.rowMajor, rows: l.cols, cols: l.rows, lda: l.lda}
}

// Resize reinterprets the buffer as a packed rows x cols matrix of the
// same majorness.
func (l MatrixLayout) Resize(rows, cols int) MatrixLayout {
	if l.rowMajor {
		return RowMajor(rows, cols)
	}
	return ColMajor(rows, cols)
}

// kernelDims returns the (rows, cols) the column-major kernel sees when
// the buffer is handed over untouched: the logical dimensions for a
// column-major layout, the swapped ones for a row-major layout (whose
// column-major reinterpretation is the transpose).
func (l MatrixLayout) kernelDims() (m, n int) {
	if l.rowMajor {
		return l.cols, l.rows
	}
	return l.rows, l.cols
}

func (l MatrixLayout) String() string {
	order := "col-major"
	if l.rowMajor {
		order = "row-major"
	}
	return fmt.Sprintf("%s %dx%d (stride %d)", order, l.rows, l.cols, l.lda)
}

// at returns the flat index of logical element (i, j) under l.
func (l MatrixLayout) at(i, j int) int {
	if l.rowMajor {
		return i*l.lda + j
	}
	return i + j*l.lda
}

// transposeCopy re-stores the logical matrix described by l into freshly
// allocated packed storage of the opposite majorness and returns the new
// layout alongside the new buffer. The physical copy is unavoidable for
// kernels with no transpose symmetry to exploit.
func transposeCopy[T Scalar](l MatrixLayout, a []T) (MatrixLayout, []T) {
	if len(a) < l.Len() {
		panic(fmt.Sprintf("lapgo: buffer length %d shorter than layout %v", len(a), l))
	}
	m, n := l.Dims()
	var lt MatrixLayout
	if l.rowMajor {
		lt = ColMajor(m, n)
	} else {
		lt = RowMajor(m, n)
	}
	out := make([]T, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			out[lt.at(i, j)] = a[l.at(i, j)]
		}
	}
	return lt, out
}

// transposeOver writes the logical matrix held in src (described by l)
// back into dst using the opposite majorness, packed. It is the inverse of
// transposeCopy and reuses dst's storage.
func transposeOver[T Scalar](l MatrixLayout, src, dst []T) {
	m, n := l.Dims()
	var lt MatrixLayout
	if l.rowMajor {
		lt = ColMajor(m, n)
	} else {
		lt = RowMajor(m, n)
	}
	if len(dst) < lt.Len() {
		panic(fmt.Sprintf("lapgo: destination length %d shorter than layout %v", len(dst), lt))
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			dst[lt.at(i, j)] = src[l.at(i, j)]
		}
	}
}
