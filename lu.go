package lapgo

import (
	"fmt"

	"github.com/hupe1980/lapgo/internal/lapack"
	"github.com/hupe1980/lapgo/internal/mem"
)

// Pivot records the 1-based row interchange indices produced by a
// partial-pivoting LU factorization. It is owned by the caller after LU
// returns and must be passed unchanged to Solve and Inv against the same
// factored buffer. Its length equals the factored matrix's minor
// dimension.
type Pivot []int32

// LU computes the LU factorization with partial pivoting of the matrix
// stored in a under layout l. On success the factors L and U overwrite a
// and the row interchanges are returned.
//
// A singular matrix surfaces as an ErrComputeFailed whose Code is the
// 1-based index of the first exactly-zero pivot; the factorization is
// still written but must not be used to solve.
func LU[T Scalar](l MatrixLayout, a []T) (Pivot, error) {
	if len(a) < l.Len() {
		panic(fmt.Sprintf("lapgo: matrix buffer length %d does not match layout %v", len(a), l))
	}
	m, n := l.kernelDims()
	piv := Pivot(mem.AllocInt32(min(m, n)))

	var info int
	routine := "dgetrf"
	switch a := any(a).(type) {
	case []float64:
		info = lapack.Dgetrf(m, n, a, l.Stride(), piv)
	case []complex128:
		routine = "zgetrf"
		info = lapack.Zgetrf(m, n, a, l.Stride(), piv)
	}
	if err := infoError(routine, info); err != nil {
		return nil, err
	}
	return piv, nil
}

// Solve solves op(A)*x = b for a single right-hand-side vector b of
// length n, using the LU factorization produced by LU with the same
// layout. The solution overwrites b.
//
// Layout duality is handled through the transpose flag rather than any
// data movement: the column-major interpretation of a row-major buffer is
// the transpose, so NoTrans and Trans swap. A conjugate-transpose solve on
// a row-major complex buffer has no direct kernel flag; it is rewritten as
// a plain solve of the conjugated system, conjugating b on the way in and
// out.
func Solve[T Scalar](l MatrixLayout, trans Transpose, a []T, p Pivot, b []T) error {
	rows, cols := l.Dims()
	if rows != cols {
		panic(fmt.Sprintf("lapgo: solve requires a square matrix, got %dx%d", rows, cols))
	}
	n := rows
	if len(p) != n {
		panic(fmt.Sprintf("lapgo: pivot length %d does not match dimension %d", len(p), n))
	}
	if len(b) < n {
		panic(fmt.Sprintf("lapgo: rhs length %d shorter than dimension %d", len(b), n))
	}

	t := trans
	conj := false
	if l.IsRowMajor() {
		switch trans {
		case NoTrans:
			t = Trans
		case Trans:
			t = NoTrans
		case ConjTrans:
			// A^H x = b with the buffer holding A^T column-major is
			// conj(A^T) x = b, i.e. A^T conj(x) = conj(b).
			t = NoTrans
			conj = true
		}
	}

	var info int
	routine := "dgetrs"
	switch a := any(a).(type) {
	case []float64:
		info = lapack.Dgetrs(byte(t), n, 1, a, l.Stride(), p, any(b).([]float64), max(1, n))
	case []complex128:
		routine = "zgetrs"
		bc := any(b).([]complex128)
		if conj {
			conjugate(bc[:n])
		}
		info = lapack.Zgetrs(byte(t), n, 1, a, l.Stride(), p, bc, max(1, n))
		if conj && info == 0 {
			conjugate(bc[:n])
		}
	}
	return infoError(routine, info)
}

// Inv overwrites the LU-factored matrix a with its inverse, using the
// pivot from the factorization. The inverse of the transpose is the
// transpose of the inverse, so a row-major buffer needs no handling at
// all: the result reads back correctly under the caller's layout.
func Inv[T Scalar](l MatrixLayout, a []T, p Pivot) error {
	rows, cols := l.Dims()
	if rows != cols {
		panic(fmt.Sprintf("lapgo: inversion requires a square matrix, got %dx%d", rows, cols))
	}
	n := rows
	if len(p) != n {
		panic(fmt.Sprintf("lapgo: pivot length %d does not match dimension %d", len(p), n))
	}
	if len(a) < l.Len() {
		panic(fmt.Sprintf("lapgo: matrix buffer length %d does not match layout %v", len(a), l))
	}

	switch a := any(a).(type) {
	case []float64:
		lwork, err := queryWork("dgetri", func(work []float64, lwork int) int {
			return lapack.Dgetri(n, nil, l.Stride(), nil, work, lwork)
		})
		if err != nil {
			return err
		}
		work := mem.AllocFloat64(max(1, lwork))
		return infoError("dgetri", lapack.Dgetri(n, a, l.Stride(), p, work, len(work)))
	case []complex128:
		lwork, err := queryWork("zgetri", func(work []complex128, lwork int) int {
			return lapack.Zgetri(n, nil, l.Stride(), nil, work, lwork)
		})
		if err != nil {
			return err
		}
		work := mem.AllocComplex128(max(1, lwork))
		return infoError("zgetri", lapack.Zgetri(n, a, l.Stride(), p, work, len(work)))
	}
	return nil // unreachable, Scalar is closed
}
