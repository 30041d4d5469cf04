package lapgo

import (
	"fmt"

	"github.com/hupe1980/lapgo/internal/lapack"
)

// Cholesky computes the Cholesky factorization of the symmetric
// (Hermitian) positive definite matrix stored in a under layout l, using
// the triangle selected by uplo. The factor overwrites the selected
// triangle; the other triangle is not referenced.
//
// A row-major buffer reinterpreted column-major is the transpose, which
// moves the stored triangle to the other side; flipping uplo is the whole
// layout adjustment. A non-positive-definite matrix surfaces as an
// ErrComputeFailed whose Code is the order of the first failing leading
// minor.
func Cholesky[T Scalar](l MatrixLayout, uplo UpLo, a []T) error {
	n := squareDim(l, a)
	u := uplo
	if l.IsRowMajor() {
		u = u.flip()
	}

	var info int
	routine := "dpotrf"
	switch a := any(a).(type) {
	case []float64:
		info = lapack.Dpotrf(byte(u), n, a, l.Stride())
	case []complex128:
		routine = "zpotrf"
		info = lapack.Zpotrf(byte(u), n, a, l.Stride())
	}
	return infoError(routine, info)
}

// CholeskySolve solves A*x = b for a single right-hand-side vector of
// length n, using the factorization produced by Cholesky with the same
// layout and uplo. The solution overwrites b.
//
// On the complex row-major path the kernel holds the factorization of
// conj(A), so b is conjugated on the way in and out; a Hermitian system
// needs no transpose flag beyond that.
func CholeskySolve[T Scalar](l MatrixLayout, uplo UpLo, a []T, b []T) error {
	n := squareDim(l, a)
	if len(b) < n {
		panic(fmt.Sprintf("lapgo: rhs length %d shorter than dimension %d", len(b), n))
	}
	u := uplo
	if l.IsRowMajor() {
		u = u.flip()
	}

	var info int
	routine := "dpotrs"
	switch a := any(a).(type) {
	case []float64:
		info = lapack.Dpotrs(byte(u), n, 1, a, l.Stride(), any(b).([]float64), max(1, n))
	case []complex128:
		routine = "zpotrs"
		bc := any(b).([]complex128)
		if l.IsRowMajor() {
			conjugate(bc[:n])
		}
		info = lapack.Zpotrs(byte(u), n, 1, a, l.Stride(), bc, max(1, n))
		if l.IsRowMajor() && info == 0 {
			conjugate(bc[:n])
		}
	}
	return infoError(routine, info)
}

// CholeskyInv overwrites the Cholesky-factored matrix a with the selected
// triangle of its inverse. The inverse of a Hermitian matrix is Hermitian,
// so the row-major path again reduces to the uplo flip done at
// factorization time.
func CholeskyInv[T Scalar](l MatrixLayout, uplo UpLo, a []T) error {
	n := squareDim(l, a)
	u := uplo
	if l.IsRowMajor() {
		u = u.flip()
	}

	var info int
	routine := "dpotri"
	switch a := any(a).(type) {
	case []float64:
		info = lapack.Dpotri(byte(u), n, a, l.Stride())
	case []complex128:
		routine = "zpotri"
		info = lapack.Zpotri(byte(u), n, a, l.Stride())
	}
	return infoError(routine, info)
}

// squareDim panics unless l describes a square matrix backed by a, and
// returns its dimension.
func squareDim[T Scalar](l MatrixLayout, a []T) int {
	rows, cols := l.Dims()
	if rows != cols {
		panic(fmt.Sprintf("lapgo: operation requires a square matrix, got %dx%d", rows, cols))
	}
	if len(a) < l.Len() {
		panic(fmt.Sprintf("lapgo: matrix buffer length %d does not match layout %v", len(a), l))
	}
	return rows
}
