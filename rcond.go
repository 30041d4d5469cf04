package lapgo

import (
	"github.com/hupe1980/lapgo/internal/lapack"
	"github.com/hupe1980/lapgo/internal/mem"
)

// RCond estimates the reciprocal one-norm condition number of a square
// matrix from its LU factorization. a must hold the output of LU with the
// same layout, and anorm the one-norm of the original matrix as computed
// by OpNorm before factoring.
//
// The estimator works on the column-major interpretation, which for a
// row-major buffer is the transpose; the one-norm condition number of the
// transpose is the infinity-norm condition number of the matrix, so the
// norm flag swaps. Unlike the decompositions, the scratch here has fixed,
// dimension-proportional sizes and needs no workspace query.
func RCond[T Scalar](l MatrixLayout, a []T, anorm float64) (float64, error) {
	n := squareDim(l, a)
	norm := NormOne
	if l.IsRowMajor() {
		norm = NormInf
	}

	var (
		rcond float64
		info  int
	)
	routine := "dgecon"
	switch a := any(a).(type) {
	case []float64:
		work := mem.AllocFloat64(4 * n)
		iwork := mem.AllocInt32(n)
		info = lapack.Dgecon(byte(norm), n, a, l.Stride(), anorm, &rcond, work, iwork)
	case []complex128:
		routine = "zgecon"
		work := mem.AllocComplex128(2 * n)
		rwork := mem.AllocFloat64(2 * n)
		info = lapack.Zgecon(byte(norm), n, a, l.Stride(), anorm, &rcond, work, rwork)
	}
	if err := infoError(routine, info); err != nil {
		return 0, err
	}
	return rcond, nil
}
