package lapgo

import (
	"fmt"

	"github.com/hupe1980/lapgo/internal/lapack"
	"github.com/hupe1980/lapgo/internal/mem"
)

// OpNorm computes the selected norm of the matrix stored in a under
// layout l. The buffer is not modified.
//
// The kernel sees the column-major interpretation, i.e. the transpose for
// a row-major buffer. The one-norm of a matrix is the infinity-norm of its
// transpose, so the two flags swap for row-major input; the max-abs and
// Frobenius norms are transpose-invariant. The infinity-norm needs a fixed
// real scratch of one element per kernel row, the only scratch this
// routine ever takes.
func OpNorm[T Scalar](norm Norm, l MatrixLayout, a []T) float64 {
	if len(a) < l.Len() {
		panic(fmt.Sprintf("lapgo: matrix buffer length %d does not match layout %v", len(a), l))
	}
	m, n := l.kernelDims()
	nm := norm
	if l.IsRowMajor() {
		nm = nm.flip()
	}

	var work []float64
	if nm == NormInf {
		work = mem.AllocFloat64(m)
	}

	switch a := any(a).(type) {
	case []float64:
		return lapack.Dlange(byte(nm), m, n, a, l.Stride(), work)
	case []complex128:
		return lapack.Zlange(byte(nm), m, n, a, l.Stride(), work)
	}
	return 0 // unreachable, Scalar is closed
}
