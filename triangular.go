package lapgo

import (
	"fmt"

	"github.com/hupe1980/lapgo/internal/lapack"
)

// TriangularSolve solves op(A)*x = b for a triangular matrix A stored in a
// under layout l and a single right-hand-side vector b of length n. The
// solution overwrites b.
//
// The row-major adjustment combines the two dualities of the simpler
// solvers: the stored triangle flips sides (uplo) and the transpose flag
// swaps (trans); a conjugate-transpose solve falls back to conjugating b
// around a plain solve, as in Solve.
//
// A zero diagonal element surfaces as an ErrComputeFailed whose Code is
// its 1-based index.
func TriangularSolve[T Scalar](l MatrixLayout, uplo UpLo, trans Transpose, diag Diag, a []T, b []T) error {
	n := squareDim(l, a)
	if len(b) < n {
		panic(fmt.Sprintf("lapgo: rhs length %d shorter than dimension %d", len(b), n))
	}

	u := uplo
	t := trans
	conj := false
	if l.IsRowMajor() {
		u = u.flip()
		switch trans {
		case NoTrans:
			t = Trans
		case Trans:
			t = NoTrans
		case ConjTrans:
			t = NoTrans
			conj = true
		}
	}

	var info int
	routine := "dtrtrs"
	switch a := any(a).(type) {
	case []float64:
		info = lapack.Dtrtrs(byte(u), byte(t), byte(diag), n, 1, a, l.Stride(), any(b).([]float64), max(1, n))
	case []complex128:
		routine = "ztrtrs"
		bc := any(b).([]complex128)
		if conj {
			conjugate(bc[:n])
		}
		info = lapack.Ztrtrs(byte(u), byte(t), byte(diag), n, 1, a, l.Stride(), bc, max(1, n))
		if conj && info == 0 {
			conjugate(bc[:n])
		}
	}
	return infoError(routine, info)
}
