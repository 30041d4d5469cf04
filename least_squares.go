package lapgo

import (
	"fmt"

	"github.com/hupe1980/lapgo/internal/lapack"
	"github.com/hupe1980/lapgo/internal/mem"
)

// LeastSquaresResult holds the byproducts of a minimum-norm least-squares
// solve: the singular values of the coefficient matrix in decreasing
// order, and the effective rank estimated under the configured threshold.
// The solution itself is written into the right-hand-side buffer.
type LeastSquaresResult struct {
	// SingularValues holds the min(m, n) singular values of A, descending
	// and non-negative.
	SingularValues []float64

	// Rank is the effective numerical rank of A, as estimated by the
	// divide-and-conquer SVD. It is a numerical estimate, not a
	// mathematical guarantee.
	Rank int
}

// LeastSquaresWork is a reusable workspace for least-squares solves of one
// shape. It is built once per (aLayout, bLayout) pair and may be used for
// any number of Compute calls against distinct matrices of that shape. A
// LeastSquaresWork must not be shared between concurrent calls.
type LeastSquaresWork[T Scalar] struct {
	aLayout MatrixLayout
	bLayout MatrixLayout
	rcond   float64
	m, n    int
	nrhs    int

	s     []float64
	workR []float64
	workC []complex128
	rwork []float64
	iwork []int32
}

// NewLeastSquaresWork negotiates and allocates the workspace for solving
// min ||A*X - B|| with A of shape aLayout and B of shape bLayout. B must
// have at least as many rows as A; for underdetermined systems (n > m) it
// must have max(m, n) rows so the solution fits. Panics when B has fewer
// rows than A.
//
// The divide-and-conquer kernel reports three scratch sizes from a single
// probe call: the main workspace, an integer workspace and, on the complex
// path, a real workspace. All three are sized here, before any execution
// call is made.
func NewLeastSquaresWork[T Scalar](aLayout, bLayout MatrixLayout, opts ...Option) (*LeastSquaresWork[T], error) {
	m, n := aLayout.Dims()
	mb, nrhs := bLayout.Dims()
	if mb < m {
		panic(fmt.Sprintf("lapgo: rhs has %d rows, coefficient matrix has %d", mb, m))
	}

	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &LeastSquaresWork[T]{
		aLayout: aLayout,
		bLayout: bLayout,
		rcond:   o.rcond,
		m:       m,
		n:       n,
		nrhs:    nrhs,
	}
	w.s = mem.AllocFloat64(min(m, n))

	var (
		rank      int32
		iworkSize [1]int32
		zero      T
	)
	switch any(zero).(type) {
	case float64:
		lwork, err := queryWork("dgelsd", func(work []float64, lwork int) int {
			return lapack.Dgelsd(m, n, nrhs, nil, max(1, m), nil, max(1, mb), w.s, w.rcond, &rank, work, lwork, iworkSize[:])
		})
		if err != nil {
			return nil, err
		}
		w.workR = mem.AllocFloat64(max(1, lwork))
		w.iwork = mem.AllocInt32(max(1, int(iworkSize[0])))
		o.logger.LogWorkspace("dgelsd", aLayout, lwork)
	default:
		var rworkSize [1]float64
		lwork, err := queryWork("zgelsd", func(work []complex128, lwork int) int {
			return lapack.Zgelsd(m, n, nrhs, nil, max(1, m), nil, max(1, mb), w.s, w.rcond, &rank, work, lwork, rworkSize[:], iworkSize[:])
		})
		if err != nil {
			return nil, err
		}
		w.workC = mem.AllocComplex128(max(1, lwork))
		w.rwork = mem.AllocFloat64(max(1, int(rworkSize[0])))
		w.iwork = mem.AllocInt32(max(1, int(iworkSize[0])))
		o.logger.LogWorkspace("zgelsd", aLayout, lwork)
	}

	return w, nil
}

// Compute solves min ||A*X - B|| for the matrices stored in a and b, which
// must match the layouts the workspace was built for. Both buffers are
// destroyed; on success b holds the n x nrhs solution, reinterpreted under
// its own layout.
//
// The least-squares kernel has no transpose symmetry to exploit, so a
// row-major matrix is materialized as a fresh column-major copy before the
// call. B's copy is transposed back afterwards because it carries the
// solution; A's copy is simply dropped, since the kernel destroys A and
// its post-call contents mean nothing to the caller.
func (w *LeastSquaresWork[T]) Compute(a, b []T) (LeastSquaresResult, error) {
	if len(a) < w.aLayout.Len() {
		panic(fmt.Sprintf("lapgo: coefficient buffer length %d does not match layout %v", len(a), w.aLayout))
	}
	if len(b) < w.bLayout.Len() {
		panic(fmt.Sprintf("lapgo: rhs buffer length %d does not match layout %v", len(b), w.bLayout))
	}

	ka := a
	lda := w.aLayout.Stride()
	if w.aLayout.IsRowMajor() {
		_, ka = transposeCopy(w.aLayout, a)
		lda = w.m
	}

	kb := b
	ldb := w.bLayout.Stride()
	mb, _ := w.bLayout.Dims()
	var (
		bt          MatrixLayout
		transposedB bool
	)
	if w.bLayout.IsRowMajor() {
		bt, kb = transposeCopy(w.bLayout, b)
		ldb = mb
		transposedB = true
	}

	var (
		rank int32
		info int
	)
	routine := "dgelsd"
	switch ka := any(ka).(type) {
	case []float64:
		info = lapack.Dgelsd(w.m, w.n, w.nrhs, ka, lda, any(kb).([]float64), ldb, w.s, w.rcond, &rank, w.workR, len(w.workR), w.iwork)
	case []complex128:
		routine = "zgelsd"
		info = lapack.Zgelsd(w.m, w.n, w.nrhs, ka, lda, any(kb).([]complex128), ldb, w.s, w.rcond, &rank, w.workC, len(w.workC), w.rwork, w.iwork)
	}
	if err := infoError(routine, info); err != nil {
		return LeastSquaresResult{}, err
	}

	if transposedB {
		transposeOver(bt, kb, b)
	}

	return LeastSquaresResult{
		SingularValues: append([]float64(nil), w.s...),
		Rank:           int(rank),
	}, nil
}

// LeastSquares computes the minimum-norm solution of min ||A*x - b|| for a
// single right-hand-side vector b, which must hold max(m, n) elements so
// the solution fits in place. On success b[:n] is the solution.
func LeastSquares[T Scalar](aLayout MatrixLayout, a, b []T, opts ...Option) (LeastSquaresResult, error) {
	return LeastSquaresNRHS(aLayout, a, aLayout.Resize(len(b), 1), b, opts...)
}

// LeastSquaresNRHS computes minimum-norm solutions of min ||A*X - B|| for
// a block of right-hand sides. See LeastSquaresWork for the buffer
// contract.
//
// For repeated solves of the same shape, build a LeastSquaresWork once and
// call Compute to reuse the negotiated workspace.
func LeastSquaresNRHS[T Scalar](aLayout MatrixLayout, a []T, bLayout MatrixLayout, b []T, opts ...Option) (LeastSquaresResult, error) {
	w, err := NewLeastSquaresWork[T](aLayout, bLayout, opts...)
	if err != nil {
		return LeastSquaresResult{}, err
	}
	return w.Compute(a, b)
}
