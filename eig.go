package lapgo

import (
	"fmt"

	"github.com/hupe1980/lapgo/internal/lapack"
	"github.com/hupe1980/lapgo/internal/mem"
)

// EigResult holds the eigendecomposition of a general square matrix.
// Values are always complex, even for real input: a real matrix may have
// complex eigenvalues, which then occur in conjugate pairs at consecutive
// positions. The order is exactly the order the kernel produced and is
// never re-sorted.
type EigResult struct {
	// Values holds the n eigenvalues.
	Values []complex128

	// Vectors holds the right eigenvectors as an n x n column-major block:
	// eigenvector j occupies Vectors[j*n : (j+1)*n]. Each column has unit
	// 2-norm. Nil when eigenvectors were not requested.
	Vectors []complex128
}

// EigWork is a reusable workspace for eigendecompositions of one shape.
// It is built once per (calcVectors, layout) pair and may be used for any
// number of Compute calls, amortizing the workspace negotiation and
// allocation. An EigWork must not be shared between concurrent calls.
type EigWork[T Scalar] struct {
	layout MatrixLayout
	calcV  bool
	jobvl  byte
	jobvr  byte
	n      int

	// real path scratch
	wr, wi []float64
	vr     []float64
	workR  []float64

	// complex path scratch
	w     []complex128
	vc    []complex128
	workC []complex128
	rwork []float64
}

// NewEigWork negotiates and allocates the workspace for eigendecompositions
// of matrices with the given layout. Panics if the layout is not square.
//
// The kernel computes right eigenvectors (A v = λ v) of the column-major
// interpretation of the buffer it is given. A row-major buffer reinterpreted
// column-major is the transpose, and for the transpose
//
//	Aᵀ V = V Λ  ⟺  Vᵀ A = Λ Vᵀ  ⟺  conj(V)ᴴ A = Λ conj(V)ᴴ
//
// so the right eigenvectors of the caller's matrix are the conjugates of the
// kernel's *left* eigenvectors, and the eigenvalues are unchanged. For
// row-major layouts we therefore request only the left eigenvector pass and
// conjugate afterwards, avoiding a physical transpose of the input.
func NewEigWork[T Scalar](calcVectors bool, l MatrixLayout, opts ...Option) (*EigWork[T], error) {
	rows, cols := l.Dims()
	if rows != cols {
		panic(fmt.Sprintf("lapgo: eigendecomposition requires a square matrix, got %dx%d", rows, cols))
	}

	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &EigWork[T]{
		layout: l,
		calcV:  calcVectors,
		jobvl:  'N',
		jobvr:  'N',
		n:      rows,
	}
	if calcVectors {
		if l.IsRowMajor() {
			w.jobvl = 'V'
		} else {
			w.jobvr = 'V'
		}
	}

	n := w.n
	lda := l.Stride()
	var zero T
	switch any(zero).(type) {
	case float64:
		lwork, err := queryWork("dgeev", func(work []float64, lwork int) int {
			return lapack.Dgeev(w.jobvl, w.jobvr, n, nil, lda, nil, nil, nil, max(1, n), nil, max(1, n), work, lwork)
		})
		if err != nil {
			return nil, err
		}
		w.wr = mem.AllocFloat64(n)
		w.wi = mem.AllocFloat64(n)
		if calcVectors {
			w.vr = mem.AllocFloat64(n * n)
		}
		w.workR = mem.AllocFloat64(max(1, lwork))
		o.logger.LogWorkspace("dgeev", l, lwork)
	default:
		// zgeev reads rwork during the execution call only, but the
		// argument must be valid for both calls.
		w.rwork = mem.AllocFloat64(2 * n)
		lwork, err := queryWork("zgeev", func(work []complex128, lwork int) int {
			return lapack.Zgeev(w.jobvl, w.jobvr, n, nil, lda, nil, nil, max(1, n), nil, max(1, n), work, lwork, w.rwork)
		})
		if err != nil {
			return nil, err
		}
		w.w = mem.AllocComplex128(n)
		if calcVectors {
			w.vc = mem.AllocComplex128(n * n)
		}
		w.workC = mem.AllocComplex128(max(1, lwork))
		o.logger.LogWorkspace("zgeev", l, lwork)
	}

	return w, nil
}

// Compute runs the eigendecomposition on a, which must hold a matrix with
// exactly the layout the workspace was built for. The contents of a are
// destroyed. The returned result does not alias the workspace and stays
// valid across further Compute calls.
func (w *EigWork[T]) Compute(a []T) (EigResult, error) {
	if len(a) < w.layout.Len() {
		panic(fmt.Sprintf("lapgo: matrix buffer length %d does not match layout %v", len(a), w.layout))
	}

	switch a := any(a).(type) {
	case []float64:
		return w.computeReal(a)
	case []complex128:
		return w.computeCmplx(a)
	}
	return EigResult{}, nil // unreachable, Scalar is closed
}

func (w *EigWork[T]) computeReal(a []float64) (EigResult, error) {
	n := w.n
	lda := w.layout.Stride()

	var vl, vr []float64
	if w.jobvl == 'V' {
		vl = w.vr
	} else if w.jobvr == 'V' {
		vr = w.vr
	}

	info := lapack.Dgeev(w.jobvl, w.jobvr, n, a, lda, w.wr, w.wi, vl, max(1, n), vr, max(1, n), w.workR, len(w.workR))
	if err := infoError("dgeev", info); err != nil {
		return EigResult{}, err
	}

	values := make([]complex128, n)
	for i := 0; i < n; i++ {
		values[i] = complex(w.wr[i], w.wi[i])
	}
	if !w.calcV {
		return EigResult{Values: values}, nil
	}

	// The real kernel packs a complex conjugate eigenvector pair as two
	// consecutive real columns (Re, Im):
	//
	//	v(j)   = V(:,j) + i*V(:,j+1)
	//	v(j+1) = V(:,j) - i*V(:,j+1)
	//
	// while a real eigenvalue's column is the eigenvector itself. Walk the
	// columns left to right, advancing by two on a pair. When the left
	// eigenvectors were computed (row-major input), the conjugate is wanted,
	// which flips the sign of the imaginary column.
	vectors := make([]complex128, n*n)
	left := w.jobvl == 'V'
	for col := 0; col < n; {
		if w.wi[col] == 0 {
			for row := 0; row < n; row++ {
				vectors[row+col*n] = complex(w.vr[row+col*n], 0)
			}
			col++
			continue
		}
		if col+1 >= n {
			panic("lapgo: dgeev reported a conjugate pair starting at the last column")
		}
		for row := 0; row < n; row++ {
			re := w.vr[row+col*n]
			im := w.vr[row+(col+1)*n]
			if left {
				im = -im
			}
			vectors[row+col*n] = complex(re, im)
			vectors[row+(col+1)*n] = complex(re, -im)
		}
		col += 2
	}

	return EigResult{Values: values, Vectors: vectors}, nil
}

func (w *EigWork[T]) computeCmplx(a []complex128) (EigResult, error) {
	n := w.n
	lda := w.layout.Stride()

	var vl, vr []complex128
	if w.jobvl == 'V' {
		vl = w.vc
	} else if w.jobvr == 'V' {
		vr = w.vc
	}

	info := lapack.Zgeev(w.jobvl, w.jobvr, n, a, lda, w.w, vl, max(1, n), vr, max(1, n), w.workC, len(w.workC), w.rwork)
	if err := infoError("zgeev", info); err != nil {
		return EigResult{}, err
	}

	values := make([]complex128, n)
	copy(values, w.w)
	if !w.calcV {
		return EigResult{Values: values}, nil
	}

	vectors := make([]complex128, n*n)
	copy(vectors, w.vc)
	if w.jobvl == 'V' {
		// Left eigenvectors were computed; the caller wants their
		// conjugates. The eigenvalues are left untouched, preserving the
		// kernel's ordering.
		conjugate(vectors)
	}

	return EigResult{Values: values, Vectors: vectors}, nil
}

// Eig computes the eigenvalues and, if calcVectors is set, the right
// eigenvectors of the general square matrix stored in a under layout l.
// The contents of a are destroyed.
//
// For repeated decompositions of the same shape, build an EigWork once and
// call Compute to reuse the negotiated workspace.
func Eig[T Scalar](calcVectors bool, l MatrixLayout, a []T, opts ...Option) (EigResult, error) {
	w, err := NewEigWork[T](calcVectors, l, opts...)
	if err != nil {
		return EigResult{}, err
	}
	return w.Compute(a)
}
