package lapgo

import (
	"fmt"

	"github.com/hupe1980/lapgo/internal/lapack"
	"github.com/hupe1980/lapgo/internal/mem"
)

// Householder factors the matrix stored in a under layout l into
// Householder reflector form, the first step of a QR decomposition. On
// success a holds R in its upper triangle (under the caller's layout) and
// the reflectors below it; the returned slice holds the min(m, n) scalar
// reflector factors, which BuildQ needs to materialize Q.
//
// The QR kernel is column-major like all the others, but QR has a clean
// dual: the QR decomposition of A is the LQ decomposition of Aᵀ read
// backwards (Aᵀ = L*Q ⟺ A = Qᵀ*Lᵀ, with Lᵀ upper triangular and Qᵀ
// orthonormal-columned). A row-major buffer therefore routes to the LQ
// kernel and nothing is ever transposed in memory.
func Householder[T Scalar](l MatrixLayout, a []T, opts ...Option) ([]T, error) {
	if len(a) < l.Len() {
		panic(fmt.Sprintf("lapgo: matrix buffer length %d does not match layout %v", len(a), l))
	}

	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	m, n := l.kernelDims()
	k := min(m, n)
	tau := allocWork[T](max(1, k))

	var info int
	var routine string
	switch av := any(a).(type) {
	case []float64:
		if l.IsRowMajor() {
			routine = "dgelqf"
			lwork, err := queryWork(routine, func(work []float64, lwork int) int {
				return lapack.Dgelqf(m, n, nil, l.Stride(), nil, work, lwork)
			})
			if err != nil {
				return nil, err
			}
			work := mem.AllocFloat64(max(1, lwork))
			o.logger.LogWorkspace(routine, l, lwork)
			info = lapack.Dgelqf(m, n, av, l.Stride(), any2f(tau), work, len(work))
		} else {
			routine = "dgeqrf"
			lwork, err := queryWork(routine, func(work []float64, lwork int) int {
				return lapack.Dgeqrf(m, n, nil, l.Stride(), nil, work, lwork)
			})
			if err != nil {
				return nil, err
			}
			work := mem.AllocFloat64(max(1, lwork))
			o.logger.LogWorkspace(routine, l, lwork)
			info = lapack.Dgeqrf(m, n, av, l.Stride(), any2f(tau), work, len(work))
		}
	case []complex128:
		if l.IsRowMajor() {
			routine = "zgelqf"
			lwork, err := queryWork(routine, func(work []complex128, lwork int) int {
				return lapack.Zgelqf(m, n, nil, l.Stride(), nil, work, lwork)
			})
			if err != nil {
				return nil, err
			}
			work := mem.AllocComplex128(max(1, lwork))
			o.logger.LogWorkspace(routine, l, lwork)
			info = lapack.Zgelqf(m, n, av, l.Stride(), any2z(tau), work, len(work))
		} else {
			routine = "zgeqrf"
			lwork, err := queryWork(routine, func(work []complex128, lwork int) int {
				return lapack.Zgeqrf(m, n, nil, l.Stride(), nil, work, lwork)
			})
			if err != nil {
				return nil, err
			}
			work := mem.AllocComplex128(max(1, lwork))
			o.logger.LogWorkspace(routine, l, lwork)
			info = lapack.Zgeqrf(m, n, av, l.Stride(), any2z(tau), work, len(work))
		}
	}
	if err := infoError(routine, info); err != nil {
		return nil, err
	}
	return tau[:k], nil
}

// BuildQ overwrites the reflector form produced by Householder with the
// explicit Q factor. On success the leading m x min(m, n) block of a,
// read under the original layout's majorness and stride, holds Q with
// orthonormal columns.
//
// Row-major input came through the LQ kernel, so the rows of its Q are
// generated and the caller's transposed reading turns them into columns.
func BuildQ[T Scalar](l MatrixLayout, a []T, tau []T, opts ...Option) error {
	if len(a) < l.Len() {
		panic(fmt.Sprintf("lapgo: matrix buffer length %d does not match layout %v", len(a), l))
	}
	m, n := l.kernelDims()
	k := min(m, n)
	if len(tau) < k {
		panic(fmt.Sprintf("lapgo: tau length %d shorter than %d reflectors", len(tau), k))
	}

	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	var info int
	var routine string
	switch av := any(a).(type) {
	case []float64:
		if l.IsRowMajor() {
			routine = "dorglq"
			lwork, err := queryWork(routine, func(work []float64, lwork int) int {
				return lapack.Dorglq(k, n, k, nil, l.Stride(), nil, work, lwork)
			})
			if err != nil {
				return err
			}
			work := mem.AllocFloat64(max(1, lwork))
			o.logger.LogWorkspace(routine, l, lwork)
			info = lapack.Dorglq(k, n, k, av, l.Stride(), any2f(tau), work, len(work))
		} else {
			routine = "dorgqr"
			lwork, err := queryWork(routine, func(work []float64, lwork int) int {
				return lapack.Dorgqr(m, k, k, nil, l.Stride(), nil, work, lwork)
			})
			if err != nil {
				return err
			}
			work := mem.AllocFloat64(max(1, lwork))
			o.logger.LogWorkspace(routine, l, lwork)
			info = lapack.Dorgqr(m, k, k, av, l.Stride(), any2f(tau), work, len(work))
		}
	case []complex128:
		if l.IsRowMajor() {
			routine = "zunglq"
			lwork, err := queryWork(routine, func(work []complex128, lwork int) int {
				return lapack.Zunglq(k, n, k, nil, l.Stride(), nil, work, lwork)
			})
			if err != nil {
				return err
			}
			work := mem.AllocComplex128(max(1, lwork))
			o.logger.LogWorkspace(routine, l, lwork)
			info = lapack.Zunglq(k, n, k, av, l.Stride(), any2z(tau), work, len(work))
		} else {
			routine = "zungqr"
			lwork, err := queryWork(routine, func(work []complex128, lwork int) int {
				return lapack.Zungqr(m, k, k, nil, l.Stride(), nil, work, lwork)
			})
			if err != nil {
				return err
			}
			work := mem.AllocComplex128(max(1, lwork))
			o.logger.LogWorkspace(routine, l, lwork)
			info = lapack.Zungqr(m, k, k, av, l.Stride(), any2z(tau), work, len(work))
		}
	}
	return infoError(routine, info)
}

// QR computes the full decomposition A = Q*R in one call. On success the
// returned slice holds the min(m, n) x n upper trapezoidal factor R,
// packed under the caller's majorness, and a holds the explicit Q in its
// leading m x min(m, n) block (original stride). The rank-revealing
// byproducts of the factorization are not exposed; a deficient matrix
// still factors, with small or zero diagonal entries in R.
func QR[T Scalar](l MatrixLayout, a []T, opts ...Option) ([]T, error) {
	tau, err := Householder(l, a, opts...)
	if err != nil {
		return nil, err
	}

	rows, cols := l.Dims()
	k := min(rows, cols)
	rl := l.Resize(k, cols)
	r := make([]T, k*cols)
	for i := 0; i < k; i++ {
		for j := i; j < cols; j++ {
			r[rl.at(i, j)] = a[l.at(i, j)]
		}
	}

	if err := BuildQ(l, a, tau, opts...); err != nil {
		return nil, err
	}
	return r, nil
}
