package lapgo

import (
	"fmt"

	"github.com/hupe1980/lapgo/internal/lapack"
	"github.com/hupe1980/lapgo/internal/mem"
)

// SVDResult holds a singular value decomposition A = U * Σ * Vᴴ.
// U and Vt are stored with the same majorness as the input layout; they
// are nil when the job did not request them.
type SVDResult[T Scalar] struct {
	// S holds the min(m, n) singular values, descending and non-negative.
	S []float64

	// U holds the left singular vectors: m x m for SVDAll, m x min(m, n)
	// for SVDThin.
	U []T

	// Vt holds the conjugate-transposed right singular vectors: n x n for
	// SVDAll, min(m, n) x n for SVDThin.
	Vt []T
}

// SVD computes the singular value decomposition of the matrix stored in a
// under layout l with a divide-and-conquer kernel. The contents of a are
// destroyed.
//
// The kernel decomposes the column-major interpretation, which for a
// row-major buffer is the transpose. Transposing an SVD swaps the two
// factors: Aᵀ = V Σ Uᵀ (and Aᴴ-wise the conjugations cancel against the
// storage reinterpretation), so for row-major input the kernel's two
// output blocks are simply returned under swapped names, each read in the
// caller's majorness. No element is moved or conjugated.
func SVD[T Scalar](job SVDJob, l MatrixLayout, a []T, opts ...Option) (SVDResult[T], error) {
	if len(a) < l.Len() {
		panic(fmt.Sprintf("lapgo: matrix buffer length %d does not match layout %v", len(a), l))
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	m, n := l.kernelDims()
	k := min(m, n)

	ldu, ucols := 1, 0
	ldvt, vtcols := 1, 0
	switch job {
	case SVDAll:
		ldu, ucols = m, m
		ldvt, vtcols = n, n
	case SVDThin:
		ldu, ucols = m, k
		ldvt, vtcols = k, n
	}

	s := mem.AllocFloat64(k)
	iwork := mem.AllocInt32(8 * k)

	var (
		u, vt   []T
		info    int
		routine = "dgesdd"
	)
	if job != SVDNone {
		u = allocWork[T](ldu * ucols)
		vt = allocWork[T](ldvt * vtcols)
	}

	switch av := any(a).(type) {
	case []float64:
		lwork, err := queryWork("dgesdd", func(work []float64, lwork int) int {
			return lapack.Dgesdd(byte(job), m, n, nil, l.Stride(), nil, nil, ldu, nil, ldvt, work, lwork, iwork)
		})
		if err != nil {
			return SVDResult[T]{}, err
		}
		work := mem.AllocFloat64(max(1, lwork))
		o.logger.LogWorkspace("dgesdd", l, lwork)
		info = lapack.Dgesdd(byte(job), m, n, av, l.Stride(), s, any2f(u), ldu, any2f(vt), ldvt, work, len(work), iwork)
	case []complex128:
		routine = "zgesdd"
		rwork := mem.AllocFloat64(gesddRealScratch(job, m, n))
		lwork, err := queryWork("zgesdd", func(work []complex128, lwork int) int {
			return lapack.Zgesdd(byte(job), m, n, nil, l.Stride(), nil, nil, ldu, nil, ldvt, work, lwork, rwork, iwork)
		})
		if err != nil {
			return SVDResult[T]{}, err
		}
		work := mem.AllocComplex128(max(1, lwork))
		o.logger.LogWorkspace("zgesdd", l, lwork)
		info = lapack.Zgesdd(byte(job), m, n, av, l.Stride(), s, any2z(u), ldu, any2z(vt), ldvt, work, len(work), rwork, iwork)
	}
	if err := infoError(routine, info); err != nil {
		return SVDResult[T]{}, err
	}

	res := SVDResult[T]{S: s}
	if job != SVDNone {
		if l.IsRowMajor() {
			res.U, res.Vt = vt, u
		} else {
			res.U, res.Vt = u, vt
		}
	}
	return res, nil
}

// gesddRealScratch returns the real scratch length the complex
// divide-and-conquer SVD requires; it depends only on the job and the
// dimensions, not on a workspace query.
func gesddRealScratch(job SVDJob, m, n int) int {
	k := min(m, n)
	if k == 0 {
		return 1
	}
	if job == SVDNone {
		return 7 * k
	}
	return k * max(5*k+7, 2*max(m, n)+2*k+1)
}

// any2f unwraps a generic buffer to []float64; nil stays nil.
func any2f[T Scalar](s []T) []float64 {
	if s == nil {
		return nil
	}
	return any(s).([]float64)
}

// any2z unwraps a generic buffer to []complex128; nil stays nil.
func any2z[T Scalar](s []T) []complex128 {
	if s == nil {
		return nil
	}
	return any(s).([]complex128)
}
