package lapgo

import (
	"github.com/hupe1980/lapgo/internal/lapack"
	"github.com/hupe1980/lapgo/internal/mem"
)

// Eigh computes the eigenvalues, in ascending order, of the symmetric
// (Hermitian) matrix stored in a under layout l, reading only the triangle
// selected by uplo. When calcVectors is set the orthonormal eigenvectors
// overwrite a: eigenvector j occupies a[j*lda : j*lda+n], where lda is the
// layout's stride, regardless of majorness.
//
// A symmetric buffer reinterpreted column-major is the same logical matrix
// with the stored triangle on the other side, so row-major input needs only
// the uplo flip. A Hermitian complex buffer reinterpreted column-major is
// conj(A), which shares A's (real) eigenvalues while its eigenvectors are
// the conjugates of A's; the vectors are conjugated after the call. A
// positive status means the intermediate tridiagonal iteration failed to
// converge and surfaces as ErrComputeFailed.
func Eigh[T Scalar](calcVectors bool, l MatrixLayout, uplo UpLo, a []T, opts ...Option) ([]float64, error) {
	n := squareDim(l, a)

	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	jobz := byte('N')
	if calcVectors {
		jobz = 'V'
	}
	u := uplo
	if l.IsRowMajor() {
		u = u.flip()
	}

	w := mem.AllocFloat64(n)

	var info int
	routine := "dsyev"
	switch av := any(a).(type) {
	case []float64:
		lwork, err := queryWork("dsyev", func(work []float64, lwork int) int {
			return lapack.Dsyev(jobz, byte(u), n, nil, l.Stride(), nil, work, lwork)
		})
		if err != nil {
			return nil, err
		}
		work := mem.AllocFloat64(max(1, lwork))
		o.logger.LogWorkspace("dsyev", l, lwork)
		info = lapack.Dsyev(jobz, byte(u), n, av, l.Stride(), w, work, len(work))
	case []complex128:
		routine = "zheev"
		rwork := mem.AllocFloat64(max(1, 3*n-2))
		lwork, err := queryWork("zheev", func(work []complex128, lwork int) int {
			return lapack.Zheev(jobz, byte(u), n, nil, l.Stride(), nil, work, lwork, rwork)
		})
		if err != nil {
			return nil, err
		}
		work := mem.AllocComplex128(max(1, lwork))
		o.logger.LogWorkspace("zheev", l, lwork)
		info = lapack.Zheev(jobz, byte(u), n, av, l.Stride(), w, work, len(work), rwork)
		if calcVectors && info == 0 && l.IsRowMajor() {
			// The kernel decomposed conj(A); its eigenvectors are the
			// conjugates of the caller's.
			lda := l.Stride()
			for j := 0; j < n; j++ {
				conjugate(av[j*lda : j*lda+n])
			}
		}
	}
	if err := infoError(routine, info); err != nil {
		return nil, err
	}
	return w, nil
}
