package lapgo_test

import (
	"math/cmplx"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/hupe1980/lapgo"
	"github.com/hupe1980/lapgo/testutil"
)

const eighTol = 1e-10

func TestEighKnownValues(t *testing.T) {
	// diag(3, 1, 2) has eigenvalues {1, 2, 3}, reported ascending.
	a := []float64{
		3, 0, 0,
		0, 1, 0,
		0, 0, 2,
	}

	w, err := lapgo.Eigh(false, lapgo.RowMajor(3, 3), lapgo.Upper, a)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox([]float64{1, 2, 3}, w, eighTol))
}

func TestEighRealResidual(t *testing.T) {
	rng := testutil.NewRNG(4711)
	n := 5

	for _, l := range []lapgo.MatrixLayout{lapgo.RowMajor(n, n), lapgo.ColMajor(n, n)} {
		for _, uplo := range []lapgo.UpLo{lapgo.Upper, lapgo.Lower} {
			a := rng.SymmetricPD(n)
			orig := append([]float64(nil), a...)

			w, err := lapgo.Eigh(true, l, uplo, a)
			require.NoError(t, err)
			require.Len(t, w, n)
			assert.True(t, sort.Float64sAreSorted(w))
			assert.Greater(t, w[0], 0.0)

			// Eigenvector j lives in the flat block a[j*n : (j+1)*n].
			for j := 0; j < n; j++ {
				v := a[j*n : (j+1)*n]
				av := testutil.MatVecReal(l, orig, v)
				for i := 0; i < n; i++ {
					assert.True(t, scalar.EqualWithinAbs(w[j]*v[i], av[i], eighTol),
						"layout %v uplo %c vector %d", l, uplo, j)
				}
			}
		}
	}
}

func TestEighReadsSelectedTriangleOnly(t *testing.T) {
	// Poison the opposite triangle; eigenvalues must be unaffected.
	rng := testutil.NewRNG(99)
	n := 4

	a := rng.SymmetricPD(n)
	clean := append([]float64(nil), a...)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			a[i*n+j] = 999
		}
	}

	l := lapgo.RowMajor(n, n)
	want, err := lapgo.Eigh(false, l, lapgo.Upper, clean)
	require.NoError(t, err)
	got, err := lapgo.Eigh(false, l, lapgo.Upper, a)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(want, got, eighTol))
}

func TestEighComplexResidual(t *testing.T) {
	rng := testutil.NewRNG(321)
	n := 4

	for _, l := range []lapgo.MatrixLayout{lapgo.RowMajor(n, n), lapgo.ColMajor(n, n)} {
		a := rng.HermitianPD(n)
		orig := append([]complex128(nil), a...)

		w, err := lapgo.Eigh(true, l, lapgo.Lower, a)
		require.NoError(t, err)
		require.Len(t, w, n)
		assert.True(t, sort.Float64sAreSorted(w))

		for j := 0; j < n; j++ {
			v := a[j*n : (j+1)*n]
			av := testutil.MatVecComplex(l, orig, v)
			for i := 0; i < n; i++ {
				d := cmplx.Abs(av[i] - complex(w[j], 0)*v[i])
				assert.Less(t, d, eighTol, "layout %v vector %d", l, j)
			}
		}
	}
}

func TestEighLayoutAgreement(t *testing.T) {
	// A symmetric packed buffer reads as the same logical matrix under
	// either majorness, so the spectra agree.
	rng := testutil.NewRNG(7)
	n := 5
	a := rng.SymmetricPD(n)
	b := append([]float64(nil), a...)

	wr, err := lapgo.Eigh(false, lapgo.RowMajor(n, n), lapgo.Upper, a)
	require.NoError(t, err)
	wc, err := lapgo.Eigh(false, lapgo.ColMajor(n, n), lapgo.Upper, b)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(wr, wc, eighTol))
}

func TestEighNonSquarePanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = lapgo.Eigh(false, lapgo.RowMajor(2, 3), lapgo.Upper, make([]float64, 6))
	})
}
