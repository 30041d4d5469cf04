package lapgo_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/hupe1980/lapgo"
	"github.com/hupe1980/lapgo/testutil"
)

const svdTol = 1e-10

// reconstructReal multiplies U * diag(S) * Vt back together, with U of
// shape m x k and Vt of shape k x n under the given layouts, and compares
// the product against the original matrix.
func reconstructReal(t *testing.T, orig []float64, l lapgo.MatrixLayout, res lapgo.SVDResult[float64], ul, vtl lapgo.MatrixLayout) {
	t.Helper()
	m, n := l.Dims()
	_, k := ul.Dims()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var s float64
			for p := 0; p < k && p < len(res.S); p++ {
				s += get(ul, res.U, i, p) * res.S[p] * get(vtl, res.Vt, p, j)
			}
			want := get(l, orig, i, j)
			assert.True(t, scalar.EqualWithinAbs(want, s, svdTol), "element (%d,%d): want %v got %v", i, j, want, s)
		}
	}
}

func TestSVDThinReal(t *testing.T) {
	rng := testutil.NewRNG(4711)
	m, n := 6, 4
	k := 4

	for _, rowMajor := range []bool{true, false} {
		l := layoutFor(rowMajor, m, n)
		a := rng.GeneralReal(m, n)
		orig := append([]float64(nil), a...)

		res, err := lapgo.SVD(lapgo.SVDThin, l, a)
		require.NoError(t, err)

		require.Len(t, res.S, k)
		assert.True(t, sort.IsSorted(sort.Reverse(sort.Float64Slice(res.S))))
		assert.GreaterOrEqual(t, res.S[k-1], 0.0)
		require.Len(t, res.U, m*k)
		require.Len(t, res.Vt, k*n)

		reconstructReal(t, orig, l, res, layoutFor(rowMajor, m, k), layoutFor(rowMajor, k, n))
	}
}

func TestSVDAllReal(t *testing.T) {
	rng := testutil.NewRNG(99)
	m, n := 3, 5

	for _, rowMajor := range []bool{true, false} {
		l := layoutFor(rowMajor, m, n)
		a := rng.GeneralReal(m, n)
		orig := append([]float64(nil), a...)

		res, err := lapgo.SVD(lapgo.SVDAll, l, a)
		require.NoError(t, err)

		require.Len(t, res.S, min(m, n))
		require.Len(t, res.U, m*m)
		require.Len(t, res.Vt, n*n)

		reconstructReal(t, orig, l, res, layoutFor(rowMajor, m, m), layoutFor(rowMajor, n, n))
	}
}

func TestSVDNone(t *testing.T) {
	rng := testutil.NewRNG(7)
	m, n := 5, 3
	l := lapgo.RowMajor(m, n)

	a := rng.GeneralReal(m, n)
	res, err := lapgo.SVD(lapgo.SVDNone, l, a)
	require.NoError(t, err)

	assert.Len(t, res.S, n)
	assert.Nil(t, res.U)
	assert.Nil(t, res.Vt)
}

func TestSVDComplex(t *testing.T) {
	rng := testutil.NewRNG(321)
	m, n := 5, 4
	k := 4

	for _, rowMajor := range []bool{true, false} {
		l := layoutFor(rowMajor, m, n)
		a := rng.GeneralComplex(m, n)
		orig := append([]complex128(nil), a...)

		res, err := lapgo.SVD(lapgo.SVDThin, l, a)
		require.NoError(t, err)
		require.Len(t, res.S, k)

		ul := layoutFor(rowMajor, m, k)
		vtl := layoutFor(rowMajor, k, n)
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				var s complex128
				for p := 0; p < k; p++ {
					s += getC(ul, res.U, i, p) * complex(res.S[p], 0) * getC(vtl, res.Vt, p, j)
				}
				want := getC(l, orig, i, j)
				assert.True(t, scalar.EqualWithinAbs(real(want), real(s), svdTol), "rowMajor=%v element (%d,%d)", rowMajor, i, j)
				assert.True(t, scalar.EqualWithinAbs(imag(want), imag(s), svdTol), "rowMajor=%v element (%d,%d)", rowMajor, i, j)
			}
		}
	}
}

func TestSVDLayoutAgreement(t *testing.T) {
	// Singular values are invariant under transposition, so the two
	// majorness readings of the same buffer agree exactly on S.
	rng := testutil.NewRNG(55)
	m := 4
	a := rng.GeneralReal(m, m)
	b := append([]float64(nil), a...)

	resRM, err := lapgo.SVD(lapgo.SVDNone, lapgo.RowMajor(m, m), a)
	require.NoError(t, err)
	resCM, err := lapgo.SVD(lapgo.SVDNone, lapgo.ColMajor(m, m), b)
	require.NoError(t, err)

	assert.True(t, floats.EqualApprox(resRM.S, resCM.S, 1e-12))
}

func getC(l lapgo.MatrixLayout, a []complex128, i, j int) complex128 {
	if l.IsRowMajor() {
		return a[i*l.Stride()+j]
	}
	return a[i+j*l.Stride()]
}
