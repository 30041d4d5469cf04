package lapgo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/hupe1980/lapgo"
	"github.com/hupe1980/lapgo/testutil"
)

const luTol = 1e-10

func TestLUSingular(t *testing.T) {
	// The second row is twice the first; elimination produces an exact zero
	// pivot at position 2.
	a := []float64{
		1, 2,
		2, 4,
	}

	_, err := lapgo.LU(lapgo.RowMajor(2, 2), a)
	require.Error(t, err)

	var cf *lapgo.ErrComputeFailed
	require.ErrorAs(t, err, &cf)
	assert.Equal(t, "dgetrf", cf.Routine)
	assert.Equal(t, 2, cf.Code)
	assert.ErrorIs(t, err, lapgo.ErrComputationFailure)
	assert.NotErrorIs(t, err, lapgo.ErrIllegalArgument)
}

func TestLUSolveReal(t *testing.T) {
	rng := testutil.NewRNG(4711)
	n := 5

	for _, l := range []lapgo.MatrixLayout{lapgo.RowMajor(n, n), lapgo.ColMajor(n, n)} {
		a := rng.GeneralReal(n, n)
		for i := 0; i < n; i++ {
			a[i*n+i] += float64(n) // keep it comfortably nonsingular
		}
		orig := append([]float64(nil), a...)

		x := make([]float64, n)
		rng.FillUniform(x)

		piv, err := lapgo.LU(l, a)
		require.NoError(t, err)
		require.Len(t, piv, n)

		// A*x = b
		b := testutil.MatVecReal(l, orig, x)
		require.NoError(t, lapgo.Solve(l, lapgo.NoTrans, a, piv, b))
		assert.True(t, floats.EqualApprox(x, b, luTol), "NoTrans layout %v", l)

		// A^T*x = b
		bt := testutil.MatVecReal(l.Transposed(), orig, x)
		require.NoError(t, lapgo.Solve(l, lapgo.Trans, a, piv, bt))
		assert.True(t, floats.EqualApprox(x, bt, luTol), "Trans layout %v", l)
	}
}

func TestLUSolveComplex(t *testing.T) {
	rng := testutil.NewRNG(99)
	n := 4

	for _, l := range []lapgo.MatrixLayout{lapgo.RowMajor(n, n), lapgo.ColMajor(n, n)} {
		a := rng.GeneralComplex(n, n)
		for i := 0; i < n; i++ {
			a[i*n+i] += complex(float64(n), 0)
		}
		orig := append([]complex128(nil), a...)
		ah := append([]complex128(nil), orig...)
		for i := range ah {
			ah[i] = complex(real(ah[i]), -imag(ah[i]))
		}

		x := make([]complex128, n)
		rng.FillUniformComplex(x)

		piv, err := lapgo.LU(l, a)
		require.NoError(t, err)

		b := testutil.MatVecComplex(l, orig, x)
		require.NoError(t, lapgo.Solve(l, lapgo.NoTrans, a, piv, b))
		assertComplexApprox(t, x, b, luTol, "NoTrans layout %v", l)

		// A^H*x = b: the reference rhs is conj(A)^T * x.
		bh := testutil.MatVecComplex(l.Transposed(), ah, x)
		require.NoError(t, lapgo.Solve(l, lapgo.ConjTrans, a, piv, bh))
		assertComplexApprox(t, x, bh, luTol, "ConjTrans layout %v", l)
	}
}

func TestLUInv(t *testing.T) {
	rng := testutil.NewRNG(1234)
	n := 4

	for _, l := range []lapgo.MatrixLayout{lapgo.RowMajor(n, n), lapgo.ColMajor(n, n)} {
		a := rng.GeneralReal(n, n)
		for i := 0; i < n; i++ {
			a[i*n+i] += float64(n)
		}
		orig := append([]float64(nil), a...)

		piv, err := lapgo.LU(l, a)
		require.NoError(t, err)
		require.NoError(t, lapgo.Inv(l, a, piv))

		// A * A^{-1} = I, column by column.
		for j := 0; j < n; j++ {
			col := make([]float64, n)
			for i := 0; i < n; i++ {
				col[i] = get(l, a, i, j)
			}
			e := testutil.MatVecReal(l, orig, col)
			for i := 0; i < n; i++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				assert.True(t, scalar.EqualWithinAbs(want, e[i], luTol), "layout %v element (%d,%d)", l, i, j)
			}
		}
	}
}

func TestSolvePivotMismatchPanics(t *testing.T) {
	a := []float64{1, 0, 0, 1}
	assert.Panics(t, func() {
		_ = lapgo.Solve(lapgo.RowMajor(2, 2), lapgo.NoTrans, a, lapgo.Pivot{1}, []float64{1, 1})
	})
}

func assertComplexApprox(t *testing.T, want, got []complex128, tol float64, msgAndArgs ...any) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for i := range want {
		assert.True(t, scalar.EqualWithinAbs(real(want[i]), real(got[i]), tol), msgAndArgs...)
		assert.True(t, scalar.EqualWithinAbs(imag(want[i]), imag(got[i]), tol), msgAndArgs...)
	}
}
