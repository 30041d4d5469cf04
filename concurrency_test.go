package lapgo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/lapgo"
	"github.com/hupe1980/lapgo/testutil"
)

// Independent calls share no state, so decompositions of distinct buffers
// may run concurrently without any synchronization.
func TestConcurrentSolves(t *testing.T) {
	rng := testutil.NewRNG(4711)
	n := 6
	l := lapgo.RowMajor(n, n)

	type job struct {
		a, orig []float64
		x, b    []float64
	}
	jobs := make([]job, 16)
	for i := range jobs {
		a := rng.GeneralReal(n, n)
		for d := 0; d < n; d++ {
			a[d*n+d] += float64(n)
		}
		orig := append([]float64(nil), a...)
		x := make([]float64, n)
		rng.FillUniform(x)
		jobs[i] = job{a: a, orig: orig, x: x, b: testutil.MatVecReal(l, orig, x)}
	}

	var g errgroup.Group
	for i := range jobs {
		j := &jobs[i]
		g.Go(func() error {
			piv, err := lapgo.LU(l, j.a)
			if err != nil {
				return err
			}
			return lapgo.Solve(l, lapgo.NoTrans, j.a, piv, j.b)
		})
	}
	require.NoError(t, g.Wait())

	for i := range jobs {
		assert.True(t, floats.EqualApprox(jobs[i].x, jobs[i].b, 1e-10), "job %d", i)
	}
}

func TestConcurrentEig(t *testing.T) {
	rng := testutil.NewRNG(99)
	n := 5
	l := lapgo.ColMajor(n, n)

	mats := make([][]float64, 8)
	origs := make([][]complex128, len(mats))
	results := make([]lapgo.EigResult, len(mats))
	for i := range mats {
		mats[i] = rng.GeneralReal(n, n)
		origs[i] = testutil.Complexify(mats[i])
	}

	var g errgroup.Group
	for i := range mats {
		i := i
		g.Go(func() error {
			res, err := lapgo.Eig(true, l, mats[i])
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := range results {
		assert.Less(t, eigResidual(l, origs[i], results[i]), 1e-10, "matrix %d", i)
	}
}
