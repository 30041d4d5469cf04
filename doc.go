// Package lapgo provides a safe, layout-aware Go wrapper around the dense
// LAPACK kernels.
//
// LAPACK is column-major only and negotiates scratch memory through a
// two-call protocol: a probe call with lwork == -1 returns the optimal
// workspace size, a second call does the work. Lapgo owns both concerns so
// callers do not have to: every solver accepts a MatrixLayout describing
// row-major or column-major storage and returns fully reconstructed,
// safely initialized results.
//
// Row-major input is never naively transposed. Where the underlying
// routine has a usable symmetry the wrapper exploits it instead of copying:
// the eigensolver computes left eigenvectors and conjugates them, the LU
// and triangular solvers flip the transpose flag, norms and condition
// estimates flip between the one- and infinity-norm. Only the
// least-squares solver, which has no such symmetry, materializes a
// column-major copy.
//
// # Quick Start
//
// Eigendecomposition of a row-major matrix:
//
//	a := []float64{
//	    1, 2,
//	    3, 4,
//	}
//	res, err := lapgo.Eig(true, lapgo.RowMajor(2, 2), a)
//	if err != nil {
//	    panic(err)
//	}
//	// res.Values holds the eigenvalues, res.Vectors the eigenvectors.
//
// Minimum-norm least squares:
//
//	a := []float64{
//	    1, 2,
//	    3, 4,
//	    5, 6,
//	}
//	b := []float64{1, 2, 3}
//	res, err := lapgo.LeastSquares(lapgo.RowMajor(3, 2), a, b)
//	// b[:2] now holds the solution; res carries rank and singular values.
//
// # Ownership
//
// Input matrix buffers are destroyed by the kernels; this is part of the
// contract, not a defect. Results never alias inputs or internal scratch.
// Reusable workspaces (EigWork, LeastSquaresWork) amortize the probe and
// allocation across repeated calls of one shape; each instance is
// exclusively owned by one in-flight call at a time. Independent calls are
// safe to run concurrently.
//
// # Errors
//
// Kernel failures surface as typed errors: ErrInvalidArg for rejected
// arguments (a caller bug, never data-dependent) and ErrComputeFailed for
// numerically meaningful failures such as a zero pivot or a non-converged
// iteration. Failures are never retried; numerical failures are not
// transient.
package lapgo
