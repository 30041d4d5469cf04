// Package testutil provides testing utilities for lapgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random matrices in either storage
// order and small dense reference operations for verifying solver output.
//
// # Random Matrix Generation
//
//	rng := testutil.NewRNG(seed)
//	a := rng.GeneralReal(4, 4)        // uniform [-1, 1)
//	h := rng.SymmetricPD(4)           // symmetric positive definite
//
// # Reference Operations
//
//	y := testutil.MatVecComplex(lapgo.RowMajor(n, n), a, x)
//	r := testutil.ResidualReal(layout, a, x, b)
package testutil
