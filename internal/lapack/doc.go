// Package lapack declares the Fortran LAPACK entry points consumed by lapgo.
//
// This is an internal package - external users should use the lapgo package.
//
// All routines follow the Fortran calling convention: every argument is
// passed by reference, matrices are column-major, and the trailing info
// argument reports status (0 success, -i illegal argument i, +i a
// routine-specific computational failure). Routines that take a work array
// support the standard workspace query: calling with lwork == -1 performs
// no computation and stores the optimal workspace length in work[0].
//
// The symbols resolve against whatever LAPACK implementation the linker
// finds (reference LAPACK, OpenBLAS, Accelerate, MKL). Picking one is a
// build concern, not something this package decides.
package lapack
