// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte aligned allocation for LAPACK workspace and pivot
// arrays (AVX-512 friendly). Buffers handed to LAPACK are write-only
// scratch: nothing may read them before the callee has written them.
package mem
