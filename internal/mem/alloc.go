// Package mem provides memory allocation utilities for LAPACK scratch buffers.
package mem

import (
	"unsafe"
)

// Alignment is the byte alignment used for workspace buffers (64 bytes).
// Optimized LAPACK implementations vectorize over the work array, and a
// cache-line-aligned start avoids split loads on AVX-512 class hardware.
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure
// alignment. The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	// Calculate the offset to the first aligned byte
	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocFloat64 allocates a float64 slice of the given size with 64-byte
// alignment, for use as real-valued LAPACK workspace.
func AllocFloat64(size int) []float64 {
	if size <= 0 {
		return nil
	}

	byteSlice := AllocAligned(size * 8)

	ptr := unsafe.Pointer(&byteSlice[0])       //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*float64)(ptr), size) //nolint:gosec // unsafe is required for memory alignment
}

// AllocComplex128 allocates a complex128 slice of the given size with
// 64-byte alignment, for use as complex-valued LAPACK workspace.
func AllocComplex128(size int) []complex128 {
	if size <= 0 {
		return nil
	}

	byteSlice := AllocAligned(size * 16)

	ptr := unsafe.Pointer(&byteSlice[0])          //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*complex128)(ptr), size) //nolint:gosec // unsafe is required for memory alignment
}

// AllocInt32 allocates an int32 slice of the given size with 64-byte
// alignment, for use as integer LAPACK workspace (iwork, pivot arrays).
func AllocInt32(size int) []int32 {
	if size <= 0 {
		return nil
	}

	byteSlice := AllocAligned(size * 4)

	ptr := unsafe.Pointer(&byteSlice[0])     //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*int32)(ptr), size) //nolint:gosec // unsafe is required for memory alignment
}
