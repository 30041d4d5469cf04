package lapgo

import (
	"github.com/hupe1980/lapgo/internal/mem"
)

// queryWork executes the sizing half of the two-call kernel protocol:
// probe is invoked once with lwork == -1 and a one-element work array and
// must return the raw kernel status. On success, the optimal workspace
// length the kernel stored in work[0] is decoded and returned.
//
// The sized buffer must be allocated before the execution call is made;
// the two calls are strictly sequential and never interleaved.
func queryWork[T Scalar](routine string, probe func(work []T, lwork int) int) (int, error) {
	var size [1]T
	if err := infoError(routine, probe(size[:], -1)); err != nil {
		return 0, err
	}
	return workLen(size[0]), nil
}

// allocWork returns an aligned scratch buffer of n elements of the
// instantiated scalar type. The buffer is logically uninitialized: it is
// write-only until the kernel fills it, and nothing outside the invocation
// may observe its contents before then.
func allocWork[T Scalar](n int) []T {
	var zero T
	switch any(zero).(type) {
	case float64:
		return any(mem.AllocFloat64(n)).([]T)
	default:
		return any(mem.AllocComplex128(n)).([]T)
	}
}
