package lapgo

// Scalar is the element type accepted by the solvers: double precision
// real or its complexification. The two instantiations drive different
// kernel entry points and, for eigendecompositions, different output
// encodings: real kernels return packed real/imaginary arrays that must be
// reconstructed, complex kernels return complex values directly.
type Scalar interface {
	float64 | complex128
}

// conjugate negates the imaginary component of every element in place.
func conjugate(v []complex128) {
	for i := range v {
		v[i] = complex(real(v[i]), -imag(v[i]))
	}
}

// workLen decodes the optimal workspace length that a probe call stored in
// the first work slot.
func workLen[T Scalar](v T) int {
	switch v := any(v).(type) {
	case float64:
		return int(v)
	case complex128:
		return int(real(v))
	}
	return 0
}
