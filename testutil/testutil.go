package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/lapgo"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// FillUniform fills dst with random values in range [-1, 1).
// Locks only once per call (preferred over drawing in a loop).
func (r *RNG) FillUniform(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float64()*2 - 1
	}
}

// FillUniformComplex fills dst with random values whose real and
// imaginary parts lie in [-1, 1).
func (r *RNG) FillUniformComplex(dst []complex128) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = complex(r.rand.Float64()*2-1, r.rand.Float64()*2-1)
	}
}

// GeneralReal returns a random rows x cols matrix with entries in [-1, 1).
// The buffer is valid under both majorness interpretations of that shape.
func (r *RNG) GeneralReal(rows, cols int) []float64 {
	a := make([]float64, rows*cols)
	r.FillUniform(a)
	return a
}

// GeneralComplex returns a random rows x cols complex matrix.
func (r *RNG) GeneralComplex(rows, cols int) []complex128 {
	a := make([]complex128, rows*cols)
	r.FillUniformComplex(a)
	return a
}

// SymmetricPD returns a random symmetric positive definite n x n matrix,
// built as B*Bᵀ + n*I. Symmetric packed buffers read identically in both
// majorness interpretations.
func (r *RNG) SymmetricPD(n int) []float64 {
	b := r.GeneralReal(n, n)
	a := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s float64
			for k := 0; k < n; k++ {
				s += b[i*n+k] * b[j*n+k]
			}
			a[i*n+j] = s
		}
		a[i*n+i] += float64(n)
	}
	return a
}

// HermitianPD returns a random Hermitian positive definite n x n matrix
// stored row-major, built as B*Bᴴ + n*I.
func (r *RNG) HermitianPD(n int) []complex128 {
	b := r.GeneralComplex(n, n)
	a := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s complex128
			for k := 0; k < n; k++ {
				bjk := b[j*n+k]
				s += b[i*n+k] * complex(real(bjk), -imag(bjk))
			}
			a[i*n+j] = s
		}
		a[i*n+i] += complex(float64(n), 0)
	}
	return a
}

// MatVecReal computes y = A*x for the matrix stored in a under l.
func MatVecReal(l lapgo.MatrixLayout, a []float64, x []float64) []float64 {
	m, n := l.Dims()
	y := make([]float64, m)
	for i := 0; i < m; i++ {
		var s float64
		for j := 0; j < n; j++ {
			s += at(l, a, i, j) * x[j]
		}
		y[i] = s
	}
	return y
}

// MatVecComplex computes y = A*x for the complex matrix stored in a under
// l. Real input matrices can be lifted with Complexify.
func MatVecComplex(l lapgo.MatrixLayout, a []complex128, x []complex128) []complex128 {
	m, n := l.Dims()
	y := make([]complex128, m)
	for i := 0; i < m; i++ {
		var s complex128
		for j := 0; j < n; j++ {
			s += atC(l, a, i, j) * x[j]
		}
		y[i] = s
	}
	return y
}

// ResidualReal computes r = b - A*x for the matrix stored in a under l.
func ResidualReal(l lapgo.MatrixLayout, a []float64, x, b []float64) []float64 {
	ax := MatVecReal(l, a, x)
	r := make([]float64, len(ax))
	for i := range r {
		r[i] = b[i] - ax[i]
	}
	return r
}

// Complexify lifts a real buffer into a complex one with zero imaginary
// parts.
func Complexify(a []float64) []complex128 {
	out := make([]complex128, len(a))
	for i, v := range a {
		out[i] = complex(v, 0)
	}
	return out
}

func at(l lapgo.MatrixLayout, a []float64, i, j int) float64 {
	if l.IsRowMajor() {
		return a[i*l.Stride()+j]
	}
	return a[i+j*l.Stride()]
}

func atC(l lapgo.MatrixLayout, a []complex128, i, j int) complex128 {
	if l.IsRowMajor() {
		return a[i*l.Stride()+j]
	}
	return a[i+j*l.Stride()]
}
