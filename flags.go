package lapgo

// Transpose selects the operation applied to the factored matrix in a
// solve: none, transpose, or conjugate transpose.
type Transpose byte

const (
	// NoTrans solves A*x = b.
	NoTrans Transpose = 'N'
	// Trans solves A^T*x = b.
	Trans Transpose = 'T'
	// ConjTrans solves A^H*x = b.
	ConjTrans Transpose = 'C'
)

// UpLo selects which triangle of a symmetric, Hermitian or triangular
// matrix is stored.
type UpLo byte

const (
	// Upper refers to the upper triangle.
	Upper UpLo = 'U'
	// Lower refers to the lower triangle.
	Lower UpLo = 'L'
)

// flip swaps the triangle. A row-major buffer reinterpreted column-major
// is the transpose, so the stored triangle changes sides.
func (u UpLo) flip() UpLo {
	if u == Upper {
		return Lower
	}
	return Upper
}

// Diag states whether a triangular matrix has a unit diagonal that is not
// stored.
type Diag byte

const (
	// NonUnit means the diagonal is stored.
	NonUnit Diag = 'N'
	// Unit means the diagonal is all ones and not referenced.
	Unit Diag = 'U'
)

// Norm selects which matrix norm OpNorm computes.
type Norm byte

const (
	// MaxAbs is the largest absolute element (not a true operator norm).
	MaxAbs Norm = 'M'
	// NormOne is the maximum column sum of absolute values.
	NormOne Norm = 'O'
	// NormInf is the maximum row sum of absolute values.
	NormInf Norm = 'I'
	// NormFrob is the Frobenius norm.
	NormFrob Norm = 'F'
)

// flip exchanges the one-norm and the infinity-norm. The one-norm of a
// matrix is the infinity-norm of its transpose; MaxAbs and Frobenius are
// transpose-invariant.
func (n Norm) flip() Norm {
	switch n {
	case NormOne:
		return NormInf
	case NormInf:
		return NormOne
	}
	return n
}

// SVDJob controls which singular vectors the divide-and-conquer SVD
// computes.
type SVDJob byte

const (
	// SVDAll computes the full m x m U and n x n V^T.
	SVDAll SVDJob = 'A'
	// SVDThin computes the leading min(m,n) columns of U and rows of V^T.
	SVDThin SVDJob = 'S'
	// SVDNone computes singular values only.
	SVDNone SVDJob = 'N'
)
