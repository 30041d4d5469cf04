package lapack

// #cgo LDFLAGS: -llapack
//
// extern void dgeev_(char *jobvl, char *jobvr, int *n, double *a, int *lda,
//                    double *wr, double *wi, double *vl, int *ldvl,
//                    double *vr, int *ldvr, double *work, int *lwork, int *info);
// extern void zgeev_(char *jobvl, char *jobvr, int *n, void *a, int *lda,
//                    void *w, void *vl, int *ldvl, void *vr, int *ldvr,
//                    void *work, int *lwork, double *rwork, int *info);
// extern void dgelsd_(int *m, int *n, int *nrhs, double *a, int *lda,
//                     double *b, int *ldb, double *s, double *rcond, int *rank,
//                     double *work, int *lwork, int *iwork, int *info);
// extern void zgelsd_(int *m, int *n, int *nrhs, void *a, int *lda,
//                     void *b, int *ldb, double *s, double *rcond, int *rank,
//                     void *work, int *lwork, double *rwork, int *iwork, int *info);
// extern void dgetrf_(int *m, int *n, double *a, int *lda, int *ipiv, int *info);
// extern void zgetrf_(int *m, int *n, void *a, int *lda, int *ipiv, int *info);
// extern void dgetrs_(char *trans, int *n, int *nrhs, double *a, int *lda,
//                     int *ipiv, double *b, int *ldb, int *info);
// extern void zgetrs_(char *trans, int *n, int *nrhs, void *a, int *lda,
//                     int *ipiv, void *b, int *ldb, int *info);
// extern void dgetri_(int *n, double *a, int *lda, int *ipiv,
//                     double *work, int *lwork, int *info);
// extern void zgetri_(int *n, void *a, int *lda, int *ipiv,
//                     void *work, int *lwork, int *info);
// extern void dpotrf_(char *uplo, int *n, double *a, int *lda, int *info);
// extern void zpotrf_(char *uplo, int *n, void *a, int *lda, int *info);
// extern void dpotrs_(char *uplo, int *n, int *nrhs, double *a, int *lda,
//                     double *b, int *ldb, int *info);
// extern void zpotrs_(char *uplo, int *n, int *nrhs, void *a, int *lda,
//                     void *b, int *ldb, int *info);
// extern void dpotri_(char *uplo, int *n, double *a, int *lda, int *info);
// extern void zpotri_(char *uplo, int *n, void *a, int *lda, int *info);
// extern void dtrtrs_(char *uplo, char *trans, char *diag, int *n, int *nrhs,
//                     double *a, int *lda, double *b, int *ldb, int *info);
// extern void ztrtrs_(char *uplo, char *trans, char *diag, int *n, int *nrhs,
//                     void *a, int *lda, void *b, int *ldb, int *info);
// extern double dlange_(char *norm, int *m, int *n, double *a, int *lda, double *work);
// extern double zlange_(char *norm, int *m, int *n, void *a, int *lda, double *work);
// extern void dgecon_(char *norm, int *n, double *a, int *lda, double *anorm,
//                     double *rcond, double *work, int *iwork, int *info);
// extern void zgecon_(char *norm, int *n, void *a, int *lda, double *anorm,
//                     double *rcond, void *work, double *rwork, int *info);
// extern void dgesdd_(char *jobz, int *m, int *n, double *a, int *lda, double *s,
//                     double *u, int *ldu, double *vt, int *ldvt,
//                     double *work, int *lwork, int *iwork, int *info);
// extern void zgesdd_(char *jobz, int *m, int *n, void *a, int *lda, double *s,
//                     void *u, int *ldu, void *vt, int *ldvt,
//                     void *work, int *lwork, double *rwork, int *iwork, int *info);
// extern void dsyev_(char *jobz, char *uplo, int *n, double *a, int *lda,
//                    double *w, double *work, int *lwork, int *info);
// extern void zheev_(char *jobz, char *uplo, int *n, void *a, int *lda,
//                    double *w, void *work, int *lwork, double *rwork, int *info);
// extern void dgeqrf_(int *m, int *n, double *a, int *lda, double *tau,
//                     double *work, int *lwork, int *info);
// extern void zgeqrf_(int *m, int *n, void *a, int *lda, void *tau,
//                     void *work, int *lwork, int *info);
// extern void dgelqf_(int *m, int *n, double *a, int *lda, double *tau,
//                     double *work, int *lwork, int *info);
// extern void zgelqf_(int *m, int *n, void *a, int *lda, void *tau,
//                     void *work, int *lwork, int *info);
// extern void dorgqr_(int *m, int *n, int *k, double *a, int *lda, double *tau,
//                     double *work, int *lwork, int *info);
// extern void zungqr_(int *m, int *n, int *k, void *a, int *lda, void *tau,
//                     void *work, int *lwork, int *info);
// extern void dorglq_(int *m, int *n, int *k, double *a, int *lda, double *tau,
//                     double *work, int *lwork, int *info);
// extern void zunglq_(int *m, int *n, int *k, void *a, int *lda, void *tau,
//                     void *work, int *lwork, int *info);
import "C"

import "unsafe"

// dptr returns a C double pointer for s, or nil for an empty slice.
// LAPACK never dereferences array arguments it was told not to use
// (jobvl == 'N', workspace queries, nrhs == 0), so nil is safe there.
func dptr(s []float64) *C.double {
	if len(s) == 0 {
		return nil
	}
	return (*C.double)(unsafe.Pointer(&s[0]))
}

// zptr returns an untyped pointer for a complex slice, or nil when empty.
// The prototypes above declare complex arrays as void* so that cgo does not
// need the C99 _Complex type; the memory layout ((re, im) float64 pairs)
// matches Fortran COMPLEX*16 exactly.
func zptr(s []complex128) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

func iptr(s []int32) *C.int {
	if len(s) == 0 {
		return nil
	}
	return (*C.int)(unsafe.Pointer(&s[0]))
}

// Dgeev computes eigenvalues and optionally left/right eigenvectors of a
// real general n x n matrix. Eigenvalues come back split into real (wr)
// and imaginary (wi) parts; complex conjugate pairs occupy consecutive
// entries with positive imaginary part first.
func Dgeev(jobvl, jobvr byte, n int, a []float64, lda int, wr, wi []float64, vl []float64, ldvl int, vr []float64, ldvr int, work []float64, lwork int) int {
	var (
		cjobvl = C.char(jobvl)
		cjobvr = C.char(jobvr)
		cn     = C.int(n)
		clda   = C.int(lda)
		cldvl  = C.int(ldvl)
		cldvr  = C.int(ldvr)
		clwork = C.int(lwork)
		info   C.int
	)
	C.dgeev_(&cjobvl, &cjobvr, &cn, dptr(a), &clda, dptr(wr), dptr(wi),
		dptr(vl), &cldvl, dptr(vr), &cldvr, dptr(work), &clwork, &info)
	return int(info)
}

// Zgeev is the complex counterpart of Dgeev. Eigenvalues are returned
// directly in w; rwork must hold at least 2n elements.
func Zgeev(jobvl, jobvr byte, n int, a []complex128, lda int, w []complex128, vl []complex128, ldvl int, vr []complex128, ldvr int, work []complex128, lwork int, rwork []float64) int {
	var (
		cjobvl = C.char(jobvl)
		cjobvr = C.char(jobvr)
		cn     = C.int(n)
		clda   = C.int(lda)
		cldvl  = C.int(ldvl)
		cldvr  = C.int(ldvr)
		clwork = C.int(lwork)
		info   C.int
	)
	C.zgeev_(&cjobvl, &cjobvr, &cn, zptr(a), &clda, zptr(w),
		zptr(vl), &cldvl, zptr(vr), &cldvr, zptr(work), &clwork, dptr(rwork), &info)
	return int(info)
}

// Dgelsd solves min ||b - A*x|| via SVD with a divide-and-conquer
// algorithm. On exit b holds the n x nrhs solution, s the min(m,n)
// singular values in decreasing order, and rank the effective rank of A
// under the threshold rcond.
func Dgelsd(m, n, nrhs int, a []float64, lda int, b []float64, ldb int, s []float64, rcond float64, rank *int32, work []float64, lwork int, iwork []int32) int {
	var (
		cm     = C.int(m)
		cn     = C.int(n)
		cnrhs  = C.int(nrhs)
		clda   = C.int(lda)
		cldb   = C.int(ldb)
		crcond = C.double(rcond)
		clwork = C.int(lwork)
		info   C.int
	)
	C.dgelsd_(&cm, &cn, &cnrhs, dptr(a), &clda, dptr(b), &cldb, dptr(s),
		&crcond, (*C.int)(unsafe.Pointer(rank)), dptr(work), &clwork, iptr(iwork), &info)
	return int(info)
}

// Zgelsd is the complex counterpart of Dgelsd. The workspace query fills
// work[0], rwork[0] and iwork[0] in a single call.
func Zgelsd(m, n, nrhs int, a []complex128, lda int, b []complex128, ldb int, s []float64, rcond float64, rank *int32, work []complex128, lwork int, rwork []float64, iwork []int32) int {
	var (
		cm     = C.int(m)
		cn     = C.int(n)
		cnrhs  = C.int(nrhs)
		clda   = C.int(lda)
		cldb   = C.int(ldb)
		crcond = C.double(rcond)
		clwork = C.int(lwork)
		info   C.int
	)
	C.zgelsd_(&cm, &cn, &cnrhs, zptr(a), &clda, zptr(b), &cldb, dptr(s),
		&crcond, (*C.int)(unsafe.Pointer(rank)), zptr(work), &clwork, dptr(rwork), iptr(iwork), &info)
	return int(info)
}

// Dgetrf computes an LU factorization with partial pivoting, A = P*L*U.
// ipiv receives min(m,n) 1-based row interchange indices. A positive info
// i means U(i,i) is exactly zero.
func Dgetrf(m, n int, a []float64, lda int, ipiv []int32) int {
	var (
		cm   = C.int(m)
		cn   = C.int(n)
		clda = C.int(lda)
		info C.int
	)
	C.dgetrf_(&cm, &cn, dptr(a), &clda, iptr(ipiv), &info)
	return int(info)
}

// Zgetrf is the complex counterpart of Dgetrf.
func Zgetrf(m, n int, a []complex128, lda int, ipiv []int32) int {
	var (
		cm   = C.int(m)
		cn   = C.int(n)
		clda = C.int(lda)
		info C.int
	)
	C.zgetrf_(&cm, &cn, zptr(a), &clda, iptr(ipiv), &info)
	return int(info)
}

// Dgetrs solves A*x = b, A^T*x = b using the factorization from Dgetrf.
func Dgetrs(trans byte, n, nrhs int, a []float64, lda int, ipiv []int32, b []float64, ldb int) int {
	var (
		ctrans = C.char(trans)
		cn     = C.int(n)
		cnrhs  = C.int(nrhs)
		clda   = C.int(lda)
		cldb   = C.int(ldb)
		info   C.int
	)
	C.dgetrs_(&ctrans, &cn, &cnrhs, dptr(a), &clda, iptr(ipiv), dptr(b), &cldb, &info)
	return int(info)
}

// Zgetrs solves A*x = b, A^T*x = b or A^H*x = b using the factorization
// from Zgetrf.
func Zgetrs(trans byte, n, nrhs int, a []complex128, lda int, ipiv []int32, b []complex128, ldb int) int {
	var (
		ctrans = C.char(trans)
		cn     = C.int(n)
		cnrhs  = C.int(nrhs)
		clda   = C.int(lda)
		cldb   = C.int(ldb)
		info   C.int
	)
	C.zgetrs_(&ctrans, &cn, &cnrhs, zptr(a), &clda, iptr(ipiv), zptr(b), &cldb, &info)
	return int(info)
}

// Dgetri computes the inverse of a matrix from its LU factorization.
func Dgetri(n int, a []float64, lda int, ipiv []int32, work []float64, lwork int) int {
	var (
		cn     = C.int(n)
		clda   = C.int(lda)
		clwork = C.int(lwork)
		info   C.int
	)
	C.dgetri_(&cn, dptr(a), &clda, iptr(ipiv), dptr(work), &clwork, &info)
	return int(info)
}

// Zgetri is the complex counterpart of Dgetri.
func Zgetri(n int, a []complex128, lda int, ipiv []int32, work []complex128, lwork int) int {
	var (
		cn     = C.int(n)
		clda   = C.int(lda)
		clwork = C.int(lwork)
		info   C.int
	)
	C.zgetri_(&cn, zptr(a), &clda, iptr(ipiv), zptr(work), &clwork, &info)
	return int(info)
}

// Dpotrf computes the Cholesky factorization of a symmetric positive
// definite matrix. A positive info i means the leading minor of order i is
// not positive definite.
func Dpotrf(uplo byte, n int, a []float64, lda int) int {
	var (
		cuplo = C.char(uplo)
		cn    = C.int(n)
		clda  = C.int(lda)
		info  C.int
	)
	C.dpotrf_(&cuplo, &cn, dptr(a), &clda, &info)
	return int(info)
}

// Zpotrf computes the Cholesky factorization of a Hermitian positive
// definite matrix.
func Zpotrf(uplo byte, n int, a []complex128, lda int) int {
	var (
		cuplo = C.char(uplo)
		cn    = C.int(n)
		clda  = C.int(lda)
		info  C.int
	)
	C.zpotrf_(&cuplo, &cn, zptr(a), &clda, &info)
	return int(info)
}

// Dpotrs solves A*x = b using the factorization from Dpotrf.
func Dpotrs(uplo byte, n, nrhs int, a []float64, lda int, b []float64, ldb int) int {
	var (
		cuplo = C.char(uplo)
		cn    = C.int(n)
		cnrhs = C.int(nrhs)
		clda  = C.int(lda)
		cldb  = C.int(ldb)
		info  C.int
	)
	C.dpotrs_(&cuplo, &cn, &cnrhs, dptr(a), &clda, dptr(b), &cldb, &info)
	return int(info)
}

// Zpotrs solves A*x = b using the factorization from Zpotrf.
func Zpotrs(uplo byte, n, nrhs int, a []complex128, lda int, b []complex128, ldb int) int {
	var (
		cuplo = C.char(uplo)
		cn    = C.int(n)
		cnrhs = C.int(nrhs)
		clda  = C.int(lda)
		cldb  = C.int(ldb)
		info  C.int
	)
	C.zpotrs_(&cuplo, &cn, &cnrhs, zptr(a), &clda, zptr(b), &cldb, &info)
	return int(info)
}

// Dpotri computes the inverse from the factorization produced by Dpotrf.
func Dpotri(uplo byte, n int, a []float64, lda int) int {
	var (
		cuplo = C.char(uplo)
		cn    = C.int(n)
		clda  = C.int(lda)
		info  C.int
	)
	C.dpotri_(&cuplo, &cn, dptr(a), &clda, &info)
	return int(info)
}

// Zpotri computes the inverse from the factorization produced by Zpotrf.
func Zpotri(uplo byte, n int, a []complex128, lda int) int {
	var (
		cuplo = C.char(uplo)
		cn    = C.int(n)
		clda  = C.int(lda)
		info  C.int
	)
	C.zpotri_(&cuplo, &cn, zptr(a), &clda, &info)
	return int(info)
}

// Dtrtrs solves a triangular system A*x = b or A^T*x = b. A positive info
// i means A(i,i) is exactly zero and the matrix is singular.
func Dtrtrs(uplo, trans, diag byte, n, nrhs int, a []float64, lda int, b []float64, ldb int) int {
	var (
		cuplo  = C.char(uplo)
		ctrans = C.char(trans)
		cdiag  = C.char(diag)
		cn     = C.int(n)
		cnrhs  = C.int(nrhs)
		clda   = C.int(lda)
		cldb   = C.int(ldb)
		info   C.int
	)
	C.dtrtrs_(&cuplo, &ctrans, &cdiag, &cn, &cnrhs, dptr(a), &clda, dptr(b), &cldb, &info)
	return int(info)
}

// Ztrtrs is the complex counterpart of Dtrtrs.
func Ztrtrs(uplo, trans, diag byte, n, nrhs int, a []complex128, lda int, b []complex128, ldb int) int {
	var (
		cuplo  = C.char(uplo)
		ctrans = C.char(trans)
		cdiag  = C.char(diag)
		cn     = C.int(n)
		cnrhs  = C.int(nrhs)
		clda   = C.int(lda)
		cldb   = C.int(ldb)
		info   C.int
	)
	C.ztrtrs_(&cuplo, &ctrans, &cdiag, &cn, &cnrhs, zptr(a), &clda, zptr(b), &cldb, &info)
	return int(info)
}

// Dlange returns the selected norm of a general m x n matrix. work must
// hold at least m elements when norm == 'I' and may be empty otherwise.
func Dlange(norm byte, m, n int, a []float64, lda int, work []float64) float64 {
	var (
		cnorm = C.char(norm)
		cm    = C.int(m)
		cn    = C.int(n)
		clda  = C.int(lda)
	)
	return float64(C.dlange_(&cnorm, &cm, &cn, dptr(a), &clda, dptr(work)))
}

// Zlange is the complex counterpart of Dlange.
func Zlange(norm byte, m, n int, a []complex128, lda int, work []float64) float64 {
	var (
		cnorm = C.char(norm)
		cm    = C.int(m)
		cn    = C.int(n)
		clda  = C.int(lda)
	)
	return float64(C.zlange_(&cnorm, &cm, &cn, zptr(a), &clda, dptr(work)))
}

// Dgecon estimates the reciprocal condition number of a matrix previously
// factored by Dgetrf. work must hold 4n elements and iwork n elements.
func Dgecon(norm byte, n int, a []float64, lda int, anorm float64, rcond *float64, work []float64, iwork []int32) int {
	var (
		cnorm  = C.char(norm)
		cn     = C.int(n)
		clda   = C.int(lda)
		canorm = C.double(anorm)
		info   C.int
	)
	C.dgecon_(&cnorm, &cn, dptr(a), &clda, &canorm,
		(*C.double)(unsafe.Pointer(rcond)), dptr(work), iptr(iwork), &info)
	return int(info)
}

// Zgecon is the complex counterpart of Dgecon. work must hold 2n complex
// elements and rwork 2n real elements.
func Zgecon(norm byte, n int, a []complex128, lda int, anorm float64, rcond *float64, work []complex128, rwork []float64) int {
	var (
		cnorm  = C.char(norm)
		cn     = C.int(n)
		clda   = C.int(lda)
		canorm = C.double(anorm)
		info   C.int
	)
	C.zgecon_(&cnorm, &cn, zptr(a), &clda, &canorm,
		(*C.double)(unsafe.Pointer(rcond)), zptr(work), dptr(rwork), &info)
	return int(info)
}

// Dgesdd computes the singular value decomposition with a
// divide-and-conquer algorithm. iwork must hold 8*min(m,n) elements.
func Dgesdd(jobz byte, m, n int, a []float64, lda int, s []float64, u []float64, ldu int, vt []float64, ldvt int, work []float64, lwork int, iwork []int32) int {
	var (
		cjobz  = C.char(jobz)
		cm     = C.int(m)
		cn     = C.int(n)
		clda   = C.int(lda)
		cldu   = C.int(ldu)
		cldvt  = C.int(ldvt)
		clwork = C.int(lwork)
		info   C.int
	)
	C.dgesdd_(&cjobz, &cm, &cn, dptr(a), &clda, dptr(s),
		dptr(u), &cldu, dptr(vt), &cldvt, dptr(work), &clwork, iptr(iwork), &info)
	return int(info)
}

// Zgesdd is the complex counterpart of Dgesdd. The rwork length depends on
// jobz; see the LAPACK documentation.
func Zgesdd(jobz byte, m, n int, a []complex128, lda int, s []float64, u []complex128, ldu int, vt []complex128, ldvt int, work []complex128, lwork int, rwork []float64, iwork []int32) int {
	var (
		cjobz  = C.char(jobz)
		cm     = C.int(m)
		cn     = C.int(n)
		clda   = C.int(lda)
		cldu   = C.int(ldu)
		cldvt  = C.int(ldvt)
		clwork = C.int(lwork)
		info   C.int
	)
	C.zgesdd_(&cjobz, &cm, &cn, zptr(a), &clda, dptr(s),
		zptr(u), &cldu, zptr(vt), &cldvt, zptr(work), &clwork, dptr(rwork), iptr(iwork), &info)
	return int(info)
}

// Dsyev computes all eigenvalues and, for jobz == 'V', the orthonormal
// eigenvectors of a real symmetric matrix. Eigenvalues come back in
// ascending order in w; eigenvectors overwrite a.
func Dsyev(jobz, uplo byte, n int, a []float64, lda int, w []float64, work []float64, lwork int) int {
	var (
		cjobz  = C.char(jobz)
		cuplo  = C.char(uplo)
		cn     = C.int(n)
		clda   = C.int(lda)
		clwork = C.int(lwork)
		info   C.int
	)
	C.dsyev_(&cjobz, &cuplo, &cn, dptr(a), &clda, dptr(w), dptr(work), &clwork, &info)
	return int(info)
}

// Zheev is the Hermitian counterpart of Dsyev. rwork must hold at least
// max(1, 3n-2) elements.
func Zheev(jobz, uplo byte, n int, a []complex128, lda int, w []float64, work []complex128, lwork int, rwork []float64) int {
	var (
		cjobz  = C.char(jobz)
		cuplo  = C.char(uplo)
		cn     = C.int(n)
		clda   = C.int(lda)
		clwork = C.int(lwork)
		info   C.int
	)
	C.zheev_(&cjobz, &cuplo, &cn, zptr(a), &clda, dptr(w), zptr(work), &clwork, dptr(rwork), &info)
	return int(info)
}

// Dgeqrf computes a QR factorization of an m x n matrix. On exit the upper
// triangle of a holds R and the lower part the Householder reflectors,
// whose scalar factors land in tau (min(m,n) elements).
func Dgeqrf(m, n int, a []float64, lda int, tau []float64, work []float64, lwork int) int {
	var (
		cm     = C.int(m)
		cn     = C.int(n)
		clda   = C.int(lda)
		clwork = C.int(lwork)
		info   C.int
	)
	C.dgeqrf_(&cm, &cn, dptr(a), &clda, dptr(tau), dptr(work), &clwork, &info)
	return int(info)
}

// Zgeqrf is the complex counterpart of Dgeqrf.
func Zgeqrf(m, n int, a []complex128, lda int, tau []complex128, work []complex128, lwork int) int {
	var (
		cm     = C.int(m)
		cn     = C.int(n)
		clda   = C.int(lda)
		clwork = C.int(lwork)
		info   C.int
	)
	C.zgeqrf_(&cm, &cn, zptr(a), &clda, zptr(tau), zptr(work), &clwork, &info)
	return int(info)
}

// Dgelqf computes an LQ factorization of an m x n matrix; the mirror image
// of Dgeqrf, with L in the lower triangle.
func Dgelqf(m, n int, a []float64, lda int, tau []float64, work []float64, lwork int) int {
	var (
		cm     = C.int(m)
		cn     = C.int(n)
		clda   = C.int(lda)
		clwork = C.int(lwork)
		info   C.int
	)
	C.dgelqf_(&cm, &cn, dptr(a), &clda, dptr(tau), dptr(work), &clwork, &info)
	return int(info)
}

// Zgelqf is the complex counterpart of Dgelqf.
func Zgelqf(m, n int, a []complex128, lda int, tau []complex128, work []complex128, lwork int) int {
	var (
		cm     = C.int(m)
		cn     = C.int(n)
		clda   = C.int(lda)
		clwork = C.int(lwork)
		info   C.int
	)
	C.zgelqf_(&cm, &cn, zptr(a), &clda, zptr(tau), zptr(work), &clwork, &info)
	return int(info)
}

// Dorgqr overwrites the reflector form produced by Dgeqrf with the first n
// explicit columns of Q (m x n, n <= m, k reflectors).
func Dorgqr(m, n, k int, a []float64, lda int, tau []float64, work []float64, lwork int) int {
	var (
		cm     = C.int(m)
		cn     = C.int(n)
		ck     = C.int(k)
		clda   = C.int(lda)
		clwork = C.int(lwork)
		info   C.int
	)
	C.dorgqr_(&cm, &cn, &ck, dptr(a), &clda, dptr(tau), dptr(work), &clwork, &info)
	return int(info)
}

// Zungqr is the complex counterpart of Dorgqr.
func Zungqr(m, n, k int, a []complex128, lda int, tau []complex128, work []complex128, lwork int) int {
	var (
		cm     = C.int(m)
		cn     = C.int(n)
		ck     = C.int(k)
		clda   = C.int(lda)
		clwork = C.int(lwork)
		info   C.int
	)
	C.zungqr_(&cm, &cn, &ck, zptr(a), &clda, zptr(tau), zptr(work), &clwork, &info)
	return int(info)
}

// Dorglq overwrites the reflector form produced by Dgelqf with the first m
// explicit rows of Q (m x n, m <= n, k reflectors).
func Dorglq(m, n, k int, a []float64, lda int, tau []float64, work []float64, lwork int) int {
	var (
		cm     = C.int(m)
		cn     = C.int(n)
		ck     = C.int(k)
		clda   = C.int(lda)
		clwork = C.int(lwork)
		info   C.int
	)
	C.dorglq_(&cm, &cn, &ck, dptr(a), &clda, dptr(tau), dptr(work), &clwork, &info)
	return int(info)
}

// Zunglq is the complex counterpart of Dorglq.
func Zunglq(m, n, k int, a []complex128, lda int, tau []complex128, work []complex128, lwork int) int {
	var (
		cm     = C.int(m)
		cn     = C.int(n)
		ck     = C.int(k)
		clda   = C.int(lda)
		clwork = C.int(lwork)
		info   C.int
	)
	C.zunglq_(&cm, &cn, &ck, zptr(a), &clda, zptr(tau), zptr(work), &clwork, &info)
	return int(info)
}
