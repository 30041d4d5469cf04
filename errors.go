package lapgo

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalArgument is the class of kernel rejections of an argument
	// (status < 0). It always signals a contract violation by the caller or
	// an internal bookkeeping bug, never a data-dependent condition.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrComputationFailure is the class of data-dependent kernel failures
	// (status > 0): a zero pivot, a non-converging iteration. Retrying with
	// the same input cannot succeed.
	ErrComputationFailure = errors.New("computation failed")
)

// ErrInvalidArg reports that the kernel rejected argument Arg (1-based
// position in the routine's Fortran argument list).
//
// Matches ErrIllegalArgument under errors.Is.
type ErrInvalidArg struct {
	Routine string
	Arg     int
}

func (e *ErrInvalidArg) Error() string {
	return fmt.Sprintf("%s: illegal value for argument %d", e.Routine, e.Arg)
}

func (e *ErrInvalidArg) Unwrap() error { return ErrIllegalArgument }

// ErrComputeFailed reports a routine-specific computational failure. The
// meaning of Code depends on the routine: for factorizations it is the
// 1-based index of the first zero pivot, for eigensolvers the number of
// converged trailing eigenvalues, and so on.
//
// Matches ErrComputationFailure under errors.Is.
type ErrComputeFailed struct {
	Routine string
	Code    int
}

func (e *ErrComputeFailed) Error() string {
	return fmt.Sprintf("%s: computational failure (code %d)", e.Routine, e.Code)
}

func (e *ErrComputeFailed) Unwrap() error { return ErrComputationFailure }

// infoError translates a raw kernel status into a typed outcome: nil for
// zero, ErrInvalidArg for negative, ErrComputeFailed for positive.
func infoError(routine string, info int) error {
	switch {
	case info == 0:
		return nil
	case info < 0:
		return &ErrInvalidArg{Routine: routine, Arg: -info}
	default:
		return &ErrComputeFailed{Routine: routine, Code: info}
	}
}
