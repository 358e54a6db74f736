package commands

import (
	"fmt"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/go-errors/errors"
	"golang.org/x/xerrors"
)

// ErrorCode classifies the ways a run can fail
type ErrorCode int

const (
	// UsageError means the command line was unusable, nothing was attempted
	UsageError ErrorCode = iota + 1
	// ServiceUnavailable means the image store could not be reached or listed
	ServiceUnavailable
	// RemovalFailed means a specific image could not be removed
	RemovalFailed
	// InputClosed means no answer could be read at the confirmation prompt
	InputClosed
)

// WrapError wraps an error for the sake of showing a stack trace at the top level
// the go-errors package, for some reason, does not return nil when you try to wrap
// a non-error, so we're just doing it here
func WrapError(err error) error {
	if err == nil {
		return err
	}

	return errors.Wrap(err, 0)
}

// ComplexError an error which carries a code so that calling code has an easier job to do
// adapted from https://medium.com/yakka/better-go-error-handling-with-xerrors-1987650e0c79
type ComplexError struct {
	Message string
	Code    ErrorCode
	Err     error
	frame   xerrors.Frame
}

// NewComplexError returns a ComplexError recording the caller's frame
func NewComplexError(code ErrorCode, message string, err error) ComplexError {
	return ComplexError{
		Message: message,
		Code:    code,
		Err:     err,
		frame:   xerrors.Caller(1),
	}
}

// FormatError is a function
func (ce ComplexError) FormatError(p xerrors.Printer) error {
	p.Print(ce.Message)
	ce.frame.Format(p)
	return ce.Err
}

// Format is a function
func (ce ComplexError) Format(f fmt.State, c rune) {
	xerrors.FormatError(ce, f, c)
}

func (ce ComplexError) Error() string {
	return fmt.Sprint(ce)
}

// Unwrap exposes the underlying error to errors.Is and errors.As
func (ce ComplexError) Unwrap() error {
	return ce.Err
}

// HasErrorCode tells us whether any error in the chain is a ComplexError with the given code
func HasErrorCode(err error, code ErrorCode) bool {
	var originalErr ComplexError
	if xerrors.As(err, &originalErr) {
		return originalErr.Code == code
	}
	return false
}

// RemovalReason is why the runtime refused to remove an image
type RemovalReason int

const (
	ReasonServiceError RemovalReason = iota
	ReasonImageInUse
	ReasonNotFound
)

// ClassifyRemovalError maps a runtime error to a RemovalReason using the
// errdefs kinds both our clients produce
func ClassifyRemovalError(err error) RemovalReason {
	switch {
	case cerrdefs.IsConflict(err):
		return ReasonImageInUse
	case cerrdefs.IsNotFound(err):
		return ReasonNotFound
	default:
		return ReasonServiceError
	}
}
