// Package errors provides coded errors for the hanoi solver.
//
// A [Code] names the kind of failure so that callers can react without
// matching message text:
//   - INVALID_*: malformed puzzle input, flags or configuration files
//   - FILE_NOT_FOUND: a named puzzle or config file does not exist
//   - NO_SOLUTION: the target is unreachable from the source
//   - STATE_LIMIT: the search was stopped by its state budget
//   - INTERNAL_ERROR: a produced solution failed verification
//
// The code also decides the process exit status, see [ExitStatus].
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "expected %d peg numbers, got %d", n, got)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle malformed input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidPuzzle, origErr, "source configuration")
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidPuzzle Code = "INVALID_PUZZLE"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeNoSolution Code = "NO_SOLUTION"
	ErrCodeStateLimit Code = "STATE_LIMIT"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Process exit statuses returned by [ExitStatus].
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitNoSolution  = 2
	ExitInterrupted = 130 // 128 + SIGINT
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any *Error in err's chain carries code. A malformed
// peg number, for example, is both INVALID_INPUT and, further down, the
// INVALID_PUZZLE that rejected it.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the outermost *Error without its code
// prefix, or err.Error() for other errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ExitStatus maps err to a process exit status: 0 for nil, 2 for an
// unreachable target, 130 for cancellation and 1 for everything else.
func ExitStatus(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case Is(err, ErrCodeNoSolution):
		return ExitNoSolution
	default:
		return ExitFailure
	}
}
