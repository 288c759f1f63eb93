// Package errs provides the typed errors raised by the fputil packages.
//
// Two categories exist. ILLEGAL_ARGUMENT signals a missing or invalid
// argument to an operation whose current state needs it. NO_SUCH_ELEMENT
// signals unwrapping a wrapper variant that does not hold the requested
// value. Both are programmer errors: they are raised as panics carrying
// *Error, so they can be distinguished from domain failures represented
// as values (try.Fail, either.Left, validation.Invalid).
package errs

import (
	"errors"
	"fmt"
)

// Code represents a library error category.
type Code string

// Error codes for all library error categories.
const (
	CodeIllegalArgument Code = "ILLEGAL_ARGUMENT"
	CodeNoSuchElement   Code = "NO_SUCH_ELEMENT"
)

// Error is the standard library error type.
type Error struct {
	Code    Code
	Message string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause sets the underlying cause.
func (e *Error) WithCause(cause error) *Error {
	e.cause = cause
	return e
}

// Is checks if the error matches a target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.cause, target)
}

// New creates a new Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// IllegalArgument creates an illegal argument error.
func IllegalArgument(message string) *Error {
	return New(CodeIllegalArgument, message)
}

// IllegalArgumentf creates an illegal argument error with a formatted message.
func IllegalArgumentf(format string, args ...any) *Error {
	return New(CodeIllegalArgument, fmt.Sprintf(format, args...))
}

// NoSuchElement creates a no such element error.
func NoSuchElement(message string) *Error {
	return New(CodeNoSuchElement, message)
}

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// Must panics if err is not nil, otherwise returns value.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}
