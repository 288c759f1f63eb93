// Package try provides a wrapper for computations that may panic,
// capturing the panic as a Failure value. Every callback supplied to a
// transforming operation runs inside the same recover boundary, so a
// chain of Try operations never panics past its own API.
package try

import (
	"errors"
	"fmt"

	"github.com/authcorp/fputil/either"
	"github.com/authcorp/fputil/errs"
	"github.com/authcorp/fputil/optional"
)

var errNilFailure = errors.New("a Failure was created without an error")

// Try represents the outcome of a computation that may fail.
type Try[T any] struct {
	value T
	err   error
	ok    bool
}

// Succeed creates a successful Try.
func Succeed[T any](value T) Try[T] {
	return Try[T]{value: value, ok: true}
}

// Fail creates a failed Try. A nil error is normalized so the stored
// error is never nil.
func Fail[T any](err error) Try[T] {
	if err == nil {
		err = errNilFailure
	}
	return Try[T]{err: err, ok: false}
}

// Of runs f, converting a panic into a Failure. Panic values that are
// not errors are wrapped in one.
func Of[T any](f func() T) Try[T] {
	if f == nil {
		panic(errs.IllegalArgument("f must not be nil"))
	}
	return run(f)
}

// OfErr runs f, converting a returned error or a panic into a Failure.
func OfErr[T any](f func() (T, error)) Try[T] {
	if f == nil {
		panic(errs.IllegalArgument("f must not be nil"))
	}
	return runFlat(func() Try[T] {
		return FromValue(f())
	})
}

// FromValue creates a Try from a conventional (value, error) pair.
func FromValue[T any](value T, err error) Try[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Succeed(value)
}

// run is the single capture boundary: it invokes f and converts any
// panic into a Failure.
func run[T any](f func() T) (t Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			t = Fail[T](capture(r))
		}
	}()
	return Succeed(f())
}

// runFlat is the capture boundary for callbacks that already produce a
// Try; it is equivalent to flatten(run(f)) without instantiating
// Try[Try[T]], which the compiler rejects as an instantiation cycle.
func runFlat[T any](f func() Try[T]) (t Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			t = Fail[T](capture(r))
		}
	}()
	return f()
}

// capture normalizes a panic value into an error.
func capture(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("an unknown error was thrown, error = %v", r)
}

func flatten[T any](t Try[Try[T]]) Try[T] {
	if t.ok {
		return t.value
	}
	return Fail[T](t.err)
}

// IsSuccess returns true if the Try holds a value.
func (t Try[T]) IsSuccess() bool {
	return t.ok
}

// IsFailure returns true if the Try holds an error.
func (t Try[T]) IsFailure() bool {
	return !t.ok
}

// Get returns the success value, panicking with errs.NoSuchElement on a
// Failure.
func (t Try[T]) Get() T {
	if !t.ok {
		panic(errs.NoSuchElement("called Get on a Failure").WithCause(t.err))
	}
	return t.value
}

// GetError returns the stored error, panicking with errs.NoSuchElement
// on a Success.
func (t Try[T]) GetError() error {
	if t.ok {
		panic(errs.NoSuchElement("called GetError on a Success"))
	}
	return t.err
}

// GetOrElse returns the success value or a default.
func (t Try[T]) GetOrElse(defaultValue T) T {
	if t.ok {
		return t.value
	}
	return defaultValue
}

// GetOrElseGet returns the success value or computes one from the error.
func (t Try[T]) GetOrElseGet(fn func(error) T) T {
	if t.ok {
		return t.value
	}
	if fn == nil {
		panic(errs.IllegalArgument("fn must not be nil"))
	}
	return fn(t.err)
}

// Map applies a function to the success value inside the capture
// boundary. Use the package-level Map when the type changes.
func (t Try[T]) Map(fn func(T) T) Try[T] {
	return Map(t, fn)
}

// MapErr applies a function to the error of a Failure inside the
// capture boundary.
func (t Try[T]) MapErr(fn func(error) error) Try[T] {
	if t.ok {
		return t
	}
	if fn == nil {
		panic(errs.IllegalArgument("fn must not be nil"))
	}
	return runFlat(func() Try[T] {
		return Fail[T](fn(t.err))
	})
}

// Recover turns a Failure into a Success by applying fn to the error.
func (t Try[T]) Recover(fn func(error) T) Try[T] {
	if t.ok {
		return t
	}
	if fn == nil {
		panic(errs.IllegalArgument("fn must not be nil"))
	}
	return run(func() T { return fn(t.err) })
}

// RecoverWith turns a Failure into the Try produced by fn, without
// re-wrapping.
func (t Try[T]) RecoverWith(fn func(error) Try[T]) Try[T] {
	if t.ok {
		return t
	}
	if fn == nil {
		panic(errs.IllegalArgument("fn must not be nil"))
	}
	return runFlat(func() Try[T] { return fn(t.err) })
}

// Transform folds both sides into a new Try, capturing panics from
// whichever branch runs. Only the mapper of the taken side is required.
func (t Try[T]) Transform(onFailure func(error) Try[T], onSuccess func(T) Try[T]) Try[T] {
	if t.ok {
		if onSuccess == nil {
			panic(errs.IllegalArgument("onSuccess must not be nil"))
		}
		return runFlat(func() Try[T] { return onSuccess(t.value) })
	}
	if onFailure == nil {
		panic(errs.IllegalArgument("onFailure must not be nil"))
	}
	return runFlat(func() Try[T] { return onFailure(t.err) })
}

// Ap combines two Trys. Both Successes combine via mapVal, both
// Failures via mapErr, and a mixed pair keeps the existing Failure.
func (t Try[T]) Ap(other Try[T], mapErr func(error, error) error, mapVal func(T, T) T) Try[T] {
	switch {
	case t.ok && other.ok:
		if mapVal == nil {
			panic(errs.IllegalArgument("mapVal must not be nil"))
		}
		return run(func() T { return mapVal(t.value, other.value) })
	case !t.ok && !other.ok:
		if mapErr == nil {
			panic(errs.IllegalArgument("mapErr must not be nil"))
		}
		return Fail[T](mapErr(t.err, other.err))
	case !t.ok:
		return t
	default:
		return other
	}
}

// ToEither converts the Try to an Either with the error on the left.
func (t Try[T]) ToEither() either.Either[error, T] {
	if t.ok {
		return either.Right[error](t.value)
	}
	return either.Left[error, T](t.err)
}

// ToOptional converts the Try to an Optional, discarding the error.
func (t Try[T]) ToOptional() optional.Optional[T] {
	if t.ok {
		return optional.Of(t.value)
	}
	return optional.Empty[T]()
}

// Map applies a transformation function to the success value inside the
// capture boundary.
func Map[T, U any](t Try[T], fn func(T) U) Try[U] {
	if t.IsFailure() {
		return Fail[U](t.GetError())
	}
	if fn == nil {
		panic(errs.IllegalArgument("fn must not be nil"))
	}
	return run(func() U { return fn(t.Get()) })
}

// FlatMap applies a transformation returning a Try, without
// double-wrapping, inside the capture boundary.
func FlatMap[T, U any](t Try[T], fn func(T) Try[U]) Try[U] {
	if t.IsFailure() {
		return Fail[U](t.GetError())
	}
	if fn == nil {
		panic(errs.IllegalArgument("fn must not be nil"))
	}
	return runFlat(func() Try[U] { return fn(t.Get()) })
}

// Fold applies onFailure or onSuccess, whichever matches the Try's
// state, leaving the Try context. Only the taken side is required.
func Fold[T, U any](t Try[T], onFailure func(error) U, onSuccess func(T) U) U {
	if t.IsSuccess() {
		if onSuccess == nil {
			panic(errs.IllegalArgument("onSuccess must not be nil"))
		}
		return onSuccess(t.Get())
	}
	if onFailure == nil {
		panic(errs.IllegalArgument("onFailure must not be nil"))
	}
	return onFailure(t.GetError())
}

// FromEither converts an Either to a Try, mapping the left value to an
// error via mapLeft.
func FromEither[L, T any](e either.Either[L, T], mapLeft func(L) error) Try[T] {
	if e.IsRight() {
		return Succeed(e.Get())
	}
	if mapLeft == nil {
		panic(errs.IllegalArgument("mapLeft must not be nil"))
	}
	return Fail[T](mapLeft(e.GetLeft()))
}

// Combine folds the given Trys with Ap, left to right. No input yields
// a Success holding the zero value.
func Combine[T any](mapErr func(error, error) error, mapVal func(T, T) T, tries ...Try[T]) Try[T] {
	var zero T
	result := Succeed(zero)
	for _, t := range tries {
		result = result.Ap(t, mapErr, mapVal)
	}
	return result
}

// CombineGetFirstFailure evaluates the suppliers left to right,
// combining success values via mapVal and stopping at the first
// Failure. Suppliers after the first Failure are never invoked.
func CombineGetFirstFailure[T any](mapVal func(T, T) T, suppliers ...func() Try[T]) Try[T] {
	var zero T
	result := Succeed(zero)
	for _, supply := range suppliers {
		if supply == nil {
			panic(errs.IllegalArgument("supplier must not be nil"))
		}
		t := supply()
		if t.IsFailure() {
			return t
		}
		result = result.Ap(t, nil, mapVal)
	}
	return result
}
