// Package validation provides an error-accumulating disjoint union.
// Unlike either and try, combining two Invalid values concatenates
// their error slices instead of short-circuiting on the first failure.
package validation

import (
	"errors"

	"github.com/authcorp/fputil/either"
	"github.com/authcorp/fputil/errs"
	"github.com/authcorp/fputil/optional"
	"github.com/authcorp/fputil/try"
)

// Validation represents a validation outcome: a value, or the errors
// accumulated while producing it.
type Validation[E, T any] struct {
	value  T
	errors []E
	valid  bool
}

// Valid creates a valid result.
func Valid[E, T any](value T) Validation[E, T] {
	return Validation[E, T]{value: value, valid: true}
}

// Invalid creates an invalid result with the given errors. The stored
// slice is never nil and is owned by the Validation.
func Invalid[E, T any](violations ...E) Validation[E, T] {
	copied := make([]E, len(violations))
	copy(copied, violations)
	return Validation[E, T]{errors: copied, valid: false}
}

// IsValid returns true if the validation passed.
func (v Validation[E, T]) IsValid() bool {
	return v.valid
}

// IsInvalid returns true if the validation failed.
func (v Validation[E, T]) IsInvalid() bool {
	return !v.valid
}

// Get returns the value, panicking with errs.NoSuchElement when invalid.
func (v Validation[E, T]) Get() T {
	if !v.valid {
		panic(errs.NoSuchElement("called Get on an Invalid"))
	}
	return v.value
}

// Errors returns a copy of the accumulated errors, empty when valid.
func (v Validation[E, T]) Errors() []E {
	copied := make([]E, len(v.errors))
	copy(copied, v.errors)
	return copied
}

// GetOrElse returns the value or a default when invalid.
func (v Validation[E, T]) GetOrElse(defaultValue T) T {
	if v.valid {
		return v.value
	}
	return defaultValue
}

// Ap combines two validations. Two Invalids concatenate their errors in
// order; one Invalid wins over a Valid; two Valids keep the later value.
func (v Validation[E, T]) Ap(other Validation[E, T]) Validation[E, T] {
	switch {
	case v.valid && other.valid:
		return other
	case !v.valid && !other.valid:
		merged := make([]E, 0, len(v.errors)+len(other.errors))
		merged = append(merged, v.errors...)
		merged = append(merged, other.errors...)
		return Validation[E, T]{errors: merged, valid: false}
	case !v.valid:
		return v
	default:
		return other
	}
}

// FilterOrElse turns a Valid whose value fails the predicate into an
// Invalid holding the single error built by toError. A nil predicate
// means no filtering; an Invalid passes through unchanged.
func (v Validation[E, T]) FilterOrElse(predicate func(T) bool, toError func(T) E) Validation[E, T] {
	if !v.valid || predicate == nil || predicate(v.value) {
		return v
	}
	if toError == nil {
		panic(errs.IllegalArgument("toError must not be nil"))
	}
	return Invalid[E, T](toError(v.value))
}

// ToOptional converts the Validation to an Optional, discarding errors.
func (v Validation[E, T]) ToOptional() optional.Optional[T] {
	if v.valid {
		return optional.Of(v.value)
	}
	return optional.Empty[T]()
}

// ToEither converts the Validation to an Either carrying all errors on
// the left.
func (v Validation[E, T]) ToEither() either.Either[[]E, T] {
	if v.valid {
		return either.Right[[]E](v.value)
	}
	return either.Left[[]E, T](v.Errors())
}

// Map applies a transformation function to the value if valid.
func Map[E, T, U any](v Validation[E, T], fn func(T) U) Validation[E, U] {
	if v.IsInvalid() {
		return Validation[E, U]{errors: v.Errors(), valid: false}
	}
	if fn == nil {
		panic(errs.IllegalArgument("fn must not be nil"))
	}
	return Valid[E, U](fn(v.Get()))
}

// MapErrors applies a transformation function to each error if invalid.
func MapErrors[E, F, T any](v Validation[E, T], fn func(E) F) Validation[F, T] {
	if v.IsValid() {
		return Valid[F, T](v.Get())
	}
	if fn == nil {
		panic(errs.IllegalArgument("fn must not be nil"))
	}
	mapped := make([]F, len(v.errors))
	for i, e := range v.errors {
		mapped[i] = fn(e)
	}
	return Validation[F, T]{errors: mapped, valid: false}
}

// FlatMap applies a transformation returning a Validation, without
// double-wrapping.
func FlatMap[E, T, U any](v Validation[E, T], fn func(T) Validation[E, U]) Validation[E, U] {
	if v.IsInvalid() {
		return Validation[E, U]{errors: v.Errors(), valid: false}
	}
	if fn == nil {
		panic(errs.IllegalArgument("fn must not be nil"))
	}
	return fn(v.Get())
}

// Fold applies onInvalid or onValid, whichever matches the state. Only
// the mapper of the taken side is required.
func Fold[E, T, U any](v Validation[E, T], onInvalid func([]E) U, onValid func(T) U) U {
	if v.IsValid() {
		if onValid == nil {
			panic(errs.IllegalArgument("onValid must not be nil"))
		}
		return onValid(v.Get())
	}
	if onInvalid == nil {
		panic(errs.IllegalArgument("onInvalid must not be nil"))
	}
	return onInvalid(v.Errors())
}

// Combine folds the given validations with Ap, left to right,
// accumulating every error across the whole sequence. No input yields a
// Valid holding the zero value.
func Combine[E, T any](validations ...Validation[E, T]) Validation[E, T] {
	var zero T
	result := Valid[E](zero)
	for _, v := range validations {
		result = result.Ap(v)
	}
	return result
}

// CombineGetFirstInvalid evaluates the suppliers left to right and
// stops at the first Invalid, returning only that one's errors.
// Suppliers after the first Invalid are never invoked.
func CombineGetFirstInvalid[E, T any](suppliers ...func() Validation[E, T]) Validation[E, T] {
	var zero T
	result := Valid[E](zero)
	for _, supply := range suppliers {
		if supply == nil {
			panic(errs.IllegalArgument("supplier must not be nil"))
		}
		v := supply()
		if v.IsInvalid() {
			return v
		}
		result = result.Ap(v)
	}
	return result
}

// CombineAllAndGetFirstInvalid accumulates every error from verifyAll
// first; only when that phase fully passes are the lazy suppliers of
// verifyUpToFirstInvalid evaluated, short-circuiting at the first
// Invalid.
func CombineAllAndGetFirstInvalid[E, T any](verifyAll []Validation[E, T], verifyUpToFirstInvalid []func() Validation[E, T]) Validation[E, T] {
	accumulated := Combine(verifyAll...)
	if accumulated.IsInvalid() {
		return accumulated
	}
	if len(verifyUpToFirstInvalid) == 0 {
		return accumulated
	}
	return CombineGetFirstInvalid(verifyUpToFirstInvalid...)
}

// Sequence converts a slice of Validations into a Validation of a
// slice, accumulating every error.
func Sequence[E, T any](vs []Validation[E, T]) Validation[E, []T] {
	values := make([]T, 0, len(vs))
	collected := make([]E, 0)
	for _, v := range vs {
		if v.valid {
			values = append(values, v.value)
		} else {
			collected = append(collected, v.errors...)
		}
	}
	if len(collected) > 0 {
		return Invalid[E, []T](collected...)
	}
	return Valid[E](values)
}

// Traverse applies fn to each element and sequences the results.
func Traverse[E, T, U any](items []T, fn func(T) Validation[E, U]) Validation[E, []U] {
	if fn == nil && len(items) > 0 {
		panic(errs.IllegalArgument("fn must not be nil"))
	}
	results := make([]Validation[E, U], len(items))
	for i, item := range items {
		results[i] = fn(item)
	}
	return Sequence(results)
}

// FromEither converts an Either to a Validation: a Left becomes an
// Invalid holding that single value.
func FromEither[L, T any](e either.Either[L, T]) Validation[L, T] {
	if e.IsRight() {
		return Valid[L](e.Get())
	}
	return Invalid[L, T](e.GetLeft())
}

// FromTry converts a Try to a Validation over errors.
func FromTry[T any](t try.Try[T]) Validation[error, T] {
	if t.IsSuccess() {
		return Valid[error](t.Get())
	}
	return Invalid[error, T](t.GetError())
}

// ToTry converts an error-typed Validation to a Try, joining the
// accumulated errors into one.
func ToTry[T any](v Validation[error, T]) try.Try[T] {
	if v.IsValid() {
		return try.Succeed(v.Get())
	}
	return try.Fail[T](errors.Join(v.errors...))
}
