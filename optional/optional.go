// Package optional provides a container for a value that may be absent.
// It is a type-safe alternative to nil pointers: absence is carried by
// the container itself, never by a nil inside it.
package optional

import (
	"github.com/google/go-cmp/cmp"

	"github.com/authcorp/fputil/errs"
)

// Optional represents an optional value that may or may not be present.
type Optional[T any] struct {
	value   T
	present bool
}

// Empty creates an Optional without a value.
func Empty[T any]() Optional[T] {
	return Optional[T]{present: false}
}

// Of creates an Optional containing a value.
func Of[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// FromPtr creates an Optional from a pointer. A nil pointer yields an
// empty Optional.
func FromPtr[T any](ptr *T) Optional[T] {
	if ptr == nil {
		return Empty[T]()
	}
	return Of(*ptr)
}

// IsPresent returns true if the Optional contains a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsEmpty returns true if the Optional is empty.
func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the contained value. It panics with errs.NoSuchElement
// when empty; prefer GetOrElse or Fold.
func (o Optional[T]) Get() T {
	if !o.present {
		panic(errs.NoSuchElement("called Get on an empty Optional"))
	}
	return o.value
}

// GetOrElse returns the contained value or a default.
func (o Optional[T]) GetOrElse(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// GetOrElseGet returns the contained value or computes a default.
// The supplier runs only when the Optional is empty.
func (o Optional[T]) GetOrElseGet(supplier func() T) T {
	if o.present {
		return o.value
	}
	if supplier == nil {
		panic(errs.IllegalArgument("supplier must not be nil"))
	}
	return supplier()
}

// OrElseThrow returns the contained value, panicking with the supplied
// error when empty.
func (o Optional[T]) OrElseThrow(errSupplier func() error) T {
	if o.present {
		return o.value
	}
	if errSupplier == nil {
		panic(errs.IllegalArgument("errSupplier must not be nil"))
	}
	panic(errSupplier())
}

// Map applies a function to the contained value if present. Use the
// package-level Map when the value type changes.
func (o Optional[T]) Map(fn func(T) T) Optional[T] {
	if o.present {
		if fn == nil {
			panic(errs.IllegalArgument("fn must not be nil"))
		}
		return Of(fn(o.value))
	}
	return Empty[T]()
}

// FlatMap applies a function that returns an Optional, preserving
// emptiness. Use the package-level FlatMap when the value type changes.
func (o Optional[T]) FlatMap(fn func(T) Optional[T]) Optional[T] {
	if o.present {
		if fn == nil {
			panic(errs.IllegalArgument("fn must not be nil"))
		}
		return fn(o.value)
	}
	return Empty[T]()
}

// Filter returns an empty Optional when the predicate rejects the
// contained value. A nil predicate means no filtering.
func (o Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	if !o.present || predicate == nil || predicate(o.value) {
		return o
	}
	return Empty[T]()
}

// IfPresent runs action on the contained value, doing nothing when empty.
func (o Optional[T]) IfPresent(action func(T)) {
	if o.present && action != nil {
		action(o.value)
	}
}

// ToPtr converts the Optional to a pointer, nil when empty.
func (o Optional[T]) ToPtr() *T {
	if o.present {
		return &o.value
	}
	return nil
}

// ToSlice converts the Optional to a slice of zero or one element.
func (o Optional[T]) ToSlice() []T {
	if o.present {
		return []T{o.value}
	}
	return []T{}
}

// Equals reports whether both Optionals are empty or both hold values
// that compare equal under go-cmp. Options are forwarded to cmp.Equal,
// e.g. to compare types with unexported fields.
func (o Optional[T]) Equals(other Optional[T], opts ...cmp.Option) bool {
	if o.present != other.present {
		return false
	}
	if !o.present {
		return true
	}
	return cmp.Equal(o.value, other.value, opts...)
}

// Map applies a transformation function to the contained value if
// present. A mapper returning nothing meaningful cannot make the result
// empty; use FlatMap for that.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if o.IsEmpty() {
		return Empty[U]()
	}
	if fn == nil {
		panic(errs.IllegalArgument("fn must not be nil"))
	}
	return Of(fn(o.Get()))
}

// MapToPtr applies a pointer-returning transformation, mapping a nil
// result to an empty Optional.
func MapToPtr[T, U any](o Optional[T], fn func(T) *U) Optional[U] {
	if o.IsEmpty() {
		return Empty[U]()
	}
	if fn == nil {
		panic(errs.IllegalArgument("fn must not be nil"))
	}
	return FromPtr(fn(o.Get()))
}

// FlatMap applies a transformation that returns an Optional.
func FlatMap[T, U any](o Optional[T], fn func(T) Optional[U]) Optional[U] {
	if o.IsEmpty() {
		return Empty[U]()
	}
	if fn == nil {
		panic(errs.IllegalArgument("fn must not be nil"))
	}
	return fn(o.Get())
}

// Fold applies ifEmpty or ifPresent, whichever matches the Optional's
// state. Only the mapper of the taken branch is required.
func Fold[T, U any](o Optional[T], ifEmpty func() U, ifPresent func(T) U) U {
	if o.IsPresent() {
		if ifPresent == nil {
			panic(errs.IllegalArgument("ifPresent must not be nil"))
		}
		return ifPresent(o.Get())
	}
	if ifEmpty == nil {
		panic(errs.IllegalArgument("ifEmpty must not be nil"))
	}
	return ifEmpty()
}
