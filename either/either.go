// Package either provides a disjoint union of two possible types.
// By convention Left carries errors and Right carries success values;
// transforming operations are right-biased.
package either

import (
	"github.com/authcorp/fputil/errs"
	"github.com/authcorp/fputil/optional"
)

// Either represents a value of one of two possible types.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either with a left value.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value, isRight: false}
}

// Right creates an Either with a right value.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft returns true if the Either contains a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if the Either contains a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Get returns the right value, panicking with errs.NoSuchElement on a Left.
func (e Either[L, R]) Get() R {
	if !e.isRight {
		panic(errs.NoSuchElement("called Get on a Left"))
	}
	return e.right
}

// GetLeft returns the left value, panicking with errs.NoSuchElement on a Right.
func (e Either[L, R]) GetLeft() L {
	if e.isRight {
		panic(errs.NoSuchElement("called GetLeft on a Right"))
	}
	return e.left
}

// GetOrElse returns the right value or a default.
func (e Either[L, R]) GetOrElse(defaultValue R) R {
	if e.isRight {
		return e.right
	}
	return defaultValue
}

// GetLeftOrElse returns the left value or a default.
func (e Either[L, R]) GetLeftOrElse(defaultValue L) L {
	if !e.isRight {
		return e.left
	}
	return defaultValue
}

// Map applies a function to the right value, preserving the type. Use
// the package-level Map when the type changes.
func (e Either[L, R]) Map(fn func(R) R) Either[L, R] {
	if e.isRight {
		if fn == nil {
			panic(errs.IllegalArgument("fn must not be nil"))
		}
		return Right[L](fn(e.right))
	}
	return e
}

// MapLeft applies a function to the left value, preserving the type.
func (e Either[L, R]) MapLeft(fn func(L) L) Either[L, R] {
	if !e.isRight {
		if fn == nil {
			panic(errs.IllegalArgument("fn must not be nil"))
		}
		return Left[L, R](fn(e.left))
	}
	return e
}

// Swap exchanges left and right values.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// FilterOrElse turns a Right whose value fails the predicate into a
// Left built by zero. A nil predicate means no filtering; a Left passes
// through unchanged.
func (e Either[L, R]) FilterOrElse(predicate func(R) bool, zero func() L) Either[L, R] {
	if !e.isRight || predicate == nil || predicate(e.right) {
		return e
	}
	if zero == nil {
		panic(errs.IllegalArgument("zero must not be nil"))
	}
	return Left[L, R](zero())
}

// Ap combines two Eithers. Both Rights combine their values via
// mapRight, both Lefts combine via mapLeft, and a mixed pair keeps the
// existing Left unchanged.
func (e Either[L, R]) Ap(other Either[L, R], mapLeft func(L, L) L, mapRight func(R, R) R) Either[L, R] {
	switch {
	case e.isRight && other.isRight:
		if mapRight == nil {
			panic(errs.IllegalArgument("mapRight must not be nil"))
		}
		return Right[L](mapRight(e.right, other.right))
	case !e.isRight && !other.isRight:
		if mapLeft == nil {
			panic(errs.IllegalArgument("mapLeft must not be nil"))
		}
		return Left[L, R](mapLeft(e.left, other.left))
	case !e.isRight:
		return e
	default:
		return other
	}
}

// ToOptional converts the Either to an Optional of the right value.
func (e Either[L, R]) ToOptional() optional.Optional[R] {
	if e.isRight {
		return optional.Of(e.right)
	}
	return optional.Empty[R]()
}

// Map applies a transformation function to the right value.
func Map[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.IsRight() {
		if fn == nil {
			panic(errs.IllegalArgument("fn must not be nil"))
		}
		return Right[L](fn(e.Get()))
	}
	return Left[L, U](e.GetLeft())
}

// MapLeft applies a transformation function to the left value.
func MapLeft[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	if e.IsLeft() {
		if fn == nil {
			panic(errs.IllegalArgument("fn must not be nil"))
		}
		return Left[U, R](fn(e.GetLeft()))
	}
	return Right[U](e.Get())
}

// FlatMap applies a transformation returning an Either, without
// double-wrapping.
func FlatMap[L, R, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	if e.IsRight() {
		if fn == nil {
			panic(errs.IllegalArgument("fn must not be nil"))
		}
		return fn(e.Get())
	}
	return Left[L, U](e.GetLeft())
}

// Fold applies onLeft or onRight, whichever matches the Either's state.
// Only the mapper of the taken side is required; the other may be nil.
func Fold[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.IsRight() {
		if onRight == nil {
			panic(errs.IllegalArgument("onRight must not be nil"))
		}
		return onRight(e.Get())
	}
	if onLeft == nil {
		panic(errs.IllegalArgument("onLeft must not be nil"))
	}
	return onLeft(e.GetLeft())
}

// Combine folds the given Eithers with Ap, left to right. No input
// yields a Right holding the zero value.
func Combine[L, R any](mapLeft func(L, L) L, mapRight func(R, R) R, eithers ...Either[L, R]) Either[L, R] {
	var zero R
	result := Right[L](zero)
	for _, e := range eithers {
		result = result.Ap(e, mapLeft, mapRight)
	}
	return result
}

// CombineGetFirstLeft evaluates the suppliers left to right, combining
// right values via mapRight and stopping at the first Left. Suppliers
// after the first Left are never invoked.
func CombineGetFirstLeft[L, R any](mapRight func(R, R) R, suppliers ...func() Either[L, R]) Either[L, R] {
	var zero R
	result := Right[L](zero)
	for _, supply := range suppliers {
		if supply == nil {
			panic(errs.IllegalArgument("supplier must not be nil"))
		}
		e := supply()
		if e.IsLeft() {
			return e
		}
		result = result.Ap(e, nil, mapRight)
	}
	return result
}
