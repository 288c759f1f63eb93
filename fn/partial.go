package fn

import (
	"github.com/authcorp/fputil/errs"
	"github.com/authcorp/fputil/optional"
)

// PartialFunction pairs a mapper with the predicate describing its
// domain. Apply must only be invoked on values inside the domain;
// callers check IsDefinedAt first or go through ApplyOrElse. Fusing the
// two into one value lets a filter+map run in a single pass.
type PartialFunction[T, U any] struct {
	condition Predicate1[T]
	mapper    Function1[T, U]
}

// PartialOf creates a PartialFunction from a domain predicate and a mapper.
func PartialOf[T, U any](condition Predicate1[T], mapper Function1[T, U]) PartialFunction[T, U] {
	if condition == nil {
		panic(errs.IllegalArgument("condition must not be nil"))
	}
	if mapper == nil {
		panic(errs.IllegalArgument("mapper must not be nil"))
	}
	return PartialFunction[T, U]{condition: condition, mapper: mapper}
}

// PartialIdentity creates a PartialFunction defined everywhere that
// returns its input unchanged.
func PartialIdentity[T any]() PartialFunction[T, T] {
	return PartialFunction[T, T]{condition: True[T](), mapper: Identity[T]}
}

// IsDefinedAt returns true if value is inside the function's domain.
func (pf PartialFunction[T, U]) IsDefinedAt(value T) bool {
	return pf.condition(value)
}

// Apply runs the mapper. The result for values outside the domain is
// whatever the mapper produces there; use ApplyOrElse to supply a
// fallback instead.
func (pf PartialFunction[T, U]) Apply(value T) U {
	return pf.mapper(value)
}

// ApplyOrElse runs the mapper when value is inside the domain, and
// fallback otherwise.
func (pf PartialFunction[T, U]) ApplyOrElse(value T, fallback Function1[T, U]) U {
	if pf.condition(value) {
		return pf.mapper(value)
	}
	if fallback == nil {
		panic(errs.IllegalArgument("fallback must not be nil"))
	}
	return fallback(value)
}

// OrElse creates a PartialFunction that falls back to other for values
// outside this function's domain.
func (pf PartialFunction[T, U]) OrElse(other PartialFunction[T, U]) PartialFunction[T, U] {
	return PartialFunction[T, U]{
		condition: pf.condition.Or(other.condition),
		mapper: func(t T) U {
			if pf.condition(t) {
				return pf.mapper(t)
			}
			return other.mapper(t)
		},
	}
}

// AndThenPartial applies after to the result of pf, keeping pf's domain.
func AndThenPartial[T, U, V any](pf PartialFunction[T, U], after Function1[U, V]) PartialFunction[T, V] {
	if after == nil {
		panic(errs.IllegalArgument("after must not be nil"))
	}
	return PartialFunction[T, V]{
		condition: pf.condition,
		mapper:    func(t T) V { return after(pf.mapper(t)) },
	}
}

// Lift turns pf into a total function returning an empty Optional for
// values outside the domain.
func Lift[T, U any](pf PartialFunction[T, U]) Function1[T, optional.Optional[U]] {
	return func(t T) optional.Optional[U] {
		if pf.condition(t) {
			return optional.Of(pf.mapper(t))
		}
		return optional.Empty[U]()
	}
}
