// Package slices provides generic slice transformation functions.
//
// Every operation is a pure function over its source: inputs are never
// mutated and results are newly allocated. A nil or empty source always
// yields an empty result. A nil required transform on a non-empty
// source panics with errs.IllegalArgument; a nil optional predicate
// defaults to keeping every element.
package slices

import (
	"github.com/authcorp/fputil/errs"
	"github.com/authcorp/fputil/fn"
	"github.com/authcorp/fputil/optional"
	"github.com/authcorp/fputil/tuple"
)

// Map applies mapper to each element, returning a new slice.
func Map[T, U any](source []T, mapper func(T) U) []U {
	result := make([]U, 0, len(source))
	if len(source) == 0 {
		return result
	}
	if mapper == nil {
		panic(errs.IllegalArgument("mapper must not be nil"))
	}
	for _, v := range source {
		result = append(result, mapper(v))
	}
	return result
}

// Filter returns the elements that satisfy the predicate. A nil
// predicate keeps every element.
func Filter[T any](source []T, predicate func(T) bool) []T {
	result := make([]T, 0, len(source))
	for _, v := range source {
		if predicate == nil || predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// FilterNot returns the elements that do not satisfy the predicate. A
// nil predicate drops nothing.
func FilterNot[T any](source []T, predicate func(T) bool) []T {
	result := make([]T, 0, len(source))
	for _, v := range source {
		if predicate == nil || !predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// Collect runs the partial function over the source in a single pass:
// the domain predicate is evaluated exactly once per element and the
// mapper never runs on rejected elements.
func Collect[T, U any](source []T, pf fn.PartialFunction[T, U]) []U {
	result := make([]U, 0, len(source))
	for _, v := range source {
		if pf.IsDefinedAt(v) {
			result = append(result, pf.Apply(v))
		}
	}
	return result
}

// CollectWith is Collect with the mapper and predicate supplied
// separately. A nil predicate maps every element.
func CollectWith[T, U any](source []T, mapper func(T) U, predicate func(T) bool) []U {
	result := make([]U, 0, len(source))
	if len(source) == 0 {
		return result
	}
	if mapper == nil {
		panic(errs.IllegalArgument("mapper must not be nil"))
	}
	for _, v := range source {
		if predicate == nil || predicate(v) {
			result = append(result, mapper(v))
		}
	}
	return result
}

// FoldLeft folds the source into a single value, left to right.
func FoldLeft[T, U any](source []T, initial U, accumulator func(U, T) U) U {
	if len(source) == 0 {
		return initial
	}
	if accumulator == nil {
		panic(errs.IllegalArgument("accumulator must not be nil"))
	}
	acc := initial
	for _, v := range source {
		acc = accumulator(acc, v)
	}
	return acc
}

// Reduce combines the elements pairwise with op, returning an empty
// Optional for an empty source.
func Reduce[T any](source []T, op fn.BinaryOperator[T]) optional.Optional[T] {
	if len(source) == 0 {
		return optional.Empty[T]()
	}
	if op == nil {
		panic(errs.IllegalArgument("op must not be nil"))
	}
	acc := source[0]
	for _, v := range source[1:] {
		acc = op(acc, v)
	}
	return optional.Of(acc)
}

// Find returns the first element satisfying the predicate.
func Find[T any](source []T, predicate func(T) bool) optional.Optional[T] {
	if len(source) == 0 {
		return optional.Empty[T]()
	}
	if predicate == nil {
		panic(errs.IllegalArgument("predicate must not be nil"))
	}
	for _, v := range source {
		if predicate(v) {
			return optional.Of(v)
		}
	}
	return optional.Empty[T]()
}

// FindLast returns the last element satisfying the predicate.
func FindLast[T any](source []T, predicate func(T) bool) optional.Optional[T] {
	if len(source) == 0 {
		return optional.Empty[T]()
	}
	if predicate == nil {
		panic(errs.IllegalArgument("predicate must not be nil"))
	}
	for i := len(source) - 1; i >= 0; i-- {
		if predicate(source[i]) {
			return optional.Of(source[i])
		}
	}
	return optional.Empty[T]()
}

// Count returns the number of elements satisfying the predicate. A nil
// predicate counts every element.
func Count[T any](source []T, predicate func(T) bool) int {
	count := 0
	for _, v := range source {
		if predicate == nil || predicate(v) {
			count++
		}
	}
	return count
}

// Any returns true if any element satisfies the predicate.
func Any[T any](source []T, predicate func(T) bool) bool {
	if len(source) == 0 {
		return false
	}
	if predicate == nil {
		panic(errs.IllegalArgument("predicate must not be nil"))
	}
	for _, v := range source {
		if predicate(v) {
			return true
		}
	}
	return false
}

// All returns true if every element satisfies the predicate.
func All[T any](source []T, predicate func(T) bool) bool {
	if len(source) == 0 {
		return true
	}
	if predicate == nil {
		panic(errs.IllegalArgument("predicate must not be nil"))
	}
	for _, v := range source {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Contains returns true if the source contains the element.
func Contains[T comparable](source []T, elem T) bool {
	for _, v := range source {
		if v == elem {
			return true
		}
	}
	return false
}

// ContainsBy returns true if any element satisfies the predicate.
func ContainsBy[T any](source []T, predicate func(T) bool) bool {
	return Any(source, predicate)
}

// ForEach applies action to each element.
func ForEach[T any](source []T, action func(T)) {
	if len(source) == 0 {
		return
	}
	if action == nil {
		panic(errs.IllegalArgument("action must not be nil"))
	}
	for _, v := range source {
		action(v)
	}
}

// Partition splits the source into the elements that satisfy the
// predicate and those that do not.
func Partition[T any](source []T, predicate func(T) bool) ([]T, []T) {
	matching := make([]T, 0)
	notMatching := make([]T, 0)
	if len(source) == 0 {
		return matching, notMatching
	}
	if predicate == nil {
		panic(errs.IllegalArgument("predicate must not be nil"))
	}
	for _, v := range source {
		if predicate(v) {
			matching = append(matching, v)
		} else {
			notMatching = append(notMatching, v)
		}
	}
	return matching, notMatching
}

// Flatten flattens a slice of slices into a single slice.
func Flatten[T any](source [][]T) []T {
	total := 0
	for _, s := range source {
		total += len(s)
	}
	result := make([]T, 0, total)
	for _, s := range source {
		result = append(result, s...)
	}
	return result
}

// FlatMap applies mapper to each element and flattens the results.
func FlatMap[T, U any](source []T, mapper func(T) []U) []U {
	result := make([]U, 0)
	if len(source) == 0 {
		return result
	}
	if mapper == nil {
		panic(errs.IllegalArgument("mapper must not be nil"))
	}
	for _, v := range source {
		result = append(result, mapper(v)...)
	}
	return result
}

// Reverse returns a new slice with the elements in reverse order.
func Reverse[T any](source []T) []T {
	result := make([]T, len(source))
	for i, v := range source {
		result[len(source)-1-i] = v
	}
	return result
}

// Take returns the first n elements as a new slice.
func Take[T any](source []T, n int) []T {
	if n > len(source) {
		n = len(source)
	}
	if n <= 0 {
		return []T{}
	}
	result := make([]T, n)
	copy(result, source[:n])
	return result
}

// Drop returns the elements after the first n as a new slice.
func Drop[T any](source []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n >= len(source) {
		return []T{}
	}
	result := make([]T, len(source)-n)
	copy(result, source[n:])
	return result
}

// TakeWhile returns the leading elements satisfying the predicate.
func TakeWhile[T any](source []T, predicate func(T) bool) []T {
	result := make([]T, 0)
	if len(source) == 0 {
		return result
	}
	if predicate == nil {
		panic(errs.IllegalArgument("predicate must not be nil"))
	}
	for _, v := range source {
		if !predicate(v) {
			break
		}
		result = append(result, v)
	}
	return result
}

// DropWhile returns the elements after the leading run satisfying the
// predicate.
func DropWhile[T any](source []T, predicate func(T) bool) []T {
	if len(source) == 0 {
		return []T{}
	}
	if predicate == nil {
		panic(errs.IllegalArgument("predicate must not be nil"))
	}
	i := 0
	for i < len(source) && predicate(source[i]) {
		i++
	}
	result := make([]T, len(source)-i)
	copy(result, source[i:])
	return result
}

// Zip pairs elements of both slices positionally, stopping at the
// shorter one.
func Zip[A, B any](first []A, second []B) []tuple.Pair[A, B] {
	n := len(first)
	if len(second) < n {
		n = len(second)
	}
	result := make([]tuple.Pair[A, B], 0, n)
	for i := 0; i < n; i++ {
		result = append(result, tuple.Of(first[i], second[i]))
	}
	return result
}
