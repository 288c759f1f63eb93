package slices

import (
	"github.com/authcorp/fputil/errs"
	"github.com/authcorp/fputil/fn"
)

// GroupMap projects each element to a key and a value and buckets the
// values under their keys.
func GroupMap[T any, K comparable, V any](source []T, keyFn func(T) K, valueFn func(T) V) map[K][]V {
	result := make(map[K][]V)
	if len(source) == 0 {
		return result
	}
	if keyFn == nil {
		panic(errs.IllegalArgument("keyFn must not be nil"))
	}
	if valueFn == nil {
		panic(errs.IllegalArgument("valueFn must not be nil"))
	}
	for _, v := range source {
		key := keyFn(v)
		result[key] = append(result[key], valueFn(v))
	}
	return result
}

// GroupMapReduce projects each element to a key and a value, reducing
// the values per key immediately instead of materializing buckets.
func GroupMapReduce[T any, K comparable, V any](source []T, keyFn func(T) K, valueFn func(T) V, reduce fn.BinaryOperator[V]) map[K]V {
	result := make(map[K]V)
	if len(source) == 0 {
		return result
	}
	if keyFn == nil {
		panic(errs.IllegalArgument("keyFn must not be nil"))
	}
	if valueFn == nil {
		panic(errs.IllegalArgument("valueFn must not be nil"))
	}
	if reduce == nil {
		panic(errs.IllegalArgument("reduce must not be nil"))
	}
	for _, v := range source {
		key := keyFn(v)
		value := valueFn(v)
		if existing, ok := result[key]; ok {
			result[key] = reduce(existing, value)
		} else {
			result[key] = value
		}
	}
	return result
}

// GroupByMultiKey buckets each element under every key it projects to.
func GroupByMultiKey[T any, K comparable](source []T, keysFn func(T) []K) map[K][]T {
	result := make(map[K][]T)
	if len(source) == 0 {
		return result
	}
	if keysFn == nil {
		panic(errs.IllegalArgument("keysFn must not be nil"))
	}
	for _, v := range source {
		for _, key := range keysFn(v) {
			result[key] = append(result[key], v)
		}
	}
	return result
}

// UniqueBy removes elements whose projected key was already seen,
// keeping the first occurrence and its position.
func UniqueBy[T any, K comparable](source []T, keyFn func(T) K) []T {
	return UniqueByMerge(source, keyFn, fn.First[T]())
}

// UniqueByKeepLast removes duplicate keys keeping the position of the
// first occurrence but the value of the last.
func UniqueByKeepLast[T any, K comparable](source []T, keyFn func(T) K) []T {
	return UniqueByMerge(source, keyFn, fn.Last[T]())
}

// UniqueByMerge removes duplicate keys, combining colliding elements
// with merge (existing element first, new element second). Result order
// follows the first occurrence of each key.
func UniqueByMerge[T any, K comparable](source []T, keyFn func(T) K, merge fn.BinaryOperator[T]) []T {
	result := make([]T, 0, len(source))
	if len(source) == 0 {
		return result
	}
	if keyFn == nil {
		panic(errs.IllegalArgument("keyFn must not be nil"))
	}
	if merge == nil {
		panic(errs.IllegalArgument("merge must not be nil"))
	}
	position := make(map[K]int, len(source))
	for _, v := range source {
		key := keyFn(v)
		if i, ok := position[key]; ok {
			result[i] = merge(result[i], v)
			continue
		}
		position[key] = len(result)
		result = append(result, v)
	}
	return result
}

// ToMap projects each element to a key/value entry; later keys win.
func ToMap[T any, K comparable, V any](source []T, keyFn func(T) K, valueFn func(T) V) map[K]V {
	result := make(map[K]V, len(source))
	if len(source) == 0 {
		return result
	}
	if keyFn == nil {
		panic(errs.IllegalArgument("keyFn must not be nil"))
	}
	if valueFn == nil {
		panic(errs.IllegalArgument("valueFn must not be nil"))
	}
	for _, v := range source {
		result[keyFn(v)] = valueFn(v)
	}
	return result
}
