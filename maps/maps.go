// Package maps provides generic map transformation functions.
//
// The same edge rules as the slices package apply: a nil or empty
// source always yields an empty result, a nil required transform on a
// non-empty source panics with errs.IllegalArgument, and a nil optional
// predicate keeps every entry. Iteration order over a map is
// unspecified; slice-producing operations inherit that.
package maps

import (
	"github.com/authcorp/fputil/errs"
	"github.com/authcorp/fputil/optional"
	"github.com/authcorp/fputil/tuple"
)

// Keys returns all keys from the map.
func Keys[K comparable, V any](m map[K]V) []K {
	result := make([]K, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}

// Values returns all values from the map.
func Values[K comparable, V any](m map[K]V) []V {
	result := make([]V, 0, len(m))
	for _, v := range m {
		result = append(result, v)
	}
	return result
}

// Get returns the value for a key as an Optional.
func Get[K comparable, V any](m map[K]V, key K) optional.Optional[V] {
	if v, ok := m[key]; ok {
		return optional.Of(v)
	}
	return optional.Empty[V]()
}

// GetOrDefault returns the value for a key, or the default if missing.
func GetOrDefault[K comparable, V any](m map[K]V, key K, defaultValue V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return defaultValue
}

// Contains returns true if the map contains the key.
func Contains[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}

// Clone creates a shallow copy of the map.
func Clone[K comparable, V any](m map[K]V) map[K]V {
	result := make(map[K]V, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

// Filter returns a new map with the entries satisfying the predicate.
// A nil predicate keeps every entry.
func Filter[K comparable, V any](m map[K]V, predicate func(K, V) bool) map[K]V {
	result := make(map[K]V)
	for k, v := range m {
		if predicate == nil || predicate(k, v) {
			result[k] = v
		}
	}
	return result
}

// FilterNot returns a new map without the entries satisfying the
// predicate. A nil predicate drops nothing.
func FilterNot[K comparable, V any](m map[K]V, predicate func(K, V) bool) map[K]V {
	result := make(map[K]V)
	for k, v := range m {
		if predicate == nil || !predicate(k, v) {
			result[k] = v
		}
	}
	return result
}

// Find returns an entry satisfying the predicate. Which matching entry
// is returned is unspecified, as map iteration order is.
func Find[K comparable, V any](m map[K]V, predicate func(K, V) bool) optional.Optional[tuple.Pair[K, V]] {
	if len(m) == 0 {
		return optional.Empty[tuple.Pair[K, V]]()
	}
	if predicate == nil {
		panic(errs.IllegalArgument("predicate must not be nil"))
	}
	for k, v := range m {
		if predicate(k, v) {
			return optional.Of(tuple.Of(k, v))
		}
	}
	return optional.Empty[tuple.Pair[K, V]]()
}

// Count returns the number of entries satisfying the predicate. A nil
// predicate counts every entry.
func Count[K comparable, V any](m map[K]V, predicate func(K, V) bool) int {
	if predicate == nil {
		return len(m)
	}
	count := 0
	for k, v := range m {
		if predicate(k, v) {
			count++
		}
	}
	return count
}

// Collect maps the entries satisfying the predicate to a slice in a
// single pass. A nil predicate maps every entry.
func Collect[K comparable, V, T any](m map[K]V, mapper func(K, V) T, predicate func(K, V) bool) []T {
	result := make([]T, 0, len(m))
	if len(m) == 0 {
		return result
	}
	if mapper == nil {
		panic(errs.IllegalArgument("mapper must not be nil"))
	}
	for k, v := range m {
		if predicate == nil || predicate(k, v) {
			result = append(result, mapper(k, v))
		}
	}
	return result
}

// Slice projects every entry to a slice element.
func Slice[K comparable, V, T any](m map[K]V, mapper func(K, V) T) []T {
	return Collect(m, mapper, nil)
}

// FoldLeft folds the entries into a single value. Entry order is
// unspecified, so the accumulator should be insensitive to it.
func FoldLeft[K comparable, V, U any](m map[K]V, initial U, accumulator func(U, K, V) U) U {
	if len(m) == 0 {
		return initial
	}
	if accumulator == nil {
		panic(errs.IllegalArgument("accumulator must not be nil"))
	}
	acc := initial
	for k, v := range m {
		acc = accumulator(acc, k, v)
	}
	return acc
}

// GroupBy buckets entries by a projected key.
func GroupBy[K comparable, V any, K2 comparable](m map[K]V, keyFn func(K, V) K2) map[K2]map[K]V {
	result := make(map[K2]map[K]V)
	if len(m) == 0 {
		return result
	}
	if keyFn == nil {
		panic(errs.IllegalArgument("keyFn must not be nil"))
	}
	for k, v := range m {
		key := keyFn(k, v)
		if _, ok := result[key]; !ok {
			result[key] = make(map[K]V)
		}
		result[key][k] = v
	}
	return result
}

// MapValues applies mapper to each value, returning a new map.
func MapValues[K comparable, V, U any](m map[K]V, mapper func(V) U) map[K]U {
	result := make(map[K]U, len(m))
	if len(m) == 0 {
		return result
	}
	if mapper == nil {
		panic(errs.IllegalArgument("mapper must not be nil"))
	}
	for k, v := range m {
		result[k] = mapper(v)
	}
	return result
}

// MapKeys applies mapper to each key, returning a new map. When two
// keys collide after mapping, which value survives is unspecified.
func MapKeys[K1, K2 comparable, V any](m map[K1]V, mapper func(K1) K2) map[K2]V {
	result := make(map[K2]V, len(m))
	if len(m) == 0 {
		return result
	}
	if mapper == nil {
		panic(errs.IllegalArgument("mapper must not be nil"))
	}
	for k, v := range m {
		result[mapper(k)] = v
	}
	return result
}

// Merge combines two maps, values from the second taking precedence.
func Merge[K comparable, V any](m1, m2 map[K]V) map[K]V {
	result := make(map[K]V, len(m1)+len(m2))
	for k, v := range m1 {
		result[k] = v
	}
	for k, v := range m2 {
		result[k] = v
	}
	return result
}

// MergeWith combines two maps using mergeFn for conflicting keys.
func MergeWith[K comparable, V any](m1, m2 map[K]V, mergeFn func(V, V) V) map[K]V {
	result := make(map[K]V, len(m1)+len(m2))
	for k, v := range m1 {
		result[k] = v
	}
	if len(m2) > 0 && mergeFn == nil {
		panic(errs.IllegalArgument("mergeFn must not be nil"))
	}
	for k, v := range m2 {
		if existing, ok := result[k]; ok {
			result[k] = mergeFn(existing, v)
		} else {
			result[k] = v
		}
	}
	return result
}

// Invert swaps keys and values. Requires values to be comparable.
func Invert[K, V comparable](m map[K]V) map[V]K {
	result := make(map[V]K, len(m))
	for k, v := range m {
		result[v] = k
	}
	return result
}

// ForEach applies action to each entry.
func ForEach[K comparable, V any](m map[K]V, action func(K, V)) {
	if len(m) == 0 {
		return
	}
	if action == nil {
		panic(errs.IllegalArgument("action must not be nil"))
	}
	for k, v := range m {
		action(k, v)
	}
}

// Pick returns a new map with only the given keys.
func Pick[K comparable, V any](m map[K]V, keys []K) map[K]V {
	result := make(map[K]V)
	for _, k := range keys {
		if v, ok := m[k]; ok {
			result[k] = v
		}
	}
	return result
}

// Omit returns a new map without the given keys.
func Omit[K comparable, V any](m map[K]V, keys []K) map[K]V {
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	result := make(map[K]V)
	for k, v := range m {
		if _, ok := drop[k]; !ok {
			result[k] = v
		}
	}
	return result
}

// RemoveKeys returns the map without the entries whose keys are in keys.
func RemoveKeys[K comparable, V any](m map[K]V, keys []K) map[K]V {
	return Omit(m, keys)
}

// RetainKeys returns the map with only the entries whose keys are in keys.
func RetainKeys[K comparable, V any](m map[K]V, keys []K) map[K]V {
	return Pick(m, keys)
}
