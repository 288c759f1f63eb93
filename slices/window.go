package slices

import (
	"github.com/google/go-cmp/cmp"

	"github.com/authcorp/fputil/errs"
)

// Sliding returns all overlapping windows of the given size, stride 1.
// A size larger than the source yields one window with everything; size
// zero yields an empty result; a negative size on a non-empty source
// panics with errs.IllegalArgument.
func Sliding[T any](source []T, size int) [][]T {
	if len(source) == 0 {
		return [][]T{}
	}
	if size < 0 {
		panic(errs.IllegalArgumentf("size must not be negative, size = %d", size))
	}
	if size == 0 {
		return [][]T{}
	}
	if size >= len(source) {
		window := make([]T, len(source))
		copy(window, source)
		return [][]T{window}
	}
	result := make([][]T, 0, len(source)-size+1)
	for i := 0; i+size <= len(source); i++ {
		window := make([]T, size)
		copy(window, source[i:i+size])
		result = append(result, window)
	}
	return result
}

// Split chunks the source into consecutive non-overlapping slices of
// the given size, clamping the final chunk to whatever remains. Size
// zero yields an empty result; a negative size on a non-empty source
// panics with errs.IllegalArgument.
func Split[T any](source []T, size int) [][]T {
	if len(source) == 0 {
		return [][]T{}
	}
	if size < 0 {
		panic(errs.IllegalArgumentf("size must not be negative, size = %d", size))
	}
	if size == 0 {
		return [][]T{}
	}
	result := make([][]T, 0, (len(source)+size-1)/size)
	for i := 0; i < len(source); i += size {
		end := i + size
		if end > len(source) {
			end = len(source)
		}
		chunk := make([]T, end-i)
		copy(chunk, source[i:end])
		result = append(result, chunk)
	}
	return result
}

// Transpose swaps rows and columns, tolerating jagged input: column k
// holds the values of every row longer than k, in row order. Nil rows
// contribute nothing.
func Transpose[T any](matrix [][]T) [][]T {
	maxLen := 0
	for _, row := range matrix {
		if len(row) > maxLen {
			maxLen = len(row)
		}
	}
	result := make([][]T, 0, maxLen)
	for col := 0; col < maxLen; col++ {
		column := make([]T, 0, len(matrix))
		for _, row := range matrix {
			if col < len(row) {
				column = append(column, row[col])
			}
		}
		result = append(result, column)
	}
	return result
}

// RemoveAll returns the source without the elements present in toRemove.
func RemoveAll[T comparable](source []T, toRemove []T) []T {
	drop := make(map[T]struct{}, len(toRemove))
	for _, v := range toRemove {
		drop[v] = struct{}{}
	}
	result := make([]T, 0, len(source))
	for _, v := range source {
		if _, ok := drop[v]; !ok {
			result = append(result, v)
		}
	}
	return result
}

// RetainAll returns the elements of source also present in toRetain.
func RetainAll[T comparable](source []T, toRetain []T) []T {
	keep := make(map[T]struct{}, len(toRetain))
	for _, v := range toRetain {
		keep[v] = struct{}{}
	}
	result := make([]T, 0, len(source))
	for _, v := range source {
		if _, ok := keep[v]; ok {
			result = append(result, v)
		}
	}
	return result
}

// RemoveAllBy is RemoveAll with a caller-supplied equality predicate.
func RemoveAllBy[T any](source []T, toRemove []T, equal func(T, T) bool) []T {
	result := make([]T, 0, len(source))
	if len(source) == 0 {
		return result
	}
	if equal == nil {
		panic(errs.IllegalArgument("equal must not be nil"))
	}
	for _, v := range source {
		if !containsBy(toRemove, v, equal) {
			result = append(result, v)
		}
	}
	return result
}

// RetainAllBy is RetainAll with a caller-supplied equality predicate.
func RetainAllBy[T any](source []T, toRetain []T, equal func(T, T) bool) []T {
	result := make([]T, 0, len(source))
	if len(source) == 0 {
		return result
	}
	if equal == nil {
		panic(errs.IllegalArgument("equal must not be nil"))
	}
	for _, v := range source {
		if containsBy(toRetain, v, equal) {
			result = append(result, v)
		}
	}
	return result
}

// RemoveAllDeep is RemoveAll with go-cmp deep equality, for element
// types that are not comparable. Options are forwarded to cmp.Equal.
func RemoveAllDeep[T any](source []T, toRemove []T, opts ...cmp.Option) []T {
	return RemoveAllBy(source, toRemove, func(a, b T) bool {
		return cmp.Equal(a, b, opts...)
	})
}

// RetainAllDeep is RetainAll with go-cmp deep equality.
func RetainAllDeep[T any](source []T, toRetain []T, opts ...cmp.Option) []T {
	return RetainAllBy(source, toRetain, func(a, b T) bool {
		return cmp.Equal(a, b, opts...)
	})
}

func containsBy[T any](source []T, elem T, equal func(T, T) bool) bool {
	for _, v := range source {
		if equal(v, elem) {
			return true
		}
	}
	return false
}
