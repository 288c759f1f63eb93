// Package fn provides named function, predicate and consumer types of
// fixed arity, together with the combinators used by the wrapper and
// collection packages. Arity is carried by the type system; a plain
// func literal of matching shape converts implicitly at every call site.
package fn

import "sync"

// Function0 wraps a computation taking no arguments. It doubles as the
// lazy supplier consumed by the short-circuiting combine operations.
type Function0[R any] func() R

// Function1 wraps a computation of one argument.
type Function1[T1, R any] func(T1) R

// Function2 wraps a computation of two arguments.
type Function2[T1, T2, R any] func(T1, T2) R

// Function3 wraps a computation of three arguments.
type Function3[T1, T2, T3, R any] func(T1, T2, T3) R

// Function4 wraps a computation of four arguments.
type Function4[T1, T2, T3, T4, R any] func(T1, T2, T3, T4) R

// Function5 wraps a computation of five arguments.
type Function5[T1, T2, T3, T4, T5, R any] func(T1, T2, T3, T4, T5) R

// Function6 wraps a computation of six arguments.
type Function6[T1, T2, T3, T4, T5, T6, R any] func(T1, T2, T3, T4, T5, T6) R

// AndThen applies fn to the result. Methods cannot introduce new type
// parameters, so the result type is preserved; use the package-level
// Then helpers when the type changes.
func (f Function0[R]) AndThen(fn func(R) R) Function0[R] {
	return func() R { return fn(f()) }
}

// AndThen applies fn to the result, preserving the result type.
func (f Function1[T1, R]) AndThen(fn func(R) R) Function1[T1, R] {
	return func(t1 T1) R { return fn(f(t1)) }
}

// Compose applies fn to the argument before f.
func (f Function1[T1, R]) Compose(fn func(T1) T1) Function1[T1, R] {
	return func(t1 T1) R { return f(fn(t1)) }
}

// AndThen applies fn to the result, preserving the result type.
func (f Function2[T1, T2, R]) AndThen(fn func(R) R) Function2[T1, T2, R] {
	return func(t1 T1, t2 T2) R { return fn(f(t1, t2)) }
}

// AndThen applies fn to the result, preserving the result type.
func (f Function3[T1, T2, T3, R]) AndThen(fn func(R) R) Function3[T1, T2, T3, R] {
	return func(t1 T1, t2 T2, t3 T3) R { return fn(f(t1, t2, t3)) }
}

// AndThen applies fn to the result, preserving the result type.
func (f Function4[T1, T2, T3, T4, R]) AndThen(fn func(R) R) Function4[T1, T2, T3, T4, R] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4) R { return fn(f(t1, t2, t3, t4)) }
}

// AndThen applies fn to the result, preserving the result type.
func (f Function5[T1, T2, T3, T4, T5, R]) AndThen(fn func(R) R) Function5[T1, T2, T3, T4, T5, R] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5) R { return fn(f(t1, t2, t3, t4, t5)) }
}

// AndThen applies fn to the result, preserving the result type.
func (f Function6[T1, T2, T3, T4, T5, T6, R]) AndThen(fn func(R) R) Function6[T1, T2, T3, T4, T5, T6, R] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5, t6 T6) R { return fn(f(t1, t2, t3, t4, t5, t6)) }
}

// Then0 applies fn to the result of f, changing the result type.
func Then0[R, V any](f Function0[R], fn func(R) V) Function0[V] {
	return func() V { return fn(f()) }
}

// Then1 applies fn to the result of f, changing the result type.
func Then1[T1, R, V any](f Function1[T1, R], fn func(R) V) Function1[T1, V] {
	return func(t1 T1) V { return fn(f(t1)) }
}

// Then2 applies fn to the result of f, changing the result type.
func Then2[T1, T2, R, V any](f Function2[T1, T2, R], fn func(R) V) Function2[T1, T2, V] {
	return func(t1 T1, t2 T2) V { return fn(f(t1, t2)) }
}

// Then3 applies fn to the result of f, changing the result type.
func Then3[T1, T2, T3, R, V any](f Function3[T1, T2, T3, R], fn func(R) V) Function3[T1, T2, T3, V] {
	return func(t1 T1, t2 T2, t3 T3) V { return fn(f(t1, t2, t3)) }
}

// Compose creates a function that applies g first and f to its result.
// Compose(f, g)(x) == f(g(x)).
func Compose[A, B, C any](f func(B) C, g func(A) B) Function1[A, C] {
	return func(a A) C { return f(g(a)) }
}

// Pipe creates a function that applies f first and g to its result.
// Pipe(f, g)(x) == g(f(x)).
func Pipe[A, B, C any](f func(A) B, g func(B) C) Function1[A, C] {
	return func(a A) C { return g(f(a)) }
}

// Identity returns its input unchanged.
func Identity[T any](value T) T {
	return value
}

// Const returns a function that always returns the given value.
func Const[T, U any](value T) Function1[U, T] {
	return func(_ U) T { return value }
}

// Flip swaps the arguments of a two-argument function.
func Flip[A, B, C any](fn func(A, B) C) Function2[B, A, C] {
	return func(b B, a A) C { return fn(a, b) }
}

// Curry2 converts a two-argument function to curried form.
func Curry2[A, B, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C { return fn(a, b) }
	}
}

// Curry3 converts a three-argument function to curried form.
func Curry3[A, B, C, D any](fn func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D { return fn(a, b, c) }
		}
	}
}

// Uncurry2 converts a curried function to two-argument form.
func Uncurry2[A, B, C any](fn func(A) func(B) C) Function2[A, B, C] {
	return func(a A, b B) C { return fn(a)(b) }
}

// Partial2 fixes the first argument of a two-argument function.
func Partial2[A, B, C any](fn func(A, B) C, a A) Function1[B, C] {
	return func(b B) C { return fn(a, b) }
}

// Partial3 fixes the first argument of a three-argument function.
func Partial3[A, B, C, D any](fn func(A, B, C) D, a A) Function2[B, C, D] {
	return func(b B, c C) D { return fn(a, b, c) }
}

// Memoize returns a supplier that computes f at most once and caches
// the result. The returned supplier is safe for concurrent use.
func Memoize[R any](f Function0[R]) Function0[R] {
	var (
		once  sync.Once
		value R
	)
	return func() R {
		once.Do(func() { value = f() })
		return value
	}
}
