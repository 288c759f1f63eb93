package fn

// Predicate1 represents a condition over one value.
type Predicate1[T any] func(T) bool

// Predicate2 represents a condition over two values.
type Predicate2[T1, T2 any] func(T1, T2) bool

// Predicate3 represents a condition over three values.
type Predicate3[T1, T2, T3 any] func(T1, T2, T3) bool

// Predicate4 represents a condition over four values.
type Predicate4[T1, T2, T3, T4 any] func(T1, T2, T3, T4) bool

// Predicate5 represents a condition over five values.
type Predicate5[T1, T2, T3, T4, T5 any] func(T1, T2, T3, T4, T5) bool

// And creates a predicate satisfied when both predicates are.
func (p Predicate1[T]) And(other Predicate1[T]) Predicate1[T] {
	return func(t T) bool { return p(t) && other(t) }
}

// Or creates a predicate satisfied when either predicate is.
func (p Predicate1[T]) Or(other Predicate1[T]) Predicate1[T] {
	return func(t T) bool { return p(t) || other(t) }
}

// Not creates a predicate that negates this one.
func (p Predicate1[T]) Not() Predicate1[T] {
	return func(t T) bool { return !p(t) }
}

// Xor creates a predicate satisfied when exactly one predicate is.
func (p Predicate1[T]) Xor(other Predicate1[T]) Predicate1[T] {
	return func(t T) bool { return p(t) != other(t) }
}

// And creates a predicate satisfied when both predicates are.
func (p Predicate2[T1, T2]) And(other Predicate2[T1, T2]) Predicate2[T1, T2] {
	return func(t1 T1, t2 T2) bool { return p(t1, t2) && other(t1, t2) }
}

// Or creates a predicate satisfied when either predicate is.
func (p Predicate2[T1, T2]) Or(other Predicate2[T1, T2]) Predicate2[T1, T2] {
	return func(t1 T1, t2 T2) bool { return p(t1, t2) || other(t1, t2) }
}

// Not creates a predicate that negates this one.
func (p Predicate2[T1, T2]) Not() Predicate2[T1, T2] {
	return func(t1 T1, t2 T2) bool { return !p(t1, t2) }
}

// Xor creates a predicate satisfied when exactly one predicate is.
func (p Predicate2[T1, T2]) Xor(other Predicate2[T1, T2]) Predicate2[T1, T2] {
	return func(t1 T1, t2 T2) bool { return p(t1, t2) != other(t1, t2) }
}

// And creates a predicate satisfied when both predicates are.
func (p Predicate3[T1, T2, T3]) And(other Predicate3[T1, T2, T3]) Predicate3[T1, T2, T3] {
	return func(t1 T1, t2 T2, t3 T3) bool { return p(t1, t2, t3) && other(t1, t2, t3) }
}

// Or creates a predicate satisfied when either predicate is.
func (p Predicate3[T1, T2, T3]) Or(other Predicate3[T1, T2, T3]) Predicate3[T1, T2, T3] {
	return func(t1 T1, t2 T2, t3 T3) bool { return p(t1, t2, t3) || other(t1, t2, t3) }
}

// Not creates a predicate that negates this one.
func (p Predicate3[T1, T2, T3]) Not() Predicate3[T1, T2, T3] {
	return func(t1 T1, t2 T2, t3 T3) bool { return !p(t1, t2, t3) }
}

// And creates a predicate satisfied when both predicates are.
func (p Predicate4[T1, T2, T3, T4]) And(other Predicate4[T1, T2, T3, T4]) Predicate4[T1, T2, T3, T4] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4) bool { return p(t1, t2, t3, t4) && other(t1, t2, t3, t4) }
}

// Or creates a predicate satisfied when either predicate is.
func (p Predicate4[T1, T2, T3, T4]) Or(other Predicate4[T1, T2, T3, T4]) Predicate4[T1, T2, T3, T4] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4) bool { return p(t1, t2, t3, t4) || other(t1, t2, t3, t4) }
}

// Not creates a predicate that negates this one.
func (p Predicate4[T1, T2, T3, T4]) Not() Predicate4[T1, T2, T3, T4] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4) bool { return !p(t1, t2, t3, t4) }
}

// And creates a predicate satisfied when both predicates are.
func (p Predicate5[T1, T2, T3, T4, T5]) And(other Predicate5[T1, T2, T3, T4, T5]) Predicate5[T1, T2, T3, T4, T5] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5) bool {
		return p(t1, t2, t3, t4, t5) && other(t1, t2, t3, t4, t5)
	}
}

// Or creates a predicate satisfied when either predicate is.
func (p Predicate5[T1, T2, T3, T4, T5]) Or(other Predicate5[T1, T2, T3, T4, T5]) Predicate5[T1, T2, T3, T4, T5] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5) bool {
		return p(t1, t2, t3, t4, t5) || other(t1, t2, t3, t4, t5)
	}
}

// Not creates a predicate that negates this one.
func (p Predicate5[T1, T2, T3, T4, T5]) Not() Predicate5[T1, T2, T3, T4, T5] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4, t5 T5) bool { return !p(t1, t2, t3, t4, t5) }
}

// True creates a predicate that is always satisfied.
func True[T any]() Predicate1[T] {
	return func(T) bool { return true }
}

// False creates a predicate that is never satisfied.
func False[T any]() Predicate1[T] {
	return func(T) bool { return false }
}

// Equals creates a predicate for equality.
func Equals[T comparable](value T) Predicate1[T] {
	return func(v T) bool { return v == value }
}

// NotEquals creates a predicate for inequality.
func NotEquals[T comparable](value T) Predicate1[T] {
	return func(v T) bool { return v != value }
}

// In creates a predicate for set membership.
func In[T comparable](values ...T) Predicate1[T] {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(v T) bool {
		_, ok := set[v]
		return ok
	}
}

// GreaterThan creates a predicate for greater than comparison.
func GreaterThan[T interface{ ~int | ~int64 | ~float64 | ~string }](value T) Predicate1[T] {
	return func(v T) bool { return v > value }
}

// LessThan creates a predicate for less than comparison.
func LessThan[T interface{ ~int | ~int64 | ~float64 | ~string }](value T) Predicate1[T] {
	return func(v T) bool { return v < value }
}

// Between creates a predicate for range check.
func Between[T interface{ ~int | ~int64 | ~float64 | ~string }](min, max T) Predicate1[T] {
	return func(v T) bool { return v >= min && v <= max }
}
