package fn

// BinaryOperator combines two values of the same type into one.
type BinaryOperator[T any] func(T, T) T

// First creates an operator that keeps the first operand.
func First[T any]() BinaryOperator[T] {
	return func(a, _ T) T { return a }
}

// Last creates an operator that keeps the second operand.
func Last[T any]() BinaryOperator[T] {
	return func(_, b T) T { return b }
}

// MinBy creates an operator returning the smaller operand according to less.
func MinBy[T any](less func(T, T) bool) BinaryOperator[T] {
	return func(a, b T) T {
		if less(b, a) {
			return b
		}
		return a
	}
}

// MaxBy creates an operator returning the larger operand according to less.
func MaxBy[T any](less func(T, T) bool) BinaryOperator[T] {
	return func(a, b T) T {
		if less(a, b) {
			return b
		}
		return a
	}
}
