package fn

// Consumer0 represents a side-effecting action taking no arguments.
type Consumer0 func()

// Consumer1 represents a side-effecting action over one value.
type Consumer1[T any] func(T)

// Consumer2 represents a side-effecting action over two values.
type Consumer2[T1, T2 any] func(T1, T2)

// Consumer3 represents a side-effecting action over three values.
type Consumer3[T1, T2, T3 any] func(T1, T2, T3)

// Consumer4 represents a side-effecting action over four values.
type Consumer4[T1, T2, T3, T4 any] func(T1, T2, T3, T4)

// AndThen runs this action followed by next.
func (c Consumer0) AndThen(next Consumer0) Consumer0 {
	return func() {
		c()
		next()
	}
}

// AndThen runs this action followed by next on the same value.
func (c Consumer1[T]) AndThen(next Consumer1[T]) Consumer1[T] {
	return func(t T) {
		c(t)
		next(t)
	}
}

// AndThen runs this action followed by next on the same values.
func (c Consumer2[T1, T2]) AndThen(next Consumer2[T1, T2]) Consumer2[T1, T2] {
	return func(t1 T1, t2 T2) {
		c(t1, t2)
		next(t1, t2)
	}
}

// AndThen runs this action followed by next on the same values.
func (c Consumer3[T1, T2, T3]) AndThen(next Consumer3[T1, T2, T3]) Consumer3[T1, T2, T3] {
	return func(t1 T1, t2 T2, t3 T3) {
		c(t1, t2, t3)
		next(t1, t2, t3)
	}
}

// AndThen runs this action followed by next on the same values.
func (c Consumer4[T1, T2, T3, T4]) AndThen(next Consumer4[T1, T2, T3, T4]) Consumer4[T1, T2, T3, T4] {
	return func(t1 T1, t2 T2, t3 T3, t4 T4) {
		c(t1, t2, t3, t4)
		next(t1, t2, t3, t4)
	}
}

// NoOp creates a consumer that does nothing.
func NoOp[T any]() Consumer1[T] {
	return func(T) {}
}
