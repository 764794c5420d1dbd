// Package function provides the function (reader) monad: computations that
// read a shared environment of type A.
package function

// Function is a computation producing B from an environment A.
type Function[A, B any] func(A) B

// Unit lifts a value into a computation that ignores its environment.
func Unit[A, B any](v B) Function[A, B] {
	return func(A) B { return v }
}

// Bind sequences m with g, threading the same environment through both.
func Bind[A, B, C any](m Function[A, B], g func(B) Function[A, C]) Function[A, C] {
	return func(env A) C {
		return g(m(env))(env)
	}
}

// Map post-processes the output of a computation.
func Map[A, B, C any](m Function[A, B], f func(B) C) Function[A, C] {
	return func(env A) C {
		return f(m(env))
	}
}
