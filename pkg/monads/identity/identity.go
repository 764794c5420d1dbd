// Package identity provides the Identity monad: a value in a trivial
// container, useful as the base case of monadic composition.
package identity

// Identity wraps a single value.
type Identity[T any] struct {
	value T
}

// Unit lifts a value into Identity.
func Unit[T any](v T) Identity[T] {
	return Identity[T]{value: v}
}

// Value returns the contained value.
func (i Identity[T]) Value() T { return i.value }

// Bind applies g to the contained value.
func Bind[T, S any](i Identity[T], g func(T) Identity[S]) Identity[S] {
	return g(i.value)
}

// Map applies f to the contained value.
func Map[T, S any](i Identity[T], f func(T) S) Identity[S] {
	return Unit(f(i.value))
}
