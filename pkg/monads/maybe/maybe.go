// Package maybe provides the Maybe monad: a container holding either one
// value (Just) or none (Nothing), with monadic composition helpers.
package maybe

// Maybe holds an optional value of type T.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just wraps a present value.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust reports whether a value is present.
func (m Maybe[T]) IsJust() bool { return m.ok }

// Get returns the contained value and whether it is present.
func (m Maybe[T]) Get() (T, bool) { return m.value, m.ok }

// WithDefault returns the contained value, or def when absent.
func (m Maybe[T]) WithDefault(def T) T {
	if m.ok {
		return m.value
	}
	return def
}

// Unit lifts a value into Maybe. It is Just under its Haskell name.
func Unit[T any](v T) Maybe[T] { return Just(v) }

// Bind applies g to the contained value; Nothing short-circuits.
func Bind[T, S any](m Maybe[T], g func(T) Maybe[S]) Maybe[S] {
	if !m.ok {
		return Nothing[S]()
	}
	return g(m.value)
}

// Map applies f to the contained value, keeping the container shape.
func Map[T, S any](m Maybe[T], f func(T) S) Maybe[S] {
	if !m.ok {
		return Nothing[S]()
	}
	return Just(f(m.value))
}
