// Package result provides the Result monad: the outcome of a computation
// that either succeeded with a value (Ok) or failed with an error (Fail).
package result

// Result holds either a value of type T or an error.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail wraps a failure.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk reports whether the computation succeeded.
func (r Result[T]) IsOk() bool { return r.err == nil }

// Err returns the carried error, nil on success.
func (r Result[T]) Err() error { return r.err }

// Unwrap returns the value and the error of the outcome.
func (r Result[T]) Unwrap() (T, error) { return r.value, r.err }

// UnwrapOr returns the value, or def on failure.
func (r Result[T]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Unit lifts a value into Result.
func Unit[T any](v T) Result[T] { return Ok(v) }

// Bind applies g to the value of a successful result; a failure
// short-circuits unchanged.
func Bind[T, S any](r Result[T], g func(T) Result[S]) Result[S] {
	if r.err != nil {
		return Fail[S](r.err)
	}
	return g(r.value)
}

// Map applies f to the value of a successful result.
func Map[T, S any](r Result[T], f func(T) S) Result[S] {
	if r.err != nil {
		return Fail[S](r.err)
	}
	return Ok(f(r.value))
}

// Safe runs f and captures its outcome as a Result.
func Safe[T any](f func() (T, error)) Result[T] {
	v, err := f()
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}
