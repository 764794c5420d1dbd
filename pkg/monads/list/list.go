// Package list provides an immutable linked list with monadic composition:
//
//	data List a = Empty | Node a (List a)
//
// Bind is concatMap, so the list monad models nondeterministic computation.
package list

// List is an immutable singly linked list. The zero value (and any nil
// *List) is the empty list.
type List[T any] struct {
	head T
	tail *List[T]
}

// Empty returns the empty list.
func Empty[T any]() *List[T] { return nil }

// Cons prepends a value to a list.
func Cons[T any](v T, tail *List[T]) *List[T] {
	return &List[T]{head: v, tail: tail}
}

// Of builds a list from the given values in order.
func Of[T any](items ...T) *List[T] {
	var out *List[T]
	for i := len(items) - 1; i >= 0; i-- {
		out = Cons(items[i], out)
	}
	return out
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return l == nil }

// Head returns the first element; the boolean is false on an empty list.
func (l *List[T]) Head() (T, bool) {
	if l == nil {
		var zero T
		return zero, false
	}
	return l.head, true
}

// Tail returns the list without its first element.
func (l *List[T]) Tail() *List[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	n := 0
	for node := l; node != nil; node = node.tail {
		n++
	}
	return n
}

// ToSlice copies the elements into a slice.
func (l *List[T]) ToSlice() []T {
	var out []T
	for node := l; node != nil; node = node.tail {
		out = append(out, node.head)
	}
	return out
}

// Concat appends other after l, sharing other's structure.
func Concat[T any](l, other *List[T]) *List[T] {
	if l == nil {
		return other
	}
	return Cons(l.head, Concat(l.tail, other))
}

// Unit lifts a value into a one-element list.
func Unit[T any](v T) *List[T] { return Cons[T](v, nil) }

// Bind maps g over the list and concatenates the results (concatMap).
func Bind[T, S any](l *List[T], g func(T) *List[S]) *List[S] {
	if l == nil {
		return nil
	}
	return Concat(g(l.head), Bind(l.tail, g))
}

// Map applies f to every element, keeping the order.
func Map[T, S any](l *List[T], f func(T) S) *List[S] {
	if l == nil {
		return nil
	}
	return Cons(f(l.head), Map(l.tail, f))
}
