// Package curry turns ordinary Go functions into curried ones: calling a
// curried function with fewer arguments than its arity returns a new
// curried function holding the partial argument list, and supplying the
// remaining arguments later invokes the original function.
package curry

import (
	"fmt"
	"reflect"
)

// Curried is a function with a partially bound argument list.
type Curried struct {
	fn   reflect.Value
	args []reflect.Value
}

// Curry wraps fn. It panics when fn is not a function, since that is a
// defect at the declaration site, not a runtime condition.
func Curry(fn any) *Curried {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		panic(fmt.Sprintf("curry: %T is not a function", fn))
	}
	return &Curried{fn: v}
}

// Call supplies more arguments. When the accumulated arguments satisfy the
// function's arity the function is invoked and its result returned (a
// trailing error return value is unwrapped into Call's error). With fewer
// arguments a new *Curried is returned as the result. Supplying more
// arguments than the function accepts is an error.
func (c *Curried) Call(args ...any) (any, error) {
	combined := make([]reflect.Value, 0, len(c.args)+len(args))
	combined = append(combined, c.args...)
	for _, a := range args {
		combined = append(combined, reflect.ValueOf(a))
	}

	t := c.fn.Type()
	arity := t.NumIn()

	if t.IsVariadic() {
		if len(combined) >= arity-1 {
			return c.invoke(combined)
		}
		return &Curried{fn: c.fn, args: combined}, nil
	}

	switch {
	case len(combined) > arity:
		return nil, fmt.Errorf("curry: too many arguments: got %d, want %d", len(combined), arity)
	case len(combined) == arity:
		return c.invoke(combined)
	default:
		return &Curried{fn: c.fn, args: combined}, nil
	}
}

// MustCall is Call for arguments known to be sufficient and valid; it
// panics on error.
func (c *Curried) MustCall(args ...any) any {
	out, err := c.Call(args...)
	if err != nil {
		panic(err)
	}
	return out
}

func (c *Curried) invoke(in []reflect.Value) (any, error) {
	t := c.fn.Type()
	for i := range in {
		var want reflect.Type
		if t.IsVariadic() && i >= t.NumIn()-1 {
			want = t.In(t.NumIn() - 1).Elem()
		} else {
			want = t.In(i)
		}
		if in[i].IsValid() && in[i].Type() != want && in[i].Type().ConvertibleTo(want) {
			in[i] = in[i].Convert(want)
		}
	}

	out := c.fn.Call(in)
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if !out[n-1].IsNil() {
			return nil, out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		results := make([]any, len(out))
		for i, v := range out {
			results[i] = v.Interface()
		}
		return results, nil
	}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()
