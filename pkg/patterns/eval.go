package patterns

import (
	"fmt"
	"math/cmplx"
	"reflect"

	"github.com/funvibe/fluffy/internal/values"
)

// evalExpression walks a template tree against the binding environment of a
// successful match. Evaluation is pure with respect to the tree: templates
// are reused across calls and never mutated.
func evalExpression(expr Expression, env *Bindings) (values.Value, error) {
	switch e := expr.(type) {
	case *ConstExpr:
		return e.Value, nil

	case *RefExpr:
		name := e.Name
		if name == "" {
			// Anonymous variables capture nothing, so referencing one can
			// never succeed.
			name = "_"
		}
		v, ok := env.Get(e.Name)
		if !ok {
			return nil, &UnboundVariableError{Name: name}
		}
		return v, nil

	case *UnaryExpr:
		operand, err := evalExpression(e.Operand, env)
		if err != nil {
			return nil, err
		}
		return evalPrefix(e.Op, operand)

	case *BinaryExpr:
		left, err := evalExpression(e.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := evalExpression(e.Right, env)
		if err != nil {
			return nil, err
		}
		return evalInfix(e.Op, left, right)

	case *ApplyExpr:
		args := make([]values.Value, len(e.Args))
		for i, arg := range e.Args {
			v, err := evalExpression(arg, env)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return applyFunction(e.Fn, args)

	case *RaiseExpr:
		return nil, e.Err

	case *SeqExpr:
		elements := make([]values.Value, len(e.Elements))
		for i, el := range e.Elements {
			v, err := evalExpression(el, env)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return values.NewList(elements), nil

	case *DictExpr:
		entries := make([]values.MapEntry, len(e.Entries))
		for i, entry := range e.Entries {
			k, err := evalExpression(entry.Key, env)
			if err != nil {
				return nil, err
			}
			v, err := evalExpression(entry.Value, env)
			if err != nil {
				return nil, err
			}
			entries[i] = values.MapEntry{Key: k, Value: v}
		}
		return values.NewMap(entries), nil

	case *AttrExpr:
		target, err := evalExpression(e.Target, env)
		if err != nil {
			return nil, err
		}
		return accessAttr(target, e.Name)

	case *CallExpr:
		target, err := evalExpression(e.Target, env)
		if err != nil {
			return nil, err
		}
		args := make([]values.Value, len(e.Args))
		for i, arg := range e.Args {
			v, err := evalExpression(arg, env)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return callMethod(target, e.Method, args)
	}

	return nil, newEvaluationError("unsupported expression type %T", expr)
}

// applyFunction invokes a Go function with match results, converting each
// argument to the function's parameter type. A trailing error return value
// propagates as an EvaluationError.
func applyFunction(fn any, args []values.Value) (values.Value, error) {
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return nil, newEvaluationError("cannot apply %T: not a function", fn)
	}

	ft := fv.Type()
	numIn := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, newEvaluationError("%s expects at least %d arguments, got %d", ft, numIn-1, len(args))
		}
	} else if len(args) != numIn {
		return nil, newEvaluationError("%s expects %d arguments, got %d", ft, numIn, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var targetType reflect.Type
		if ft.IsVariadic() && i >= numIn-1 {
			targetType = ft.In(numIn - 1).Elem()
		} else {
			targetType = ft.In(i)
		}
		converted, err := values.ToGoType(arg, targetType)
		if err != nil {
			return nil, &EvaluationError{Message: fmt.Sprintf("argument %d: %v", i, err)}
		}
		if converted == nil {
			in[i] = reflect.Zero(targetType)
		} else {
			in[i] = reflect.ValueOf(converted)
		}
	}

	return fromCallResults(fv.Call(in))
}

func fromCallResults(out []reflect.Value) (values.Value, error) {
	// A trailing error return is unwrapped rather than converted.
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if !out[n-1].IsNil() {
			return nil, &EvaluationError{Cause: out[n-1].Interface().(error)}
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return values.NIL, nil
	case 1:
		return values.FromGo(out[0].Interface()), nil
	default:
		elements := make([]values.Value, len(out))
		for i, v := range out {
			elements[i] = values.FromGo(v.Interface())
		}
		return values.NewList(elements), nil
	}
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// accessAttr reads a named field from a record result, or from an opaque
// host value via reflection.
func accessAttr(target values.Value, name string) (values.Value, error) {
	if rec, ok := target.(*values.Record); ok {
		if v := rec.Get(name); v != nil {
			return v, nil
		}
		return nil, newEvaluationError("record %s has no field '%s'", rec.TypeName, name)
	}

	rv := reflect.ValueOf(values.ToGo(target))
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		field := rv.FieldByName(name)
		if field.IsValid() {
			return values.FromGo(field.Interface()), nil
		}
	}
	return nil, newEvaluationError("value %s has no attribute '%s'", target.Inspect(), name)
}

// callMethod invokes a named method on the Go form of the target value.
func callMethod(target values.Value, method string, args []values.Value) (values.Value, error) {
	goVal := values.ToGo(target)
	rv := reflect.ValueOf(goVal)
	if !rv.IsValid() {
		return nil, newEvaluationError("cannot call '%s' on nil", method)
	}

	m := rv.MethodByName(method)
	if !m.IsValid() && rv.Kind() != reflect.Ptr {
		// Pointer receivers need an addressable value.
		pv := reflect.New(rv.Type())
		pv.Elem().Set(rv)
		m = pv.MethodByName(method)
	}
	if !m.IsValid() {
		return nil, newEvaluationError("method '%s' not found on %T", method, goVal)
	}

	return applyFunction(m.Interface(), args)
}

// evalPrefix applies a unary operator.
func evalPrefix(op string, operand values.Value) (values.Value, error) {
	switch op {
	case "-":
		switch v := operand.(type) {
		case *values.Integer:
			return &values.Integer{Value: -v.Value}, nil
		case *values.Float:
			return &values.Float{Value: -v.Value}, nil
		case *values.Complex:
			return &values.Complex{Value: -v.Value}, nil
		}
	case "abs":
		switch v := operand.(type) {
		case *values.Integer:
			if v.Value < 0 {
				return &values.Integer{Value: -v.Value}, nil
			}
			return v, nil
		case *values.Float:
			if v.Value < 0 {
				return &values.Float{Value: -v.Value}, nil
			}
			return v, nil
		case *values.Complex:
			return &values.Float{Value: cmplx.Abs(v.Value)}, nil
		}
	case "!":
		if v, ok := operand.(*values.Boolean); ok {
			if v.Value {
				return values.FALSE, nil
			}
			return values.TRUE, nil
		}
	}
	return nil, newEvaluationError("unknown operator: %s%s", op, operand.Kind())
}
