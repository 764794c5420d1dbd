package patterns

import (
	"reflect"

	"github.com/funvibe/fluffy/internal/values"
)

// Expression is a closed union of deferred-evaluation template nodes. A
// template is a passive immutable tree built at case-declaration time;
// nothing is computed until a successful match supplies bindings and the
// dispatcher walks the tree. Evaluation lives in evalExpression.
type Expression interface {
	expressionNode()
}

// ConstExpr evaluates to a constant value.
type ConstExpr struct {
	Value values.Value
}

// RefExpr evaluates to the value bound to Name in the environment.
type RefExpr struct {
	Name string
}

// UnaryExpr applies a prefix operator to its evaluated operand.
type UnaryExpr struct {
	Op      string
	Operand Expression
}

// BinaryExpr applies an infix operator to its evaluated operands, left
// first.
type BinaryExpr struct {
	Op    string
	Left  Expression
	Right Expression
}

// ApplyExpr invokes a Go function with the evaluated arguments, converted
// to the function's parameter types by reflection.
type ApplyExpr struct {
	Fn   any
	Args []Expression
}

// RaiseExpr designates "raise this error" as the case's computed action.
// When its case matches, evaluating the template yields the carried error
// instead of a value; when the case does not match, nothing happens.
type RaiseExpr struct {
	Err error
}

// SeqExpr evaluates each element and yields an ordered sequence.
type SeqExpr struct {
	Elements []Expression
}

// DictExprEntry is one key/value template pair of a DictExpr.
type DictExprEntry struct {
	Key   Expression
	Value Expression
}

// DictExpr evaluates keys and values and yields a keyed mapping.
type DictExpr struct {
	Entries []DictExprEntry
}

// AttrExpr evaluates its target and accesses a named record field (or, for
// opaque host values, a struct field via reflection).
type AttrExpr struct {
	Target Expression
	Name   string
}

// CallExpr evaluates its target and invokes a named method on the
// underlying Go value via reflection, with evaluated arguments.
type CallExpr struct {
	Target Expression
	Method string
	Args   []Expression
}

func (*ConstExpr) expressionNode()  {}
func (*RefExpr) expressionNode()    {}
func (*UnaryExpr) expressionNode()  {}
func (*BinaryExpr) expressionNode() {}
func (*ApplyExpr) expressionNode()  {}
func (*RaiseExpr) expressionNode()  {}
func (*SeqExpr) expressionNode()    {}
func (*DictExpr) expressionNode()   {}
func (*AttrExpr) expressionNode()   {}
func (*CallExpr) expressionNode()   {}

// Const returns a template that evaluates to v.
func Const(v any) Expression {
	return &ConstExpr{Value: values.FromGo(v)}
}

// Ref returns a template referencing the variable bound under name.
func Ref(name string) Expression {
	return &RefExpr{Name: name}
}

// Apply returns a template that, once bindings exist, evaluates each
// argument left-to-right and invokes fn (an arbitrary Go function) with the
// results. fn is not called before the match succeeds.
func Apply(fn any, args ...any) Expression {
	return &ApplyExpr{Fn: fn, Args: asExpressions(args)}
}

// Raise returns a template whose evaluation raises err instead of producing
// a value. err may be an error (raised exactly as given) or any other value,
// which is wrapped into an EvaluationError carrying its rendering.
func Raise(err any) Expression {
	if e, ok := err.(error); ok {
		return &RaiseExpr{Err: e}
	}
	return &RaiseExpr{Err: newEvaluationError("%v", err)}
}

// Attr returns a template accessing the named field of the evaluated target.
func Attr(target any, name string) Expression {
	return &AttrExpr{Target: AsExpression(target), Name: name}
}

// CallMethod returns a template invoking the named method on the evaluated
// target.
func CallMethod(target any, method string, args ...any) Expression {
	return &CallExpr{Target: AsExpression(target), Method: method, Args: asExpressions(args)}
}

// AsExpression coerces an arbitrary value into a template: an Expression
// passes through, a *Variable becomes a reference, slices and maps become
// sequence and mapping templates with their elements coerced recursively,
// and everything else is a constant.
func AsExpression(v any) Expression {
	switch e := v.(type) {
	case Expression:
		return e
	case *Variable:
		return &RefExpr{Name: e.Name}
	case Variable:
		return &RefExpr{Name: e.Name}
	case values.Value:
		return &ConstExpr{Value: e}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elements := make([]Expression, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elements[i] = AsExpression(rv.Index(i).Interface())
		}
		return &SeqExpr{Elements: elements}
	case reflect.Map:
		entries := make([]DictExprEntry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, DictExprEntry{
				Key:   AsExpression(iter.Key().Interface()),
				Value: AsExpression(iter.Value().Interface()),
			})
		}
		return &DictExpr{Entries: entries}
	}

	return &ConstExpr{Value: values.FromGo(v)}
}

func asExpressions(args []any) []Expression {
	out := make([]Expression, len(args))
	for i, a := range args {
		out[i] = AsExpression(a)
	}
	return out
}
