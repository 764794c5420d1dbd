package patterns

import (
	"math"
	"math/cmplx"

	"github.com/funvibe/fluffy/internal/values"
)

// evalInfix applies a binary operator to evaluated operands. Numeric
// operands promote Integer -> Float -> Complex; equality operators work on
// any pair of values via deep equality.
func evalInfix(op string, left, right values.Value) (values.Value, error) {
	switch op {
	case "==":
		return boolValue(values.Equal(left, right)), nil
	case "!=":
		return boolValue(!values.Equal(left, right)), nil
	}

	if l, ok := left.(*values.Integer); ok {
		if r, ok := right.(*values.Integer); ok {
			return evalIntegerInfix(op, l, r)
		}
	}
	if l, ok := left.(*values.Boolean); ok {
		if r, ok := right.(*values.Boolean); ok {
			return evalBooleanInfix(op, l, r)
		}
	}
	if l, ok := left.(*values.String); ok {
		if r, ok := right.(*values.String); ok {
			return evalStringInfix(op, l, r)
		}
	}
	if l, ok := left.(*values.List); ok {
		if r, ok := right.(*values.List); ok {
			return evalListInfix(op, l, r)
		}
	}

	// Implicit numeric promotion.
	if lf, lok := asFloat(left); lok {
		if rf, rok := asFloat(right); rok {
			return evalFloatInfix(op, lf, rf)
		}
	}
	if lc, lok := asComplex(left); lok {
		if rc, rok := asComplex(right); rok {
			return evalComplexInfix(op, lc, rc)
		}
	}

	return nil, newEvaluationError("unknown operator: %s %s %s", left.Kind(), op, right.Kind())
}

func boolValue(b bool) *values.Boolean {
	if b {
		return values.TRUE
	}
	return values.FALSE
}

func asFloat(v values.Value) (float64, bool) {
	switch v := v.(type) {
	case *values.Integer:
		return float64(v.Value), true
	case *values.Float:
		return v.Value, true
	}
	return 0, false
}

func asComplex(v values.Value) (complex128, bool) {
	switch v := v.(type) {
	case *values.Integer:
		return complex(float64(v.Value), 0), true
	case *values.Float:
		return complex(v.Value, 0), true
	case *values.Complex:
		return v.Value, true
	}
	return 0, false
}

func evalIntegerInfix(op string, left, right *values.Integer) (values.Value, error) {
	l, r := left.Value, right.Value
	switch op {
	case "+":
		return &values.Integer{Value: l + r}, nil
	case "-":
		return &values.Integer{Value: l - r}, nil
	case "*":
		return &values.Integer{Value: l * r}, nil
	case "/":
		if r == 0 {
			return nil, newEvaluationError("division by zero")
		}
		return &values.Integer{Value: l / r}, nil
	case "%":
		if r == 0 {
			return nil, newEvaluationError("division by zero")
		}
		return &values.Integer{Value: l % r}, nil
	case "**":
		if r < 0 {
			return &values.Float{Value: math.Pow(float64(l), float64(r))}, nil
		}
		return &values.Integer{Value: intPow(l, r)}, nil
	case "<":
		return boolValue(l < r), nil
	case "<=":
		return boolValue(l <= r), nil
	case ">":
		return boolValue(l > r), nil
	case ">=":
		return boolValue(l >= r), nil
	}
	return nil, newEvaluationError("unknown operator: INTEGER %s INTEGER", op)
}

func intPow(n, m int64) int64 {
	var result int64 = 1
	for i := int64(0); i < m; i++ {
		result *= n
	}
	return result
}

func evalFloatInfix(op string, l, r float64) (values.Value, error) {
	switch op {
	case "+":
		return &values.Float{Value: l + r}, nil
	case "-":
		return &values.Float{Value: l - r}, nil
	case "*":
		return &values.Float{Value: l * r}, nil
	case "/":
		if r == 0 {
			return nil, newEvaluationError("division by zero")
		}
		return &values.Float{Value: l / r}, nil
	case "%":
		if r == 0 {
			return nil, newEvaluationError("division by zero")
		}
		return &values.Float{Value: math.Mod(l, r)}, nil
	case "**":
		return &values.Float{Value: math.Pow(l, r)}, nil
	case "<":
		return boolValue(l < r), nil
	case "<=":
		return boolValue(l <= r), nil
	case ">":
		return boolValue(l > r), nil
	case ">=":
		return boolValue(l >= r), nil
	}
	return nil, newEvaluationError("unknown operator: FLOAT %s FLOAT", op)
}

func evalComplexInfix(op string, l, r complex128) (values.Value, error) {
	switch op {
	case "+":
		return &values.Complex{Value: l + r}, nil
	case "-":
		return &values.Complex{Value: l - r}, nil
	case "*":
		return &values.Complex{Value: l * r}, nil
	case "/":
		if r == 0 {
			return nil, newEvaluationError("division by zero")
		}
		return &values.Complex{Value: l / r}, nil
	case "**":
		return &values.Complex{Value: cmplx.Pow(l, r)}, nil
	}
	return nil, newEvaluationError("unknown operator: COMPLEX %s COMPLEX", op)
}

func evalBooleanInfix(op string, left, right *values.Boolean) (values.Value, error) {
	switch op {
	case "&&":
		return boolValue(left.Value && right.Value), nil
	case "||":
		return boolValue(left.Value || right.Value), nil
	}
	return nil, newEvaluationError("unknown operator: BOOLEAN %s BOOLEAN", op)
}

func evalStringInfix(op string, left, right *values.String) (values.Value, error) {
	switch op {
	case "+":
		return &values.String{Value: left.Value + right.Value}, nil
	case "<":
		return boolValue(left.Value < right.Value), nil
	case "<=":
		return boolValue(left.Value <= right.Value), nil
	case ">":
		return boolValue(left.Value > right.Value), nil
	case ">=":
		return boolValue(left.Value >= right.Value), nil
	}
	return nil, newEvaluationError("unknown operator: STRING %s STRING", op)
}

func evalListInfix(op string, left, right *values.List) (values.Value, error) {
	if op == "+" {
		elements := make([]values.Value, 0, left.Len()+right.Len())
		elements = append(elements, left.Elements...)
		elements = append(elements, right.Elements...)
		return values.NewList(elements), nil
	}
	return nil, newEvaluationError("unknown operator: LIST %s LIST", op)
}
