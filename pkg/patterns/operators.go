package patterns

// Expression-tree builders. Each constructor wraps its operands into a new
// template node; nothing is computed until the matched case's template is
// evaluated. Operands go through AsExpression, so variables, literals and
// nested templates mix freely:
//
//	patterns.Add(patterns.X, 1)          // x + 1
//	patterns.Mul(patterns.X, patterns.Y) // x * y

func binary(op string, left, right any) Expression {
	return &BinaryExpr{Op: op, Left: AsExpression(left), Right: AsExpression(right)}
}

func unary(op string, operand any) Expression {
	return &UnaryExpr{Op: op, Operand: AsExpression(operand)}
}

// Add builds left + right (numeric addition, string or sequence
// concatenation).
func Add(left, right any) Expression { return binary("+", left, right) }

// Sub builds left - right.
func Sub(left, right any) Expression { return binary("-", left, right) }

// Mul builds left * right.
func Mul(left, right any) Expression { return binary("*", left, right) }

// Div builds left / right. Integer division by zero raises an
// EvaluationError when the template is evaluated.
func Div(left, right any) Expression { return binary("/", left, right) }

// Mod builds left % right.
func Mod(left, right any) Expression { return binary("%", left, right) }

// Pow builds left ** right.
func Pow(left, right any) Expression { return binary("**", left, right) }

// Eq builds left == right (deep value equality).
func Eq(left, right any) Expression { return binary("==", left, right) }

// Ne builds left != right.
func Ne(left, right any) Expression { return binary("!=", left, right) }

// Lt builds left < right.
func Lt(left, right any) Expression { return binary("<", left, right) }

// Le builds left <= right.
func Le(left, right any) Expression { return binary("<=", left, right) }

// Gt builds left > right.
func Gt(left, right any) Expression { return binary(">", left, right) }

// Ge builds left >= right.
func Ge(left, right any) Expression { return binary(">=", left, right) }

// Neg builds -operand.
func Neg(operand any) Expression { return unary("-", operand) }

// Abs builds the absolute value of operand.
func Abs(operand any) Expression { return unary("abs", operand) }

// Not builds the logical negation of operand.
func Not(operand any) Expression { return unary("!", operand) }
