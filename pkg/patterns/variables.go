package patterns

import (
	"github.com/google/uuid"
)

// Variable is a named placeholder usable in both worlds: inside a pattern
// it captures the sub-value at its position, inside an expression template
// it refers back to the captured value. An anonymous Variable (empty name)
// is a wildcard: it matches anything and captures nothing.
type Variable struct {
	Name string
}

// Var returns a named variable.
func Var(name string) *Variable {
	return &Variable{Name: name}
}

// Vars returns one variable per name, for batch declarations:
//
//	vs := patterns.Vars("width", "height")
func Vars(names ...string) []*Variable {
	out := make([]*Variable, len(names))
	for i, name := range names {
		out[i] = &Variable{Name: name}
	}
	return out
}

// Fresh returns a variable with a unique generated name, for patterns that
// are assembled programmatically and must not collide with user names.
func Fresh() *Variable {
	return &Variable{Name: "v$" + uuid.NewString()}
}

// Conventional single-letter variables, pre-declared for convenience. They
// are plain read-only values created at package initialisation and are never
// mutated; using the same variable twice within one pattern still trips the
// occurs-once check like any other variable.
var (
	X = Var("x")
	Y = Var("y")
	Z = Var("z")

	Xs = Var("xs")
	Ys = Var("ys")
	Zs = Var("zs")

	M = Var("m")
	N = Var("n")
	K = Var("k")

	F = Var("f")
	G = Var("g")
	H = Var("h")

	// Underscore and Otherwise are anonymous: they match any value and
	// bind nothing. Otherwise reads better as the final catch-all case.
	Underscore = &Variable{}
	Otherwise  = &Variable{}
)
