// Package patterns is a structural pattern-matching engine: it takes a
// runtime value and an ordered list of cases, finds the first pattern that
// structurally matches the value, binds named sub-parts to variables and
// evaluates the case's deferred expression template against those bindings.
//
//	result, err := patterns.Match(expr,
//		patterns.NewCase([]any{patterns.X, "+", patterns.Y}, patterns.Add(patterns.X, patterns.Y)),
//		patterns.NewCase([]any{patterns.X, "*", patterns.Y}, patterns.Mul(patterns.X, patterns.Y)),
//		patterns.NewCase(patterns.Otherwise, patterns.Raise("unknown operation")),
//	)
//
// Cases are tried strictly in declaration order; the first match wins.
package patterns

import (
	"github.com/funvibe/fluffy/internal/values"
	"github.com/jhump/protoreflect/dynamic"
)

// Case pairs a pattern with the expression template evaluated when the
// pattern matches.
type Case struct {
	Pattern    Pattern
	Expression Expression
}

// NewCase builds a case, coercing both sides: plain values, variables,
// slices, maps and structs become patterns; values, variables, slices and
// maps become templates.
func NewCase(pattern any, result any) Case {
	return Case{Pattern: AsPattern(pattern), Expression: AsExpression(result)}
}

// Match classifies value once, then tries cases in order, each with a fresh
// binding environment. On the first structural match it evaluates that
// case's template and returns the result as a plain Go value.
//
// A *MismatchError is returned only after every case failed. A
// *DuplicateVariableError or *UnboundVariableError aborts immediately: those
// are defects in the case list, not per-case mismatches. A matched Raise
// template returns exactly its designated error.
func Match(value any, cases ...Case) (any, error) {
	result, err := MatchValue(values.FromGo(value), cases...)
	if err != nil {
		return nil, err
	}
	return values.ToGo(result), nil
}

// MatchValue is Match in the classified value domain, for callers that
// already hold a values.Value (YAML/proto ingestion, nested engines, tests).
func MatchValue(value values.Value, cases ...Case) (values.Value, error) {
	for _, c := range cases {
		env := NewBindings()
		matched, err := matchPattern(c.Pattern, value, env)
		if err != nil {
			return nil, err
		}
		if !matched {
			continue
		}
		return evalExpression(c.Expression, env)
	}
	return nil, &MismatchError{Value: values.ToGo(value)}
}

// MatchYAML decodes a YAML document and matches it: mappings match
// dictionary patterns, sequences match sequence patterns.
func MatchYAML(doc []byte, cases ...Case) (any, error) {
	v, err := values.FromYAML(doc)
	if err != nil {
		return nil, err
	}
	result, err := MatchValue(v, cases...)
	if err != nil {
		return nil, err
	}
	return values.ToGo(result), nil
}

// MatchProto converts a protobuf dynamic message into a record value (type
// tag = message name) and matches it.
func MatchProto(msg *dynamic.Message, cases ...Case) (any, error) {
	result, err := MatchValue(values.FromProto(msg), cases...)
	if err != nil {
		return nil, err
	}
	return values.ToGo(result), nil
}
