package patterns

import "fmt"

// MismatchError reports that no case in the list matched the input value.
// It is the only recoverable failure of Match: retrying with a broader case
// list is legitimate. It carries the offending value for diagnostics.
type MismatchError struct {
	Value any
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("could not match %v", e.Value)
}

// DuplicateVariableError reports a violation of the occurs-once rule: the
// same variable name captured more than once within a single pattern. This
// is a usage error in the case list, not a legitimate mismatch, and aborts
// the whole Match call.
type DuplicateVariableError struct {
	Name string
}

func (e *DuplicateVariableError) Error() string {
	return fmt.Sprintf("variable '%s' has already been defined", e.Name)
}

// UnboundVariableError reports a template referencing a name that is absent
// from the binding environment at evaluation time.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("variable '%s' is not defined", e.Name)
}

// EvaluationError reports a failure while evaluating a matched template:
// either a Raise terminal selected by the matched case, or a fault inside
// an applied function, attribute access or method call.
type EvaluationError struct {
	Message string
	// Cause is set when the error wraps a failure from user code.
	Cause error
}

func (e *EvaluationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "evaluation error"
}

func (e *EvaluationError) Unwrap() error { return e.Cause }

func newEvaluationError(format string, a ...any) *EvaluationError {
	return &EvaluationError{Message: fmt.Sprintf(format, a...)}
}
