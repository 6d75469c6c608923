package filter

import (
	"errors"
	"fmt"
)

var errNonBoolean = errors.New("expression did not evaluate to a boolean")

// CompilationError represents a filter expression that failed to compile
type CompilationError struct {
	Expression string
	Reason     string
}

// Error implements the error interface
func (e *CompilationError) Error() string {
	return fmt.Sprintf("failed to compile filter %q: %s", e.Expression, e.Reason)
}

// EvaluationError represents a filter that failed at evaluation time
type EvaluationError struct {
	Expression string
	Err        error
}

// Error implements the error interface
func (e *EvaluationError) Error() string {
	return fmt.Sprintf("failed to evaluate filter %q: %v", e.Expression, e.Err)
}

// Unwrap returns the underlying evaluation failure
func (e *EvaluationError) Unwrap() error {
	return e.Err
}
