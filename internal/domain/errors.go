package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidConfig      = errors.New("invalid config")
	ErrInvalidInput       = errors.New("invalid input")
	ErrTotalInfeasibility = errors.New("no feasible distance in the scanned domain")
	ErrExecution          = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindInvalidInput  ErrorKind = "invalid_input"
	KindInfeasible    ErrorKind = "infeasible"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// Execution builds the error reported when an operation fails for reasons outside the
// caller's input, such as a filesystem write. The chain carries both ErrExecution and err.
func Execution(op, path string, err error) error {
	return &OpError{
		Op:   op,
		Kind: KindExecution,
		Path: path,
		Err:  fmt.Errorf("%w: %w", ErrExecution, err),
	}
}

// InvalidInput builds the error reported when an external scalar is missing or malformed.
func InvalidInput(op, field, msg string) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidInput,
		Err:  fmt.Errorf("%s: %s: %w", field, msg, ErrInvalidInput),
	}
}
