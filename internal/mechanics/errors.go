package mechanics

import (
	"errors"
	"fmt"
)

// Domain errors for force and friction computations.
var (
	// ErrInvalidMass indicates a mass that is zero or negative; no acceleration is defined.
	ErrInvalidMass = errors.New("mechanics: mass must be positive")

	// ErrUnknownProblem indicates a problem name with no registered solver.
	ErrUnknownProblem = errors.New("mechanics: unknown problem")
)

// ParamError wraps an error with the offending parameter.
type ParamError struct {
	Field   string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s=%g: %v", e.Field, e.Value, e.Wrapped)
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
