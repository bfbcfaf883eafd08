package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a state vector with NaN or Inf components.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrStepTooSmall indicates the adaptive substep collapsed below the
	// minimum resolvable size for the span.
	ErrStepTooSmall = errors.New("dynamo: adaptive substep below minimum")

	// ErrStepBudget indicates the adaptive integrator exhausted its substep
	// budget before reaching the end of the span.
	ErrStepBudget = errors.New("dynamo: substep budget exhausted")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")
)

// StepError wraps an integration failure with the time and substep size
// at which it occurred.
type StepError struct {
	T       float64
	H       float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%v (t=%.6g, h=%.6g)", e.Wrapped, e.T, e.H)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
