package orekit

import "fmt"

// Precondition names carried by propagation failures, so callers can tell
// user error from model limitation.
const (
	PreconditionDate          = "date"
	PreconditionFrame         = "frame"
	PreconditionOrbitalRegime = "orbital-regime"
)

// PropagationError reports a domain-validity failure: the inputs are
// outside the regime a model or provider supports. It names the violated
// precondition. The propagator that returned it stays usable with valid
// inputs.
type PropagationError struct {
	Precondition string
	msg          string
}

func (e PropagationError) Error() string {
	return fmt.Sprintf("propagation failed (%s): %s", e.Precondition, e.msg)
}

func newPropagationError(precondition, format string, args ...interface{}) PropagationError {
	return PropagationError{precondition, fmt.Sprintf(format, args...)}
}

// ConvergenceError reports that an iterative solve did not converge within
// its configured iteration budget. It is never silently approximated away.
type ConvergenceError struct {
	What       string
	Iterations int
}

func (e ConvergenceError) Error() string {
	return fmt.Sprintf("%s did not converge within %d iterations", e.What, e.Iterations)
}

// DateOutOfRangeError reports a query outside a data provider's inclusive
// validity window. Providers never extrapolate.
type DateOutOfRangeError struct {
	Date     AbsoluteDate
	Min, Max AbsoluteDate
}

func (e DateOutOfRangeError) Error() string {
	return fmt.Sprintf("date %s outside validity window [%s, %s]", e.Date, e.Min, e.Max)
}
