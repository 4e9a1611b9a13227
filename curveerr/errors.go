// Package curveerr defines the error taxonomy shared by the curve engine.
//
// Callers distinguish error kinds with errors.As; the engine never recovers
// or falls back internally.
package curveerr

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports malformed input: empty instrument lists,
// non-positive tenors, mismatched array lengths, inverted forward intervals.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// UnknownStrategyError reports a lookup miss against a strategy registry or
// the index catalog. Available holds the full set of registered names.
type UnknownStrategyError struct {
	Kind      string // "interpolation", "day count", "compounding", "bootstrapper", "index"
	Name      string
	Available []string
}

func (e *UnknownStrategyError) Error() string {
	avail := append([]string(nil), e.Available...)
	sort.Strings(avail)
	return fmt.Sprintf("unknown %s %q (available: %s)", e.Kind, e.Name, strings.Join(avail, ", "))
}

// ConvergenceError reports a root-finder that failed to bracket or converge,
// including after the widened-bracket retry.
type ConvergenceError struct {
	Msg string
}

func (e *ConvergenceError) Error() string { return e.Msg }

// Convergencef builds a ConvergenceError with a formatted message.
func Convergencef(format string, args ...any) *ConvergenceError {
	return &ConvergenceError{Msg: fmt.Sprintf(format, args...)}
}
