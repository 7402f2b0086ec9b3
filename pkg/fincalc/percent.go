package fincalc

import (
	"fmt"
	"math"
)

// PercentOp enumerates the supported percentage operations.
type PercentOp int

const (
	// PercentOf answers "what is A% of B".
	PercentOf PercentOp = iota
	// PercentOfTotal answers "A is what percent of B".
	PercentOfTotal
	// PercentChange answers "what is the percent change from A to B".
	PercentChange
)

// String returns the wire name of the operation, as exposed to the LLM
// in tool schemas.
func (op PercentOp) String() string {
	switch op {
	case PercentOf:
		return "percent_of"
	case PercentOfTotal:
		return "percent_of_total"
	case PercentChange:
		return "percent_change"
	default:
		return fmt.Sprintf("percent_op(%d)", int(op))
	}
}

// ParsePercentOp converts a wire name back into a PercentOp.
//
// Returns ErrInvalidInput for unknown names.
func ParsePercentOp(s string) (PercentOp, error) {
	switch s {
	case "percent_of":
		return PercentOf, nil
	case "percent_of_total":
		return PercentOfTotal, nil
	case "percent_change":
		return PercentChange, nil
	default:
		return 0, fmt.Errorf("%w: unknown percentage operation %q", ErrInvalidInput, s)
	}
}

// Percentage computes one of the three percentage operations over
// operands a and b, rounded to 2 decimals.
//
//	PercentOf:       b * a / 100        (a is the percent)
//	PercentOfTotal:  a / b * 100        (b is the total; b == 0 errors)
//	PercentChange:   (b - a) / a * 100  (a is the base;  a == 0 errors)
//
// Returns ErrDivisionByZero when the divisor operand is zero and
// ErrInvalidInput when an operand is not finite.
func Percentage(op PercentOp, a, b float64) (float64, error) {
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return 0, fmt.Errorf("%w: operands must be finite numbers, got a=%v b=%v", ErrInvalidInput, a, b)
	}

	switch op {
	case PercentOf:
		return Round2(b * a / 100), nil
	case PercentOfTotal:
		if b == 0 {
			return 0, fmt.Errorf("%w: cannot compute %v as a percent of zero", ErrDivisionByZero, a)
		}
		return Round2(a / b * 100), nil
	case PercentChange:
		if a == 0 {
			return 0, fmt.Errorf("%w: cannot compute percent change from zero", ErrDivisionByZero)
		}
		return Round2((b - a) / a * 100), nil
	default:
		return 0, fmt.Errorf("%w: unknown percentage operation %d", ErrInvalidInput, int(op))
	}
}
