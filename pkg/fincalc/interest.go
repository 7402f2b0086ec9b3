package fincalc

import (
	"fmt"
	"math"
)

// InterestResult holds the outcome of an interest computation.
type InterestResult struct {
	Principal   float64 // initial capital
	Rate        float64 // rate per period, as a fraction
	Periods     int     // number of compounding periods
	FinalAmount float64 // principal plus accrued interest, 2 decimals
	Interest    float64 // accrued interest, 2 decimals
}

// validateInterestInput checks the common preconditions for interest
// computations: principal >= 0, rate >= -1 and both finite, periods >= 0.
func validateInterestInput(principal, rate float64, periods int) error {
	if math.IsNaN(principal) || math.IsInf(principal, 0) {
		return fmt.Errorf("%w: principal must be a finite number, got %v", ErrInvalidInput, principal)
	}
	if principal < 0 {
		return fmt.Errorf("%w: principal cannot be negative, got %.2f", ErrInvalidInput, principal)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("%w: rate must be a finite number, got %v", ErrInvalidInput, rate)
	}
	if rate < -1 {
		return fmt.Errorf("%w: rate cannot be below -1 (a total loss), got %v", ErrInvalidInput, rate)
	}
	if periods < 0 {
		return fmt.Errorf("%w: periods cannot be negative, got %d", ErrInvalidInput, periods)
	}
	return nil
}

// CompoundInterest computes the final amount and accrued interest of a
// principal compounded over a number of periods.
//
//	final = principal * (1 + rate)^periods
//
// rate is a fraction per period (0.12 means 12% per period) and may be
// zero or negative down to -1. periods = 0 returns the principal
// unchanged with zero interest. Both results are rounded to 2 decimals.
//
// Returns ErrInvalidInput when principal < 0, rate < -1, periods < 0 or
// any value is not finite.
func CompoundInterest(principal, rate float64, periods int) (InterestResult, error) {
	if err := validateInterestInput(principal, rate, periods); err != nil {
		return InterestResult{}, err
	}

	final := Round2(principal * math.Pow(1+rate, float64(periods)))

	return InterestResult{
		Principal:   principal,
		Rate:        rate,
		Periods:     periods,
		FinalAmount: final,
		Interest:    Round2(final - principal),
	}, nil
}

// SimpleInterest computes non-compounding interest over a number of
// periods.
//
//	interest = principal * rate * periods
//
// Validation and rounding follow CompoundInterest.
func SimpleInterest(principal, rate float64, periods int) (InterestResult, error) {
	if err := validateInterestInput(principal, rate, periods); err != nil {
		return InterestResult{}, err
	}

	interest := Round2(principal * rate * float64(periods))

	return InterestResult{
		Principal:   principal,
		Rate:        rate,
		Periods:     periods,
		FinalAmount: Round2(principal + interest),
		Interest:    interest,
	}, nil
}
