package fincalc

import "math"

// Round2 rounds v to 2 decimal places, half away from zero.
//
// This is the single rounding convention for every monetary and percent
// value the package returns. The source table publishes deductions with
// centavo precision, so two decimals lose nothing.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
