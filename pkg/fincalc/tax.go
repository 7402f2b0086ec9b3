package fincalc

import (
	"fmt"
	"math"
)

// TaxBracket is one row of the progressive income tax table.
//
// UpperBound is inclusive: an income exactly on the boundary is taxed in
// the lower bracket, matching the official IRPF table. The last bracket
// uses +Inf as its upper bound so the table covers [0, +Inf) with no
// gaps or overlaps.
type TaxBracket struct {
	UpperBound float64 // inclusive upper bound, annual income in BRL
	Rate       float64 // marginal rate as a fraction
	Deduction  float64 // fixed deduction in BRL
	Label      string  // human-readable bracket name
}

// Brackets2024 is the official 2024 Brazilian annual IRPF table.
//
// Loaded once as constant data; never re-fetched or mutated at runtime.
// Rates are non-decreasing with bracket index.
var Brackets2024 = []TaxBracket{
	{UpperBound: 26963.20, Rate: 0, Deduction: 0, Label: "Isento"},
	{UpperBound: 33919.80, Rate: 0.075, Deduction: 2022.24, Label: "7,5%"},
	{UpperBound: 45012.60, Rate: 0.15, Deduction: 4566.23, Label: "15%"},
	{UpperBound: 55976.16, Rate: 0.225, Deduction: 7942.17, Label: "22,5%"},
	{UpperBound: math.Inf(1), Rate: 0.275, Deduction: 10740.98, Label: "27,5%"},
}

// TaxResult carries the full breakdown of an income tax computation.
type TaxResult struct {
	Income        float64 // gross annual income
	Bracket       string  // label of the bracket the income fell into
	Rate          float64 // marginal rate applied
	Deduction     float64 // fixed deduction applied
	TaxDue        float64 // tax owed, clamped to >= 0, 2 decimals
	NetIncome     float64 // income minus tax due, 2 decimals
	EffectiveRate float64 // tax due as a percent of income, 2 decimals
}

// IncomeTax computes the 2024 Brazilian income tax for a gross annual
// income.
//
// The bracket containing the income is looked up in Brackets2024, then
// tax = income*rate - deduction, clamped to be non-negative. Income
// below the first taxable bracket yields zero tax.
//
// Returns ErrInvalidInput when income is negative or not finite.
func IncomeTax(income float64) (TaxResult, error) {
	if math.IsNaN(income) || math.IsInf(income, 0) {
		return TaxResult{}, fmt.Errorf("%w: income must be a finite number, got %v", ErrInvalidInput, income)
	}
	if income < 0 {
		return TaxResult{}, fmt.Errorf("%w: income cannot be negative, got %.2f", ErrInvalidInput, income)
	}

	bracket := Brackets2024[len(Brackets2024)-1]
	for _, b := range Brackets2024 {
		if income <= b.UpperBound {
			bracket = b
			break
		}
	}

	due := Round2(math.Max(0, income*bracket.Rate-bracket.Deduction))

	result := TaxResult{
		Income:    income,
		Bracket:   bracket.Label,
		Rate:      bracket.Rate,
		Deduction: bracket.Deduction,
		TaxDue:    due,
		NetIncome: Round2(income - due),
	}
	if income > 0 {
		result.EffectiveRate = Round2(due / income * 100)
	}
	return result, nil
}
