package fincalc

import (
	"github.com/dustin/go-humanize"
)

// FormatBRL renders a monetary value as a Brazilian real amount with
// thousands grouping and exactly two decimals, e.g. "R$ 28,559.70".
func FormatBRL(v float64) string {
	return "R$ " + humanize.FormatFloat("#,###.##", v)
}

// FormatPercent renders a fraction rate as a percent with up to two
// decimals, e.g. 0.075 -> "7.5%".
func FormatPercent(rate float64) string {
	return humanize.FtoaWithDigits(rate*100, 2) + "%"
}
