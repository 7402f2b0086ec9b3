package agent

import (
	"math"
	"testing"
)

func TestDetectIntent(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"income tax", "Calcule o imposto de renda de 50000", IntentIncomeTax},
		{"income tax abbreviation", "quanto de IR de 80 mil?", IntentIncomeTax},
		{"compound interest", "juros compostos de 10000 a 10% por 5 anos", IntentCompoundInterest},
		{"simple interest", "quanto rende em juros simples?", IntentCompoundInterest},
		{"percentage", "quanto é 15% de 200?", IntentPercentage},
		{"papers", "busque papers sobre transformers", IntentPaperSearch},
		{"arxiv", "procure no arxiv sobre attention", IntentPaperSearch},
		{"web", "quais as notícias de hoje?", IntentWebSearch},
		{"unknown", "conte uma piada", IntentUnknown},
		{"case insensitive", "IMPOSTO DE RENDA de 30 mil", IntentIncomeTax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectIntent(tt.message); got != tt.want {
				t.Errorf("DetectIntent(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractValues(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		wantMoney   float64
		hasMoney    bool
		wantPercent float64
		hasPercent  bool
		wantPeriods int
		hasPeriods  bool
	}{
		{
			name:      "brazilian thousands",
			message:   "imposto de renda de R$ 50.000",
			wantMoney: 50000, hasMoney: true,
		},
		{
			name:      "thousands with comma decimals",
			message:   "renda de R$ 10.000,50",
			wantMoney: 10000.50, hasMoney: true,
		},
		{
			name:      "full interest query",
			message:   "juros compostos de R$ 10.000 a 8,5% por 5 anos",
			wantMoney: 10000, hasMoney: true,
			wantPercent: 8.5, hasPercent: true,
			wantPeriods: 5, hasPeriods: true,
		},
		{
			name:      "percent not mistaken for money",
			message:   "quanto é 15% de 10.000?",
			wantMoney: 10000, hasMoney: true,
			wantPercent: 15, hasPercent: true,
		},
		{
			name:        "months",
			message:     "por 18 meses",
			wantPeriods: 18, hasPeriods: true,
		},
		{
			name:    "no numbers",
			message: "calcule meu imposto",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractValues(tt.message)

			if got.HasMoney != tt.hasMoney {
				t.Fatalf("HasMoney = %v, want %v", got.HasMoney, tt.hasMoney)
			}
			if tt.hasMoney && math.Abs(got.Money-tt.wantMoney) > 1e-9 {
				t.Errorf("Money = %v, want %v", got.Money, tt.wantMoney)
			}

			if got.HasPercent != tt.hasPercent {
				t.Fatalf("HasPercent = %v, want %v", got.HasPercent, tt.hasPercent)
			}
			if tt.hasPercent && math.Abs(got.Percent-tt.wantPercent) > 1e-9 {
				t.Errorf("Percent = %v, want %v", got.Percent, tt.wantPercent)
			}

			if got.HasPeriods != tt.hasPeriods {
				t.Fatalf("HasPeriods = %v, want %v", got.HasPeriods, tt.hasPeriods)
			}
			if tt.hasPeriods && got.Periods != tt.wantPeriods {
				t.Errorf("Periods = %d, want %d", got.Periods, tt.wantPeriods)
			}
		})
	}
}

func TestParseBRLNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"50.000", 50000, false},
		{"10.000,50", 10000.50, false},
		{"1.234.567", 1234567, false},
		{"8,5", 8.5, false},
		{"0.5", 0.5, false},
		{"200", 200, false},
		{"", 0, true},
		{",", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBRLNumber(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseBRLNumber(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("parseBRLNumber(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
