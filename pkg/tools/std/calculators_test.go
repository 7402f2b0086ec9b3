package std

import (
	"context"
	"strings"
	"testing"

	"github.com/isaque468/finagent/pkg/config"
	"github.com/isaque468/finagent/pkg/tools"
)

func TestIncomeTaxToolExecute(t *testing.T) {
	tool := NewIncomeTaxTool(config.ToolConfig{})
	ctx := context.Background()

	tests := []struct {
		name     string
		args     string
		contains []string
	}{
		{
			name: "taxable income",
			args: `{"income": 50000}`,
			contains: []string{
				"Imposto de Renda 2024",
				"R$ 3,307.83",
				"22,5%",
				"Renda líquida: R$ 46,692.17",
				"Alíquota efetiva: 6.62%",
			},
		},
		{
			name:     "exempt income",
			args:     `{"income": 20000}`,
			contains: []string{"Isento de imposto de renda", "Imposto devido: R$ 0.00"},
		},
		{
			name:     "negative income reported as message",
			args:     `{"income": -1}`,
			contains: []string{"Entrada inválida", "não negativo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tool.Execute(ctx, tt.args)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("result must contain %q, got:\n%s", want, got)
				}
			}
		})
	}

	if _, err := tool.Execute(ctx, "{not json"); err == nil {
		t.Error("expected error for malformed JSON args")
	}
}

func TestInterestToolExecute(t *testing.T) {
	tool := NewInterestTool(config.ToolConfig{})
	ctx := context.Background()

	got, err := tool.Execute(ctx, `{"type": "juros_compostos", "principal": 10000, "rate": 12, "periods": 3}`)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"Juros Compostos", "R$ 14,049.28", "Juros: R$ 4,049.28", "40.49%"} {
		if !strings.Contains(got, want) {
			t.Errorf("result must contain %q, got:\n%s", want, got)
		}
	}

	got, err = tool.Execute(ctx, `{"type": "juros_simples", "principal": 10000, "rate": 12, "periods": 3}`)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(got, "R$ 13,600.00") {
		t.Errorf("simple interest result wrong:\n%s", got)
	}

	got, err = tool.Execute(ctx, `{"type": "juros_continuos", "principal": 1, "rate": 1, "periods": 1}`)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(got, "não suportado") {
		t.Errorf("unknown type must produce a hint, got:\n%s", got)
	}

	got, err = tool.Execute(ctx, `{"type": "juros_compostos", "principal": -5, "rate": 10, "periods": 1}`)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(got, "Entrada inválida") {
		t.Errorf("invalid input must produce a message, got:\n%s", got)
	}
}

func TestPercentToolExecute(t *testing.T) {
	tool := NewPercentTool(config.ToolConfig{})
	ctx := context.Background()

	tests := []struct {
		name string
		args string
		want string
	}{
		{"percent of", `{"operation": "percent_of", "a": 50, "b": 200}`, "= 100.00"},
		{"percent of total", `{"operation": "percent_of_total", "a": 50, "b": 200}`, "é 25.00% de"},
		{"percent change", `{"operation": "percent_change", "a": 100, "b": 150}`, "= 50.00%"},
		{"division by zero", `{"operation": "percent_change", "a": 0, "b": 150}`, "Divisão por zero"},
		{"unknown operation", `{"operation": "modulo", "a": 1, "b": 2}`, "não suportada"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tool.Execute(ctx, tt.args)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("result must contain %q, got:\n%s", tt.want, got)
			}
		})
	}
}

// All calculator tool definitions must pass registry validation.
func TestCalculatorDefinitionsRegister(t *testing.T) {
	registry := tools.NewRegistry()

	for _, tool := range []tools.Tool{
		NewIncomeTaxTool(config.ToolConfig{}),
		NewInterestTool(config.ToolConfig{}),
		NewPercentTool(config.ToolConfig{}),
	} {
		if err := registry.Register(tool); err != nil {
			t.Errorf("Register(%s) error = %v", tool.Definition().Name, err)
		}
	}

	want := []string{"calc_income_tax", "calc_interest", "calc_percentage"}
	got := registry.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}
