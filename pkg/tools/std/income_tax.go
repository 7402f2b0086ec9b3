// Package std provides the standard tools of the assistant: the
// deterministic financial calculators, the arXiv paper search and the
// Tavily web search.
//
// Every tool follows the "raw JSON in, string out" contract: Execute
// receives the argument object exactly as the LLM sent it and returns a
// formatted text the model can relay to the user. Invalid user input
// (negative income, zero divisor) comes back as a descriptive result
// string, not a Go error — the error return is reserved for transport
// and programming failures.
package std

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/isaque468/finagent/pkg/config"
	"github.com/isaque468/finagent/pkg/fincalc"
	"github.com/isaque468/finagent/pkg/tools"
)

// IncomeTaxTool computes the 2024 Brazilian income tax.
type IncomeTaxTool struct {
	description string
}

// NewIncomeTaxTool creates the income tax tool. The description can be
// overridden per deployment via the tool's config.yaml section.
func NewIncomeTaxTool(cfg config.ToolConfig) *IncomeTaxTool {
	description := cfg.Description
	if description == "" {
		description = "Calcula o imposto de renda brasileiro pela tabela progressiva anual de 2024. " +
			"Recebe o rendimento anual bruto em reais e retorna o imposto devido, a faixa, " +
			"a dedução e a alíquota efetiva."
	}
	return &IncomeTaxTool{description: description}
}

// Definition returns the function-calling definition.
func (t *IncomeTaxTool) Definition() tools.ToolDefinition {
	return tools.ToolDefinition{
		Name:        "calc_income_tax",
		Description: t.description,
		Parameters: tools.JSONSchema{
			"type": "object",
			"properties": map[string]interface{}{
				"income": map[string]interface{}{
					"type":        "number",
					"description": "Rendimento anual bruto em reais (ex: 50000)",
				},
			},
			"required": []string{"income"},
		},
	}
}

// Execute runs the tool under the "raw JSON in, string out" contract.
func (t *IncomeTaxTool) Execute(ctx context.Context, argsJSON string) (string, error) {
	var args struct {
		Income float64 `json:"income"`
	}
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return "", fmt.Errorf("calc_income_tax: invalid arguments: %w", err)
	}

	result, err := fincalc.IncomeTax(args.Income)
	if err != nil {
		if errors.Is(err, fincalc.ErrInvalidInput) {
			return fmt.Sprintf("Entrada inválida: %v. O rendimento deve ser um número não negativo.", err), nil
		}
		return "", err
	}

	return FormatTaxReport(result), nil
}

// FormatTaxReport renders a TaxResult as the answer text shown to the
// user.
func FormatTaxReport(r fincalc.TaxResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Cálculo do Imposto de Renda 2024\n")
	fmt.Fprintf(&b, "Rendimento bruto: %s\n", fincalc.FormatBRL(r.Income))
	fmt.Fprintf(&b, "Faixa: %s\n", r.Bracket)
	fmt.Fprintf(&b, "Alíquota: %s\n", fincalc.FormatPercent(r.Rate))
	fmt.Fprintf(&b, "Dedução: %s\n", fincalc.FormatBRL(r.Deduction))
	fmt.Fprintf(&b, "Imposto devido: %s\n", fincalc.FormatBRL(r.TaxDue))
	fmt.Fprintf(&b, "Renda líquida: %s", fincalc.FormatBRL(r.NetIncome))

	if r.TaxDue == 0 {
		b.WriteString("\nIsento de imposto de renda.")
	} else {
		fmt.Fprintf(&b, "\nAlíquota efetiva: %.2f%%", r.EffectiveRate)
	}

	return b.String()
}
