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

// InterestTool computes compound or simple interest.
//
// The rate argument is a percent per period (12 means 12%), matching how
// users phrase it; the conversion to a fraction happens here.
type InterestTool struct {
	description string
}

// NewInterestTool creates the interest calculator tool.
func NewInterestTool(cfg config.ToolConfig) *InterestTool {
	description := cfg.Description
	if description == "" {
		description = "Calculadora de juros. Tipos: 'juros_compostos' (montante = principal * (1+taxa)^periodos) " +
			"e 'juros_simples' (juros = principal * taxa * periodos). " +
			"A taxa é informada em percentual por período (12 significa 12%)."
	}
	return &InterestTool{description: description}
}

// Definition returns the function-calling definition.
func (t *InterestTool) Definition() tools.ToolDefinition {
	return tools.ToolDefinition{
		Name:        "calc_interest",
		Description: t.description,
		Parameters: tools.JSONSchema{
			"type": "object",
			"properties": map[string]interface{}{
				"type": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"juros_compostos", "juros_simples"},
					"description": "Tipo de cálculo de juros",
				},
				"principal": map[string]interface{}{
					"type":        "number",
					"description": "Capital inicial em reais",
				},
				"rate": map[string]interface{}{
					"type":        "number",
					"description": "Taxa de juros em percentual por período (ex: 12 para 12%)",
				},
				"periods": map[string]interface{}{
					"type":        "integer",
					"description": "Número de períodos",
				},
			},
			"required": []string{"type", "principal", "rate", "periods"},
		},
	}
}

// Execute runs the tool under the "raw JSON in, string out" contract.
func (t *InterestTool) Execute(ctx context.Context, argsJSON string) (string, error) {
	var args struct {
		Type      string  `json:"type"`
		Principal float64 `json:"principal"`
		Rate      float64 `json:"rate"`
		Periods   int     `json:"periods"`
	}
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return "", fmt.Errorf("calc_interest: invalid arguments: %w", err)
	}

	rate := args.Rate / 100 // percent to fraction

	var (
		result fincalc.InterestResult
		err    error
		title  string
	)
	switch args.Type {
	case "juros_compostos":
		title = "Juros Compostos"
		result, err = fincalc.CompoundInterest(args.Principal, rate, args.Periods)
	case "juros_simples":
		title = "Juros Simples"
		result, err = fincalc.SimpleInterest(args.Principal, rate, args.Periods)
	default:
		return fmt.Sprintf("Tipo %q não suportado. Use: juros_compostos, juros_simples.", args.Type), nil
	}

	if err != nil {
		if errors.Is(err, fincalc.ErrInvalidInput) {
			return fmt.Sprintf("Entrada inválida: %v.", err), nil
		}
		return "", err
	}

	return formatInterestReport(title, args.Rate, result), nil
}

func formatInterestReport(title string, ratePercent float64, r fincalc.InterestResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "Capital inicial: %s\n", fincalc.FormatBRL(r.Principal))
	fmt.Fprintf(&b, "Taxa: %.2f%% ao período\n", ratePercent)
	fmt.Fprintf(&b, "Períodos: %d\n", r.Periods)
	fmt.Fprintf(&b, "Montante final: %s\n", fincalc.FormatBRL(r.FinalAmount))
	fmt.Fprintf(&b, "Juros: %s", fincalc.FormatBRL(r.Interest))

	if r.Principal > 0 {
		fmt.Fprintf(&b, "\nRendimento total: %.2f%%", (r.FinalAmount/r.Principal-1)*100)
	}

	return b.String()
}
