package std

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/isaque468/finagent/pkg/config"
	"github.com/isaque468/finagent/pkg/fincalc"
	"github.com/isaque468/finagent/pkg/tools"
)

// PercentTool computes the three percentage operations.
type PercentTool struct {
	description string
}

// NewPercentTool creates the percentage calculator tool.
func NewPercentTool(cfg config.ToolConfig) *PercentTool {
	description := cfg.Description
	if description == "" {
		description = "Calculadora de porcentagem. Operações: " +
			"'percent_of' (quanto é A% de B), " +
			"'percent_of_total' (A é quantos % de B), " +
			"'percent_change' (variação percentual de A para B)."
	}
	return &PercentTool{description: description}
}

// Definition returns the function-calling definition.
func (t *PercentTool) Definition() tools.ToolDefinition {
	return tools.ToolDefinition{
		Name:        "calc_percentage",
		Description: t.description,
		Parameters: tools.JSONSchema{
			"type": "object",
			"properties": map[string]interface{}{
				"operation": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"percent_of", "percent_of_total", "percent_change"},
					"description": "Operação de porcentagem a executar",
				},
				"a": map[string]interface{}{
					"type":        "number",
					"description": "Primeiro operando (o percentual em percent_of, o valor parcial em percent_of_total, o valor inicial em percent_change)",
				},
				"b": map[string]interface{}{
					"type":        "number",
					"description": "Segundo operando (a base em percent_of, o total em percent_of_total, o valor final em percent_change)",
				},
			},
			"required": []string{"operation", "a", "b"},
		},
	}
}

// Execute runs the tool under the "raw JSON in, string out" contract.
func (t *PercentTool) Execute(ctx context.Context, argsJSON string) (string, error) {
	var args struct {
		Operation string  `json:"operation"`
		A         float64 `json:"a"`
		B         float64 `json:"b"`
	}
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return "", fmt.Errorf("calc_percentage: invalid arguments: %w", err)
	}

	op, err := fincalc.ParsePercentOp(args.Operation)
	if err != nil {
		return fmt.Sprintf("Operação %q não suportada. Use: percent_of, percent_of_total, percent_change.", args.Operation), nil
	}

	result, err := fincalc.Percentage(op, args.A, args.B)
	if err != nil {
		if errors.Is(err, fincalc.ErrDivisionByZero) {
			return fmt.Sprintf("Divisão por zero: %v.", err), nil
		}
		if errors.Is(err, fincalc.ErrInvalidInput) {
			return fmt.Sprintf("Entrada inválida: %v.", err), nil
		}
		return "", err
	}

	switch op {
	case fincalc.PercentOf:
		return fmt.Sprintf("%.2f%% de %.2f = %.2f", args.A, args.B, result), nil
	case fincalc.PercentOfTotal:
		return fmt.Sprintf("%.2f é %.2f%% de %.2f", args.A, result, args.B), nil
	default:
		return fmt.Sprintf("Variação percentual de %.2f para %.2f = %.2f%%", args.A, args.B, result), nil
	}
}
