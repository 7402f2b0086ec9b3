package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/isaque468/finagent/pkg/utils"
)

const (
	percentageHelp = "Para calcular porcentagem, preciso do valor base (ex: 10.000) " +
		"e do percentual (ex: 15%). Exemplo: \"Quanto é 15% de 10.000?\""

	interestHelp = "Para calcular juros compostos, preciso do capital inicial (ex: R$ 10.000), " +
		"da taxa (ex: 10% ao ano) e do período (ex: 5 anos). " +
		"Exemplo: \"Calcule juros compostos de R$ 10.000 a 10% por 5 anos\""

	incomeTaxHelp = "Por favor, informe o valor da renda anual para calcular o imposto de renda."

	fallbackUnavailable = "O modelo de linguagem está indisponível no momento e não reconheci " +
		"um cálculo direto na sua mensagem. Posso calcular imposto de renda, juros compostos, " +
		"porcentagens e buscar artigos no arXiv."
)

// paperQueryNoise strips command words so "busque artigos sobre X"
// leaves only the topic for the arXiv query.
var paperQueryNoise = regexp.MustCompile(`(?i)\b(busque|procure|pesquise|artigos?|científicos?|cientificos?|papers?|sobre|no|arxiv)\b`)

// routeFallback answers a message without the LLM by detecting the
// intent and calling the matching tool directly. It returns ok=false
// when the message does not map to any tool.
func (o *Orchestrator) routeFallback(ctx context.Context, message string) (string, bool) {
	intent := DetectIntent(message)
	if intent == IntentUnknown {
		return fallbackUnavailable, false
	}

	values := ExtractValues(message)
	utils.Info("fallback route", "intent", fmt.Sprint(intent), "message", message)

	switch intent {
	case IntentIncomeTax:
		if !values.HasMoney {
			return incomeTaxHelp, true
		}
		return o.callTool(ctx, "calc_income_tax", map[string]any{"income": values.Money}), true

	case IntentCompoundInterest:
		if !values.HasMoney || !values.HasPercent || !values.HasPeriods {
			return interestHelp, true
		}
		kind := "juros_compostos"
		if strings.Contains(strings.ToLower(message), "juros simples") {
			kind = "juros_simples"
		}
		return o.callTool(ctx, "calc_interest", map[string]any{
			"type":      kind,
			"principal": values.Money,
			"rate":      values.Percent,
			"periods":   values.Periods,
		}), true

	case IntentPercentage:
		if !values.HasMoney || !values.HasPercent {
			return percentageHelp, true
		}
		return o.callTool(ctx, "calc_percentage", map[string]any{
			"operation": "percent_of",
			"a":         values.Percent,
			"b":         values.Money,
		}), true

	case IntentPaperSearch:
		query := strings.TrimSpace(paperQueryNoise.ReplaceAllString(message, ""))
		if query == "" {
			query = message
		}
		return o.callTool(ctx, "search_papers", map[string]any{"query": query}), true

	case IntentWebSearch:
		return o.callTool(ctx, "web_search", map[string]any{"query": message}), true
	}

	return fallbackUnavailable, false
}

// callTool executes a registered tool with marshalled args and folds
// any failure into a user-facing message, since the fallback path has
// no model left to recover with.
func (o *Orchestrator) callTool(ctx context.Context, name string, args map[string]any) string {
	tool, err := o.registry.Get(name)
	if err != nil {
		utils.Error("fallback tool missing", "tool", name, "error", err)
		return fallbackUnavailable
	}

	argsJSON, err := json.Marshal(args)
	if err != nil {
		utils.Error("fallback args marshal failed", "tool", name, "error", err)
		return fallbackUnavailable
	}

	result, err := tool.Execute(ctx, string(argsJSON))
	if err != nil {
		utils.Error("fallback tool failed", "tool", name, "error", err)
		return fmt.Sprintf("A ferramenta %s falhou: %v", name, err)
	}
	return result
}
