package std

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/isaque468/finagent/pkg/config"
	"github.com/isaque468/finagent/pkg/tavily"
	"github.com/isaque468/finagent/pkg/tools"
)

// webSearchDisabledMessage is returned when the tool runs without a
// Tavily key, so the model can explain the situation to the user.
const webSearchDisabledMessage = "Busca web não configurada. " +
	"Defina TAVILY_API_KEY no arquivo .env para habilitar " +
	"(chaves em https://tavily.com)."

// WebSearchTool searches the web through the Tavily API.
//
// The client may be nil when no API key is configured; the tool then
// degrades to a configuration hint instead of failing.
type WebSearchTool struct {
	client      *tavily.Client
	description string
}

// NewWebSearchTool creates the web search tool. client may be nil.
func NewWebSearchTool(client *tavily.Client, cfg config.ToolConfig) *WebSearchTool {
	description := cfg.Description
	if description == "" {
		description = "Busca informações atuais na web (notícias, cotações, dados recentes). " +
			"Recebe uma query e retorna os resultados mais relevantes."
	}
	return &WebSearchTool{client: client, description: description}
}

// Definition returns the function-calling definition.
func (t *WebSearchTool) Definition() tools.ToolDefinition {
	return tools.ToolDefinition{
		Name:        "web_search",
		Description: t.description,
		Parameters: tools.JSONSchema{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Termos de busca",
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Número máximo de resultados (padrão definido na configuração)",
				},
			},
			"required": []string{"query"},
		},
	}
}

// Execute runs the tool under the "raw JSON in, string out" contract.
func (t *WebSearchTool) Execute(ctx context.Context, argsJSON string) (string, error) {
	if t.client == nil {
		return webSearchDisabledMessage, nil
	}

	var args struct {
		Query      string `json:"query"`
		MaxResults int    `json:"max_results"`
	}
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return "", fmt.Errorf("web_search: invalid arguments: %w", err)
	}

	resp, err := t.client.Search(ctx, args.Query, args.MaxResults)
	if err != nil {
		return "", fmt.Errorf("web search failed: %w", err)
	}

	if len(resp.Results) == 0 && resp.Answer == "" {
		return fmt.Sprintf("Nenhum resultado encontrado para: %q", args.Query), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Busca web para %q:\n", args.Query)
	if resp.Answer != "" {
		fmt.Fprintf(&b, "\nResumo: %s\n", resp.Answer)
	}
	for i, r := range resp.Results {
		fmt.Fprintf(&b, "\nResultado %d\n", i+1)
		fmt.Fprintf(&b, "Título: %s\n", r.Title)
		fmt.Fprintf(&b, "Link: %s\n", r.URL)
		fmt.Fprintf(&b, "Conteúdo: %s\n", truncateText(r.Content, maxSummaryChars))
	}

	return strings.TrimRight(b.String(), "\n"), nil
}
