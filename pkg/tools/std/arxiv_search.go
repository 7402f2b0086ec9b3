package std

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/isaque468/finagent/pkg/arxiv"
	"github.com/isaque468/finagent/pkg/config"
	"github.com/isaque468/finagent/pkg/tools"
)

const (
	// arXiv abstracts run long; the model only needs the opening.
	maxSummaryChars = 250
	// Author lists are cut after this many names, followed by "et al.".
	maxAuthorsShown = 3
)

// ArxivSearchTool searches academic papers on arXiv.
type ArxivSearchTool struct {
	client      *arxiv.Client
	description string
	maxResults  int
}

// NewArxivSearchTool creates the paper search tool on top of the arXiv
// SDK client.
func NewArxivSearchTool(client *arxiv.Client, cfg config.ToolConfig) *ArxivSearchTool {
	description := cfg.Description
	if description == "" {
		description = "Busca artigos científicos no arXiv por relevância. " +
			"Recebe uma query em inglês e retorna título, autores, categoria, data, link e resumo."
	}
	maxResults := cfg.MaxResults
	if maxResults == 0 {
		maxResults = client.MaxResults()
	}
	return &ArxivSearchTool{
		client:      client,
		description: description,
		maxResults:  maxResults,
	}
}

// Definition returns the function-calling definition.
func (t *ArxivSearchTool) Definition() tools.ToolDefinition {
	return tools.ToolDefinition{
		Name:        "search_papers",
		Description: t.description,
		Parameters: tools.JSONSchema{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Termos de busca, preferencialmente em inglês (ex: 'machine learning')",
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Número máximo de artigos (padrão definido na configuração)",
				},
			},
			"required": []string{"query"},
		},
	}
}

// Execute runs the tool under the "raw JSON in, string out" contract.
func (t *ArxivSearchTool) Execute(ctx context.Context, argsJSON string) (string, error) {
	var args struct {
		Query      string `json:"query"`
		MaxResults int    `json:"max_results"`
	}
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return "", fmt.Errorf("search_papers: invalid arguments: %w", err)
	}

	maxResults := args.MaxResults
	if maxResults <= 0 {
		maxResults = t.maxResults
	}

	papers, err := t.client.Search(ctx, args.Query, maxResults)
	if err != nil {
		return "", fmt.Errorf("arxiv search failed: %w", err)
	}

	if len(papers) == 0 {
		return fmt.Sprintf("Nenhum artigo encontrado para: %q", args.Query), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Resultados do arXiv para %q:\n", args.Query)
	for i, p := range papers {
		fmt.Fprintf(&b, "\nArtigo %d\n", i+1)
		fmt.Fprintf(&b, "Título: %s\n", p.Title)
		fmt.Fprintf(&b, "Autores: %s\n", formatAuthors(p.Authors))
		if p.Category != "" {
			fmt.Fprintf(&b, "Categoria: %s\n", p.Category)
		}
		if !p.Published.IsZero() {
			fmt.Fprintf(&b, "Data: %s\n", p.Published.Format("02/01/2006"))
		}
		fmt.Fprintf(&b, "Link: %s\n", p.URL)
		fmt.Fprintf(&b, "Resumo: %s\n", truncateText(p.Summary, maxSummaryChars))
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func formatAuthors(authors []string) string {
	if len(authors) == 0 {
		return "desconhecidos"
	}
	if len(authors) > maxAuthorsShown {
		return strings.Join(authors[:maxAuthorsShown], ", ") + " et al."
	}
	return strings.Join(authors, ", ")
}

func truncateText(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	// Avoid breaking inside a UTF-8 sequence or a word.
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}
