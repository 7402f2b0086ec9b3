// FinAgent TUI application.
// Interactive chat with the financial assistant.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/isaque468/finagent/internal/agent"
	"github.com/isaque468/finagent/internal/ui"
	"github.com/isaque468/finagent/pkg/arxiv"
	"github.com/isaque468/finagent/pkg/config"
	"github.com/isaque468/finagent/pkg/history"
	llmopenai "github.com/isaque468/finagent/pkg/llm/openai"
	"github.com/isaque468/finagent/pkg/state"
	"github.com/isaque468/finagent/pkg/tavily"
	"github.com/isaque468/finagent/pkg/tools"
	"github.com/isaque468/finagent/pkg/tools/std"
	"github.com/isaque468/finagent/pkg/utils"
)

// Version is filled in at build time.
var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; the environment may already carry the keys.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	if err := utils.InitLogger(); err != nil {
		log.Printf("Warning: failed to init logger: %v", err)
	}
	defer utils.Close()

	utils.Info("application started", "version", Version)

	cfgPath, err := config.Find()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		utils.Error("failed to load config", "error", err, "path", cfgPath)
		return err
	}
	utils.Info("config loaded", "path", cfgPath, "default_model", cfg.Models.DefaultChat)
	logKeysInfo(cfg)

	modelDef, ok := cfg.GetChatModel("")
	if !ok {
		return fmt.Errorf("default chat model %q is not defined", cfg.Models.DefaultChat)
	}
	provider := llmopenai.NewClient(modelDef)

	registry, err := buildRegistry(cfg)
	if err != nil {
		return fmt.Errorf("tool registry setup failed: %w", err)
	}
	utils.Info("tools registered", "names", fmt.Sprint(registry.Names()))

	coreState := state.NewCoreState()

	agentCfg := agent.Config{
		LLM:          provider,
		Registry:     registry,
		State:        coreState,
		SystemPrompt: cfg.App.SystemPrompt,
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(cfg.History.Path)
		if err != nil {
			utils.Error("history store unavailable", "error", err, "path", cfg.History.Path)
			log.Printf("Warning: history disabled: %v", err)
		} else {
			defer store.Close()
			agentCfg.Store = store
			agentCfg.SessionID = time.Now().Format("2006-01-02-15-04-05")
		}
	}

	orchestrator, err := agent.New(agentCfg)
	if err != nil {
		return fmt.Errorf("agent creation failed: %w", err)
	}

	// No AltScreen so the terminal keeps mouse selection and scrollback.
	p := tea.NewProgram(ui.InitialModel(orchestrator, modelDef.ModelName))
	if _, err := p.Run(); err != nil {
		utils.Error("tui error", "error", err)
		return fmt.Errorf("tui error: %w", err)
	}

	utils.Info("application exited normally")
	return nil
}

// buildRegistry registers every enabled tool. The web search tool is
// registered even without a Tavily key so the model can tell the user
// how to enable it.
func buildRegistry(cfg *config.AppConfig) (*tools.Registry, error) {
	registry := tools.NewRegistry()

	type namedTool struct {
		name  string
		build func(tc config.ToolConfig) (tools.Tool, error)
	}

	arxivBuild := func(tc config.ToolConfig) (tools.Tool, error) {
		client, err := arxiv.NewFromConfig(cfg.Arxiv)
		if err != nil {
			return nil, err
		}
		return std.NewArxivSearchTool(client, tc), nil
	}

	tavilyBuild := func(tc config.ToolConfig) (tools.Tool, error) {
		var client *tavily.Client
		if cfg.Tavily.APIKey != "" {
			c, err := tavily.NewFromConfig(cfg.Tavily)
			if err != nil {
				return nil, err
			}
			client = c
		} else {
			utils.Info("tavily key missing, web search degraded")
		}
		return std.NewWebSearchTool(client, tc), nil
	}

	all := []namedTool{
		{"calc_income_tax", func(tc config.ToolConfig) (tools.Tool, error) { return std.NewIncomeTaxTool(tc), nil }},
		{"calc_interest", func(tc config.ToolConfig) (tools.Tool, error) { return std.NewInterestTool(tc), nil }},
		{"calc_percentage", func(tc config.ToolConfig) (tools.Tool, error) { return std.NewPercentTool(tc), nil }},
		{"search_papers", arxivBuild},
		{"web_search", tavilyBuild},
	}

	for _, nt := range all {
		if !cfg.ToolEnabled(nt.name) {
			utils.Info("tool disabled by config", "tool", nt.name)
			continue
		}
		tool, err := nt.build(cfg.Tools[nt.name])
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", nt.name, err)
		}
		if err := registry.Register(tool); err != nil {
			return nil, fmt.Errorf("tool %s: %w", nt.name, err)
		}
	}

	return registry, nil
}

// maskKey shows only a key prefix for log identification.
func maskKey(key string) string {
	if key == "" {
		return "NOT SET"
	}
	if len(key) <= 8 {
		return key + "..."
	}
	return key[:8] + "..."
}

// logKeysInfo logs which API keys were picked up, masked.
func logKeysInfo(cfg *config.AppConfig) {
	if def, ok := cfg.GetChatModel(""); ok {
		utils.Info("api key status", "model", def.ModelName, "key", maskKey(def.APIKey))
	}
	utils.Info("api key status", "service", "tavily", "key", maskKey(cfg.Tavily.APIKey))
}
