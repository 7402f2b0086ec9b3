// Package config loads the application configuration from YAML with
// ${VAR} environment expansion for secrets.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig is the root configuration structure. It mirrors config.yaml.
type AppConfig struct {
	Models  ModelsConfig          `yaml:"models"`
	Tools   map[string]ToolConfig `yaml:"tools"`
	Arxiv   ArxivConfig           `yaml:"arxiv"`
	Tavily  TavilyConfig          `yaml:"tavily"`
	History HistoryConfig         `yaml:"history"`
	App     AppSpecific           `yaml:"app"`
}

// ModelsConfig holds the AI model settings.
type ModelsConfig struct {
	DefaultChat string              `yaml:"default_chat"` // alias of the default chat model
	Definitions map[string]ModelDef `yaml:"definitions"`  // model definitions by alias
}

// ModelDef describes one model endpoint.
type ModelDef struct {
	Provider    string        `yaml:"provider"`   // "groq", "openai", ...
	ModelName   string        `yaml:"model_name"` // real name in the API
	APIKey      string        `yaml:"api_key"`    // supports ${VAR}
	BaseURL     string        `yaml:"base_url"`   // OpenAI-compatible endpoint
	MaxTokens   int           `yaml:"max_tokens"`
	Temperature float64       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"` // yaml parses "60s", "1m"
}

// ToolConfig holds per-tool settings.
type ToolConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Description string        `yaml:"description"` // tool description shown to the LLM
	Timeout     time.Duration `yaml:"timeout"`
	MaxResults  int           `yaml:"max_results"` // for search tools
}

// ArxivConfig configures the arXiv API client.
type ArxivConfig struct {
	BaseURL       string `yaml:"base_url"`
	RateLimit     int    `yaml:"rate_limit"`     // requests per minute
	BurstLimit    int    `yaml:"burst_limit"`    // burst for the rate limiter
	RetryAttempts int    `yaml:"retry_attempts"` // retries on transient failures
	Timeout       string `yaml:"timeout"`        // HTTP timeout, e.g. "30s"
	MaxResults    int    `yaml:"max_results"`    // default result count
}

// GetDefaults fills unset ArxivConfig fields with defaults.
//
// The arXiv API asks clients to stay around one request every three
// seconds, hence the conservative default rate limit.
func (c *ArxivConfig) GetDefaults() ArxivConfig {
	result := *c

	if result.BaseURL == "" {
		result.BaseURL = "https://export.arxiv.org"
	}
	if result.RateLimit == 0 {
		result.RateLimit = 20 // requests per minute
	}
	if result.BurstLimit == 0 {
		result.BurstLimit = 1
	}
	if result.RetryAttempts == 0 {
		result.RetryAttempts = 3
	}
	if result.Timeout == "" {
		result.Timeout = "30s"
	}
	if result.MaxResults == 0 {
		result.MaxResults = 3
	}

	return result
}

// TavilyConfig configures the Tavily web search client.
type TavilyConfig struct {
	APIKey      string `yaml:"api_key"` // supports ${VAR}; empty disables web search
	BaseURL     string `yaml:"base_url"`
	Timeout     string `yaml:"timeout"`
	MaxResults  int    `yaml:"max_results"`
	SearchDepth string `yaml:"search_depth"` // "basic" or "advanced"
}

// GetDefaults fills unset TavilyConfig fields with defaults.
func (c *TavilyConfig) GetDefaults() TavilyConfig {
	result := *c

	if result.BaseURL == "" {
		result.BaseURL = "https://api.tavily.com"
	}
	if result.Timeout == "" {
		result.Timeout = "30s"
	}
	if result.MaxResults == 0 {
		result.MaxResults = 3
	}
	if result.SearchDepth == "" {
		result.SearchDepth = "basic"
	}

	return result
}

// HistoryConfig configures the optional SQLite session store.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // database file path
}

// AppSpecific holds general application settings.
type AppSpecific struct {
	Debug        bool   `yaml:"debug"`
	SystemPrompt string `yaml:"system_prompt"` // overrides the built-in agent prompt
}

// Load reads a YAML file, expands ${VAR} environment references and
// returns the validated configuration.
func Load(path string) (*AppConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found at: %s", path)
	}

	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// os.ExpandEnv replaces ${VAR} or $VAR with the process environment.
	contentWithEnv := os.ExpandEnv(string(rawBytes))

	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(contentWithEnv), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// validate checks the required fields.
func (c *AppConfig) validate() error {
	if c.Models.DefaultChat == "" {
		return fmt.Errorf("models.default_chat is required")
	}
	def, ok := c.Models.Definitions[c.Models.DefaultChat]
	if !ok {
		return fmt.Errorf("default_chat model '%s' is not defined in definitions", c.Models.DefaultChat)
	}
	if def.APIKey == "" {
		return fmt.Errorf("model '%s': api_key is required (set GROQ_API_KEY in the environment or .env)", c.Models.DefaultChat)
	}
	if c.History.Enabled && c.History.Path == "" {
		return fmt.Errorf("history.path is required when history is enabled")
	}
	return nil
}

// GetChatModel returns the model definition for the given alias, or the
// default chat model when the alias is empty.
func (c *AppConfig) GetChatModel(name string) (ModelDef, bool) {
	if name == "" {
		name = c.Models.DefaultChat
	}
	m, ok := c.Models.Definitions[name]
	return m, ok
}

// ToolEnabled reports whether a tool is enabled. Tools without an
// explicit config section default to enabled.
func (c *AppConfig) ToolEnabled(name string) bool {
	tc, ok := c.Tools[name]
	if !ok {
		return true
	}
	return tc.Enabled
}

// Find searches for config.yaml in the conventional locations: the
// current directory, the executable's directory and its parent.
func Find() (string, error) {
	candidates := []string{"config.yaml"}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		candidates = append(candidates,
			filepath.Join(exeDir, "config.yaml"),
			filepath.Join(exeDir, "..", "config.yaml"),
		)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("config.yaml not found (looked in: %v)", candidates)
}
