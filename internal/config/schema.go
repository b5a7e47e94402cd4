package config

import (
	"time"

	"github.com/larklabs/hvacjack/internal/diagnose"
	"github.com/larklabs/hvacjack/internal/nameplate"
	"github.com/larklabs/hvacjack/internal/providers"
	"github.com/larklabs/hvacjack/internal/search"
)

// Config holds hvacjack configuration.
// Stored at: config.yaml (or $HOME/.hvacjack/config.yaml)
type Config struct {
	LLMProviders map[string]LLMProviderCfg `mapstructure:"llm_providers" yaml:"llm_providers"`
	Search       SearchCfg                 `mapstructure:"search" yaml:"search"`
	Diagnose     DiagnoseCfg               `mapstructure:"diagnose" yaml:"diagnose"`
	Nameplate    NameplateCfg              `mapstructure:"nameplate" yaml:"nameplate"`
	Defaults     DefaultsCfg               `mapstructure:"defaults" yaml:"defaults"`
}

// LLMProviderCfg configures a model provider.
type LLMProviderCfg struct {
	Type           string `mapstructure:"type" yaml:"type"`                       // "openai"
	Model          string `mapstructure:"model" yaml:"model"`                     // Model name
	APIKey         string `mapstructure:"api_key" yaml:"api_key"`                 // API key (supports ${ENV_VAR} syntax)
	RateLimit      int    `mapstructure:"rate_limit" yaml:"rate_limit"`           // Requests per minute
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"` // HTTP timeout
	MaxRetries     int    `mapstructure:"max_retries" yaml:"max_retries"`         // SDK transport retries
	Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
}

// SearchCfg configures the external search collaborator.
type SearchCfg struct {
	Type           string `mapstructure:"type" yaml:"type"`                       // "serpapi"
	APIKey         string `mapstructure:"api_key" yaml:"api_key"`                 // API key (supports ${ENV_VAR} syntax)
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"` // Per-request timeout
	BudgetSeconds  int    `mapstructure:"budget_seconds" yaml:"budget_seconds"`   // Whole-augmentation budget
	Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
}

// DiagnoseCfg tunes troubleshooting sessions.
type DiagnoseCfg struct {
	Temperature float64 `mapstructure:"temperature" yaml:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens" yaml:"max_tokens"`
	MaxAttempts int     `mapstructure:"max_attempts" yaml:"max_attempts"`
}

// NameplateCfg tunes rating-plate analysis.
type NameplateCfg struct {
	MaxTokens   int `mapstructure:"max_tokens" yaml:"max_tokens"`
	MaxAttempts int `mapstructure:"max_attempts" yaml:"max_attempts"`
}

// DefaultsCfg specifies default selections.
type DefaultsCfg struct {
	LLMProvider string `mapstructure:"llm_provider" yaml:"llm_provider"` // Default model provider
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LLMProviders: map[string]LLMProviderCfg{
			"openai": {
				Type:           "openai",
				Model:          "gpt-4o",
				APIKey:         "${OPENAI_API_KEY}",
				RateLimit:      60,
				TimeoutSeconds: 120,
				Enabled:        true,
			},
		},
		Search: SearchCfg{
			Type:           "serpapi",
			APIKey:         "${SERPAPI_KEY}",
			TimeoutSeconds: 15,
			BudgetSeconds:  10,
			Enabled:        true,
		},
		Diagnose: DiagnoseCfg{
			Temperature: 0.2,
			MaxTokens:   2500,
			MaxAttempts: 3,
		},
		Nameplate: NameplateCfg{
			MaxTokens:   1500,
			MaxAttempts: 3,
		},
		Defaults: DefaultsCfg{
			LLMProvider: "openai",
		},
	}
}

// GetLLMProvider returns a model provider config by name.
func (c *Config) GetLLMProvider(name string) (LLMProviderCfg, bool) {
	cfg, ok := c.LLMProviders[name]
	return cfg, ok
}

// EnabledLLMProviders returns all enabled model providers.
func (c *Config) EnabledLLMProviders() map[string]LLMProviderCfg {
	result := make(map[string]LLMProviderCfg)
	for name, cfg := range c.LLMProviders {
		if cfg.Enabled {
			result[name] = cfg
		}
	}
	return result
}

// OpenAIClientConfig converts a provider entry into an OpenAI client config,
// resolving ${ENV_VAR} references in the API key.
func (p LLMProviderCfg) OpenAIClientConfig() providers.OpenAIConfig {
	return providers.OpenAIConfig{
		APIKey:     ResolveEnvVars(p.APIKey),
		Model:      p.Model,
		Timeout:    time.Duration(p.TimeoutSeconds) * time.Second,
		RateLimit:  p.RateLimit,
		MaxRetries: p.MaxRetries,
	}
}

// SerpAPIClientConfig converts the search entry into a SerpAPI client
// config, resolving ${ENV_VAR} references in the API key.
func (s SearchCfg) SerpAPIClientConfig() search.SerpAPIConfig {
	return search.SerpAPIConfig{
		APIKey:  ResolveEnvVars(s.APIKey),
		Timeout: time.Duration(s.TimeoutSeconds) * time.Second,
	}
}

// AugmentBudget returns the whole-augmentation time box.
func (s SearchCfg) AugmentBudget() time.Duration {
	return time.Duration(s.BudgetSeconds) * time.Second
}

// DiagnoseOptions converts the diagnose entry into service options for the
// given provider.
func (c *Config) DiagnoseOptions(p LLMProviderCfg) diagnose.Options {
	return diagnose.Options{
		Model:       p.Model,
		Temperature: c.Diagnose.Temperature,
		MaxTokens:   c.Diagnose.MaxTokens,
		Timeout:     time.Duration(p.TimeoutSeconds) * time.Second,
		MaxAttempts: c.Diagnose.MaxAttempts,
	}
}

// NameplateOptions converts the nameplate entry into service options for the
// given provider.
func (c *Config) NameplateOptions(p LLMProviderCfg) nameplate.Options {
	return nameplate.Options{
		Model:       p.Model,
		MaxTokens:   c.Nameplate.MaxTokens,
		Timeout:     time.Duration(p.TimeoutSeconds) * time.Second,
		MaxAttempts: c.Nameplate.MaxAttempts,
	}
}
