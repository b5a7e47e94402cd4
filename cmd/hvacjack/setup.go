package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/larklabs/hvacjack/internal/config"
	"github.com/larklabs/hvacjack/internal/home"
	"github.com/larklabs/hvacjack/internal/llmcall"
	"github.com/larklabs/hvacjack/internal/providers"
	"github.com/larklabs/hvacjack/internal/resources"
	"github.com/larklabs/hvacjack/internal/search"
)

// runtime bundles everything a command needs to run a session.
type runtime struct {
	cfg       *config.Config
	provider  config.LLMProviderCfg
	llm       providers.LLMClient
	recorder  *llmcall.Recorder
	augmenter *resources.Augmenter
	home      *home.Dir
	logger    *slog.Logger
}

// newRuntime loads config, builds the provider registry, and selects the
// default model client.
func newRuntime(logger *slog.Logger) (*runtime, error) {
	h, err := home.New(homeDir)
	if err != nil {
		return nil, err
	}

	// An explicit --config wins; otherwise fall back to the home config
	// when one exists, then to viper's search path.
	configPath := cfgFile
	if configPath == "" && h.ConfigExists() {
		configPath = h.ConfigPath()
	}

	mgr, err := config.NewManager(configPath)
	if err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	registry := providers.NewRegistry()
	registry.SetLogger(logger)
	for name, p := range cfg.EnabledLLMProviders() {
		switch p.Type {
		case "openai":
			registry.Register(name, providers.NewOpenAIClient(p.OpenAIClientConfig()))
		default:
			return nil, fmt.Errorf("unknown provider type %q for %q", p.Type, name)
		}
	}

	name := cfg.Defaults.LLMProvider
	llm, err := registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("default provider %q not available: %w", name, err)
	}
	provider, _ := cfg.GetLLMProvider(name)

	rt := &runtime{
		cfg:      cfg,
		provider: provider,
		llm:      llm,
		recorder: llmcall.NewRecorder(llmcall.DefaultCapacity, logger),
		home:     h,
		logger:   logger,
	}

	if cfg.Search.Enabled {
		searcher := search.NewSerpAPIClient(cfg.Search.SerpAPIClientConfig())
		rt.augmenter = resources.NewAugmenter(searcher, logger, cfg.Search.AugmentBudget())
	}

	return rt, nil
}

// saveJSON writes v to path, creating the home layout on first use.
func (rt *runtime) saveJSON(path string, v any) error {
	if err := rt.home.EnsureExists(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal for save: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	rt.logger.Info("saved result", "path", path)
	return nil
}
