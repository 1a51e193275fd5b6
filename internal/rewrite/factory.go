package rewrite

import (
	"fmt"
	"strings"

	"github.com/claimscope/claimscope/internal/model"
)

// NewProvider creates a provider from configuration. An empty provider
// name disables rewriting and returns (nil, nil).
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown rewrite provider: %s (supported: openai)", config.Provider)
	}
}

// ConfigFromModel converts model.RewriteConfig to rewrite.Config
func ConfigFromModel(cfg model.RewriteConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
}
