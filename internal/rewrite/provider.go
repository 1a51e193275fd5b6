package rewrite

import (
	"context"
	"fmt"
)

// Provider defines the interface for language-model backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// Rewrite generates a tone-adjusted rendition of a comment
	Rewrite(ctx context.Context, req Request) (*Response, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// Request contains the input for a rewrite
type Request struct {
	// Comment is the original user comment
	Comment string

	// Tone is the target emotional tone
	Tone Tone

	// Platform the rewritten comment is destined for
	Platform Platform

	// Model overrides the configured model (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// Response contains the model's output
type Response struct {
	// Text is the rewritten comment before platform formatting
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds provider configuration
type Config struct {
	// Provider name: "openai" or "" (disabled)
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for the provider
	APIKey string

	// BaseURL for OpenAI-compatible endpoints
	BaseURL string

	// Timeout for API requests, seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		MaxTokens: 500,
	}
}

// BuildPrompt constructs the rewriting prompt. The model handles tone;
// platform constraints are re-applied deterministically afterwards, so
// the prompt only describes them.
func BuildPrompt(req Request) string {
	spec := platformSpec(req.Platform)

	prompt := fmt.Sprintf(`Rewrite the following social-media comment in a %s tone.

RULES:
1. Preserve the meaning of the original comment.
2. Do not add facts, mentions, or links that are not in the original.
3. Target platform: %s (%s).
4. Reply with the rewritten comment only, no commentary.

Original comment:
%s`, req.Tone, req.Platform, spec.description, req.Comment)

	if spec.charLimit > 0 {
		prompt += fmt.Sprintf("\n\nKeep the rewrite under %d characters.", spec.charLimit)
	}

	return prompt
}
