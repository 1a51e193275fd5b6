package rewrite

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrDisabled is returned when no provider is configured
var ErrDisabled = errors.New("rewriting is not configured")

// Result is a finished rewrite including platform formatting
type Result struct {
	Rewritten string   `json:"rewritten"`
	Tone      Tone     `json:"tone"`
	Platform  Platform `json:"platform"`
	Hashtags  []string `json:"hashtags,omitempty"`
	Model     string   `json:"model,omitempty"`
}

// Rewriter combines a language-model provider with the deterministic
// platform formatting and engagement heuristics.
type Rewriter struct {
	provider Provider
	config   Config
}

// NewRewriter creates a rewriter from configuration. The returned
// rewriter is non-nil even when disabled; RewriteComment then fails
// with ErrDisabled.
func NewRewriter(config Config) (*Rewriter, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Rewriter{provider: provider, config: config}, nil
}

// Enabled reports whether a provider is configured
func (r *Rewriter) Enabled() bool {
	return r != nil && r.provider != nil
}

// RewriteComment rewrites the comment into the target tone and applies
// the platform constraints afterwards so limits hold even when the
// model ignores them.
func (r *Rewriter) RewriteComment(ctx context.Context, comment string, tone Tone, platform Platform) (*Result, error) {
	if !r.Enabled() {
		return nil, ErrDisabled
	}
	if strings.TrimSpace(comment) == "" {
		return nil, fmt.Errorf("comment is required")
	}

	resp, err := r.provider.Rewrite(ctx, Request{
		Comment:  comment,
		Tone:     tone,
		Platform: platform,
	})
	if err != nil {
		return nil, fmt.Errorf("rewrite: %w", err)
	}

	topic := TopicFromComment(comment)
	formatted, hashtags := FormatForPlatform(resp.Text, tone, platform, topic)

	return &Result{
		Rewritten: formatted,
		Tone:      tone,
		Platform:  platform,
		Hashtags:  hashtags,
		Model:     resp.Model,
	}, nil
}
