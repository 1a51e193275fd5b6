package rewrite

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeProvider returns a canned rewrite without any network access
type fakeProvider struct {
	text string
	err  error
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) IsAvailable(context.Context) bool { return true }

func (p *fakeProvider) Rewrite(context.Context, Request) (*Response, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &Response{Text: p.text, Model: "fake-1"}, nil
}

func TestRewriter_Disabled(t *testing.T) {
	rw, err := NewRewriter(Config{})
	if err != nil {
		t.Fatalf("NewRewriter failed: %v", err)
	}
	if rw.Enabled() {
		t.Error("expected rewriter disabled with no provider")
	}

	_, err = rw.RewriteComment(context.Background(), "hello", ToneFriendly, PlatformTwitter)
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("expected ErrDisabled, got %v", err)
	}
}

func TestRewriter_UnknownProvider(t *testing.T) {
	if _, err := NewRewriter(Config{Provider: "carrier-pigeon"}); err == nil {
		t.Error("expected an error for an unknown provider")
	}
}

func TestRewriter_RewriteComment(t *testing.T) {
	rw := &Rewriter{provider: &fakeProvider{text: "A most excellent product update."}}

	result, err := rw.RewriteComment(context.Background(), "this product update rocks", ToneProfessional, PlatformTwitter)
	if err != nil {
		t.Fatalf("RewriteComment failed: %v", err)
	}

	if result.Tone != ToneProfessional {
		t.Errorf("expected professional tone, got %s", result.Tone)
	}
	if result.Platform != PlatformTwitter {
		t.Errorf("expected twitter platform, got %s", result.Platform)
	}
	if result.Model != "fake-1" {
		t.Errorf("expected model from provider, got %q", result.Model)
	}
	if !strings.Contains(result.Rewritten, "excellent product update") {
		t.Errorf("expected the provider text in the result, got %q", result.Rewritten)
	}
	if len(result.Rewritten) > 280 {
		t.Errorf("expected twitter limit respected, got %d chars", len(result.Rewritten))
	}
}

func TestRewriter_EmptyComment(t *testing.T) {
	rw := &Rewriter{provider: &fakeProvider{text: "x"}}

	if _, err := rw.RewriteComment(context.Background(), "   ", ToneFriendly, PlatformTwitter); err == nil {
		t.Error("expected an error for a blank comment")
	}
}

func TestRewriter_ProviderError(t *testing.T) {
	rw := &Rewriter{provider: &fakeProvider{err: errors.New("rate limited")}}

	if _, err := rw.RewriteComment(context.Background(), "hello world", ToneFriendly, PlatformTwitter); err == nil {
		t.Error("expected the provider error to propagate")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(Request{
		Comment:  "love this camera",
		Tone:     ToneWitty,
		Platform: PlatformTwitter,
	})

	if !strings.Contains(prompt, "love this camera") {
		t.Error("expected the comment in the prompt")
	}
	if !strings.Contains(prompt, "witty") {
		t.Error("expected the tone in the prompt")
	}
	if !strings.Contains(prompt, "280") {
		t.Error("expected the character limit in the prompt")
	}
}
