package extract

import (
	"testing"

	"github.com/claimscope/claimscope/internal/model"
)

func span(text string, start, end int, confidence float64) model.Span {
	return model.Span{
		Text:       text,
		Start:      start,
		End:        end,
		Type:       model.ClaimTypeFact,
		Confidence: confidence,
	}
}

func TestResolver_NoOverlap(t *testing.T) {
	resolver := NewResolver()

	spans := []model.Span{
		span("a", 0, 5, 0.7),
		span("b", 5, 10, 0.8),
		span("c", 20, 25, 0.9),
	}

	resolved := resolver.Resolve(spans)
	if len(resolved) != 3 {
		t.Fatalf("expected all 3 non-overlapping spans kept, got %d", len(resolved))
	}
	// Touching at a boundary is not an overlap.
	if resolved[0].Text != "a" || resolved[1].Text != "b" {
		t.Error("adjacent spans should both survive")
	}
}

func TestResolver_HigherConfidenceWins(t *testing.T) {
	resolver := NewResolver()

	spans := []model.Span{
		span("weak", 0, 10, 0.6),
		span("strong", 5, 15, 0.9),
	}

	resolved := resolver.Resolve(spans)
	if len(resolved) != 1 {
		t.Fatalf("expected 1 span, got %d", len(resolved))
	}
	if resolved[0].Text != "strong" {
		t.Errorf("expected higher-confidence span to win, got %q", resolved[0].Text)
	}
}

func TestResolver_TiePrefersLonger(t *testing.T) {
	resolver := NewResolver()

	spans := []model.Span{
		span("short", 0, 5, 0.8),
		span("longer", 0, 12, 0.8),
	}

	resolved := resolver.Resolve(spans)
	if len(resolved) != 1 {
		t.Fatalf("expected 1 span, got %d", len(resolved))
	}
	if resolved[0].Text != "longer" {
		t.Errorf("expected longer span to win the tie, got %q", resolved[0].Text)
	}
}

func TestResolver_FullTieKeepsFirst(t *testing.T) {
	resolver := NewResolver()

	spans := []model.Span{
		span("first", 0, 5, 0.8),
		span("second", 0, 5, 0.8),
	}

	resolved := resolver.Resolve(spans)
	if len(resolved) != 1 {
		t.Fatalf("expected 1 span, got %d", len(resolved))
	}
	if resolved[0].Text != "first" {
		t.Errorf("expected first-accepted span to win a full tie, got %q", resolved[0].Text)
	}
}

func TestResolver_OutputHasNoOverlaps(t *testing.T) {
	resolver := NewResolver()

	spans := []model.Span{
		span("a", 0, 10, 0.7),
		span("b", 8, 20, 0.9),
		span("c", 18, 30, 0.6),
		span("d", 25, 40, 0.8),
		span("e", 3, 6, 0.95),
	}

	resolved := resolver.Resolve(spans)
	if len(resolved) > len(spans) {
		t.Fatalf("resolver grew the span list: %d > %d", len(resolved), len(spans))
	}

	// A second pass must change nothing.
	again := resolver.Resolve(resolved)
	if len(again) != len(resolved) {
		t.Errorf("Resolve is not idempotent: %d then %d spans", len(resolved), len(again))
	}
	for i := range again {
		if again[i] != resolved[i] {
			t.Errorf("Resolve is not idempotent at index %d", i)
		}
	}
}

func TestResolver_SortsByStart(t *testing.T) {
	resolver := NewResolver()

	spans := []model.Span{
		span("late", 30, 40, 0.7),
		span("early", 0, 5, 0.7),
		span("middle", 10, 20, 0.7),
	}

	resolved := resolver.Resolve(spans)
	if len(resolved) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(resolved))
	}
	for i := 1; i < len(resolved); i++ {
		if resolved[i].Start < resolved[i-1].Start {
			t.Errorf("output not sorted by start: %d before %d", resolved[i-1].Start, resolved[i].Start)
		}
	}
}

func TestResolver_EmptyInput(t *testing.T) {
	resolver := NewResolver()

	if resolved := resolver.Resolve(nil); len(resolved) != 0 {
		t.Errorf("expected empty result for nil input, got %d spans", len(resolved))
	}
	if resolved := resolver.Resolve([]model.Span{}); len(resolved) != 0 {
		t.Errorf("expected empty result for empty input, got %d spans", len(resolved))
	}
}
