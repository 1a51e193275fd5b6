package verify

import (
	"context"
	"testing"
	"time"

	"github.com/claimscope/claimscope/internal/cache"
	"github.com/claimscope/claimscope/internal/model"
	"github.com/claimscope/claimscope/internal/source"
)

func newTestVerifier(resultCache cache.Cache, workers int) *Verifier {
	registry := source.NewRegistry()
	aggregator := source.NewAggregator(registry, source.NewMockCorpus(0), time.Second, nil)
	return NewVerifier(aggregator, resultCache, time.Minute, workers, nil)
}

func TestVerifier_EvidencePath(t *testing.T) {
	v := newTestVerifier(nil, 2)

	span := model.Span{
		Text:    "iPhone 16",
		Start:   10,
		End:     19,
		Type:    model.ClaimTypeEntity,
		Context: "Apple announced the iPhone 16 today",
	}

	claim := v.VerifySpan(context.Background(), span)

	if claim.ID == "" {
		t.Error("expected a generated claim ID")
	}
	if claim.Status != model.StatusVerified {
		t.Errorf("expected verified with two corroborating sources, got %s", claim.Status)
	}
	if len(claim.Sources) != 2 {
		t.Fatalf("expected 2 sources, got %v", claim.Sources)
	}
	if claim.Sources[0] != "wikipedia" || claim.Sources[1] != "apple_press" {
		t.Errorf("expected sources in query order, got %v", claim.Sources)
	}
	if claim.Confidence < 85 || claim.Confidence > 98 {
		t.Errorf("unexpected confidence %d", claim.Confidence)
	}
	if claim.Start != 10 || claim.End != 19 {
		t.Errorf("span offsets not preserved: [%d, %d)", claim.Start, claim.End)
	}
}

func TestVerifier_RuleFallbackPath(t *testing.T) {
	v := newTestVerifier(nil, 2)

	// No corpus source knows this price; the rule verifier decides.
	span := model.Span{
		Text:    "$829",
		Type:    model.ClaimTypeNumber,
		Context: "the iPhone 16 starts at $829",
	}

	claim := v.VerifySpan(context.Background(), span)

	if claim.Status != model.StatusVerified {
		t.Errorf("expected the price rule verdict, got %s", claim.Status)
	}
	if claim.Confidence != 95 {
		t.Errorf("expected confidence 95, got %d", claim.Confidence)
	}
	if len(claim.Sources) == 0 || claim.Sources[0] != "Apple Press Release" {
		t.Errorf("expected rule sources, got %v", claim.Sources)
	}
}

func TestVerifier_ConfidenceIsRounded(t *testing.T) {
	v := newTestVerifier(nil, 1)

	// Weighted mean (.85*.9 + .95*.98) / 1.8 = 0.94277...; rounds to 94.
	span := model.Span{
		Text: "iPhone 16",
		Type: model.ClaimTypeEntity,
	}

	claim := v.VerifySpan(context.Background(), span)
	if claim.Confidence != 94 {
		t.Errorf("expected rounded confidence 94, got %d", claim.Confidence)
	}
}

func TestVerifier_VerifyAllPreservesOrder(t *testing.T) {
	v := newTestVerifier(nil, 4)

	texts := []string{"iPhone 16", "$829", "2020", "Apple", "the best ever", "iPhone 16"}
	spans := make([]model.Span, len(texts))
	for i, text := range texts {
		spans[i] = model.Span{
			Text:    text,
			Start:   i * 10,
			End:     i*10 + len(text),
			Type:    model.ClaimTypeFact,
			Context: text,
		}
	}

	claims := v.VerifyAll(context.Background(), spans)
	if len(claims) != len(spans) {
		t.Fatalf("expected %d claims, got %d", len(spans), len(claims))
	}
	for i, claim := range claims {
		if claim.Text != texts[i] {
			t.Errorf("position %d: expected %q, got %q", i, texts[i], claim.Text)
		}
		if claim.Start != spans[i].Start {
			t.Errorf("position %d: start offset lost", i)
		}
	}
}

func TestVerifier_VerifyAllManySpans(t *testing.T) {
	v := newTestVerifier(nil, 2)

	// Far more spans than worker buffer capacity.
	spans := make([]model.Span, 100)
	for i := range spans {
		spans[i] = model.Span{Text: "2020", Type: model.ClaimTypeDate, Context: "in 2020"}
	}

	done := make(chan []model.Claim, 1)
	go func() {
		done <- v.VerifyAll(context.Background(), spans)
	}()

	select {
	case claims := <-done:
		if len(claims) != len(spans) {
			t.Fatalf("expected %d claims, got %d", len(spans), len(claims))
		}
	case <-time.After(10 * time.Second):
		t.Fatal("VerifyAll deadlocked on a large batch")
	}
}

func TestVerifier_VerifyAllEmpty(t *testing.T) {
	v := newTestVerifier(nil, 2)

	claims := v.VerifyAll(context.Background(), nil)
	if claims == nil {
		t.Fatal("expected an empty slice, not nil")
	}
	if len(claims) != 0 {
		t.Errorf("expected no claims, got %d", len(claims))
	}
}

func TestVerifier_CacheKeyedByContext(t *testing.T) {
	memCache := cache.NewMemoryCache(time.Minute, time.Minute)
	v := newTestVerifier(memCache, 1)

	// Same text and type, different contexts: the price rule only fires
	// in an iPhone context, so the verdicts must differ.
	first := v.VerifySpan(context.Background(), model.Span{
		Text: "$829", Type: model.ClaimTypeNumber,
		Context: "the iPhone 16 starts at $829",
	})
	second := v.VerifySpan(context.Background(), model.Span{
		Text: "$829", Type: model.ClaimTypeNumber,
		Context: "the vacuum cleaner costs $829",
	})

	if first.Status != model.StatusVerified || first.Confidence != 95 {
		t.Errorf("expected verified/95 in product context, got %s/%d", first.Status, first.Confidence)
	}
	if second.Status != model.StatusUnverified || second.Confidence != 60 {
		t.Errorf("expected unverified/60 outside product context, got %s/%d", second.Status, second.Confidence)
	}
}

func TestVerifier_CacheHitGetsFreshIdentity(t *testing.T) {
	memCache := cache.NewMemoryCache(time.Minute, time.Minute)
	v := newTestVerifier(memCache, 1)

	first := v.VerifySpan(context.Background(), model.Span{
		Text: "iPhone 16", Start: 0, End: 9, Type: model.ClaimTypeEntity,
	})
	second := v.VerifySpan(context.Background(), model.Span{
		Text: "iPhone 16", Start: 40, End: 49, Type: model.ClaimTypeEntity,
	})

	if first.Status != second.Status || first.Confidence != second.Confidence {
		t.Error("cached verdict should match the original")
	}
	if first.ID == second.ID {
		t.Error("cache hits must carry a fresh claim ID")
	}
	if second.Start != 40 || second.End != 49 {
		t.Errorf("cache hit must use the caller's offsets, got [%d, %d)", second.Start, second.End)
	}
}
