package extract

import (
	"regexp"
	"strings"

	"github.com/claimscope/claimscope/internal/model"
)

const (
	// contextWindow is the number of characters captured on each side of a span
	contextWindow = 50

	// ConfidenceFloor is the minimum extraction confidence a span must
	// exceed to survive. Applied after overlap resolution so that a
	// higher-confidence overlapping neighbor can still win first.
	ConfidenceFloor = 0.5

	baseConfidence = 0.7
	maxConfidence  = 0.95
)

var yearPattern = regexp.MustCompile(`\b\d{4}\b`)

// Extractor locates candidate claim spans in free text
type Extractor struct {
	library *PatternLibrary
}

// NewExtractor creates an extractor backed by the default pattern library
func NewExtractor() *Extractor {
	return &Extractor{library: DefaultPatternLibrary()}
}

// Extract runs every pattern against the text and returns raw candidate
// spans. Output order is category declaration order, then pattern order
// within the category, then match order; position sorting happens later
// in the resolver. Any input, including empty, is valid.
func (e *Extractor) Extract(text string) []model.Span {
	var spans []model.Span

	for _, category := range e.library.Categories() {
		for _, pattern := range e.library.Patterns(category) {
			for _, loc := range pattern.FindAllStringSubmatchIndex(text, -1) {
				start, end := loc[0], loc[1]
				// Prefer the first capture group when present (speaker
				// attribution patterns match trailing verbs we don't keep).
				if pattern.NumSubexp() > 0 && loc[2] >= 0 {
					start, end = loc[2], loc[3]
				}

				matched := text[start:end]
				spans = append(spans, model.Span{
					Text:       strings.TrimSpace(matched),
					Start:      start,
					End:        end,
					Type:       category,
					Confidence: e.confidence(matched, category),
					Context:    contextFor(text, start, end),
				})
			}
		}
	}

	return spans
}

// FilterLowConfidence drops spans at or below the confidence floor
func FilterLowConfidence(spans []model.Span) []model.Span {
	var kept []model.Span
	for _, s := range spans {
		if s.Confidence > ConfidenceFloor {
			kept = append(kept, s)
		}
	}
	return kept
}

// confidence assigns the extraction heuristic: a shared base value
// boosted by category-specific signals, capped at maxConfidence.
func (e *Extractor) confidence(matched string, category model.ClaimType) float64 {
	confidence := baseConfidence
	lower := strings.ToLower(matched)

	switch category {
	case model.ClaimTypeDate:
		if yearPattern.MatchString(matched) {
			confidence += 0.2
		}
	case model.ClaimTypeNumber:
		for _, unit := range []string{"million", "billion", "$"} {
			if strings.Contains(lower, unit) {
				confidence += 0.15
				break
			}
		}
	case model.ClaimTypeEntity:
		if e.hasKnownEntity(lower) {
			confidence += 0.25
		}
	case model.ClaimTypeFact:
		// Base value only; fact patterns carry no extra signal.
	}

	if confidence > maxConfidence {
		confidence = maxConfidence
	}
	return confidence
}

func (e *Extractor) hasKnownEntity(lower string) bool {
	for _, group := range e.library.EntityKeywords() {
		for _, keyword := range group {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}
	return false
}

// contextFor returns a fixed-width window around the span, clipped to
// the text bounds and trimmed.
func contextFor(text string, start, end int) string {
	from := start - contextWindow
	if from < 0 {
		from = 0
	}
	to := end + contextWindow
	if to > len(text) {
		to = len(text)
	}
	return strings.TrimSpace(text[from:to])
}
