package source

import (
	"context"
	"strings"
	"time"

	"github.com/claimscope/claimscope/internal/model"
)

// KnowledgeSource looks up evidence for a claim query. A production
// system swaps in real Wikipedia/news/SEC clients here without touching
// aggregation or classification. A nil record with a nil error means
// the source has nothing on the query.
type KnowledgeSource interface {
	Lookup(ctx context.Context, query string) (*model.EvidenceRecord, error)
}

// corpusRule maps lowercase substrings of the query to a fixed response.
// All listed substrings must be present for the rule to fire.
type corpusRule struct {
	contains []string
	record   model.EvidenceRecord
}

// staticSource is a KnowledgeSource backed by fixed corpus rules with
// simulated lookup latency.
type staticSource struct {
	rules []corpusRule
	delay time.Duration
}

func (s *staticSource) Lookup(ctx context.Context, query string) (*model.EvidenceRecord, error) {
	// Simulate the latency of a remote lookup; honor cancellation.
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	lower := strings.ToLower(query)
	for _, rule := range s.rules {
		if matchesAll(lower, rule.contains) {
			record := rule.record
			return &record, nil
		}
	}
	return nil, nil
}

func matchesAll(query string, substrings []string) bool {
	for _, sub := range substrings {
		if !strings.Contains(query, sub) {
			return false
		}
	}
	return true
}

// NewMockCorpus returns the static stand-in sources keyed by registry
// name. Confidence values are source-reported and independent of the
// registry reliability weights.
func NewMockCorpus(delay time.Duration) map[string]KnowledgeSource {
	return map[string]KnowledgeSource{
		"wikipedia": &staticSource{
			delay: delay,
			rules: []corpusRule{
				{
					contains: []string{"iphone 16"},
					record: model.EvidenceRecord{
						Confidence: 0.9,
						Title:      "iPhone 16",
						Excerpt:    "The iPhone 16 is a smartphone designed and marketed by Apple Inc.",
						URL:        "https://en.wikipedia.org/wiki/IPhone_16",
					},
				},
				{
					contains: []string{"apple"},
					record: model.EvidenceRecord{
						Confidence: 0.95,
						Title:      "Apple Inc.",
						Excerpt:    "Apple Inc. is an American multinational technology company.",
						URL:        "https://en.wikipedia.org/wiki/Apple_Inc.",
					},
				},
			},
		},
		"apple_press": &staticSource{
			delay: delay,
			rules: []corpusRule{
				{
					contains: []string{"iphone 16"},
					record:   applePressRecord(),
				},
				{
					contains: []string{"september 2024"},
					record:   applePressRecord(),
				},
			},
		},
		"techcrunch": &staticSource{
			delay: delay,
			rules: []corpusRule{
				{
					contains: []string{"iphone 16"},
					record: model.EvidenceRecord{
						Confidence: 0.85,
						Title:      "iPhone 16 hands-on: Apple's latest flagship",
						Excerpt:    "Apple's iPhone 16 brings several new features...",
						URL:        "https://techcrunch.com/2024/09/12/iphone-16-hands-on/",
					},
				},
			},
		},
		"reuters": &staticSource{
			delay: delay,
			rules: []corpusRule{
				{
					contains: []string{"apple", "sales"},
					record:   reutersEarningsRecord(),
				},
				{
					contains: []string{"apple", "revenue"},
					record:   reutersEarningsRecord(),
				},
			},
		},
		"company_filings": &staticSource{
			delay: delay,
			rules: []corpusRule{
				{
					contains: []string{"apple"},
					record: model.EvidenceRecord{
						Confidence: 0.98,
						Title:      "Apple Inc. 10-K Annual Report",
						Excerpt:    "Annual report filed with the Securities and Exchange Commission...",
						URL:        "https://www.sec.gov/edgar/browse/?CIK=320193",
					},
				},
			},
		},
	}
}

func applePressRecord() model.EvidenceRecord {
	return model.EvidenceRecord{
		Confidence: 0.98,
		Title:      "Apple Introduces iPhone 16",
		Excerpt:    "Apple today announced iPhone 16 and iPhone 16 Plus...",
		URL:        "https://www.apple.com/newsroom/2024/09/apple-introduces-iphone-16/",
	}
}

func reutersEarningsRecord() model.EvidenceRecord {
	return model.EvidenceRecord{
		Confidence: 0.92,
		Title:      "Apple reports quarterly earnings",
		Excerpt:    "Apple Inc reported quarterly revenue...",
		URL:        "https://www.reuters.com/business/apple-earnings/",
	}
}
