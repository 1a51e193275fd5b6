package extract

import (
	"regexp"

	"github.com/claimscope/claimscope/internal/model"
)

// PatternLibrary holds the ordered claim patterns for each category.
// Built once at process start, safe for concurrent reads.
// In production this would be backed by a real NLP model; pattern
// matching is the documented behavior here.
type PatternLibrary struct {
	categories     []model.ClaimType
	patterns       map[model.ClaimType][]*regexp.Regexp
	entityKeywords map[string][]string
}

// Categories returns claim categories in declaration order
func (l *PatternLibrary) Categories() []model.ClaimType {
	return l.categories
}

// Patterns returns the ordered pattern list for a category
func (l *PatternLibrary) Patterns(t model.ClaimType) []*regexp.Regexp {
	return l.patterns[t]
}

// EntityKeywords returns the known-entity keyword groups
func (l *PatternLibrary) EntityKeywords() map[string][]string {
	return l.entityKeywords
}

// DefaultPatternLibrary builds the standard pattern library.
// All patterns are case-insensitive. Category order and pattern order
// within a category are fixed: extraction output depends on them.
func DefaultPatternLibrary() *PatternLibrary {
	return &PatternLibrary{
		categories: []model.ClaimType{
			model.ClaimTypeDate,
			model.ClaimTypeNumber,
			model.ClaimTypeEntity,
			model.ClaimTypeFact,
		},
		patterns: map[model.ClaimType][]*regexp.Regexp{
			model.ClaimTypeDate: {
				regexp.MustCompile(`(?i)\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`),
				regexp.MustCompile(`(?i)\b\d{4}\b`),
				regexp.MustCompile(`(?i)\b\d{1,2}/\d{1,2}/\d{4}\b`),
				regexp.MustCompile(`(?i)\b(?:Q[1-4])\s+\d{4}\b`),
				regexp.MustCompile(`(?i)\b(?:in|during|since|by)\s+\d{4}\b`),
				regexp.MustCompile(`(?i)\b(?:early|mid|late)\s+\d{4}\b`),
			},
			model.ClaimTypeNumber: {
				regexp.MustCompile(`(?i)\b\d+(?:,\d{3})*(?:\.\d+)?\s*(?:million|billion|thousand|%|percent)\b`),
				regexp.MustCompile(`(?i)\$\d+(?:,\d{3})*(?:\.\d+)?\b`),
				regexp.MustCompile(`(?i)\b\d+(?:,\d{3})*\s*(?:users?|customers?|downloads?|sales?|orders?)\b`),
				regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:GB|TB|MB|KB)\b`),
				regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:hours?|minutes?|seconds?|days?|weeks?|months?|years?)\b`),
			},
			model.ClaimTypeEntity: {
				regexp.MustCompile(`(?i)\b(?:iPhone|iPad|MacBook|Apple|Google|Microsoft|Amazon|Tesla|Netflix|Meta|Facebook|Twitter|X|Instagram|TikTok|YouTube)\s*\w*\b`),
				regexp.MustCompile(`(?i)\b[A-Z][a-z]+\s+(?:Inc|Corp|LLC|Ltd|Company|Corporation)\b`),
				regexp.MustCompile(`(?i)\b(?:CEO|CTO|CFO|President|Director|Manager)\s+[A-Z][a-z]+\s+[A-Z][a-z]+\b`),
				// RE2 has no lookahead: the attribution verb is matched and the
				// speaker name is taken from the capture group instead.
				regexp.MustCompile(`(?i)\b([A-Z][a-z]+\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?:said|announced|reported|stated|claimed)\b`),
			},
			model.ClaimTypeFact: {
				regexp.MustCompile(`(?i)\b(?:announced|launched|released|introduced|unveiled)\s+.{10,50}\b`),
				regexp.MustCompile(`(?i)\b(?:reported|stated|claimed|said)\s+that\s+.{10,100}\b`),
				regexp.MustCompile(`(?i)\b(?:increased|decreased|grew|fell|rose|dropped)\s+by\s+\d+.{0,20}\b`),
			},
		},
		entityKeywords: map[string][]string{
			"companies": {"apple", "google", "microsoft", "amazon", "meta", "tesla", "netflix", "grammarly"},
			"products":  {"iphone", "ipad", "macbook", "android", "windows", "alexa", "tesla model"},
			"people":    {"tim cook", "elon musk", "satya nadella", "sundar pichai"},
			"locations": {"cupertino", "seattle", "redmond", "mountain view", "austin"},
		},
	}
}
