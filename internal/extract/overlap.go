package extract

import (
	"sort"

	"github.com/claimscope/claimscope/internal/model"
)

// Resolver deduplicates candidate spans that occupy overlapping ranges
type Resolver struct{}

// NewResolver creates a new overlap resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve removes overlapping spans, keeping the most confident one of
// each overlapping pair. Candidates are processed in start order (stable,
// so equal starts keep extraction order) and each is tested against the
// accepted list; on overlap the higher-confidence span wins, ties prefer
// the longer span, and a full tie keeps the already-accepted one.
//
// Each candidate is compared until its first overlap only. Chains of
// mutually overlapping spans are therefore resolved pairwise as the
// sweep proceeds rather than globally; this is intentional and the
// resolver's fixtures depend on it. Resolve is idempotent.
func (r *Resolver) Resolve(spans []model.Span) []model.Span {
	sorted := make([]model.Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var accepted []model.Span
	for _, candidate := range sorted {
		overlapped := false
		for i, existing := range accepted {
			if !candidate.Overlaps(existing) {
				continue
			}
			if betterThan(candidate, existing) {
				accepted[i] = candidate
			}
			overlapped = true
			break
		}
		if !overlapped {
			accepted = append(accepted, candidate)
		}
	}

	return accepted
}

// betterThan reports whether the candidate should replace the accepted
// span: higher confidence wins, then longer text; otherwise the accepted
// span stays.
func betterThan(candidate, accepted model.Span) bool {
	if candidate.Confidence != accepted.Confidence {
		return candidate.Confidence > accepted.Confidence
	}
	return candidate.Length() > accepted.Length()
}
