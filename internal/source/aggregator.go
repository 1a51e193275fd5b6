package source

import (
	"context"
	"sync"
	"time"

	"github.com/claimscope/claimscope/internal/model"
	"go.uber.org/zap"
)

const (
	// neutralConfidence is returned when no evidence exists.
	// Absence of evidence is not treated as disconfirmation.
	neutralConfidence = 0.5

	// confidenceCeiling caps aggregated confidence: certainty is never total.
	confidenceCeiling = 0.98
)

// Aggregator fans claim queries out to the relevant knowledge sources
// and reconciles their answers into a single confidence figure.
type Aggregator struct {
	registry *Registry
	sources  map[string]KnowledgeSource
	timeout  time.Duration
	logger   *zap.Logger
}

// NewAggregator creates an aggregator. timeout bounds each per-source
// query; a source that exceeds it simply contributes no record.
func NewAggregator(registry *Registry, sources map[string]KnowledgeSource, timeout time.Duration, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		registry: registry,
		sources:  sources,
		timeout:  timeout,
		logger:   logger,
	}
}

// Search queries every source relevant to the claim type concurrently
// and returns the evidence records in query order. Individual source
// failures and timeouts are swallowed: that source contributes nothing
// and the rest proceed.
func (a *Aggregator) Search(ctx context.Context, claimText string, claimType model.ClaimType) []model.EvidenceRecord {
	names := a.registry.RelevantSources(claimType)
	slots := make([]*model.EvidenceRecord, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		descriptor, ok := a.registry.Get(name)
		if !ok {
			continue
		}
		client, ok := a.sources[name]
		if !ok {
			continue
		}

		wg.Add(1)
		go func(idx int, d model.SourceDescriptor, c KnowledgeSource) {
			defer wg.Done()

			queryCtx := ctx
			if a.timeout > 0 {
				var cancel context.CancelFunc
				queryCtx, cancel = context.WithTimeout(ctx, a.timeout)
				defer cancel()
			}

			record, err := c.Lookup(queryCtx, claimText)
			if err != nil {
				a.logger.Debug("source query failed",
					zap.String("source", d.Name),
					zap.Error(err))
				return
			}
			if record == nil {
				return
			}

			record.Source = d.Name
			record.Reliability = d.Reliability
			slots[idx] = record
		}(i, descriptor, client)
	}
	wg.Wait()

	// Compact in query order so the caller's source list is stable.
	var records []model.EvidenceRecord
	for _, r := range slots {
		if r != nil {
			records = append(records, *r)
		}
	}
	return records
}

// OverallConfidence computes the reliability-weighted mean of per-source
// confidence, clamped to the ceiling. No records yields the neutral
// default; the result is always derivable from the records alone.
func OverallConfidence(records []model.EvidenceRecord) float64 {
	if len(records) == 0 {
		return neutralConfidence
	}

	var weighted, totalWeight float64
	for _, r := range records {
		weighted += r.Reliability * r.Confidence
		totalWeight += r.Reliability
	}
	if totalWeight == 0 {
		return neutralConfidence
	}

	confidence := weighted / totalWeight
	if confidence > confidenceCeiling {
		confidence = confidenceCeiling
	}
	return confidence
}
