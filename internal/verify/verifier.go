package verify

import (
	"context"
	"math"
	"time"

	"github.com/claimscope/claimscope/internal/cache"
	"github.com/claimscope/claimscope/internal/model"
	"github.com/claimscope/claimscope/internal/source"
	"github.com/claimscope/claimscope/internal/worker"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Verifier orchestrates verification: evidence search, confidence
// aggregation, status classification and the rule-based fallback.
type Verifier struct {
	aggregator *source.Aggregator
	classifier *Classifier
	rules      *RuleVerifier
	cache      cache.Cache // nil disables caching
	cacheTTL   time.Duration
	workers    int
	logger     *zap.Logger
}

// NewVerifier creates a verifier. cache may be nil.
func NewVerifier(aggregator *source.Aggregator, resultCache cache.Cache, cacheTTL time.Duration, workers int, logger *zap.Logger) *Verifier {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{
		aggregator: aggregator,
		classifier: NewClassifier(),
		rules:      NewRuleVerifier(),
		cache:      resultCache,
		cacheTTL:   cacheTTL,
		workers:    workers,
		logger:     logger,
	}
}

// VerifySpan verifies a single resolved span and assembles the final
// claim record. The rule verdict always runs: it supplies the evidence
// explanation, and the whole verdict when no source corroborates.
func (v *Verifier) VerifySpan(ctx context.Context, span model.Span) model.Claim {
	if cached, ok := v.cachedClaim(span); ok {
		return cached
	}

	ruleVerdict := v.rules.Verify(span.Text, span.Type, span.Context)

	var (
		status     model.VerificationStatus
		confidence float64
		sources    []string
	)

	records := v.aggregator.Search(ctx, span.Text, span.Type)
	if len(records) > 0 {
		confidence = source.OverallConfidence(records)
		status = v.classifier.Classify(confidence, len(records))
		for _, r := range records {
			sources = append(sources, r.Source)
		}
	} else {
		status = ruleVerdict.Status
		confidence = ruleVerdict.Confidence
		sources = ruleVerdict.Sources
	}

	claim := model.Claim{
		ID:         uuid.NewString(),
		Text:       span.Text,
		Start:      span.Start,
		End:        span.End,
		Type:       span.Type,
		Status:     status,
		Confidence: int(math.Round(confidence * 100)),
		Sources:    sources,
		Evidence:   ruleVerdict.Evidence,
	}

	v.storeClaim(span, claim)
	return claim
}

// verifyJob carries the span index so batch output can be reordered.
// The request context rides along so caller cancellation reaches the
// per-source queries.
type verifyJob struct {
	ctx      context.Context
	index    int
	span     model.Span
	verifier *Verifier
}

type verifyResult struct {
	index int
	claim model.Claim
}

func (r *verifyResult) GetError() error { return nil }

func (j *verifyJob) Execute(context.Context) worker.Result {
	return &verifyResult{
		index: j.index,
		claim: j.verifier.VerifySpan(j.ctx, j.span),
	}
}

// VerifyAll verifies spans concurrently through the worker pool.
// The returned claims are in the same order as the input spans
// regardless of completion order.
func (v *Verifier) VerifyAll(ctx context.Context, spans []model.Span) []model.Claim {
	if len(spans) == 0 {
		return []model.Claim{}
	}

	pool := worker.NewPool(v.workers)
	pool.Start()
	defer pool.Shutdown()

	go func() {
		for i, span := range spans {
			pool.Submit(&verifyJob{ctx: ctx, index: i, span: span, verifier: v})
		}
		pool.Done()
	}()

	claims := make([]model.Claim, len(spans))
	for result := range pool.Results() {
		if r, ok := result.(*verifyResult); ok {
			claims[r.index] = r.claim
		}
	}
	return claims
}

func (v *Verifier) cachedClaim(span model.Span) (model.Claim, bool) {
	if v.cache == nil {
		return model.Claim{}, false
	}

	claim, found := v.cache.Get(cache.Key(span.Text, string(span.Type), span.Context))
	if !found {
		return model.Claim{}, false
	}
	v.logger.Debug("verdict cache hit", zap.String("claim", span.Text))

	// The cached verdict applies to the text in its context, not to a
	// position: each hit gets a fresh identity and the caller's offsets.
	claim.ID = uuid.NewString()
	claim.Start = span.Start
	claim.End = span.End
	return claim, true
}

func (v *Verifier) storeClaim(span model.Span, claim model.Claim) {
	if v.cache == nil {
		return
	}
	v.cache.Set(cache.Key(span.Text, string(span.Type), span.Context), claim, v.cacheTTL)
}
