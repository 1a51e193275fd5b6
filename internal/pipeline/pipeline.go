package pipeline

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/claimscope/claimscope/internal/cache"
	"github.com/claimscope/claimscope/internal/extract"
	"github.com/claimscope/claimscope/internal/model"
	"github.com/claimscope/claimscope/internal/source"
	"github.com/claimscope/claimscope/internal/verify"
	"go.uber.org/zap"
)

// ErrEmptyText is returned when the input is empty or whitespace only.
// It never reaches the extraction pipeline; the HTTP layer maps it to 400.
var ErrEmptyText = errors.New("text content is required")

const extractionMethod = "pattern_heuristics"

// Pipeline wires extraction, overlap resolution and verification into
// one request-scoped analysis flow. All members are read-only after
// construction, so a single Pipeline serves concurrent requests.
type Pipeline struct {
	extractor *extract.Extractor
	resolver  *extract.Resolver
	verifier  *verify.Verifier
	registry  *source.Registry
	logger    *zap.Logger
}

// NewPipeline builds the pipeline from configuration
func NewPipeline(cfg *model.Config, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}

	registry := source.NewRegistry()
	corpus := source.NewMockCorpus(cfg.Verify.SourceDelay)
	aggregator := source.NewAggregator(registry, corpus, cfg.Verify.SourceTimeout, logger)

	var resultCache cache.Cache
	if cfg.Cache.Enabled {
		resultCache = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL*2)
	}

	return &Pipeline{
		extractor: extract.NewExtractor(),
		resolver:  extract.NewResolver(),
		verifier:  verify.NewVerifier(aggregator, resultCache, cfg.Cache.TTL, cfg.Verify.Workers, logger),
		registry:  registry,
		logger:    logger,
	}
}

// Analyze extracts claims from text, verifies them and assembles the
// report. Claims come back position-sorted; verification is concurrent
// but never changes the order.
func (p *Pipeline) Analyze(ctx context.Context, text string) (*model.AnalysisReport, error) {
	started := time.Now()

	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	// 1. Extract raw candidate spans
	candidates := p.extractor.Extract(text)

	// 2. Resolve overlaps, then drop low-confidence survivors
	resolved := p.resolver.Resolve(candidates)
	spans := extract.FilterLowConfidence(resolved)

	// 3. Verify concurrently, preserving span order
	claims := p.verifier.VerifyAll(ctx, spans)

	elapsed := time.Since(started).Seconds()
	p.logger.Info("analysis complete",
		zap.Int("candidates", len(candidates)),
		zap.Int("claims", len(claims)),
		zap.Float64("seconds", elapsed))

	return &model.AnalysisReport{
		Claims:         claims,
		ProcessingTime: math.Round(elapsed*100) / 100,
		TotalClaims:    len(claims),
		Metadata: model.ReportMetadata{
			TextLength:          len(text),
			ExtractionMethod:    extractionMethod,
			VerificationSources: p.registry.Len(),
		},
	}, nil
}

// ReVerify runs verification for a single known claim text, as used by
// the re-verification endpoint. The claim has no span position, so
// start/end are zero and the text doubles as its own context.
func (p *Pipeline) ReVerify(ctx context.Context, claimText string, claimType model.ClaimType) (model.Claim, error) {
	if strings.TrimSpace(claimText) == "" {
		return model.Claim{}, ErrEmptyText
	}

	span := model.Span{
		Text:    strings.TrimSpace(claimText),
		Type:    claimType,
		Context: claimText,
	}
	return p.verifier.VerifySpan(ctx, span), nil
}

// Sources lists the registry catalog for the sources endpoint
func (p *Pipeline) Sources() []model.SourceDescriptor {
	return p.registry.List()
}
