package source

import "github.com/claimscope/claimscope/internal/model"

// Registry is the static catalog of knowledge sources. It is built once
// at process start and never mutated, so unsynchronized concurrent
// reads are safe.
type Registry struct {
	order     []string
	sources   map[string]model.SourceDescriptor
	relevance map[model.ClaimType][]string
	fallback  []string
}

// NewRegistry builds the standard source catalog. Reliability weights
// and the relevance table are fixed configuration, not runtime state.
func NewRegistry() *Registry {
	descriptors := []model.SourceDescriptor{
		{
			Name:        "wikipedia",
			Reliability: 0.85,
			Type:        model.SourceTypeEncyclopedia,
			Endpoint:    "https://en.wikipedia.org/api/rest_v1/",
			RateLimit:   100,
		},
		{
			Name:        "apple_press",
			Reliability: 0.95,
			Type:        model.SourceTypeOfficial,
			Endpoint:    "https://www.apple.com/newsroom/",
			RateLimit:   60,
		},
		{
			Name:        "techcrunch",
			Reliability: 0.80,
			Type:        model.SourceTypeNews,
			Endpoint:    "https://techcrunch.com/wp-json/",
			RateLimit:   50,
		},
		{
			Name:        "reuters",
			Reliability: 0.90,
			Type:        model.SourceTypeNews,
			Endpoint:    "https://www.reuters.com/",
			RateLimit:   30,
		},
		{
			Name:        "company_filings",
			Reliability: 0.95,
			Type:        model.SourceTypeOfficial,
			Endpoint:    "https://www.sec.gov/",
			RateLimit:   20,
		},
	}

	registry := &Registry{
		sources: make(map[string]model.SourceDescriptor, len(descriptors)),
		relevance: map[model.ClaimType][]string{
			model.ClaimTypeDate:   {"wikipedia", "apple_press", "techcrunch", "reuters"},
			model.ClaimTypeNumber: {"company_filings", "reuters", "techcrunch"},
			model.ClaimTypeEntity: {"wikipedia", "apple_press", "company_filings"},
			model.ClaimTypeFact:   {"wikipedia", "reuters", "techcrunch", "apple_press"},
		},
		fallback: []string{"wikipedia", "reuters"},
	}
	for _, d := range descriptors {
		registry.order = append(registry.order, d.Name)
		registry.sources[d.Name] = d
	}

	return registry
}

// Get returns the descriptor for a source name
func (r *Registry) Get(name string) (model.SourceDescriptor, bool) {
	d, ok := r.sources[name]
	return d, ok
}

// RelevantSources returns the ordered source names to query for a claim
// type. Unrecognized types fall back to the general-purpose pair.
func (r *Registry) RelevantSources(t model.ClaimType) []string {
	switch t {
	case model.ClaimTypeDate, model.ClaimTypeNumber, model.ClaimTypeEntity, model.ClaimTypeFact:
		return r.relevance[t]
	default:
		return r.fallback
	}
}

// List returns all descriptors in catalog order
func (r *Registry) List() []model.SourceDescriptor {
	out := make([]model.SourceDescriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.sources[name])
	}
	return out
}

// Len returns the number of registered sources
func (r *Registry) Len() int {
	return len(r.order)
}
