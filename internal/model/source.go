package model

// SourceType classifies a knowledge source
type SourceType string

const (
	SourceTypeEncyclopedia SourceType = "encyclopedia"
	SourceTypeOfficial     SourceType = "official"
	SourceTypeNews         SourceType = "news"
)

// SourceDescriptor describes a knowledge source in the registry.
// Descriptors are built once at process start and never mutated.
type SourceDescriptor struct {
	Name        string     `json:"name"`
	Reliability float64    `json:"reliability"` // Static trust weight, [0, 1]
	Type        SourceType `json:"type"`
	Endpoint    string     `json:"endpoint,omitempty"`   // Where a production client would point
	RateLimit   int        `json:"rate_limit,omitempty"` // Requests per minute for that client
}

// EvidenceRecord is one source's answer for a claim query.
// Reliability is copied from the descriptor at query time so overall
// confidence is always derivable from the records alone.
type EvidenceRecord struct {
	Source      string  `json:"source"`
	Reliability float64 `json:"reliability"`
	Confidence  float64 `json:"confidence"` // Source-reported, [0, 1]
	Title       string  `json:"title,omitempty"`
	Excerpt     string  `json:"excerpt,omitempty"`
	URL         string  `json:"url,omitempty"`
}
