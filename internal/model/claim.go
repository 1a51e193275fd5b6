package model

// ClaimType categorizes the nature of an extracted claim
type ClaimType string

const (
	ClaimTypeDate   ClaimType = "date"   // Calendar dates, years, quarters
	ClaimTypeNumber ClaimType = "number" // Quantities, prices, percentages
	ClaimTypeEntity ClaimType = "entity" // Companies, products, people
	ClaimTypeFact   ClaimType = "fact"   // General factual statements
)

// ParseClaimType maps a string to a ClaimType. Unrecognized values
// return ClaimTypeFact and false so callers can decide whether to reject.
func ParseClaimType(s string) (ClaimType, bool) {
	switch ClaimType(s) {
	case ClaimTypeDate, ClaimTypeNumber, ClaimTypeEntity, ClaimTypeFact:
		return ClaimType(s), true
	default:
		return ClaimTypeFact, false
	}
}

// VerificationStatus is the final verdict assigned to a claim
type VerificationStatus string

const (
	StatusVerified   VerificationStatus = "verified"   // Corroborated by 2+ sources at high confidence
	StatusUnverified VerificationStatus = "unverified" // Insufficient evidence either way
	StatusFalse      VerificationStatus = "false"      // Evidence contradicts the claim
)

// Span is a candidate claim located inside the source text.
// Offsets are half-open byte offsets: [Start, End).
type Span struct {
	Text       string    `json:"text"`       // Exact substring matched (trimmed)
	Start      int       `json:"start"`      // Inclusive start offset
	End        int       `json:"end"`        // Exclusive end offset
	Type       ClaimType `json:"type"`       // Claim category
	Confidence float64   `json:"confidence"` // Extraction heuristic, [0, 1]
	Context    string    `json:"context"`    // Surrounding text window, set once at extraction
}

// Length returns the character span length (End - Start)
func (s Span) Length() int {
	return s.End - s.Start
}

// Overlaps reports whether two half-open spans share any position.
// Touching at a boundary is not an overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && s.End > other.Start
}

// Claim is a fully verified claim as returned to callers
type Claim struct {
	ID         string             `json:"id"`
	Text       string             `json:"text"`
	Start      int                `json:"start"`
	End        int                `json:"end"`
	Type       ClaimType          `json:"type"`
	Status     VerificationStatus `json:"status"`
	Confidence int                `json:"confidence"` // Integer percentage, 0-100
	Sources    []string           `json:"sources"`    // Source names in query order
	Evidence   string             `json:"evidence"`   // Free-text explanation
}
