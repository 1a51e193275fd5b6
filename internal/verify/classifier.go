package verify

import "github.com/claimscope/claimscope/internal/model"

// Classifier maps aggregated confidence and corroboration count to a
// verification status using fixed thresholds.
type Classifier struct {
	verifiedConfidence float64
	verifiedSources    int
	falseConfidence    float64
}

// NewClassifier creates a classifier with the standard thresholds
func NewClassifier() *Classifier {
	return &Classifier{
		verifiedConfidence: 0.85,
		verifiedSources:    2,
		falseConfidence:    0.40,
	}
}

// Classify returns the status for a confidence/source-count pair.
// The verified rule is evaluated before the false rule, and the
// corroboration requirement is absolute: a single source never yields
// verified no matter how confident it is.
func (c *Classifier) Classify(confidence float64, sourceCount int) model.VerificationStatus {
	switch {
	case confidence >= c.verifiedConfidence && sourceCount >= c.verifiedSources:
		return model.StatusVerified
	case confidence < c.falseConfidence:
		return model.StatusFalse
	default:
		return model.StatusUnverified
	}
}
