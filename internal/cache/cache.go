package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/claimscope/claimscope/internal/model"
)

// Cache stores verification verdicts for reuse across requests
type Cache interface {
	Get(key string) (model.Claim, bool)
	Set(key string, claim model.Claim, ttl time.Duration)
	Delete(key string)
	Clear()
}

// Key generates a cache key for a claim. The extraction context is part
// of the identity: rule verdicts depend on it, so the same text in a
// different context must not share a cached verdict.
func Key(claimText, claimType, context string) string {
	hash := sha256.Sum256([]byte(claimType + "\x00" + claimText + "\x00" + context))
	return "claimscope:v1:" + hex.EncodeToString(hash[:])
}
