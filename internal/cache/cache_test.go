package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/claimscope/claimscope/internal/model"
)

func sampleClaim(id string) model.Claim {
	return model.Claim{
		ID:         id,
		Text:       "iPhone 16",
		Type:       model.ClaimTypeEntity,
		Status:     model.StatusVerified,
		Confidence: 94,
		Sources:    []string{"wikipedia", "apple_press"},
	}
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	c.Set("key", sampleClaim("a"), time.Minute)

	got, found := c.Get("key")
	if !found {
		t.Fatal("expected cache hit")
	}
	if got.ID != "a" || got.Status != model.StatusVerified || got.Confidence != 94 {
		t.Errorf("cached claim mangled: %+v", got)
	}

	if _, found := c.Get("missing"); found {
		t.Error("expected cache miss for unknown key")
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	c.Set("key", sampleClaim("a"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, found := c.Get("key"); found {
		t.Error("expected entry to expire")
	}
}

func TestMemoryCache_DeleteClear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	c.Set("a", sampleClaim("a"), time.Minute)
	c.Set("b", sampleClaim("b"), time.Minute)

	c.Delete("a")
	if _, found := c.Get("a"); found {
		t.Error("expected 'a' to be deleted")
	}
	if _, found := c.Get("b"); !found {
		t.Error("expected 'b' to survive the delete")
	}

	c.Clear()
	if _, found := c.Get("b"); found {
		t.Error("expected 'b' to be cleared")
	}
}

func TestKey(t *testing.T) {
	k1 := Key("iPhone 16", "entity", "Apple announced the iPhone 16")
	k2 := Key("iPhone 16", "entity", "Apple announced the iPhone 16")
	if k1 != k2 {
		t.Error("identical inputs must produce identical keys")
	}

	if Key("iPhone 16", "entity", "ctx") == Key("iPhone 16", "fact", "ctx") {
		t.Error("different claim types must produce different keys")
	}
	if Key("iPhone 16", "entity", "ctx") == Key("iPhone 17", "entity", "ctx") {
		t.Error("different claim texts must produce different keys")
	}
	if Key("$829", "number", "the iPhone 16 starts at $829") == Key("$829", "number", "the vacuum costs $829") {
		t.Error("different contexts must produce different keys")
	}

	if !strings.HasPrefix(k1, "claimscope:v1:") {
		t.Errorf("expected versioned key prefix, got %q", k1)
	}
}
