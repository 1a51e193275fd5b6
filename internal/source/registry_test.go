package source

import (
	"testing"

	"github.com/claimscope/claimscope/internal/model"
)

func TestRegistry_Catalog(t *testing.T) {
	registry := NewRegistry()

	if registry.Len() != 5 {
		t.Fatalf("expected 5 sources, got %d", registry.Len())
	}

	wiki, ok := registry.Get("wikipedia")
	if !ok {
		t.Fatal("expected wikipedia in the catalog")
	}
	if wiki.Reliability != 0.85 {
		t.Errorf("expected wikipedia reliability 0.85, got %.2f", wiki.Reliability)
	}
	if wiki.Type != model.SourceTypeEncyclopedia {
		t.Errorf("expected encyclopedia type, got %s", wiki.Type)
	}

	if _, ok := registry.Get("unknown"); ok {
		t.Error("expected lookup miss for unknown source")
	}
}

func TestRegistry_ListOrder(t *testing.T) {
	registry := NewRegistry()

	want := []string{"wikipedia", "apple_press", "techcrunch", "reuters", "company_filings"}
	list := registry.List()
	if len(list) != len(want) {
		t.Fatalf("expected %d descriptors, got %d", len(want), len(list))
	}
	for i, name := range want {
		if list[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, list[i].Name)
		}
	}
}

func TestRegistry_RelevantSources(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		claimType model.ClaimType
		first     string
		count     int
	}{
		{model.ClaimTypeDate, "wikipedia", 4},
		{model.ClaimTypeNumber, "company_filings", 3},
		{model.ClaimTypeEntity, "wikipedia", 3},
		{model.ClaimTypeFact, "wikipedia", 4},
	}

	for _, tt := range tests {
		names := registry.RelevantSources(tt.claimType)
		if len(names) != tt.count {
			t.Errorf("%s: expected %d sources, got %d", tt.claimType, tt.count, len(names))
			continue
		}
		if names[0] != tt.first {
			t.Errorf("%s: expected %s first, got %s", tt.claimType, tt.first, names[0])
		}
		for _, name := range names {
			if _, ok := registry.Get(name); !ok {
				t.Errorf("%s: relevance names unknown source %s", tt.claimType, name)
			}
		}
	}
}

func TestRegistry_UnknownTypeFallsBack(t *testing.T) {
	registry := NewRegistry()

	names := registry.RelevantSources(model.ClaimType("opinion"))
	if len(names) != 2 {
		t.Fatalf("expected 2 fallback sources, got %d", len(names))
	}
	if names[0] != "wikipedia" || names[1] != "reuters" {
		t.Errorf("unexpected fallback sources: %v", names)
	}
}
