package verify

import (
	"strings"
	"testing"

	"github.com/claimscope/claimscope/internal/model"
)

func TestRuleVerifier_LaunchDate(t *testing.T) {
	v := NewRuleVerifier()

	result := v.Verify("September 2024", model.ClaimTypeDate, "Apple announced the iPhone 16 in September 2024")
	if result.Status != model.StatusVerified {
		t.Errorf("expected verified, got %s", result.Status)
	}
	if result.Confidence != 0.95 {
		t.Errorf("expected confidence 0.95, got %.2f", result.Confidence)
	}
	if len(result.Sources) == 0 || result.Sources[0] != "Apple Press Release" {
		t.Errorf("expected Apple press sources, got %v", result.Sources)
	}
}

func TestRuleVerifier_HistoricalYear(t *testing.T) {
	v := NewRuleVerifier()

	result := v.Verify("2020", model.ClaimTypeDate, "the company was founded in 2020")
	if result.Status != model.StatusVerified {
		t.Errorf("expected verified for a past year, got %s", result.Status)
	}
	if result.Confidence != 0.90 {
		t.Errorf("expected confidence 0.90, got %.2f", result.Confidence)
	}
}

func TestRuleVerifier_FutureYear(t *testing.T) {
	v := NewRuleVerifier()

	result := v.Verify("2999", model.ClaimTypeDate, "scheduled for 2999")
	if result.Status != model.StatusUnverified {
		t.Errorf("expected unverified for a future year, got %s", result.Status)
	}
}

func TestRuleVerifier_CorrectPrice(t *testing.T) {
	v := NewRuleVerifier()

	result := v.Verify("$829", model.ClaimTypeNumber, "the iPhone 16 starts at $829")
	if result.Status != model.StatusVerified {
		t.Errorf("expected verified for $829, got %s", result.Status)
	}
	if result.Confidence != 0.95 {
		t.Errorf("expected confidence 0.95, got %.2f", result.Confidence)
	}
}

func TestRuleVerifier_WrongPrice(t *testing.T) {
	v := NewRuleVerifier()

	result := v.Verify("$799", model.ClaimTypeNumber, "the iPhone 16 starts at $799")
	if result.Status != model.StatusFalse {
		t.Errorf("expected false for $799, got %s", result.Status)
	}
	if !strings.Contains(result.Evidence, "$829") {
		t.Errorf("expected the correction in the evidence, got %q", result.Evidence)
	}
}

func TestRuleVerifier_PriceWithoutProductContext(t *testing.T) {
	v := NewRuleVerifier()

	// Price rules only apply in an iPhone context.
	result := v.Verify("$829", model.ClaimTypeNumber, "the laptop costs $829")
	if result.Status != model.StatusUnverified {
		t.Errorf("expected the default verdict without product context, got %s", result.Status)
	}
}

func TestRuleVerifier_PreOrders(t *testing.T) {
	v := NewRuleVerifier()

	result := v.Verify("40 million", model.ClaimTypeNumber, "analysts expect 40 million pre-orders")
	if result.Status != model.StatusUnverified {
		t.Errorf("expected unverified for unconfirmed pre-orders, got %s", result.Status)
	}
	if result.Confidence != 0.60 {
		t.Errorf("expected confidence 0.60, got %.2f", result.Confidence)
	}
}

func TestRuleVerifier_Chip(t *testing.T) {
	v := NewRuleVerifier()

	result := v.Verify("A18", model.ClaimTypeEntity, "the iPhone 16 features the A18 chip")
	if result.Status != model.StatusVerified {
		t.Errorf("expected verified for the A18 chip, got %s", result.Status)
	}
	if result.Confidence != 0.98 {
		t.Errorf("expected confidence 0.98, got %.2f", result.Confidence)
	}
}

func TestRuleVerifier_KnownCompany(t *testing.T) {
	v := NewRuleVerifier()

	result := v.Verify("Tesla Inc", model.ClaimTypeEntity, "")
	if result.Status != model.StatusVerified {
		t.Errorf("expected verified for a known company, got %s", result.Status)
	}
	if !strings.Contains(result.Evidence, "Tesla") {
		t.Errorf("expected the company name in the evidence, got %q", result.Evidence)
	}
}

func TestRuleVerifier_Superlative(t *testing.T) {
	v := NewRuleVerifier()

	result := v.Verify("the best phone ever made", model.ClaimTypeFact, "")
	if result.Status != model.StatusUnverified {
		t.Errorf("expected unverified for a superlative, got %s", result.Status)
	}
	if result.Confidence != 0.50 {
		t.Errorf("expected confidence 0.50, got %.2f", result.Confidence)
	}
}

func TestRuleVerifier_Default(t *testing.T) {
	v := NewRuleVerifier()

	result := v.Verify("an unremarkable statement", model.ClaimTypeFact, "")
	if result.Status != model.StatusUnverified {
		t.Errorf("expected the default unverified verdict, got %s", result.Status)
	}
	if result.Confidence != 0.60 {
		t.Errorf("expected confidence 0.60, got %.2f", result.Confidence)
	}
	if result.Evidence != "no specific verification found" {
		t.Errorf("unexpected default evidence: %q", result.Evidence)
	}
}
