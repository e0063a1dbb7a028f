package filter

import (
	"testing"

	"github.com/ewagner/oppscout/internal/model"
)

func TestFilter_Evaluate_BypassWinsOverEverything(t *testing.T) {
	f := New(nil)

	// A record that would fail on type AND keywords still passes when
	// curated with the bypass flag.
	o := model.Opportunity{
		Title:        "Poetry Newsletter Digest",
		Type:         "newsletter",
		Description:  "poetry and fiction writing news",
		BypassFilter: true,
	}

	ok, reason := f.Evaluate(o)
	if !ok {
		t.Fatalf("Expected bypass record to pass, rejected with %q", reason)
	}
	if reason != "bypass" {
		t.Errorf("Expected reason 'bypass', got %q", reason)
	}
}

func TestFilter_Evaluate_ExcludedTypes(t *testing.T) {
	f := New(nil)

	for _, typ := range []string{"newsletter", "article", "blog", "post", "Newsletter"} {
		o := model.Opportunity{Title: "Investigative Reporting Grant", Type: typ}
		if ok, reason := f.Evaluate(o); ok || reason != "excluded-type" {
			t.Errorf("Expected type %q rejected as excluded-type, got ok=%v reason=%q", typ, ok, reason)
		}
	}
}

func TestFilter_Evaluate_ShortTitle(t *testing.T) {
	f := New(nil)

	o := model.Opportunity{Title: "FAQ", Type: "grant"}
	if ok, reason := f.Evaluate(o); ok || reason != "short-title" {
		t.Errorf("Expected short title rejected, got ok=%v reason=%q", ok, reason)
	}
}

func TestFilter_Evaluate_GenericTitle(t *testing.T) {
	f := New(nil)

	// Trailing link marker is stripped before the generic-title check.
	o := model.Opportunity{Title: "  Fellowships »", Type: "fellowship"}
	if ok, reason := f.Evaluate(o); ok || reason != "generic-title" {
		t.Errorf("Expected generic title rejected, got ok=%v reason=%q", ok, reason)
	}
}

func TestFilter_Evaluate_BadTitleSubstring(t *testing.T) {
	f := New(nil)

	o := model.Opportunity{Title: "Global Investigative Journalism Network Resource Center", Type: "grant"}
	if ok, reason := f.Evaluate(o); ok || reason != "bad-title" {
		t.Errorf("Expected site-chrome title rejected, got ok=%v reason=%q", ok, reason)
	}
}

func TestFilter_Evaluate_OrganizationPhrase(t *testing.T) {
	f := New(nil)

	o := model.Opportunity{
		Title:       "Media Development Fund",
		Description: "Supports newsroom innovation across the region",
		Type:        "fund",
	}
	if ok, reason := f.Evaluate(o); ok || reason != "organization-phrase" {
		t.Errorf("Expected org-targeted record rejected, got ok=%v reason=%q", ok, reason)
	}
}

func TestFilter_Evaluate_OrganizationFunding(t *testing.T) {
	f := New(nil)

	big := model.Opportunity{
		Title:       "Investigative Journalism Initiative",
		Type:        "grant",
		FundingSize: "$750,000",
	}
	if ok, reason := f.Evaluate(big); ok || reason != "organization-funding" {
		t.Errorf("Expected $750,000 rejected as org money, got ok=%v reason=%q", ok, reason)
	}

	small := model.Opportunity{
		Title:       "Investigative Journalism Initiative",
		Type:        "grant",
		FundingSize: "$10,000",
	}
	if ok, _ := f.Evaluate(small); !ok {
		t.Error("Expected $10,000 grant to pass")
	}
}

func TestFilter_Evaluate_FundingRange(t *testing.T) {
	f := New(nil)

	// Any amount in the range at or above the threshold rejects.
	o := model.Opportunity{
		Title:       "Investigative Journalism Initiative",
		Type:        "grant",
		FundingSize: "$50,000 - $600,000",
	}
	if ok, reason := f.Evaluate(o); ok || reason != "organization-funding" {
		t.Errorf("Expected range topping out above threshold rejected, got ok=%v reason=%q", ok, reason)
	}
}

func TestFilter_Evaluate_ExcludedKeyword(t *testing.T) {
	f := New(nil)

	o := model.Opportunity{
		Title:       "Poetry Chapbook Prize",
		Description: "For emerging poets",
		Type:        "prize",
	}
	if ok, reason := f.Evaluate(o); ok || reason != "excluded-keyword" {
		t.Errorf("Expected poetry record rejected, got ok=%v reason=%q", ok, reason)
	}
}

func TestFilter_Evaluate_JournalismOverridesExclusion(t *testing.T) {
	f := New(nil)

	o := model.Opportunity{
		Title:       "Poetry of Witness Fellowship",
		Description: "For journalists documenting conflict through verse",
		Type:        "fellowship",
	}
	ok, reason := f.Evaluate(o)
	if !ok {
		t.Fatalf("Expected journalism term to override poetry exclusion, rejected with %q", reason)
	}
}

func TestFilter_Evaluate_RelevantKeyword(t *testing.T) {
	f := New(nil)

	o := model.Opportunity{
		Title:       "Narrative Nonfiction Residency",
		Description: "Six months to work on a longform project",
		Type:        "residency",
	}
	ok, reason := f.Evaluate(o)
	if !ok || reason != "relevant-keyword" {
		t.Errorf("Expected admit on relevant keyword, got ok=%v reason=%q", ok, reason)
	}
}

func TestFilter_Evaluate_ValidTypeAlone(t *testing.T) {
	f := New(nil)

	// No relevance keyword anywhere, but the type field carries a valid
	// token.
	o := model.Opportunity{
		Title: "Emergent Ventures India",
		Type:  "grant",
	}
	ok, reason := f.Evaluate(o)
	if !ok || reason != "valid-type" {
		t.Errorf("Expected admit on valid type, got ok=%v reason=%q", ok, reason)
	}
}

func TestFilter_Evaluate_NoSignal(t *testing.T) {
	f := New(nil)

	o := model.Opportunity{
		Title: "Annual Gala Tickets",
		Type:  "event",
	}
	if ok, reason := f.Evaluate(o); ok || reason != "no-signal" {
		t.Errorf("Expected record with no signal rejected, got ok=%v reason=%q", ok, reason)
	}
}

func TestFilter_Admit(t *testing.T) {
	f := New(nil)

	if !f.Admit(model.Opportunity{Title: "Investigative Reporting Grant", Type: "grant"}) {
		t.Error("Expected relevant record admitted")
	}
	if f.Admit(model.Opportunity{Title: "Tipsheet", Type: "grant"}) {
		t.Error("Expected generic title rejected")
	}
}

func TestAmounts(t *testing.T) {
	tests := []struct {
		input    string
		expected []int
	}{
		{"$750,000", []int{750000}},
		{"$10,000 - $20,000", []int{10000, 20000}},
		{"up to 5000 USD", []int{5000}},
		{"stipend varies", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := amounts(tt.input)
		if len(got) != len(tt.expected) {
			t.Errorf("amounts(%q) = %v, want %v", tt.input, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("amounts(%q) = %v, want %v", tt.input, got, tt.expected)
				break
			}
		}
	}
}

func TestAnyAmountAtLeast(t *testing.T) {
	if !anyAmountAtLeast("$500,000", 500_000) {
		t.Error("Expected threshold to be inclusive")
	}
	if anyAmountAtLeast("$499,999", 500_000) {
		t.Error("Expected amount below threshold to pass")
	}
}
