package collect

import (
	"strings"
	"testing"
)

func TestParseGFMDText_FullBlob(t *testing.T) {
	raw := "Media Forward Fund for independent mediaOrganisation:Media Forward FundRegion:EuropeStatus:OpenDeadline:20/02/2026Type:GrantFunding Size:€200,000"

	fields := parseGFMDText(raw)

	if fields.title != "Media Forward Fund for independent media" {
		t.Errorf("title = %q", fields.title)
	}
	if fields.organisation != "Media Forward Fund" {
		t.Errorf("organisation = %q", fields.organisation)
	}
	if fields.region != "Europe" {
		t.Errorf("region = %q", fields.region)
	}
	if fields.deadline != "20/02/2026" {
		t.Errorf("deadline = %q", fields.deadline)
	}
	if fields.fundingType != "Grant" {
		t.Errorf("fundingType = %q", fields.fundingType)
	}
	if fields.fundingSize != "€200,000" {
		t.Errorf("fundingSize = %q", fields.fundingSize)
	}
}

func TestParseGFMDText_OngoingDeadline(t *testing.T) {
	raw := "Rapid Response FundOrganisation:Free Press UnlimitedRegion:GlobalStatus:OpenDeadline:OngoingType:Fund"

	fields := parseGFMDText(raw)

	if fields.deadline != "" {
		t.Errorf("Expected ongoing deadline dropped, got %q", fields.deadline)
	}
	if fields.fundingType != "Fund" {
		t.Errorf("fundingType = %q", fields.fundingType)
	}
	if fields.fundingSize != "" {
		t.Errorf("Expected no funding size, got %q", fields.fundingSize)
	}
}

func TestParseGFMDText_PlainTitle(t *testing.T) {
	// Text without the metadata markers passes through untouched.
	fields := parseGFMDText("Journalism Emergency Fund")

	if fields.title != "Journalism Emergency Fund" {
		t.Errorf("title = %q", fields.title)
	}
	if fields.organisation != "" || fields.deadline != "" {
		t.Errorf("Expected empty metadata, got %+v", fields)
	}
}

func TestExtractFundingAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"receives", "Each fellow receives $10,000 over nine months", "$10,000"},
		{"amount before keyword", "a $15,000 award for midcareer writers", "$15,000"},
		{"up to", "Recipients get up to $50,000 for reporting projects", "up to $50,000"},
		{"currency code", "The stipend is USD 20,000 per year", "USD 20,000"},
		{"range", "stipend of $5,000 - $25,000 depending on scope", "$5,000 - $25,000"},
		{"bare fallback in range", "We offer $12,500 to selected applicants", "$12,500"},
		{"bare fallback too small", "Tickets cost $25 at the door", ""},
		{"bare fallback too large", "The endowment totals $900,000,000", ""},
		{"nothing", "Apply with two writing samples", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractFundingAmount(tt.input)
			if got != tt.expected {
				t.Errorf("extractFundingAmount(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("Expected unchanged, got %q", got)
	}

	long := strings.Repeat("x", 600)
	got := truncate(long, maxDescription)
	if len([]rune(got)) != maxDescription {
		t.Errorf("Expected %d runes, got %d", maxDescription, len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("Expected ellipsis suffix")
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "  no markup here  ", "no markup here"},
		{"simple markup", "<p>Apply <strong>now</strong></p>", "Apply now"},
		{"script dropped", "<p>visible</p><script>alert(1)</script>", "visible"},
		{"style dropped", "<style>p{color:red}</style><p>text</p>", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripHTML(tt.input)
			if got != tt.expected {
				t.Errorf("stripHTML(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTrimTitleSuffix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Creative Writing Fellowships | National Endowment for the Arts", "Creative Writing Fellowships"},
		{"Matthew Power Literary Reporting Award - NYU", "Matthew Power Literary Reporting Award"},
		{"No Suffix Here", "No Suffix Here"},
	}

	for _, tt := range tests {
		got := trimTitleSuffix(tt.input)
		if got != tt.expected {
			t.Errorf("trimTitleSuffix(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestDirectSources_BypassEntriesHaveMetadata(t *testing.T) {
	// Bypass entries skip the relevance filter entirely, so each one must
	// carry verified metadata rather than rely on scraping.
	bypassCount := 0
	for _, src := range directSources {
		if !src.bypassFilter {
			continue
		}
		bypassCount++
		if src.knownDescription == "" {
			t.Errorf("Bypass source %q has no known description", src.name)
		}
	}
	if bypassCount == 0 {
		t.Error("Expected at least one bypass source")
	}
}
