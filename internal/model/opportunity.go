package model

import (
	"strings"
	"time"
)

// Opportunity is one fellowship/grant/award listing collected from an
// external source. It is the unit flowing through the whole pipeline.
//
// There is no primary key: downstream identity is emergent from the
// matching policy in internal/match (normalized URL or fuzzy title).
type Opportunity struct {
	Title       string `json:"title"`                 // Listing display name
	URL         string `json:"url"`                   // Absolute URI; may be empty for malformed scrapes
	Source      string `json:"source"`                // Collector that produced this record
	SourceURL   string `json:"source_url"`            // Page/feed the collector read
	Type        string `json:"type"`                  // Free-text category tag (fellowship, grant, ...)
	Description string `json:"description,omitempty"` // Free text, truncated upstream to <=500 chars

	ScrapedAt time.Time `json:"scraped_at"` // When the collector saw this record

	Deadline     string `json:"deadline,omitempty"`     // Free-text date expression, parsed lazily
	FundingSize  string `json:"funding_size,omitempty"` // Free-text amount, e.g. "$10,000 - $20,000"
	Region       string `json:"region,omitempty"`       // Mostly from GFMD structured listings
	Organisation string `json:"organisation,omitempty"`
	Eligibility  string `json:"eligibility,omitempty"`

	// BypassFilter admits a curated known-good record without relevance
	// evaluation.
	BypassFilter bool `json:"bypass_filter,omitempty"`

	// ScrapeError marks a failed fetch; the record is still passed
	// through with whatever fallback data was available.
	ScrapeError string `json:"scrape_error,omitempty"`

	// RelevanceScore is recomputed from scratch every run for the whole
	// active set; the persisted value is never authoritative.
	RelevanceScore int `json:"relevance_score"`

	// IsUSBased is stamped alongside the score when a US indicator is
	// found in the region field or the record text.
	IsUSBased bool `json:"is_us_based,omitempty"`

	// ArchivedAt is stamped exactly once, when the record leaves the
	// active set.
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

// JoinLower builds the lower-cased searchable blob used by keyword
// matching. Which fields participate differs per component, so callers
// pass exactly the pieces they want rather than sharing one blob.
func JoinLower(parts ...string) string {
	return strings.ToLower(strings.Join(parts, " "))
}
