package model

import "time"

// CandidateSource is a source URL found by the discovery crawler. It is
// a descriptor of a page worth scraping on future runs, never an
// opportunity record itself.
type CandidateSource struct {
	URL          string    `json:"url"`
	Domain       string    `json:"domain"`
	Title        string    `json:"title,omitempty"`
	Kind         PageKind  `json:"kind"`
	Query        string    `json:"query,omitempty"` // Search query that surfaced the page
	Trusted      bool      `json:"trusted"`         // Domain is on the trusted journalism list
	DiscoveredAt time.Time `json:"discovered_at"`
}

// PageKind classifies a discovered page.
type PageKind string

const (
	PageAggregator  PageKind = "aggregator"  // Lists multiple opportunities
	PageOpportunity PageKind = "opportunity" // A single opportunity
	PageUnknown     PageKind = "unknown"
)
