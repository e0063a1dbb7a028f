// Package collect gathers raw opportunity records from external
// sources. Each collector owns one source and emits best-effort
// records; a failed fetch produces a fallback record carrying
// scrape_error rather than nothing, so curated metadata still flows
// through the pipeline.
package collect

import (
	"context"

	"github.com/ewagner/oppscout/internal/model"
)

// Collector fetches raw opportunity records from one external source.
type Collector interface {
	// Name identifies the collector in logs and run summaries.
	Name() string

	// Collect returns the source's current listings. Partial results
	// alongside an error are valid.
	Collect(ctx context.Context) ([]model.Opportunity, error)
}

// maxDescription is the upstream truncation limit for descriptions.
const maxDescription = 500

// truncate shortens free text to the description limit, marking the cut
// with an ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}
