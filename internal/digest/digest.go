// Package digest renders and delivers the periodic email summary of
// the active opportunity set.
package digest

import (
	"sort"
	"time"

	"github.com/ewagner/oppscout/internal/dates"
	"github.com/ewagner/oppscout/internal/model"
)

// Entry pairs an opportunity with its parsed deadline for presentation.
type Entry struct {
	model.Opportunity
	ParsedDeadline time.Time
	ClosingSoon    bool
}

// ClosingSoon returns the opportunities whose deadline falls within the
// next `days` days, soonest first.
func ClosingSoon(opps []model.Opportunity, now time.Time, days int) []Entry {
	window := time.Duration(days) * 24 * time.Hour

	var closing []Entry
	for _, opp := range opps {
		if deadline, ok := dates.ClosesWithin(opp.Deadline, now, window); ok {
			closing = append(closing, Entry{
				Opportunity:    opp,
				ParsedDeadline: deadline,
				ClosingSoon:    true,
			})
		}
	}

	sort.SliceStable(closing, func(i, j int) bool {
		return closing[i].ParsedDeadline.Before(closing[j].ParsedDeadline)
	})

	return closing
}

// NewSince returns the opportunities first scraped within the last
// `days` days, in their ranked order.
func NewSince(opps []model.Opportunity, now time.Time, days int) []Entry {
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)

	var fresh []Entry
	for _, opp := range opps {
		if !opp.ScrapedAt.IsZero() && !opp.ScrapedAt.Before(cutoff) {
			fresh = append(fresh, Entry{Opportunity: opp})
		}
	}

	return fresh
}
