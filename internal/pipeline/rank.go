package pipeline

import (
	"sort"
	"time"

	"github.com/ewagner/oppscout/internal/dates"
	"github.com/ewagner/oppscout/internal/model"
)

type ranked struct {
	opp         model.Opportunity
	deadline    time.Time
	hasDeadline bool
}

// Rank sorts the active set for presentation: relevance score
// descending, then parsed deadline ascending, with records whose
// deadline cannot be parsed after those with one. Stable, so equal
// records keep their merge order.
func Rank(opps []model.Opportunity) {
	rows := make([]ranked, len(opps))
	for i, opp := range opps {
		t, ok := dates.ParseDeadline(opp.Deadline)
		rows[i] = ranked{opp: opp, deadline: t, hasDeadline: ok}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].opp.RelevanceScore != rows[j].opp.RelevanceScore {
			return rows[i].opp.RelevanceScore > rows[j].opp.RelevanceScore
		}
		if rows[i].hasDeadline != rows[j].hasDeadline {
			return rows[i].hasDeadline
		}
		if !rows[i].hasDeadline {
			return false
		}
		return rows[i].deadline.Before(rows[j].deadline)
	})

	for i := range rows {
		opps[i] = rows[i].opp
	}
}
