// Package score assigns each opportunity a relevance score against a
// fixed interest profile. The score is a pure function of the record's
// current fields: a raw weighted sum with no normalization and no
// memory across runs, meaningful only for relative ranking within one
// run.
package score

import (
	"strings"

	"github.com/ewagner/oppscout/internal/model"
)

// Regional and metadata bonuses. The empty-region bonus reflects that
// listings without a stated region are presumptively open to US
// applicants.
const (
	usBonus       = 15
	noRegionBonus = 5
	globalPenalty = 5
	deadlineBonus = 3
	fundingBonus  = 2
	titleBonusDiv = 2
)

// Scorer computes relevance scores.
type Scorer struct {
	interests *Interests
}

// NewScorer creates a Scorer for the given interest profile.
func NewScorer(interests *Interests) *Scorer {
	if interests == nil {
		interests = DefaultInterests()
	}
	return &Scorer{interests: interests}
}

// Score computes the relevance score for one record. Never negative.
func (s *Scorer) Score(o model.Opportunity) int {
	score := 0

	title := strings.ToLower(o.Title)
	region := strings.ToLower(o.Region)

	// Region is checked separately and stays out of the keyword blob.
	text := model.JoinLower(o.Title, o.Description, o.Organisation)

	for keyword, weight := range s.interests.Keywords {
		if !strings.Contains(text, keyword) {
			continue
		}
		score += weight
		if strings.Contains(title, keyword) {
			score += weight / titleBonusDiv
		}
	}

	switch {
	case s.USBased(o):
		score += usBonus
	case strings.TrimSpace(region) == "":
		score += noRegionBonus
	case containsAny(region, s.interests.GlobalIndicators):
		score -= globalPenalty
	}

	if o.Deadline != "" {
		score += deadlineBonus
	}
	if o.FundingSize != "" {
		score += fundingBonus
	}

	if score < 0 {
		score = 0
	}
	return score
}

// USBased reports whether the record carries a US indicator in its
// region field or its combined text.
func (s *Scorer) USBased(o model.Opportunity) bool {
	region := strings.ToLower(o.Region)
	text := model.JoinLower(o.Title, o.Description, o.Organisation)
	return containsAny(region, s.interests.USIndicators) || containsAny(text, s.interests.USIndicators)
}

// ScoreAll recomputes relevance_score and is_us_based for every record
// in place. Idempotent: previously stored values are ignored.
func (s *Scorer) ScoreAll(opps []model.Opportunity) {
	for i := range opps {
		opps[i].IsUSBased = s.USBased(opps[i])
		opps[i].RelevanceScore = s.Score(opps[i])
	}
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
