// Package match decides when two opportunity records are the same
// listing. Identity is emergent: either the normalized URLs are equal or
// the titles are nearly identical. The predicate is deliberately not
// transitive (A≈B and B≈C does not force A≈C); scanning candidates
// against the full accumulated reference set still collapses chains of
// near-duplicates in practice.
package match

import "github.com/ewagner/oppscout/internal/model"

// DefaultTitleThreshold is the similarity at or above which two titles
// are considered the same listing. Deliberately strict.
const DefaultTitleThreshold = 0.9

// Deduper removes duplicate opportunity records.
type Deduper struct {
	titleThreshold float64
}

// NewDeduper creates a Deduper with the default title threshold.
func NewDeduper() *Deduper {
	return &Deduper{titleThreshold: DefaultTitleThreshold}
}

// NewDeduperWithThreshold creates a Deduper with a custom title
// similarity threshold.
func NewDeduperWithThreshold(threshold float64) *Deduper {
	return &Deduper{titleThreshold: threshold}
}

// IsDuplicate reports whether a and b identify the same listing: both
// have URLs and the normalized forms are equal, or the titles are at
// least titleThreshold similar. Symmetric in its arguments.
func (d *Deduper) IsDuplicate(a, b model.Opportunity) bool {
	if a.URL != "" && b.URL != "" {
		if NormalizeURL(a.URL) == NormalizeURL(b.URL) {
			return true
		}
	}

	return TitleSimilarity(a.Title, b.Title) >= d.titleThreshold
}

// Deduplicate returns the candidates that are not duplicates of anything
// in existing nor of an earlier accepted candidate, in input order. Each
// accepted candidate joins the reference set, so O(n·m) comparisons;
// fine for the hundreds of records a run produces.
func (d *Deduper) Deduplicate(candidates, existing []model.Opportunity) []model.Opportunity {
	reference := make([]model.Opportunity, len(existing), len(existing)+len(candidates))
	copy(reference, existing)

	var unique []model.Opportunity
	for _, cand := range candidates {
		dup := false
		for _, ref := range reference {
			if d.IsDuplicate(cand, ref) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, cand)
			reference = append(reference, cand)
		}
	}

	return unique
}
