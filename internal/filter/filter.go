// Package filter decides whether a collected record is in scope for an
// individual narrative-journalism / nonfiction writer. Each record is
// judged independently; there is no state shared between calls.
//
// All keyword and phrase matching is case-insensitive substring
// containment, not word-boundary matching. That is a known source of
// false positives and negatives, kept for compatibility with the data
// the rule tables were tuned on.
package filter

import (
	"strings"

	"github.com/ewagner/oppscout/internal/model"
)

// Filter applies the relevance rules to opportunity records.
type Filter struct {
	rules *Rules
}

// New creates a Filter with the given rule tables.
func New(rules *Rules) *Filter {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Filter{rules: rules}
}

// Admit reports whether the record passes the relevance rules.
func (f *Filter) Admit(o model.Opportunity) bool {
	ok, _ := f.Evaluate(o)
	return ok
}

// Evaluate applies the rules in order and returns the decision along
// with the rule that settled it. First matching rule wins.
func (f *Filter) Evaluate(o model.Opportunity) (bool, string) {
	// 1. Curated records skip everything.
	if o.BypassFilter {
		return true, "bypass"
	}

	// 2. Excluded content types.
	if f.rules.ExcludedTypes[strings.ToLower(o.Type)] {
		return false, "excluded-type"
	}

	// 3. Title sanity.
	title := cleanTitle(o.Title)
	if len([]rune(title)) < 5 {
		return false, "short-title"
	}
	if f.rules.GenericTitles[title] {
		return false, "generic-title"
	}
	for _, bad := range f.rules.BadTitleSubstrings {
		if strings.Contains(title, bad) {
			return false, "bad-title"
		}
	}

	// 4. Organization-targeted opportunities are out of scope for
	// individual writers.
	text := model.JoinLower(o.Title, o.Description)
	for _, phrase := range f.rules.OrgPhrases {
		if strings.Contains(text, phrase) {
			return false, "organization-phrase"
		}
	}
	if anyAmountAtLeast(o.FundingSize, f.rules.OrgFundingThreshold) {
		return false, "organization-funding"
	}

	// 5. Fiction/poetry/MFA terms, unless journalism terms override.
	typed := model.JoinLower(o.Title, o.Description, o.Type)
	for _, keyword := range f.rules.ExcludeKeywords {
		if !strings.Contains(typed, keyword) {
			continue
		}
		if containsAny(typed, f.rules.JournalismOverride) {
			break // Journalism wins over the exclusion.
		}
		return false, "excluded-keyword"
	}

	// 6. Positive signal required: a relevance keyword anywhere, or a
	// valid type token in the type field.
	if containsAny(typed, f.rules.RelevantKeywords) {
		return true, "relevant-keyword"
	}
	if containsAny(strings.ToLower(o.Type), f.rules.ValidTypes) {
		return true, "valid-type"
	}

	return false, "no-signal"
}

// cleanTitle lower-cases the title and strips a trailing "»" link marker
// plus surrounding whitespace.
func cleanTitle(title string) string {
	title = strings.ToLower(strings.TrimSpace(title))
	title = strings.TrimSuffix(title, "»")
	return strings.TrimSpace(title)
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
