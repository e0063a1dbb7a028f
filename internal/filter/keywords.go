package filter

// Rules holds the keyword and phrase tables driving relevance
// decisions. Built once at startup and injected, never mutated.
type Rules struct {
	// ExcludedTypes are type tags rejected outright.
	ExcludedTypes map[string]bool

	// GenericTitles are cleaned titles rejected as navigation cruft.
	GenericTitles map[string]bool

	// BadTitleSubstrings are fragments of site chrome that collectors
	// sometimes capture as a listing title.
	BadTitleSubstrings []string

	// OrgPhrases indicate an opportunity targeting organizations rather
	// than individual writers.
	OrgPhrases []string

	// OrgFundingThreshold: any amount in funding_size at or above this
	// is organization-scale money, not an individual grant.
	OrgFundingThreshold int

	// ExcludeKeywords indicate fiction/poetry/MFA territory.
	ExcludeKeywords []string

	// JournalismOverride terms rescue a record from ExcludeKeywords.
	JournalismOverride []string

	// RelevantKeywords admit a record on their own.
	RelevantKeywords []string

	// ValidTypes are tokens accepted in the type field.
	ValidTypes []string
}

// DefaultRules returns the fixed rule tables for individual narrative-
// journalism / nonfiction writers.
func DefaultRules() *Rules {
	return &Rules{
		ExcludedTypes: map[string]bool{
			"newsletter": true,
			"article":    true,
			"blog":       true,
			"post":       true,
		},

		GenericTitles: map[string]bool{
			"tipsheet":      true,
			"fellowships":   true,
			"grants":        true,
			"awards":        true,
			"opportunities": true,
			"resources":     true,
			"about":         true,
			"home":          true,
			"contact":       true,
		},

		BadTitleSubstrings: []string{
			"global investigative journalism network",
			"funds for writers",
		},

		OrgPhrases: []string{
			"media organization",
			"media organisations",
			"news organization",
			"newsroom",
			"media outlet",
			"consortium",
			"collaborative",
			"media development",
			"civil society",
			"independent media houses",
		},

		OrgFundingThreshold: 500_000,

		ExcludeKeywords: []string{
			"poetry", "poet", "fiction writing", "short story", "novel",
			"screenwriting", "screenplay", "playwriting", "playwright",
			"mfa program", "mfa degree", "creative writing mfa",
			"children's book", "young adult fiction", "romance writing",
		},

		JournalismOverride: []string{
			"journalism", "journalist", "investigative", "reporting",
		},

		RelevantKeywords: []string{
			"journalism", "journalist", "investigative", "reporting", "reporter",
			"nonfiction", "non-fiction", "essay", "essayist", "narrative",
			"literary", "longform", "long-form", "feature writing",
			"magazine writing", "news", "media", "documentary",
			"public interest", "accountability", "watchdog",
			"writer", "fellow",
		},

		ValidTypes: []string{
			"fellowship", "grant", "award", "prize", "fund", "scholarship", "funding",
		},
	}
}
