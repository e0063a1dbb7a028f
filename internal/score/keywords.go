package score

// Interests holds the fixed interest-keyword table and the regional
// indicator lists. Built once at startup and injected, never mutated.
type Interests struct {
	// Keywords maps a keyword to its weight. A match in the combined
	// title+description+organisation text adds the weight; a match in
	// the title adds half the weight again.
	Keywords map[string]int

	// USIndicators boost opportunities open to US applicants.
	USIndicators []string

	// GlobalIndicators mark explicitly non-US regional focus.
	GlobalIndicators []string
}

// DefaultInterests returns the fixed interest profile: consciousness/
// contemplative/neuroscience topics and political-economy/poverty/policy
// topics at high weight, generic narrative/nonfiction terms at low
// weight.
func DefaultInterests() *Interests {
	return &Interests{
		Keywords: map[string]int{
			// Consciousness, meditation, psychedelics
			"consciousness": 10,
			"psychedelic":   10,
			"psychedelics":  10,
			"meditation":    10,
			"contemplative": 8,
			"phenomenology": 8,
			"neuroscience":  6,
			"mental health": 6,
			"philosophy":    6,
			"mind":          5,
			"brain":         5,
			"psychology":    4,

			// Political economy, anti-poverty
			"poverty":           10,
			"anti-poverty":      10,
			"economic justice":  10,
			"basic income":      10,
			"universal basic":   10,
			"ubi":               10,
			"political economy": 10,
			"inequality":        8,
			"social policy":     8,
			"welfare":           6,
			"progressive":       6,
			"economics":         5,
			"labor":             5,
			"workers":           5,
			"policy":            4,

			// Science writing
			"science":    5,
			"scientific": 4,
			"research":   3,

			// Narrative/longform
			"narrative":   4,
			"longform":    4,
			"long-form":   4,
			"literary":    4,
			"nonfiction":  3,
			"non-fiction": 3,
			"essay":       3,
			"feature":     2,
		},

		USIndicators: []string{
			"north america",
			"united states",
			"u.s.",
			"us-based",
			"american",
		},

		GlobalIndicators: []string{
			"eastern europe",
			"africa",
			"asia",
			"latin america",
			"middle east",
			"european union",
			"eu countries",
			"ukraine",
			"global south",
		},
	}
}
