package collect

import (
	"context"

	"github.com/ewagner/oppscout/internal/model"
)

// directSources are organization pages scraped directly. The last four
// are general-purpose grant programs that would not survive the
// journalism relevance rules but are known-good for independent
// writers, so they carry the bypass flag.
var directSources = []curatedSource{
	{
		name: "NEA Creative Writing Fellowships",
		url:  "https://www.arts.gov/grants/creative-writing-fellowships",
		typ:  "fellowship",
	},
	{
		name: "Whiting Foundation",
		url:  "https://www.whiting.org/writers/creative-nonfiction-grant",
		typ:  "grant",
	},
	{
		name: "Fund for Investigative Journalism",
		url:  "https://fij.org/grants/",
		typ:  "grant",
	},
	{
		name: "PEN America Literary Awards",
		url:  "https://pen.org/literary-awards/",
		typ:  "award",
	},
	{
		name:             "Emergent Ventures",
		url:              "https://www.mercatus.org/emergent-ventures",
		typ:              "grant",
		knownAmount:      "$1,000 - $50,000",
		knownDescription: "Fast grants for ideas that improve society. Funds ambitious projects including journalism, media, research, and writing. Rolling applications, no restrictions on profit-making.",
		knownEligibility: "Open globally to anyone 13+. No citizenship or residency requirements.",
		bypassFilter:     true,
	},
	{
		name:             "ACX Grants",
		url:              "https://www.astralcodexten.com/p/apply-for-an-acx-grant-2025",
		typ:              "grant",
		knownAmount:      "$5,000 - $100,000",
		knownDescription: "Annual grants from Scott Alexander's Astral Codex Ten for diverse projects including research, writing, and creative ventures. Funded 42 projects in 2025 round.",
		knownEligibility: "Open to anyone with a compelling project idea.",
		bypassFilter:     true,
	},
	{
		name:             "1517 Fund Medici Grant",
		url:              "https://www.1517fund.com/",
		typ:              "grant",
		knownAmount:      "$1,000 - $100,000",
		knownDescription: "Micro-grants and R&D funding for early-stage builders and researchers. Supports experimental projects, writing, and ideas outside traditional institutions.",
		knownEligibility: "Open to young builders, researchers, and creators globally.",
		bypassFilter:     true,
	},
	{
		name:             "Awesome Foundation",
		url:              "https://www.awesomefoundation.org/en",
		typ:              "grant",
		knownAmount:      "$1,000",
		knownDescription: "Monthly micro-grants for 'awesome' projects with no strings attached. 80+ local chapters worldwide funding arts, technology, community, and creative projects.",
		knownEligibility: "Anyone can apply - individuals, groups, or organizations.",
		bypassFilter:     true,
	},
}

// Direct scrapes the curated direct organization pages.
type Direct struct {
	fetcher *Fetcher
}

// NewDirect creates the direct-pages collector.
func NewDirect(fetcher *Fetcher) *Direct {
	return &Direct{fetcher: fetcher}
}

// Name implements Collector.
func (c *Direct) Name() string { return "Direct Sources" }

// Collect implements Collector.
func (c *Direct) Collect(ctx context.Context) ([]model.Opportunity, error) {
	return collectCurated(ctx, c.fetcher, directSources), nil
}
