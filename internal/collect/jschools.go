package collect

import (
	"context"

	"github.com/ewagner/oppscout/internal/model"
)

// jschoolSources are university journalism fellowship pages with
// verified fallback metadata.
var jschoolSources = []curatedSource{
	{
		name:             "Berkeley BCSP Ferriss Fellowship",
		url:              "https://fellowships.journalism.berkeley.edu/bcsp/",
		typ:              "fellowship",
		knownAmount:      "$10,000",
		knownDeadline:    "January 31, 2026",
		knownDescription: "Reporting grants supporting in-depth print and audio journalism on the science, policy, business, and culture of psychedelics. A project of the UC Berkeley Center for the Science of Psychedelics.",
		knownEligibility: "Open to journalists of all nationalities and backgrounds. No residency requirement.",
	},
	{
		name:             "NYU Matthew Power Award",
		url:              "https://journalism.nyu.edu/about-us/awards-and-fellowships/matthew-power-literary-reporting-award/",
		typ:              "award",
		knownAmount:      "$15,000",
		knownDescription: "Honors ambitious, unconventional long-form narrative journalism that illuminates the human condition. Named after Matthew Power, who reported on overlooked people and places.",
		knownEligibility: "Freelance writers working on narrative nonfiction. Project must be in progress but not yet completed.",
	},
	{
		name:             "Columbia Journalism Fellowships",
		url:              "https://journalism.columbia.edu/fellowships",
		typ:              "fellowship",
		knownDescription: "Multiple fellowship programs including Knight-Bagehot (business/economics journalism), Stabile Center (investigative), and international programs. Varies by specific fellowship.",
		knownEligibility: "Varies by program. Generally requires professional journalism experience.",
	},
	{
		name:             "Knight-Wallace Fellowships",
		url:              "https://wallacehouse.umich.edu/knight-wallace/",
		typ:              "fellowship",
		knownAmount:      "$75,000 stipend",
		knownDescription: "Eight-month residential fellowship at University of Michigan for study, reflection, and collaboration. Fellows design their own course of study across all university departments.",
		knownEligibility: "Mid-career journalists (5+ years experience) from any medium. Must be able to relocate to Ann Arbor.",
	},
	{
		name:             "Nieman Fellowships",
		url:              "https://nieman.harvard.edu/fellowships/",
		typ:              "fellowship",
		knownAmount:      "$75,000 stipend",
		knownDescription: "Academic year at Harvard for journalists to pursue any course of study. Focus on professional development and expanding intellectual horizons. Access to all Harvard courses and resources.",
		knownEligibility: "Mid-career journalists (5+ years experience). Strong preference for working journalists. Must relocate to Cambridge, MA.",
	},
	{
		name:             "USC Annenberg Fellowships",
		url:              "https://annenberg.usc.edu/journalism/fellowships",
		typ:              "fellowship",
		knownDescription: "Various fellowship programs focusing on health journalism, specialized reporting, and professional development at USC in Los Angeles.",
		knownEligibility: "Varies by specific fellowship program.",
	},
	{
		name:             "Northwestern Medill Fellowships",
		url:              "https://www.medill.northwestern.edu/professional-education/",
		typ:              "fellowship",
		knownDescription: "Programs including the O'Brien Fellowship in Public Service Journalism supporting investigative and public interest reporting projects.",
		knownEligibility: "Working journalists. Requirements vary by specific program.",
	},
}

// JSchools scrapes the curated university fellowship pages.
type JSchools struct {
	fetcher *Fetcher
}

// NewJSchools creates the J-school collector.
func NewJSchools(fetcher *Fetcher) *JSchools {
	return &JSchools{fetcher: fetcher}
}

// Name implements Collector.
func (c *JSchools) Name() string { return "J-Schools" }

// Collect implements Collector.
func (c *JSchools) Collect(ctx context.Context) ([]model.Opportunity, error) {
	return collectCurated(ctx, c.fetcher, jschoolSources), nil
}
