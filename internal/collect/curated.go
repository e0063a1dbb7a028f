package collect

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ewagner/oppscout/internal/dates"
	"github.com/ewagner/oppscout/internal/model"
)

// curatedSource is a hand-maintained page to scrape directly, with
// verified fallback metadata for when the page cannot be read.
// Known descriptions and eligibility must be verified against the
// actual program pages before being added, never guessed from names.
type curatedSource struct {
	name             string
	url              string
	typ              string
	knownAmount      string
	knownDeadline    string
	knownDescription string
	knownEligibility string
	bypassFilter     bool
}

// collectCurated scrapes each curated page, preferring known metadata
// over whatever the scrape recovers. A failed fetch still yields a
// record, marked with scrape_error.
func collectCurated(ctx context.Context, fetcher *Fetcher, sources []curatedSource) []model.Opportunity {
	opps := make([]model.Opportunity, 0, len(sources))
	now := time.Now().UTC()

	for _, src := range sources {
		doc, err := fetcher.FetchDocument(ctx, src.url)
		if err != nil {
			opps = append(opps, model.Opportunity{
				Title:       src.name,
				URL:         src.url,
				Description: "Unable to fetch current information. Visit " + src.url + " for details.",
				Source:      src.name,
				SourceURL:   src.url,
				Type:        src.typ,
				ScrapedAt:   now,
				Deadline:    src.knownDeadline,
				FundingSize: src.knownAmount,
				ScrapeError: err.Error(),
			})
			continue
		}

		opp := scrapeCuratedPage(doc, src, now)
		opps = append(opps, opp)
	}

	return opps
}

func scrapeCuratedPage(doc *goquery.Document, src curatedSource, now time.Time) model.Opportunity {
	title := strings.TrimSpace(doc.Find("h1, .page-title, title").First().Text())
	if title == "" {
		title = src.name
	}
	title = trimTitleSuffix(title)

	pageText := spaceRuns.ReplaceAllString(doc.Text(), " ")

	description := ""
	if content := doc.Find("main, .content, article, #content").First(); content.Length() > 0 {
		var paragraphs []string
		content.Find("p").EachWithBreak(func(i int, p *goquery.Selection) bool {
			paragraphs = append(paragraphs, strings.TrimSpace(p.Text()))
			return i < 1 // First two paragraphs only.
		})
		description = truncate(strings.Join(paragraphs, " "), maxDescription)
	}

	deadline := dates.ExtractDeadline(pageText)
	funding := extractFundingAmount(pageText)

	if src.knownDescription != "" {
		description = src.knownDescription
	}
	if src.knownAmount != "" {
		funding = src.knownAmount
	}
	if deadline == "" {
		deadline = src.knownDeadline
	}

	return model.Opportunity{
		Title:        title,
		URL:          src.url,
		Description:  description,
		Source:       src.name,
		SourceURL:    src.url,
		Type:         src.typ,
		ScrapedAt:    now,
		Deadline:     deadline,
		FundingSize:  funding,
		Eligibility:  src.knownEligibility,
		BypassFilter: src.bypassFilter,
	}
}

// trimTitleSuffix drops the site-name tail from a <title> value, e.g.
// "Creative Writing Fellowships | National Endowment for the Arts".
func trimTitleSuffix(title string) string {
	if idx := strings.Index(title, " | "); idx > 0 {
		title = title[:idx]
	}
	if idx := strings.Index(title, " - "); idx > 0 {
		title = title[:idx]
	}
	return strings.TrimSpace(title)
}
