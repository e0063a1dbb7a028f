package collect

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ewagner/oppscout/internal/dates"
	"github.com/ewagner/oppscout/internal/model"
)

// Discovered generically scrapes aggregator pages the discovery crawler
// found on earlier runs. It knows nothing about each site's markup, so
// it reads headline-ish elements and lets the relevance filter sort the
// noise out.
type Discovered struct {
	fetcher *Fetcher
	sources []model.CandidateSource
}

// NewDiscovered creates a collector over previously saved candidates.
func NewDiscovered(fetcher *Fetcher, sources []model.CandidateSource) *Discovered {
	return &Discovered{fetcher: fetcher, sources: sources}
}

// Name implements Collector.
func (c *Discovered) Name() string { return "Discovered Sources" }

// Collect implements Collector.
func (c *Discovered) Collect(ctx context.Context) ([]model.Opportunity, error) {
	var opps []model.Opportunity
	var firstErr error
	now := time.Now().UTC()

	for _, src := range c.sources {
		if src.Kind != model.PageAggregator {
			continue
		}

		items, err := c.scrapeAggregator(ctx, src, now)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		opps = append(opps, items...)
	}

	return opps, firstErr
}

func (c *Discovered) scrapeAggregator(ctx context.Context, src model.CandidateSource, now time.Time) ([]model.Opportunity, error) {
	doc, err := c.fetcher.FetchDocument(ctx, src.URL)
	if err != nil {
		return nil, err
	}

	var opps []model.Opportunity
	seen := make(map[string]bool)

	doc.Find("article, li, .entry, .listing, .card").Each(func(_ int, item *goquery.Selection) {
		link := item.Find("a[href]").First()
		href, ok := link.Attr("href")
		if !ok {
			return
		}

		title := strings.TrimSpace(link.Text())
		if title == "" {
			title = strings.TrimSpace(item.Find("h2, h3, h4").First().Text())
		}
		if title == "" || seen[href] {
			return
		}
		seen[href] = true

		text := strings.TrimSpace(item.Text())

		opps = append(opps, model.Opportunity{
			Title:       title,
			URL:         href,
			Description: truncate(text, maxDescription),
			Source:      "Discovered: " + src.Domain,
			SourceURL:   src.URL,
			Type:        "funding",
			ScrapedAt:   now,
			Deadline:    dates.ExtractDeadline(text),
		})
	})

	return opps, nil
}
