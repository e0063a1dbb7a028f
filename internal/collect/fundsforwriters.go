package collect

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ewagner/oppscout/internal/model"
)

const (
	ffwName = "FundsForWriters"
	ffwURL  = "https://fundsforwriters.com/grants/"
)

// FundsForWriters scrapes the FundsForWriters grants page.
type FundsForWriters struct {
	fetcher *Fetcher
}

// NewFundsForWriters creates the FundsForWriters collector.
func NewFundsForWriters(fetcher *Fetcher) *FundsForWriters {
	return &FundsForWriters{fetcher: fetcher}
}

// Name implements Collector.
func (c *FundsForWriters) Name() string { return ffwName }

// Collect implements Collector.
func (c *FundsForWriters) Collect(ctx context.Context) ([]model.Opportunity, error) {
	doc, err := c.fetcher.FetchDocument(ctx, ffwURL)
	if err != nil {
		return nil, err
	}

	var opps []model.Opportunity
	now := time.Now().UTC()

	doc.Find("article, .post, .grant-listing, .entry").Each(func(_ int, entry *goquery.Selection) {
		title := strings.TrimSpace(entry.Find("h2, h3, .entry-title, a").First().Text())
		if title == "" {
			return
		}

		href, _ := entry.Find("a[href]").First().Attr("href")
		description := strings.TrimSpace(entry.Find("p, .entry-content, .excerpt").First().Text())

		opps = append(opps, model.Opportunity{
			Title:       title,
			URL:         href,
			Description: truncate(description, maxDescription),
			Source:      ffwName,
			SourceURL:   ffwURL,
			Type:        "grant",
			ScrapedAt:   now,
		})
	})

	return opps, nil
}
