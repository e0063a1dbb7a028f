package collect

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ewagner/oppscout/internal/model"
)

const (
	gijnName = "GIJN"
	gijnURL  = "https://gijn.org/resource/grants-fellowships/"
)

// GIJN scrapes the Global Investigative Journalism Network grants and
// fellowships resource page.
type GIJN struct {
	fetcher *Fetcher
}

// NewGIJN creates the GIJN collector.
func NewGIJN(fetcher *Fetcher) *GIJN {
	return &GIJN{fetcher: fetcher}
}

// Name implements Collector.
func (c *GIJN) Name() string { return gijnName }

// Collect implements Collector.
func (c *GIJN) Collect(ctx context.Context) ([]model.Opportunity, error) {
	doc, err := c.fetcher.FetchDocument(ctx, gijnURL)
	if err != nil {
		return nil, err
	}

	var opps []model.Opportunity
	now := time.Now().UTC()

	// GIJN renders listings as article cards.
	doc.Find("article, .resource-card, .post-card, .listing-item").Each(func(_ int, card *goquery.Selection) {
		title := strings.TrimSpace(card.Find("h2, h3, .title, a").First().Text())
		if title == "" {
			return
		}

		href, _ := card.Find("a[href]").First().Attr("href")
		description := strings.TrimSpace(card.Find("p, .excerpt, .description").First().Text())

		opps = append(opps, model.Opportunity{
			Title:       title,
			URL:         href,
			Description: truncate(description, maxDescription),
			Source:      gijnName,
			SourceURL:   gijnURL,
			Type:        "grant/fellowship",
			ScrapedAt:   now,
		})
	})

	return opps, nil
}
