package collect

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ewagner/oppscout/internal/model"
)

const (
	gfmdName = "GFMD"
	gfmdURL  = "https://gfmd.info/fundings/"
)

// GFMD scrapes the Global Forum for Media Development funding database.
// Its listing markup flattens the structured fields into one text blob,
// e.g. "Media Forward Fund for independent mediaOrganisation:Media
// Forward FundRegion:EuropeStatus:OpenDeadline:20/02/2026Type:Grant
// Funding Size:€200,000", which parseGFMDText splits back apart.
type GFMD struct {
	fetcher *Fetcher
}

// NewGFMD creates the GFMD collector.
func NewGFMD(fetcher *Fetcher) *GFMD {
	return &GFMD{fetcher: fetcher}
}

// Name implements Collector.
func (c *GFMD) Name() string { return gfmdName }

// Collect implements Collector.
func (c *GFMD) Collect(ctx context.Context) ([]model.Opportunity, error) {
	doc, err := c.fetcher.FetchDocument(ctx, gfmdURL)
	if err != nil {
		return nil, err
	}

	var opps []model.Opportunity
	now := time.Now().UTC()

	doc.Find(".funding-item, .post, article, .listing").Each(func(_ int, listing *goquery.Selection) {
		raw := strings.TrimSpace(listing.Find("h2, h3, .funding-title, a").First().Text())
		if raw == "" {
			return
		}

		href, _ := listing.Find("a[href]").First().Attr("href")

		parsed := parseGFMDText(raw)
		if parsed.title == "" {
			return
		}

		oppType := parsed.fundingType
		if oppType == "" {
			oppType = "funding"
		}

		opps = append(opps, model.Opportunity{
			Title:        parsed.title,
			URL:          href,
			Source:       gfmdName,
			SourceURL:    gfmdURL,
			Type:         oppType,
			ScrapedAt:    now,
			Deadline:     parsed.deadline,
			Organisation: parsed.organisation,
			Region:       parsed.region,
			FundingSize:  parsed.fundingSize,
		})
	})

	return opps, nil
}

type gfmdFields struct {
	title        string
	organisation string
	region       string
	deadline     string
	fundingType  string
	fundingSize  string
}

var (
	gfmdTitle    = regexp.MustCompile(`^(.+?)Organisation:`)
	gfmdOrg      = regexp.MustCompile(`Organisation:(.+?)(?:Region:|$)`)
	gfmdRegion   = regexp.MustCompile(`Region:(.+?)(?:Status:|$)`)
	gfmdDeadline = regexp.MustCompile(`Deadline:(.+?)(?:Type:|$)`)
	gfmdType     = regexp.MustCompile(`Type:(.+?)(?:Funding Size:|$)`)
	gfmdSize     = regexp.MustCompile(`Funding Size:(.+)$`)
)

// parseGFMDText splits a concatenated GFMD listing blob into fields.
// Text without the metadata markers passes through as a bare title.
func parseGFMDText(raw string) gfmdFields {
	fields := gfmdFields{title: raw}

	if !strings.Contains(raw, "Organisation:") {
		return fields
	}

	if m := gfmdTitle.FindStringSubmatch(raw); m != nil {
		fields.title = strings.TrimSpace(m[1])
	}
	if m := gfmdOrg.FindStringSubmatch(raw); m != nil {
		fields.organisation = strings.TrimSpace(m[1])
	}
	if m := gfmdRegion.FindStringSubmatch(raw); m != nil {
		fields.region = strings.TrimSpace(m[1])
	}
	if m := gfmdDeadline.FindStringSubmatch(raw); m != nil {
		deadline := strings.TrimSpace(m[1])
		// "Ongoing" is open-ended, not a date.
		if !strings.EqualFold(deadline, "ongoing") {
			fields.deadline = deadline
		}
	}
	if m := gfmdType.FindStringSubmatch(raw); m != nil {
		fields.fundingType = strings.TrimSpace(m[1])
	}
	if m := gfmdSize.FindStringSubmatch(raw); m != nil {
		fields.fundingSize = strings.TrimSpace(m[1])
	}

	return fields
}
