// Package discover finds new candidate source URLs by running fixed
// web-search queries and classifying the result pages. It emits
// candidate source descriptors for future scrape runs, never
// opportunity records.
package discover

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ewagner/oppscout/internal/collect"
	"github.com/ewagner/oppscout/internal/match"
	"github.com/ewagner/oppscout/internal/model"
)

// searchEndpoint is a var so tests can point it at a local server.
var searchEndpoint = "https://html.duckduckgo.com/html/"

// queries surface pages listing journalism funding.
var queries = []string{
	"journalism fellowship 2026",
	"journalism grant application",
	"investigative journalism fellowship",
	"reporting grant for journalists",
	"narrative journalism fellowship",
	"media fellowship program",
	"journalist grants and funding",
	"writing fellowship nonfiction",
	"long-form journalism grant",
	"journalism funding opportunities",
}

// aggregatorIndicators suggest a page lists multiple opportunities.
var aggregatorIndicators = []string{
	"list of", "directory", "database", "opportunities", "grants available",
	"fellowships for", "funding opportunities", "resources for journalists",
	"grants for journalists", "journalism fellowships", "apply now",
	"upcoming deadlines", "open calls",
}

// opportunityIndicators suggest a page is a single opportunity.
var opportunityIndicators = []string{
	"apply", "application", "deadline", "eligibility", "how to apply",
	"submit", "fellowship program", "grant program", "award program",
	"stipend", "funding amount",
}

// skipDomains never yield scrapeable sources.
var skipDomains = map[string]bool{
	"facebook.com": true, "twitter.com": true, "x.com": true,
	"linkedin.com": true, "instagram.com": true, "youtube.com": true,
	"tiktok.com": true, "reddit.com": true, "pinterest.com": true,
	"amazon.com": true, "ebay.com": true, "wikipedia.org": true,
	"wikimedia.org": true, "google.com": true, "bing.com": true,
	"yahoo.com": true,
	"medium.com": true, // Too noisy.
}

// trustedDomains are established journalism/media organizations.
var trustedDomains = map[string]bool{
	"journalism.org": true, "nieman.harvard.edu": true,
	"pulitzercenter.org": true, "ijnet.org": true, "gijn.org": true,
	"spj.org": true, "asne.org": true, "ona.org": true,
	"poynter.org": true, "cjr.org": true, "niemanlab.org": true,
	"journalismfund.eu": true, "journalism.co.uk": true,
	"fundforjournalism.org": true, "fij.org": true,
}

// Discoverer runs search queries and classifies candidate pages.
type Discoverer struct {
	fetcher *collect.Fetcher
	verbose bool
}

// New creates a Discoverer over the shared fetcher.
func New(fetcher *collect.Fetcher, verbose bool) *Discoverer {
	return &Discoverer{fetcher: fetcher, verbose: verbose}
}

// Discover searches for new sources, skipping URLs in known, and
// returns up to maxNew classified candidates. The known set is keyed by
// normalized URL so that tracked sources match regardless of scheme,
// "www." prefix, or a trailing slash.
func (d *Discoverer) Discover(ctx context.Context, known map[string]bool, maxNew int) ([]model.CandidateSource, error) {
	var found []model.CandidateSource
	seen := make(map[string]bool)
	now := time.Now().UTC()

	for _, query := range queries {
		if len(found) >= maxNew {
			break
		}

		links, err := d.search(ctx, query)
		if err != nil {
			if d.verbose {
				fmt.Fprintf(os.Stderr, "search %q: %v\n", query, err)
			}
			continue
		}

		for _, link := range links {
			if len(found) >= maxNew {
				break
			}

			domain := Domain(link)
			key := match.NormalizeURL(link)
			if domain == "" || skipDomains[domain] || seen[key] || known[key] {
				continue
			}
			seen[key] = true

			kind, title := d.classify(ctx, link)
			if kind == model.PageUnknown {
				continue
			}

			found = append(found, model.CandidateSource{
				URL:          link,
				Domain:       domain,
				Title:        title,
				Kind:         kind,
				Query:        query,
				Trusted:      trustedDomains[domain],
				DiscoveredAt: now,
			})
		}
	}

	return found, nil
}

// search runs one query against the HTML search endpoint and returns
// result links.
func (d *Discoverer) search(ctx context.Context, query string) ([]string, error) {
	searchURL := searchEndpoint + "?q=" + url.QueryEscape(query)

	doc, err := d.fetcher.FetchDocument(ctx, searchURL)
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find("a.result__a, .result__title a").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		if resolved := resolveResultLink(href); resolved != "" {
			links = append(links, resolved)
		}
	})

	return links, nil
}

// resolveResultLink unwraps the search engine's redirect links, which
// carry the target in a uddg query parameter.
func resolveResultLink(href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	if target := parsed.Query().Get("uddg"); target != "" {
		href = target
	}
	if !strings.HasPrefix(href, "http") {
		return ""
	}
	return href
}

// classify fetches a candidate page and decides what kind of page it
// is by counting indicator phrases in its text.
func (d *Discoverer) classify(ctx context.Context, pageURL string) (model.PageKind, string) {
	doc, err := d.fetcher.FetchDocument(ctx, pageURL)
	if err != nil {
		return model.PageUnknown, ""
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	text := clipText(strings.ToLower(doc.Text()))

	return ClassifyText(text), title
}

// maxClassifyRunes bounds how much page text classification reads.
const maxClassifyRunes = 5000

// clipText truncates on a rune boundary so multi-byte characters are
// never split.
func clipText(text string) string {
	runes := []rune(text)
	if len(runes) <= maxClassifyRunes {
		return text
	}
	return string(runes[:maxClassifyRunes])
}

// ClassifyText classifies page text by indicator-phrase counts. A page
// needs at least two aggregator hits to count as an aggregator and at
// least three opportunity hits to count as a single opportunity.
func ClassifyText(text string) model.PageKind {
	aggregatorHits := countHits(text, aggregatorIndicators)
	opportunityHits := countHits(text, opportunityIndicators)

	switch {
	case aggregatorHits >= 2 && aggregatorHits >= opportunityHits/2:
		return model.PageAggregator
	case opportunityHits >= 3:
		return model.PageOpportunity
	default:
		return model.PageUnknown
	}
}

func countHits(text string, indicators []string) int {
	hits := 0
	for _, indicator := range indicators {
		if strings.Contains(text, indicator) {
			hits++
		}
	}
	return hits
}

// Domain extracts the registrable-ish domain of a URL: the host with
// any "www." prefix removed.
func Domain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(parsed.Host), "www.")
}
