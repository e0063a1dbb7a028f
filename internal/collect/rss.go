package collect

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"

	"github.com/ewagner/oppscout/internal/model"
)

// Feed is one RSS/Atom feed to poll.
type Feed struct {
	Name string
	URL  string
	Type string
}

// defaultFeeds are the newsletters carrying occasional calls for
// submissions and grant roundups.
var defaultFeeds = []Feed{
	{
		Name: "Wild Writing",
		URL:  "https://wildwriting.substack.com/feed",
		Type: "newsletter",
	},
}

// RSS polls configured feeds through gofeed.
type RSS struct {
	fetcher *Fetcher
	parser  *gofeed.Parser
	feeds   []Feed
}

// NewRSS creates the RSS collector over the default feed list.
func NewRSS(fetcher *Fetcher) *RSS {
	return NewRSSWithFeeds(fetcher, defaultFeeds)
}

// NewRSSWithFeeds creates the RSS collector over a custom feed list.
func NewRSSWithFeeds(fetcher *Fetcher, feeds []Feed) *RSS {
	return &RSS{
		fetcher: fetcher,
		parser:  gofeed.NewParser(),
		feeds:   feeds,
	}
}

// Name implements Collector.
func (c *RSS) Name() string { return "RSS Feeds" }

// Collect implements Collector. A broken feed is skipped; the others
// still report.
func (c *RSS) Collect(ctx context.Context) ([]model.Opportunity, error) {
	var opps []model.Opportunity
	var firstErr error
	now := time.Now().UTC()

	for _, feed := range c.feeds {
		items, err := c.collectFeed(ctx, feed, now)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("feed %s: %w", feed.Name, err)
			}
			continue
		}
		opps = append(opps, items...)
	}

	return opps, firstErr
}

func (c *RSS) collectFeed(ctx context.Context, feed Feed, now time.Time) ([]model.Opportunity, error) {
	body, err := c.fetcher.Fetch(ctx, feed.URL)
	if err != nil {
		return nil, err
	}

	parsed, err := c.parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	var opps []model.Opportunity
	for _, item := range parsed.Items {
		if item.Title == "" {
			continue
		}

		description := item.Description
		if description == "" {
			description = item.Content
		}
		description = truncate(stripHTML(description), maxDescription)

		opps = append(opps, model.Opportunity{
			Title:       item.Title,
			URL:         item.Link,
			Description: description,
			Source:      feed.Name,
			SourceURL:   feed.URL,
			Type:        feed.Type,
			ScrapedAt:   now,
		})
	}

	return opps, nil
}

// stripHTML reduces feed summary markup to its visible text.
func stripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if buf.Len() > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return buf.String()
}
