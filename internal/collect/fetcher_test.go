package collect

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ewagner/oppscout/internal/model"
)

func fetcherConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = 5 * time.Second
	cfg.Cache.Backend = "memory"
	cfg.Cache.TTL = time.Minute
	cfg.RateLimit.RequestsPerSecond = 1000
	cfg.RateLimit.Burst = 1000
	return cfg
}

func TestFetcher_Fetch_CachesPages(t *testing.T) {
	var pageHits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		atomic.AddInt32(&pageHits, 1)
		_, _ = w.Write([]byte("<html><body>listings</body></html>"))
	}))
	defer srv.Close()

	f := NewFetcher(fetcherConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		body, err := f.Fetch(ctx, srv.URL+"/grants")
		if err != nil {
			t.Fatalf("Fetch %d failed: %v", i, err)
		}
		if !strings.Contains(string(body), "listings") {
			t.Fatalf("Unexpected body: %q", body)
		}
	}

	if hits := atomic.LoadInt32(&pageHits); hits != 1 {
		t.Errorf("Expected 1 network fetch, got %d", hits)
	}
}

func TestFetcher_Fetch_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewFetcher(fetcherConfig())

	if _, err := f.Fetch(context.Background(), srv.URL+"/grants"); err == nil {
		t.Error("Expected an error for a 503 response")
	}
}

func TestFetcher_Fetch_RespectsRobots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := NewFetcher(fetcherConfig())
	ctx := context.Background()

	if _, err := f.Fetch(ctx, srv.URL+"/private/grants"); err == nil {
		t.Error("Expected a disallowed path to be refused")
	}
	if _, err := f.Fetch(ctx, srv.URL+"/public/grants"); err != nil {
		t.Errorf("Expected an allowed path to fetch, got %v", err)
	}
}

func TestFetcher_Fetch_LimitsBodySize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(strings.Repeat("x", 10_000)))
	}))
	defer srv.Close()

	cfg := fetcherConfig()
	cfg.HTTP.MaxBodyBytes = 1024
	f := NewFetcher(cfg)

	body, err := f.Fetch(context.Background(), srv.URL+"/grants")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(body) > 1024 {
		t.Errorf("Expected body capped at 1024 bytes, got %d", len(body))
	}
}

func TestFetcher_FetchDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<html><body><h1>Reporting Grants</h1></body></html>`))
	}))
	defer srv.Close()

	f := NewFetcher(fetcherConfig())

	doc, err := f.FetchDocument(context.Background(), srv.URL+"/grants")
	if err != nil {
		t.Fatalf("FetchDocument failed: %v", err)
	}
	if got := doc.Find("h1").Text(); got != "Reporting Grants" {
		t.Errorf("Expected parsed heading, got %q", got)
	}
}

func TestScrapeCuratedPage(t *testing.T) {
	page := `<html>
<head><title>Creative Nonfiction Grant | Whiting Foundation</title></head>
<body>
<main>
<h1>Creative Nonfiction Grant</h1>
<p>Ten grants of $40,000 each are awarded to writers of deeply researched nonfiction.</p>
<p>Deadline: April 23, 2026. Books must be under contract.</p>
<p>This third paragraph should not appear in the description.</p>
</main>
</body>
</html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}

	src := curatedSource{
		name: "Whiting Foundation",
		url:  "https://www.whiting.org/writers/creative-nonfiction-grant",
		typ:  "grant",
	}

	opp := scrapeCuratedPage(doc, src, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	if opp.Title != "Creative Nonfiction Grant" {
		t.Errorf("Title = %q", opp.Title)
	}
	if opp.Deadline != "april 23, 2026" {
		t.Errorf("Deadline = %q", opp.Deadline)
	}
	if !strings.Contains(opp.Description, "deeply researched nonfiction") {
		t.Errorf("Description = %q", opp.Description)
	}
	if strings.Contains(opp.Description, "third paragraph") {
		t.Error("Expected only the first two paragraphs in the description")
	}
	if opp.FundingSize != "$40,000" {
		t.Errorf("FundingSize = %q", opp.FundingSize)
	}
	if opp.Type != "grant" || opp.Source != "Whiting Foundation" {
		t.Errorf("Metadata wrong: %+v", opp)
	}
}

func TestScrapeCuratedPage_KnownValuesWin(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><main><h1>Emergent Ventures</h1><p>Scraped description.</p></main></body></html>`))
	if err != nil {
		t.Fatal(err)
	}

	src := curatedSource{
		name:             "Emergent Ventures",
		url:              "https://www.mercatus.org/emergent-ventures",
		typ:              "grant",
		knownAmount:      "$1,000 - $50,000",
		knownDescription: "Fast grants for ideas that improve society.",
		bypassFilter:     true,
	}

	opp := scrapeCuratedPage(doc, src, time.Now().UTC())

	if opp.Description != src.knownDescription {
		t.Errorf("Expected known description to win, got %q", opp.Description)
	}
	if opp.FundingSize != src.knownAmount {
		t.Errorf("Expected known amount to win, got %q", opp.FundingSize)
	}
	if !opp.BypassFilter {
		t.Error("Expected the bypass flag to carry through")
	}
}
