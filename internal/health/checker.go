// Package health checks that active listing URLs still resolve. It is
// diagnostic only: results are reported, never used to mutate the
// active set.
package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ewagner/oppscout/internal/model"
)

const maxRetries = 3

// sleepFunc is the delay between retries (injectable for tests).
var sleepFunc = time.Sleep

// Result is the outcome of checking one listing URL.
type Result struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	Reachable  bool   `json:"reachable"`
	StatusCode int    `json:"status_code,omitempty"`
	Dead       bool   `json:"dead"` // 404, 410, or persistent failure
	Error      string `json:"error,omitempty"`
}

// Checker validates listing URLs concurrently.
type Checker struct {
	httpClient *http.Client
	maxWorkers int
	userAgent  string
}

// NewChecker creates a Checker with a bounded worker count.
func NewChecker(timeout time.Duration, maxWorkers int, userAgent string) *Checker {
	if maxWorkers <= 0 {
		maxWorkers = 10
	}

	return &Checker{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		maxWorkers: maxWorkers,
		userAgent:  userAgent,
	}
}

// CheckAll validates every record's URL concurrently. Records without a
// URL are skipped. Results come back in input order.
func (c *Checker) CheckAll(ctx context.Context, opps []model.Opportunity) []Result {
	results := make([]Result, len(opps))
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, c.maxWorkers)

	for i, opp := range opps {
		if opp.URL == "" {
			results[i] = Result{Title: opp.Title, Reachable: false, Error: "no URL"}
			continue
		}

		wg.Add(1)
		go func(idx int, o model.Opportunity) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = Result{Title: o.Title, URL: o.URL, Error: "context cancelled"}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = c.checkWithRetry(ctx, o)
		}(i, opp)
	}

	wg.Wait()

	return results
}

func (c *Checker) checkWithRetry(ctx context.Context, o model.Opportunity) Result {
	var result Result
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			sleepFunc(time.Duration(attempt) * time.Second)
		}

		result = c.check(ctx, o)
		if result.Reachable || result.Dead {
			return result
		}
		if ctx.Err() != nil {
			return result
		}
	}
	return result
}

func (c *Checker) check(ctx context.Context, o model.Opportunity) Result {
	result := Result{Title: o.Title, URL: o.URL}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, o.URL, nil)
	if err != nil {
		result.Error = fmt.Sprintf("create request: %v", err)
		result.Dead = true
		return result
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		result.Dead = true
	case resp.StatusCode >= 200 && resp.StatusCode < 400:
		result.Reachable = true
	case resp.StatusCode == http.StatusMethodNotAllowed:
		// Some sites reject HEAD; treat as reachable rather than dead.
		result.Reachable = true
	}

	return result
}
