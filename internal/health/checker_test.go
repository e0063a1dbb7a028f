package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ewagner/oppscout/internal/model"
)

func init() {
	// No real sleeping between retries in tests.
	sleepFunc = func(time.Duration) {}
}

func testChecker() *Checker {
	return NewChecker(5*time.Second, 4, "oppscout-test")
}

func TestChecker_CheckAll_Reachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	results := testChecker().CheckAll(context.Background(), []model.Opportunity{
		{Title: "Live Grant", URL: srv.URL},
	})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !results[0].Reachable {
		t.Errorf("expected reachable, got %+v", results[0])
	}
	if results[0].StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", results[0].StatusCode)
	}
}

func TestChecker_CheckAll_Dead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	results := testChecker().CheckAll(context.Background(), []model.Opportunity{
		{Title: "Gone Grant", URL: srv.URL + "/removed"},
	})

	if !results[0].Dead {
		t.Errorf("expected 404 to be dead, got %+v", results[0])
	}
	if results[0].Reachable {
		t.Error("expected dead link not to be reachable")
	}
}

func TestChecker_CheckAll_MethodNotAllowed(t *testing.T) {
	// Some sites reject HEAD; that is not a dead link.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))
	defer srv.Close()

	results := testChecker().CheckAll(context.Background(), []model.Opportunity{
		{Title: "HEAD-hostile Grant", URL: srv.URL},
	})

	if !results[0].Reachable {
		t.Errorf("expected 405 to count as reachable, got %+v", results[0])
	}
}

func TestChecker_CheckAll_MissingURL(t *testing.T) {
	results := testChecker().CheckAll(context.Background(), []model.Opportunity{
		{Title: "No URL Grant"},
	})

	if results[0].Reachable {
		t.Error("expected record without URL not to be reachable")
	}
	if results[0].Error == "" {
		t.Error("expected an explanatory error")
	}
}

func TestChecker_CheckAll_PreservesOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	opps := []model.Opportunity{
		{Title: "First", URL: srv.URL + "/a"},
		{Title: "Second", URL: srv.URL + "/b"},
		{Title: "Third", URL: srv.URL + "/c"},
	}

	results := testChecker().CheckAll(context.Background(), opps)

	for i, o := range opps {
		if results[i].Title != o.Title {
			t.Errorf("position %d: expected %q, got %q", i, o.Title, results[i].Title)
		}
	}
}

func TestChecker_Retry(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			// Connection-level failures are simulated with a 500, which is
			// neither reachable nor dead, so the checker retries.
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	results := testChecker().CheckAll(context.Background(), []model.Opportunity{
		{Title: "Flaky Grant", URL: srv.URL},
	})

	if !results[0].Reachable {
		t.Errorf("expected retries to reach the flaky server, got %+v", results[0])
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}
