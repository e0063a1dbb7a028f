package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ewagner/oppscout/internal/model"
)

func TestStore_SaveActive_NilWritesEmptyArray(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	if err := st.SaveActive(nil); err != nil {
		t.Fatalf("SaveActive failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, activeFile))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(data)); got != "[]" {
		t.Errorf("Expected a JSON array, got %q", got)
	}

	active, err := st.LoadActive()
	if err != nil {
		t.Fatalf("LoadActive failed: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("Expected empty set, got %d records", len(active))
	}
}

func TestStore_LoadActive_MissingFile(t *testing.T) {
	st := New(t.TempDir())

	opps, err := st.LoadActive()
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if len(opps) != 0 {
		t.Errorf("Expected empty set, got %d records", len(opps))
	}
}

func TestStore_SaveLoadActive_Roundtrip(t *testing.T) {
	st := New(t.TempDir())

	in := []model.Opportunity{
		{
			Title:          "Logan Nonfiction Fellowship",
			URL:            "https://loganfoundation.org/fellowship",
			Source:         "Direct Sources",
			Type:           "fellowship",
			Deadline:       "2026-09-01",
			FundingSize:    "$15,000",
			RelevanceScore: 23,
			ScrapedAt:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			Title:        "ACX Grants",
			URL:          "https://astralcodexten.com/grants",
			BypassFilter: true,
		},
	}

	if err := st.SaveActive(in); err != nil {
		t.Fatalf("SaveActive failed: %v", err)
	}

	out, err := st.LoadActive()
	if err != nil {
		t.Fatalf("LoadActive failed: %v", err)
	}

	if len(out) != len(in) {
		t.Fatalf("Expected %d records, got %d", len(in), len(out))
	}
	if out[0].Title != in[0].Title || out[0].RelevanceScore != 23 {
		t.Errorf("First record did not survive the roundtrip: %+v", out[0])
	}
	if !out[0].ScrapedAt.Equal(in[0].ScrapedAt) {
		t.Errorf("Expected scraped_at %v, got %v", in[0].ScrapedAt, out[0].ScrapedAt)
	}
	if !out[1].BypassFilter {
		t.Error("Expected bypass flag to survive the roundtrip")
	}
}

func TestStore_SaveLoadSources_Roundtrip(t *testing.T) {
	st := New(t.TempDir())

	in := []model.CandidateSource{
		{
			URL:     "https://example.org/grants",
			Domain:  "example.org",
			Kind:    model.PageAggregator,
			Trusted: true,
		},
	}

	if err := st.SaveSources(in); err != nil {
		t.Fatalf("SaveSources failed: %v", err)
	}

	out, err := st.LoadSources()
	if err != nil {
		t.Fatalf("LoadSources failed: %v", err)
	}
	if len(out) != 1 || out[0].Kind != model.PageAggregator || !out[0].Trusted {
		t.Errorf("Sources did not survive the roundtrip: %+v", out)
	}
}

func TestArchiveExpired(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	opps := []model.Opportunity{
		{Title: "Expired Grant", Deadline: "2026-05-01"},
		{Title: "Open Grant", Deadline: "2026-07-01"},
		{Title: "Rolling Grant", Deadline: "rolling"},
		{Title: "No Deadline Grant"},
	}
	archive := []model.Opportunity{
		{Title: "Previously Archived"},
	}

	active, updated := ArchiveExpired(opps, archive, now)

	if len(active) != 3 {
		t.Fatalf("Expected 3 active records, got %d", len(active))
	}
	for _, o := range active {
		if o.Title == "Expired Grant" {
			t.Error("Expected expired record to leave the active set")
		}
	}

	if len(updated) != 2 {
		t.Fatalf("Expected archive of 2, got %d", len(updated))
	}
	if updated[0].Title != "Previously Archived" {
		t.Error("Expected archive to be append-only")
	}
	if updated[1].ArchivedAt == nil {
		t.Error("Expected newly archived record to carry archived_at")
	} else if !updated[1].ArchivedAt.Equal(now) {
		t.Errorf("Expected archived_at %v, got %v", now, *updated[1].ArchivedAt)
	}
}

func TestArchiveExpired_NoExpiries(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	opps := []model.Opportunity{{Title: "Open", Deadline: "2026-12-31"}}

	active, updated := ArchiveExpired(opps, nil, now)
	if len(active) != 1 || len(updated) != 0 {
		t.Errorf("Expected nothing archived, got active=%d archive=%d", len(active), len(updated))
	}
}
