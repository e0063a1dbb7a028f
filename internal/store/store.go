// Package store persists the opportunity snapshots: the active set and
// the append-only archive, each loaded and saved as a whole JSON file.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ewagner/oppscout/internal/dates"
	"github.com/ewagner/oppscout/internal/model"
)

const (
	activeFile  = "opportunities.json"
	archiveFile = "archive.json"
	sourcesFile = "discovered_sources.json"
)

// Store reads and writes the flat-file snapshots under one directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// LoadActive returns the persisted active set, or an empty slice when
// the file does not exist yet.
func (s *Store) LoadActive() ([]model.Opportunity, error) {
	return s.loadOpportunities(activeFile)
}

// LoadArchive returns the persisted archive.
func (s *Store) LoadArchive() ([]model.Opportunity, error) {
	return s.loadOpportunities(archiveFile)
}

// SaveActive writes the active set. The file always holds a JSON
// array; a nil slice would marshal as null.
func (s *Store) SaveActive(opps []model.Opportunity) error {
	if opps == nil {
		opps = []model.Opportunity{}
	}
	return s.save(activeFile, opps)
}

// SaveArchive writes the archive.
func (s *Store) SaveArchive(opps []model.Opportunity) error {
	if opps == nil {
		opps = []model.Opportunity{}
	}
	return s.save(archiveFile, opps)
}

// LoadSources returns previously discovered candidate sources.
func (s *Store) LoadSources() ([]model.CandidateSource, error) {
	var sources []model.CandidateSource
	if err := s.load(sourcesFile, &sources); err != nil {
		return nil, err
	}
	if sources == nil {
		sources = []model.CandidateSource{}
	}
	return sources, nil
}

// SaveSources writes the discovered candidate sources.
func (s *Store) SaveSources(sources []model.CandidateSource) error {
	if sources == nil {
		sources = []model.CandidateSource{}
	}
	return s.save(sourcesFile, sources)
}

// ArchiveExpired partitions opps into the still-active records and the
// archive extended with the newly expired ones. A record expires when
// its parsed deadline is before now; it is stamped with archived_at and
// never moves back.
func ArchiveExpired(opps, archive []model.Opportunity, now time.Time) (active, updated []model.Opportunity) {
	updated = archive

	for _, opp := range opps {
		if dates.IsExpired(opp.Deadline, now) {
			at := now.UTC()
			opp.ArchivedAt = &at
			updated = append(updated, opp)
			continue
		}
		active = append(active, opp)
	}

	return active, updated
}

func (s *Store) loadOpportunities(name string) ([]model.Opportunity, error) {
	var opps []model.Opportunity
	if err := s.load(name, &opps); err != nil {
		return nil, err
	}
	if opps == nil {
		opps = []model.Opportunity{}
	}
	return opps, nil
}

func (s *Store) load(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (s *Store) save(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
