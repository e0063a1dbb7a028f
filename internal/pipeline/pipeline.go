// Package pipeline orchestrates one scrape run: collect from every
// source, filter for relevance, deduplicate against the known set,
// archive expired records, rescore the whole active set, rank, save.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ewagner/oppscout/internal/collect"
	"github.com/ewagner/oppscout/internal/filter"
	"github.com/ewagner/oppscout/internal/match"
	"github.com/ewagner/oppscout/internal/model"
	"github.com/ewagner/oppscout/internal/score"
	"github.com/ewagner/oppscout/internal/store"
	"github.com/ewagner/oppscout/internal/worker"
)

// Runner wires the pipeline stages together.
type Runner struct {
	collectors []collect.Collector
	filter     *filter.Filter
	deduper    *match.Deduper
	scorer     *score.Scorer
	store      *store.Store
	workers    int
	verbose    bool
}

// NewRunner builds a Runner from configuration. Keyword tables and rule
// lists are constructed once here and injected into the stages.
func NewRunner(cfg *model.Config, st *store.Store, collectors []collect.Collector) *Runner {
	return &Runner{
		collectors: collectors,
		filter:     filter.New(filter.DefaultRules()),
		deduper:    match.NewDeduper(),
		scorer:     score.NewScorer(score.DefaultInterests()),
		store:      st,
		workers:    cfg.Concurrency.CollectWorkers,
		verbose:    cfg.Output.Verbose,
	}
}

// Summary reports what one run did.
type Summary struct {
	Scraped      int
	Relevant     int
	NewUnique    int
	Active       int
	Archived     int
	SourceErrors map[string]error
}

// Run executes one complete scrape run against the persisted snapshots.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	existing, err := r.store.LoadActive()
	if err != nil {
		return nil, fmt.Errorf("load active set: %w", err)
	}
	archive, err := r.store.LoadArchive()
	if err != nil {
		return nil, fmt.Errorf("load archive: %w", err)
	}

	if r.verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d existing opportunities, %d archived\n", len(existing), len(archive))
	}

	scraped, sourceErrs := r.collectAll(ctx)

	relevant := make([]model.Opportunity, 0, len(scraped))
	for _, opp := range scraped {
		if r.filter.Admit(opp) {
			relevant = append(relevant, opp)
		}
	}

	fresh := r.deduper.Deduplicate(relevant, existing)

	merged := append(existing, fresh...)

	active, updatedArchive := store.ArchiveExpired(merged, archive, time.Now())

	r.scorer.ScoreAll(active)
	Rank(active)

	if err := r.store.SaveActive(active); err != nil {
		return nil, fmt.Errorf("save active set: %w", err)
	}
	if err := r.store.SaveArchive(updatedArchive); err != nil {
		return nil, fmt.Errorf("save archive: %w", err)
	}

	return &Summary{
		Scraped:      len(scraped),
		Relevant:     len(relevant),
		NewUnique:    len(fresh),
		Active:       len(active),
		Archived:     len(updatedArchive),
		SourceErrors: sourceErrs,
	}, nil
}

// collectJob runs one collector on the worker pool.
type collectJob struct {
	collector collect.Collector
}

// collectResult carries one collector's output.
type collectResult struct {
	name string
	opps []model.Opportunity
	err  error
}

// Execute implements worker.Job.
func (j *collectJob) Execute(ctx context.Context) worker.Result {
	opps, err := j.collector.Collect(ctx)
	return &collectResult{name: j.collector.Name(), opps: opps, err: err}
}

// GetError implements worker.Result.
func (r *collectResult) GetError() error { return r.err }

// collectAll fans the collectors out on the worker pool. A failing
// source contributes whatever partial records it produced.
func (r *Runner) collectAll(ctx context.Context) ([]model.Opportunity, map[string]error) {
	pool := worker.NewPool(r.workers)
	pool.Start()

	go func() {
		<-ctx.Done()
		pool.Shutdown()
	}()

	for _, c := range r.collectors {
		pool.Submit(&collectJob{collector: c})
	}

	var scraped []model.Opportunity
	errs := make(map[string]error)

	for _, res := range pool.Wait() {
		cr := res.(*collectResult)
		if cr.err != nil {
			errs[cr.name] = cr.err
			if r.verbose {
				fmt.Fprintf(os.Stderr, "[%s] error: %v\n", cr.name, cr.err)
			}
		}
		if r.verbose {
			fmt.Fprintf(os.Stderr, "[%s] %d items\n", cr.name, len(cr.opps))
		}
		scraped = append(scraped, cr.opps...)
	}

	return scraped, errs
}
