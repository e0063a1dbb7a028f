package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/ewagner/oppscout/internal/collect"
	"github.com/ewagner/oppscout/internal/pipeline"
	"github.com/ewagner/oppscout/internal/store"
)

var (
	runTimeout time.Duration
	runNoCache bool
	runWorkers int
	dataDir    string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scrape all sources and update the ranked opportunity set",
	Long: `Run executes one full pipeline pass:
- Collect listings from every configured source
- Filter out irrelevant and noise records
- Deduplicate against the known set (URL and fuzzy title matching)
- Archive expired opportunities
- Rescore and rank the active set

Example:
  oppscout run
  oppscout run --no-cache --workers 8`,
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().DurationVar(&runTimeout, "timeout", 10*time.Minute, "overall run timeout")
	runCmd.Flags().BoolVar(&runNoCache, "no-cache", false, "disable page cache (force fresh fetches)")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "collector workers (0 = use config)")
	runCmd.Flags().StringVar(&dataDir, "data-dir", "", "data directory (default: ./data)")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if runNoCache {
		cfg.Cache.Enabled = false
	}
	if runWorkers > 0 {
		cfg.Concurrency.CollectWorkers = runWorkers
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	st := store.New(cfg.Data.Dir)
	fetcher := collect.NewFetcher(cfg)

	collectors := []collect.Collector{
		collect.NewGIJN(fetcher),
		collect.NewGFMD(fetcher),
		collect.NewFundsForWriters(fetcher),
		collect.NewJSchools(fetcher),
		collect.NewDirect(fetcher),
		collect.NewRSS(fetcher),
	}

	// Previously discovered aggregator pages join the regular sources.
	discovered, err := st.LoadSources()
	if err != nil {
		return fmt.Errorf("load discovered sources: %w", err)
	}
	if len(discovered) > 0 {
		collectors = append(collectors, collect.NewDiscovered(fetcher, discovered))
	}

	runner := pipeline.NewRunner(cfg, st, collectors)

	summary, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("pipeline run: %w", err)
	}

	fmt.Printf("Scraped:   %d\n", summary.Scraped)
	fmt.Printf("Relevant:  %d\n", summary.Relevant)
	fmt.Printf("New:       %d\n", summary.NewUnique)
	fmt.Printf("Active:    %d\n", summary.Active)
	fmt.Printf("Archived:  %d\n", summary.Archived)

	if len(summary.SourceErrors) > 0 {
		names := make([]string, 0, len(summary.SourceErrors))
		for name := range summary.SourceErrors {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(os.Stderr, "\n%d source(s) reported errors:\n", len(names))
		for _, name := range names {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", name, summary.SourceErrors[name])
		}
	}

	active, err := st.LoadActive()
	if err != nil {
		return fmt.Errorf("reload active set: %w", err)
	}

	fmt.Println("\nTop opportunities:")
	for i, opp := range active {
		if i >= 10 {
			break
		}
		deadline := opp.Deadline
		if deadline == "" {
			deadline = "no deadline"
		}
		fmt.Printf("%3d. [%d] %s (%s, %s)\n", i+1, opp.RelevanceScore, opp.Title, opp.Source, deadline)
	}

	return nil
}
