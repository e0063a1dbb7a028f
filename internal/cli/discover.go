package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ewagner/oppscout/internal/collect"
	"github.com/ewagner/oppscout/internal/discover"
	"github.com/ewagner/oppscout/internal/match"
	"github.com/ewagner/oppscout/internal/store"
)

var (
	discoverMaxNew  int
	discoverTimeout time.Duration
)

// discoverCmd represents the discover command
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Search the web for new opportunity sources",
	Long: `Discover runs a fixed set of search queries, classifies each result
page as an aggregator (lists many opportunities), a single opportunity,
or noise, and saves aggregator candidates for future runs.

Candidates feed the 'Discovered Sources' collector on the next
'oppscout run'.

Example:
  oppscout discover
  oppscout discover --max-new 5`,
	RunE: runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)

	discoverCmd.Flags().IntVar(&discoverMaxNew, "max-new", 10, "stop after this many new candidates")
	discoverCmd.Flags().DurationVar(&discoverTimeout, "timeout", 5*time.Minute, "overall discovery timeout")
	discoverCmd.Flags().StringVar(&dataDir, "data-dir", "", "data directory (default: ./data)")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}

	ctx, cancel := context.WithTimeout(context.Background(), discoverTimeout)
	defer cancel()

	st := store.New(cfg.Data.Dir)

	existing, err := st.LoadSources()
	if err != nil {
		return fmt.Errorf("load sources: %w", err)
	}
	active, err := st.LoadActive()
	if err != nil {
		return fmt.Errorf("load active set: %w", err)
	}

	// Everything already tracked counts as known, by normalized URL.
	known := make(map[string]bool)
	for _, src := range existing {
		known[match.NormalizeURL(src.URL)] = true
	}
	for _, opp := range active {
		known[match.NormalizeURL(opp.URL)] = true
		if opp.SourceURL != "" {
			known[match.NormalizeURL(opp.SourceURL)] = true
		}
	}

	fetcher := collect.NewFetcher(cfg)
	d := discover.New(fetcher, cfg.Output.Verbose)

	candidates, err := d.Discover(ctx, known, discoverMaxNew)
	if err != nil {
		return fmt.Errorf("discovery: %w", err)
	}

	if len(candidates) == 0 {
		fmt.Println("No new sources found")
		return nil
	}

	merged := append(existing, candidates...)
	if err := st.SaveSources(merged); err != nil {
		return fmt.Errorf("save sources: %w", err)
	}

	fmt.Printf("Found %d new source(s) (%d tracked total):\n", len(candidates), len(merged))
	for _, c := range candidates {
		trusted := ""
		if c.Trusted {
			trusted = " [trusted]"
		}
		fmt.Printf("  %-11s %s%s\n", string(c.Kind), c.URL, trusted)
	}

	return nil
}
