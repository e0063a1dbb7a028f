package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ewagner/oppscout/internal/health"
	"github.com/ewagner/oppscout/internal/store"
)

var checkTimeout time.Duration

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that active listing URLs still resolve",
	Long: `Check probes every active opportunity URL with a HEAD request and
reports dead links (404, 410, or persistent failures). It never mutates
the stored set.

Example:
  oppscout check`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 5*time.Minute, "overall check timeout")
	checkCmd.Flags().StringVar(&dataDir, "data-dir", "", "data directory (default: ./data)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	st := store.New(cfg.Data.Dir)
	active, err := st.LoadActive()
	if err != nil {
		return fmt.Errorf("load active set: %w", err)
	}
	if len(active) == 0 {
		fmt.Println("Nothing to check")
		return nil
	}

	checker := health.NewChecker(cfg.HTTP.Timeout, cfg.Concurrency.CheckWorkers, cfg.HTTP.UserAgent)
	results := checker.CheckAll(ctx, active)

	var reachable, dead, unknown int
	for _, res := range results {
		switch {
		case res.Dead:
			dead++
			fmt.Printf("DEAD  %s\n      %s", res.Title, res.URL)
			if res.StatusCode != 0 {
				fmt.Printf(" (%d)", res.StatusCode)
			}
			fmt.Println()
		case res.Reachable:
			reachable++
			if verbose {
				fmt.Fprintf(os.Stderr, "ok    %s (%d)\n", res.URL, res.StatusCode)
			}
		default:
			unknown++
			if verbose {
				fmt.Fprintf(os.Stderr, "?     %s: %s\n", res.URL, res.Error)
			}
		}
	}

	fmt.Printf("\nChecked %d: %d reachable, %d dead, %d inconclusive\n",
		len(results), reachable, dead, unknown)

	return nil
}
