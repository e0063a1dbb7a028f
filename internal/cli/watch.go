package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var (
	runSchedule    string
	digestSchedule string
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the pipeline and digest on a schedule",
	Long: `Watch keeps oppscout running in the foreground and executes the
pipeline and digest on cron schedules (standard 5-field expressions).

Example:
  oppscout watch
  oppscout watch --run-schedule "0 */6 * * *" --digest-schedule "0 8 * * MON"`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&runSchedule, "run-schedule", "0 6 * * *", "cron schedule for pipeline runs")
	watchCmd.Flags().StringVar(&digestSchedule, "digest-schedule", "0 8 * * MON", "cron schedule for digest delivery")
	watchCmd.Flags().StringVar(&dataDir, "data-dir", "", "data directory (default: ./data)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	c := cron.New()

	if _, err := c.AddFunc(runSchedule, func() {
		if err := runPipeline(cmd, nil); err != nil {
			fmt.Fprintf(os.Stderr, "scheduled run failed: %v\n", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid run schedule %q: %w", runSchedule, err)
	}

	if _, err := c.AddFunc(digestSchedule, func() {
		if err := runDigest(cmd, nil); err != nil {
			fmt.Fprintf(os.Stderr, "scheduled digest failed: %v\n", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", digestSchedule, err)
	}

	c.Start()
	defer c.Stop()

	fmt.Printf("Watching: run %q, digest %q (Ctrl-C to stop)\n", runSchedule, digestSchedule)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	fmt.Println("\nStopping")
	return nil
}
