package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ewagner/oppscout/internal/digest"
	"github.com/ewagner/oppscout/internal/llm"
	"github.com/ewagner/oppscout/internal/model"
	"github.com/ewagner/oppscout/internal/store"
)

var (
	digestDryRun bool
	digestOut    string
)

// digestCmd represents the digest command
var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Render and send the email digest",
	Long: `Digest builds an HTML summary of the active opportunity set:
opportunities closing within the configured window (soonest first) and
opportunities first seen this cycle.

SMTP credentials come from the config file, OPPSCOUT_SMTP_* environment
variables, or a .env file in the working directory.

Example:
  oppscout digest
  oppscout digest --dry-run --out digest.html`,
	RunE: runDigest,
}

func init() {
	rootCmd.AddCommand(digestCmd)

	digestCmd.Flags().BoolVar(&digestDryRun, "dry-run", false, "render without sending")
	digestCmd.Flags().StringVar(&digestOut, "out", "", "write rendered HTML to a file")
	digestCmd.Flags().StringVar(&dataDir, "data-dir", "", "data directory (default: ./data)")
}

func runDigest(cmd *cobra.Command, args []string) error {
	// Local .env is optional; absence is not an error.
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}

	st := store.New(cfg.Data.Dir)
	active, err := st.LoadActive()
	if err != nil {
		return fmt.Errorf("load active set: %w", err)
	}
	if len(active) == 0 {
		return fmt.Errorf("no opportunities in %s; run 'oppscout run' first", cfg.Data.Dir)
	}

	now := time.Now()
	closing := digest.ClosingSoon(active, now, cfg.Digest.ClosingSoonDays)
	fresh := digest.NewSince(active, now, cfg.Digest.NewWithinDays)

	if verbose {
		fmt.Fprintf(os.Stderr, "%d active, %d closing soon, %d new\n", len(active), len(closing), len(fresh))
	}

	intro := generateIntro(cfg, closing, fresh)

	content := digest.BuildContent(closing, fresh, cfg.Digest.SiteURL, intro, now)
	html, err := digest.Render(content)
	if err != nil {
		return err
	}

	if digestOut != "" {
		if err := os.WriteFile(digestOut, []byte(html), 0644); err != nil {
			return fmt.Errorf("write digest: %w", err)
		}
		fmt.Printf("Wrote %s\n", digestOut)
	}

	if digestDryRun {
		if digestOut == "" {
			fmt.Println(html)
		}
		return nil
	}

	subject := fmt.Sprintf("Fellowship & Grant Digest: %d closing soon, %d new", len(closing), len(fresh))
	if err := digest.NewSender(cfg.SMTP).Send(subject, html); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}

	fmt.Printf("Sent digest to %d recipient(s)\n", len(cfg.SMTP.To))
	return nil
}

// generateIntro asks the summarizer for an intro paragraph. Any failure
// degrades to an empty intro; the digest always goes out.
func generateIntro(cfg *model.Config, closing, fresh []digest.Entry) string {
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	summarizer := llm.NewSummarizer(cfg.LLM)
	if summarizer == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	intro, err := summarizer.Intro(ctx, entriesToOpportunities(closing), entriesToOpportunities(fresh))
	if err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "intro generation failed: %v\n", err)
		}
		return ""
	}
	return intro
}

func entriesToOpportunities(entries []digest.Entry) []model.Opportunity {
	opps := make([]model.Opportunity, len(entries))
	for i, e := range entries {
		opps[i] = e.Opportunity
	}
	return opps
}
