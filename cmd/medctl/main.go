package main

import (
	"fmt"
	"os"
	"time"

	"codeberg.org/medlit/server/internal/research"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	apiBaseURL string
	timeout    time.Duration
)

// rootCmd is the medctl entry point
var rootCmd = &cobra.Command{
	Use:   "medctl",
	Short: "Command-line access to the medical research API",
	Long: `medctl talks to the research API the medlit server proxies.

Available subcommands:
  query    - Ask a free-text research question
  newsfeed - List recent papers for a specialty
  analyze  - Analyze a clinical case against the literature
  token    - Mint a local-mode ID token for testing
  tui      - Open the interactive research console
  migrate  - Apply postgres profile store migrations`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api-base-url", envOr("API_BASE_URL", "http://localhost:8000"), "research API base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 75*time.Second, "request timeout")

	rootCmd.AddCommand(queryCmd, newsfeedCmd, analyzeCmd, tokenCmd, tuiCmd)
}

func main() {
	_ = godotenv.Load() //nolint:errcheck // .env is optional

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newClient() *research.Client {
	return research.NewClient(apiBaseURL)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
