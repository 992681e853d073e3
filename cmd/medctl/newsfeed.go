package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"codeberg.org/medlit/server/internal/research"
	"codeberg.org/medlit/server/medlit/assistant"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	niche  string
	months int
)

var (
	paperTitleStyle = lipgloss.NewStyle().Bold(true)
	paperMetaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// newsfeedCmd lists recent papers for a specialty
var newsfeedCmd = &cobra.Command{
	Use:   "newsfeed",
	Short: "List recent papers for a specialty",
	RunE:  runNewsfeed,
}

func init() {
	newsfeedCmd.Flags().StringVar(&niche, "niche", assistant.DefaultNiche, "specialty to search, e.g. cardiology")
	newsfeedCmd.Flags().IntVar(&months, "months", assistant.NewsfeedMonths, "how many months back to search")
}

func runNewsfeed(cmd *cobra.Command, _ []string) error {
	if months <= 0 {
		return fmt.Errorf("--months must be positive")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	papers, err := newClient().Newsfeed(ctx, strings.ToLower(niche), months)
	if err != nil {
		return fmt.Errorf("newsfeed failed: %w", err)
	}

	printPapers(cmd.OutOrStdout(), papers)
	return nil
}

func printPapers(w io.Writer, papers []research.Paper) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "no papers found")
		return
	}

	for _, p := range papers {
		fmt.Fprintln(w, paperTitleStyle.Render(p.Title))
		fmt.Fprintln(w, paperMetaStyle.Render(fmt.Sprintf("%s  published %s  %s", p.PMCID, p.PublicationDate, p.FullTextURL)))
		fmt.Fprintln(w)
	}
}
