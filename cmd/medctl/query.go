package main

import (
	"context"
	"fmt"
	"strings"

	"codeberg.org/medlit/server/internal/research"
	"codeberg.org/medlit/server/internal/tui"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var rawOutput bool

// queryCmd asks the research API a question
var queryCmd = &cobra.Command{
	Use:   "query <question>",
	Short: "Ask a free-text research question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().BoolVar(&rawOutput, "raw", false, "print markdown without terminal rendering")
}

func runQuery(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))
	if question == "" {
		return fmt.Errorf("question must not be empty")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	result, err := newClient().Query(ctx, question)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	md := tui.AnswerMarkdown(result.Answer, research.FormatSources(result.Sources))
	if rawOutput {
		fmt.Fprintln(cmd.OutOrStdout(), md)
		return nil
	}

	out, err := glamour.Render(md, "dark")
	if err != nil {
		return fmt.Errorf("failed to render answer: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
