package main

import (
	"fmt"

	"codeberg.org/medlit/server/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// tuiCmd opens the interactive research console
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive research console",
	RunE: func(_ *cobra.Command, _ []string) error {
		app := tui.NewApp(newClient(), apiBaseURL)
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running medctl tui: %w", err)
		}
		return nil
	},
}
