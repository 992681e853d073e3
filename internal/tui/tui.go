package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func NewApp(querier Querier, apiBase string) *Model {
	return &Model{
		state:   StateWelcome,
		welcome: NewWelcome(apiBase),
		console: NewConsole(querier),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// only quit from welcome screen, not from the console
		if msg.String() == "ctrl+c" && m.state == StateWelcome {
			return m, tea.Quit
		}

		// in the console, ctrl+c goes back to welcome
		if msg.String() == "ctrl+c" && m.state == StateConsole {
			m.state = StateWelcome
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if m.state == StateConsole {
			m.console, _ = m.console.Update(msg)
		}

	case ErrorMsg:
		m.err = msg.err
		return m, nil

	case EnterConsoleMsg:
		m.state = StateConsole
		m.console, _ = m.console.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, m.console.Init()
	}

	switch m.state {
	case StateWelcome:
		var cmd tea.Cmd
		m.welcome, cmd = m.welcome.Update(msg)
		return m, cmd

	case StateConsole:
		var cmd tea.Cmd
		m.console, cmd = m.console.Update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	if m.err != nil {
		return errorView(m.err)
	}

	switch m.state {
	case StateWelcome:
		return m.welcome.View()

	case StateConsole:
		return m.console.View()

	default:
		return "Unknown state"
	}
}

func errorView(err error) string {
	return fmt.Sprintf("\n  Error: %v\n\n  Press Ctrl+C to exit\n", err)
}
