package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// rows taken by header, input box, recent list and status line
const consoleChrome = 16

// returns a new research console
func NewConsole(querier Querier) *ConsoleModel {
	ti := textinput.New()
	ti.Placeholder = "ask about recent literature..."
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 80
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorTeal)

	return &ConsoleModel{
		querier:            querier,
		input:              ti,
		spinner:            sp,
		viewport:           viewport.New(80, 10),
		showInitialMessage: true,
	}
}

func (m *ConsoleModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ConsoleModel) Update(msg tea.Msg) (*ConsoleModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			query := strings.TrimSpace(m.input.Value())
			if query == "" || m.isFetching {
				return m, nil
			}

			m.isFetching = true
			m.input.SetValue("")
			m.recent = pushRecent(m.recent, query)

			return m, tea.Batch(m.spinner.Tick, queryCmd(m.querier, query))

		case "ctrl+l":
			m.input.SetValue("")
			m.lastAnswer = ""
			m.recent = nil
			m.showInitialMessage = true
			m.viewport.SetContent("")
			return m, nil

		case "pgup", "pgdown", "up", "down":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case AnswerMsg:
		m.isFetching = false
		m.showInitialMessage = false
		m.lastAnswer = AnswerMarkdown(msg.answer, msg.sources)
		m.viewport.SetContent(m.render(m.lastAnswer))
		m.viewport.GotoTop()
		m.input.Focus()
		return m, nil

	case AnswerErrorMsg:
		m.isFetching = false
		m.showInitialMessage = false
		m.lastAnswer = fmt.Sprintf("Error: %v", msg.err)
		m.viewport.SetContent(m.lastAnswer)
		m.input.Focus()
		return m, nil

	case spinner.TickMsg:
		if !m.isFetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if m.lastAnswer != "" {
			m.viewport.SetContent(m.render(m.lastAnswer))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *ConsoleModel) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	m.width = width
	m.height = height
	m.input.Width = max(10, width-10)
	m.viewport.Width = max(10, width-4)
	m.viewport.Height = max(5, height-consoleChrome)

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(20, width-8)),
	)
	if err == nil {
		m.glamourRenderer = r
	}

	m.ready = true
}

// renders markdown through glamour, falling back to the raw text
func (m *ConsoleModel) render(markdown string) string {
	if m.glamourRenderer == nil {
		return markdown
	}

	out, err := m.glamourRenderer.Render(markdown)
	if err != nil {
		return markdown
	}

	return out
}

func (m *ConsoleModel) View() string {
	var b strings.Builder

	header := lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("RESEARCH")
	help := lipgloss.NewStyle().Foreground(colorGray).Render("[Enter: Ask] [PgUp/PgDn: Scroll] [Ctrl+L: Clear] [Ctrl+C: Back]")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left,
		header,
		strings.Repeat(" ", max(1, m.width-lipgloss.Width(header)-lipgloss.Width(help)-2)),
		help,
	))
	b.WriteString("\n\n")

	content := m.viewport.View()
	if m.showInitialMessage {
		content = infoStyle.Render("ready! type a clinical question below and press enter.")
	}

	b.WriteString(boxStyle.Width(max(10, m.width-4)).Render(content))
	b.WriteString("\n")

	if len(m.recent) > 0 {
		b.WriteString(infoStyle.Render("recent:"))
		b.WriteString("\n")
		for _, q := range m.recent {
			b.WriteString(recentStyle.Render("• " + q))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(boxStyle.Width(max(10, m.width-4)).Padding(0, 1).Render(m.input.View()))
	b.WriteString("\n")

	if m.isFetching {
		b.WriteString(m.spinner.View() + infoStyle.Render(" searching the literature..."))
	}

	return b.String()
}

// recent questions, newest first
func (m *ConsoleModel) Recent() []string {
	return m.recent
}
