package tui

import (
	"context"

	"codeberg.org/medlit/server/internal/research"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StateConsole
)

// how many past questions the console keeps on screen
const maxRecentQueries = 5

// answers research questions; satisfied by *research.Client
type Querier interface {
	Query(ctx context.Context, query string) (*research.QueryResult, error)
}

// main TUI application model
type Model struct {
	state   AppState
	width   int
	height  int
	err     error
	welcome *Welcome
	console *ConsoleModel
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent to transition to the research console
type EnterConsoleMsg struct{}

// research console: question input, rendered answer and recent questions
type ConsoleModel struct {
	querier            Querier
	input              textinput.Model
	viewport           viewport.Model
	spinner            spinner.Model
	glamourRenderer    *glamour.TermRenderer
	width              int
	height             int
	recent             []string
	lastAnswer         string
	isFetching         bool
	ready              bool
	showInitialMessage bool
}

// sent when the research API answers
type AnswerMsg struct {
	query   string
	answer  string
	sources []research.SourceLink
}

// sent when the research API call fails
type AnswerErrorMsg struct {
	query string
	err   error
}

// welcome screen model
type Welcome struct {
	apiBase  string
	input    string
	commands []Command
}

// represents an available TUI command
type Command struct {
	Name        string
	Description string
}
