package tui

import (
	"context"
	"errors"
	"testing"

	"codeberg.org/medlit/server/internal/research"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuerier struct {
	result *research.QueryResult
	err    error
	got    string
}

func (f *fakeQuerier) Query(_ context.Context, query string) (*research.QueryResult, error) {
	f.got = query
	return f.result, f.err
}

func typeText(m *ConsoleModel, text string) *ConsoleModel {
	m.input.SetValue(text)
	return m
}

func TestPushRecent(t *testing.T) {
	var recent []string
	for _, q := range []string{"a", "b", "c", "d", "e", "f"} {
		recent = pushRecent(recent, q)
	}

	assert.Equal(t, []string{"f", "e", "d", "c", "b"}, recent)

	recent = pushRecent(recent, "c")
	assert.Equal(t, []string{"c", "f", "e", "d", "b"}, recent, "repeated query moves to the front")
}

func TestAnswerMarkdown(t *testing.T) {
	md := AnswerMarkdown("  Metformin is first line.  ", research.FormatSources([]string{
		"PMC123456",
		"https://example.org/paper",
		"Textbook of Medicine",
	}))

	assert.Contains(t, md, "Metformin is first line.\n\n### Sources")
	assert.Contains(t, md, "- [PMC123456](https://www.ncbi.nlm.nih.gov/pmc/articles/PMC123456/)")
	assert.Contains(t, md, "- [example.org](https://example.org/paper)")
	assert.Contains(t, md, "- Textbook of Medicine\n")
}

func TestAnswerMarkdown_NoSources(t *testing.T) {
	assert.Equal(t, "answer", AnswerMarkdown("answer", nil))
}

func TestConsole_SubmitQuery(t *testing.T) {
	q := &fakeQuerier{result: &research.QueryResult{Answer: "yes", Sources: []string{"PMC1"}}}
	m := typeText(NewConsole(q), "  does it work?  ")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	assert.True(t, m.isFetching)
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, []string{"does it work?"}, m.Recent())

	msg := queryCmd(q, "does it work?")()
	answer, ok := msg.(AnswerMsg)
	require.True(t, ok)
	assert.Equal(t, "does it work?", q.got)

	m, _ = m.Update(answer)
	assert.False(t, m.isFetching)
	assert.False(t, m.showInitialMessage)
	assert.Contains(t, m.lastAnswer, "yes")
	assert.Contains(t, m.lastAnswer, "PMC1")
}

func TestConsole_EmptyQueryIgnored(t *testing.T) {
	m := typeText(NewConsole(&fakeQuerier{}), "   ")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.isFetching)
	assert.Empty(t, m.Recent())
}

func TestConsole_QueryError(t *testing.T) {
	q := &fakeQuerier{err: errors.New("boom")}

	msg := queryCmd(q, "x")()
	failed, ok := msg.(AnswerErrorMsg)
	require.True(t, ok)

	m := NewConsole(q)
	m.isFetching = true
	m, _ = m.Update(failed)

	assert.False(t, m.isFetching)
	assert.Equal(t, "Error: boom", m.lastAnswer)
}

func TestConsole_Clear(t *testing.T) {
	m := NewConsole(&fakeQuerier{})
	m.recent = []string{"a"}
	m.lastAnswer = "something"
	m.showInitialMessage = false

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})

	assert.Empty(t, m.Recent())
	assert.Empty(t, m.lastAnswer)
	assert.True(t, m.showInitialMessage)
}

func TestWelcome_Commands(t *testing.T) {
	w := NewWelcome("http://localhost:8000")
	w.input = "research"

	w, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, EnterConsoleMsg{}, cmd())
	assert.Empty(t, w.input)

	w.input = "nope"
	_, cmd = w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	errMsg, ok := cmd().(ErrorMsg)
	require.True(t, ok)
	assert.EqualError(t, errMsg.err, "unknown command: nope")

	assert.Contains(t, w.View(), "http://localhost:8000")
}

func TestModel_EntersAndLeavesConsole(t *testing.T) {
	app := NewApp(&fakeQuerier{}, "http://localhost:8000")

	_, _ = app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	_, _ = app.Update(EnterConsoleMsg{})
	assert.Equal(t, StateConsole, app.state)
	assert.True(t, app.console.ready)

	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, StateWelcome, app.state)
}
