package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"codeberg.org/medlit/server/internal/research"
	tea "github.com/charmbracelet/bubbletea"
)

// research API calls can take close to a minute
const queryTimeout = 75 * time.Second

// returns a tea.Cmd that asks the research API a question
func queryCmd(q Querier, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		result, err := q.Query(ctx, query)
		if err != nil {
			return AnswerErrorMsg{query: query, err: err}
		}

		return AnswerMsg{
			query:   query,
			answer:  result.Answer,
			sources: research.FormatSources(result.Sources),
		}
	}
}

// builds the markdown shown for an answer: the text followed by a sources list
func AnswerMarkdown(answer string, sources []research.SourceLink) string {
	var b strings.Builder

	b.WriteString(strings.TrimSpace(answer))

	if len(sources) > 0 {
		b.WriteString("\n\n### Sources\n\n")
		for _, s := range sources {
			if s.URL != "" {
				fmt.Fprintf(&b, "- [%s](%s)\n", s.Text, s.URL)
			} else {
				fmt.Fprintf(&b, "- %s\n", s.Text)
			}
		}
	}

	return b.String()
}

// keeps the newest query first, at most maxRecentQueries entries, without duplicates
func pushRecent(recent []string, query string) []string {
	out := make([]string, 0, maxRecentQueries)
	out = append(out, query)

	for _, q := range recent {
		if len(out) == maxRecentQueries {
			break
		}
		if q != query {
			out = append(out, q)
		}
	}

	return out
}
