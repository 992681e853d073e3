package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   SourceLink
	}{
		{
			name:   "web url shows hostname",
			source: "https://www.nejm.org/doi/full/10.1056/x",
			want:   SourceLink{Text: "www.nejm.org", URL: "https://www.nejm.org/doi/full/10.1056/x", External: true},
		},
		{
			name:   "pmc id links to pubmed central",
			source: "PMC7096724",
			want:   SourceLink{Text: "PMC7096724", URL: "https://www.ncbi.nlm.nih.gov/pmc/articles/PMC7096724/", External: true},
		},
		{
			name:   "pmc id with title keeps text",
			source: "PMC123 - Heart failure outcomes",
			want:   SourceLink{Text: "PMC123 - Heart failure outcomes", URL: "https://www.ncbi.nlm.nih.gov/pmc/articles/PMC123/", External: true},
		},
		{
			name:   "pmc prefix without digits is plain text",
			source: "PMC guidelines",
			want:   SourceLink{Text: "PMC guidelines"},
		},
		{
			name:   "anything else is plain text",
			source: "Harrison's Principles, ch. 12",
			want:   SourceLink{Text: "Harrison's Principles, ch. 12"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSource(tt.source))
		})
	}
}

func TestFormatSources_NeverNil(t *testing.T) {
	assert.NotNil(t, FormatSources(nil))
	assert.Len(t, FormatSources([]string{"a", "PMC1"}), 2)
}
