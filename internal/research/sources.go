package research

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var pmcidPattern = regexp.MustCompile(`PMC\d+`)

const pmcArticleURL = "https://www.ncbi.nlm.nih.gov/pmc/articles/%s/"

// turns a raw source string from the API into a display link
func FormatSource(source string) SourceLink {
	if strings.HasPrefix(source, "http") {
		if u, err := url.Parse(source); err == nil && u.Hostname() != "" {
			return SourceLink{Text: u.Hostname(), URL: source, External: true}
		}
	}

	if strings.HasPrefix(source, "PMC") {
		if pmcid := pmcidPattern.FindString(source); pmcid != "" {
			return SourceLink{
				Text:     source,
				URL:      fmt.Sprintf(pmcArticleURL, pmcid),
				External: true,
			}
		}
	}

	return SourceLink{Text: source}
}

func FormatSources(sources []string) []SourceLink {
	links := make([]SourceLink, 0, len(sources))
	for _, s := range sources {
		links = append(links, FormatSource(s))
	}
	return links
}
