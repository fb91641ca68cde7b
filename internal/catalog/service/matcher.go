package service

import (
	"fmt"
	"regexp"

	"bulwark/internal/catalog/models"
)

type compiledPattern struct {
	id   string
	name string
	re   *regexp.Regexp
}

// Matcher searches commands for the regex patterns of a REGEX rule atom.
// Matching is case-insensitive and unanchored.
type Matcher struct {
	patterns []compiledPattern
}

func NewMatcher(patterns []*models.RegexPattern) (*Matcher, error) {
	m := &Matcher{patterns: make([]compiledPattern, 0, len(patterns))}
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p.Regex)
		if err != nil {
			return nil, fmt.Errorf("compile pattern %s: %w", p.Name, err)
		}
		m.patterns = append(m.patterns, compiledPattern{id: p.ID, name: p.Name, re: re})
	}
	return m, nil
}

// Match returns the ids of the patterns found in command, in pattern order.
func (m *Matcher) Match(command string) []string {
	var hits []string
	for _, p := range m.patterns {
		if p.re.MatchString(command) {
			hits = append(hits, p.id)
		}
	}
	return hits
}

// IDs lists every pattern id.
func (m *Matcher) IDs() []string {
	ids := make([]string, len(m.patterns))
	for i, p := range m.patterns {
		ids[i] = p.id
	}
	return ids
}

// Names lists every pattern name.
func (m *Matcher) Names() []string {
	names := make([]string, len(m.patterns))
	for i, p := range m.patterns {
		names[i] = p.name
	}
	return names
}
