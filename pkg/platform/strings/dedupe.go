// Package strings provides string manipulation utilities.
package strings

import (
	"regexp"
	"sort"
	"strings"
)

// listSeparators matches the separators operators use in free-text list
// fields: ASCII and full-width comma/semicolon, plus any whitespace.
var listSeparators = regexp.MustCompile(`[,;，；\s]`)

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved.
//
// Example:
//
//	DedupeAndTrim([]string{"  foo ", "bar", "foo", "", "  "})
//	// Returns: []string{"foo", "bar"}
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}

// SplitList splits a free-text list field on list separators and drops empty items.
//
// Example:
//
//	SplitList("a1b2c3d, e4f5；g6")
//	// Returns: []string{"a1b2c3d", "e4f5", "g6"}
func SplitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := listSeparators.Split(value, -1)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// NormalizeList splits value, removes duplicates and rejoins the sorted items with ", ".
//
// Example:
//
//	NormalizeList("web,api; web")
//	// Returns: "api, web"
func NormalizeList(value string) string {
	items := DedupeAndTrim(SplitList(value))
	sort.Strings(items)
	return strings.Join(items, ", ")
}

// EmailPrefix returns the local part of an email address, or value unchanged.
func EmailPrefix(value string) string {
	if i := strings.Index(value, "@"); i >= 0 {
		return value[:i]
	}
	return value
}
