// Package strings provides small string-slice helpers shared across the
// content pipeline.
package strings

import (
	"strings"
)

// DedupeAndTrim removes duplicates and empty strings from a slice, trimming
// whitespace from each element. Order is preserved. Manifest path lists run
// through this before use: authors occasionally list the same markdown file
// twice or leave a stray blank entry.
//
// Example:
//
//	DedupeAndTrim([]string{"  first.md ", "notes.md", "first.md", "", "  "})
//	// Returns: []string{"first.md", "notes.md"}
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
