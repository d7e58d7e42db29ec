package schema

import (
	"regexp"
	"strings"
)

// PlaceholderColumn is the reserved name a column label collapses to when
// cleaning strips away everything. Using a fixed placeholder keeps two
// junk-labelled columns from silently colliding with a real empty name.
const PlaceholderColumn = "col"

var nonColumnChars = regexp.MustCompile(`[^0-9a-zA-Z_ ]`)

// CleanColumnName normalizes a human-entered column label for comparison:
// lowercase, strip everything outside [0-9a-zA-Z_ ], spaces to underscores.
func CleanColumnName(name string) string {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	cleaned = nonColumnChars.ReplaceAllString(cleaned, "")
	cleaned = strings.ReplaceAll(cleaned, " ", "_")
	if cleaned == "" {
		return PlaceholderColumn
	}
	return cleaned
}

// CleanHeaders normalizes every header in a raw header row
func CleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, h := range headers {
		cleaned[i] = CleanColumnName(h)
	}
	return cleaned
}
