package app

import "strings"

// Span attribute values are capped so a bulk score upsert cannot bloat the
// trace payload.
const maxTracedQueryLength = 512

// formatDBQueryForTrace collapses whitespace in a query before it is attached
// to a database span, so multi-line querybuilder output reads as one line.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) > maxTracedQueryLength {
		return normalized[:maxTracedQueryLength] + "..."
	}
	return normalized
}
