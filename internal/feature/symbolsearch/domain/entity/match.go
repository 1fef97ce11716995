// Package entity defines the domain models for the symbolsearch feature.
package entity

// Match is one record of a symbol search result.
// Field names and values are kept exactly as the provider returned them
// (e.g. "1. symbol", "2. name", "9. matchScore").
type Match map[string]any

// MatchTable is the ordered list of search matches.
// Columns lists every field name in the order it first appeared in the payload.
type MatchTable struct {
	Columns []string
	Rows    []Match
}

// Len returns the number of matches.
func (t MatchTable) Len() int {
	return len(t.Rows)
}
