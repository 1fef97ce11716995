// Package dto defines data transfer objects for the symbolsearch HTTP API.
package dto

// SearchResponse is the symbol search result as returned to clients.
// Matches keep the provider's field names unchanged; Columns gives their display order.
type SearchResponse struct {
	Columns []string         `json:"columns"`
	Matches []map[string]any `json:"matches"`
}
