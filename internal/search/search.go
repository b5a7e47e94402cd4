// Package search provides the external web-search collaborator used to
// enrich nameplate analyses with reference links. The rest of the system
// treats search as best-effort; callers must tolerate errors and empty
// result sets.
package search

import "context"

// Result is one organic web search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

// Searcher issues a query and returns up to count ordered results.
type Searcher interface {
	Search(ctx context.Context, query string, count int) ([]Result, error)
	Name() string
}
