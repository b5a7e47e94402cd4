package search

import (
	"context"
	"strings"
	"sync"
)

const MockSearcherName = "mock"

// MockSearcher is a Searcher for testing. Results are matched by query
// substring; unmatched queries return Fallback.
type MockSearcher struct {
	// Configurable behavior
	Results  map[string][]Result // keyed by query substring
	Fallback []Result
	Err      error

	mu      sync.Mutex
	queries []string
}

// Name returns the searcher identifier.
func (m *MockSearcher) Name() string {
	return MockSearcherName
}

// Search records the query and returns the configured results.
func (m *MockSearcher) Search(ctx context.Context, query string, count int) ([]Result, error) {
	m.mu.Lock()
	m.queries = append(m.queries, query)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for substr, results := range m.Results {
		if substr != "" && containsFold(query, substr) {
			return clampResults(results, count), nil
		}
	}
	return clampResults(m.Fallback, count), nil
}

// Queries returns every query seen, in order.
func (m *MockSearcher) Queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.queries))
	copy(out, m.queries)
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func clampResults(results []Result, count int) []Result {
	if count > 0 && len(results) > count {
		results = results[:count]
	}
	out := make([]Result, len(results))
	copy(out, results)
	return out
}

// Verify interface
var _ Searcher = (*MockSearcher)(nil)
