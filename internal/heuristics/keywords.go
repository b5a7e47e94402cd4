// Package heuristics provides the shared keyword and pattern tables used by
// all free-text extractors. Matching is line-oriented and case-insensitive;
// every table here is ordered so extraction output is deterministic for
// identical input.
package heuristics

import "strings"

// KeywordSet is a named set of keywords matched case-insensitively as
// substrings of a line.
type KeywordSet struct {
	name  string
	words []string
}

// NewKeywordSet creates a keyword set. Words are stored lowercased.
func NewKeywordSet(name string, words ...string) KeywordSet {
	lowered := make([]string, len(words))
	for i, w := range words {
		lowered[i] = strings.ToLower(w)
	}
	return KeywordSet{name: name, words: lowered}
}

// Name returns the set identifier.
func (s KeywordSet) Name() string { return s.name }

// Words returns the lowercased keywords in table order.
func (s KeywordSet) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// Matches reports whether any keyword appears in the text.
func (s KeywordSet) Matches(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range s.words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// Safety flags lines that carry a hazard callout.
var Safety = NewKeywordSet("safety",
	"DANGER", "WARNING", "CAUTION", "SAFETY", "EMERGENCY",
	"HAZARD", "RISK", "ELECTRICAL", "GAS LEAK",
)

// ActionVerbs flags imperative diagnostic steps.
var ActionVerbs = NewKeywordSet("action_verbs",
	"check", "test", "measure", "verify", "inspect",
	"turn off", "shut down", "isolate",
)

// Professional flags language implying licensed-trade work.
var Professional = NewKeywordSet("professional",
	"licensed", "certified", "professional", "technician",
	"qualified", "contractor",
)

// Tests flags measurement and verification procedures.
var Tests = NewKeywordSet("tests",
	"measure", "test", "check voltage", "pressure test",
	"amperage", "temperature",
)

// TestPriority marks a recommended test as high priority.
var TestPriority = NewKeywordSet("test_priority",
	"first", "immediate", "critical",
)

// Manufacturer flags model- or bulletin-specific guidance.
var Manufacturer = NewKeywordSet("manufacturer",
	"manufacturer", "model", "bulletin", "recall", "tsb",
)

// TimeWords flags duration estimates.
var TimeWords = NewKeywordSet("time",
	"minutes", "hour", "hours", "time",
)

// DataRequest flags asks for further readings or information.
var DataRequest = NewKeywordSet("data_request",
	"need", "require", "measure", "provide", "get",
)
