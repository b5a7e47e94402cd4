package diagnose

import "strings"

// causeEntry is one row of the editorial likely-cause table. Probability
// tiers are curated judgments, deliberately not inferred from the specific
// response text.
type causeEntry struct {
	name        string
	probability string
	indicators  []string
}

// causeTable is the versioned cause-to-indicator lookup. Row order determines
// extraction order, so it must stay stable; tune rows here, not in the
// extractor.
var causeTable = []causeEntry{
	{"compressor", "high", []string{"unusual noise", "no cooling", "high amp draw"}},
	{"gas valve", "medium", []string{"no ignition", "flame sensor", "no gas flow"}},
	{"heat exchanger", "high", []string{"corrosion", "cracks", "combustion issues"}},
	{"blower motor", "medium", []string{"no airflow", "motor noise", "high amp draw"}},
	{"control board", "medium", []string{"erratic operation", "no response", "error codes"}},
	{"thermostat", "low", []string{"no call", "temperature differential", "wiring"}},
	{"capacitor", "high", []string{"motor won't start", "humming", "amp draw"}},
	{"contactor", "medium", []string{"chattering", "pitted contacts", "coil failure"}},
}

// extractLikelyCauses returns the table rows whose component name appears in
// the response text, capped at maxLikelyCauses.
func extractLikelyCauses(raw string) []LikelyCause {
	lower := strings.ToLower(raw)

	var causes []LikelyCause
	for _, entry := range causeTable {
		if !strings.Contains(lower, entry.name) {
			continue
		}
		indicators := make([]string, len(entry.indicators))
		copy(indicators, entry.indicators)
		causes = append(causes, LikelyCause{
			Cause:       titleCase(entry.name) + " failure/malfunction",
			Probability: entry.probability,
			Indicators:  indicators,
		})
		if len(causes) == maxLikelyCauses {
			break
		}
	}
	return causes
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
