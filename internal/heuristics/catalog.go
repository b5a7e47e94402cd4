package heuristics

import "strings"

// PhotoSubject maps a free-text keyword to the canonical photo-request tag
// the UI understands.
type PhotoSubject struct {
	Keyword string
	Tag     string
}

// PhotoSubjects is the ordered keyword-to-tag table for photo requests.
// Order determines extraction order, so it must stay stable.
var PhotoSubjects = []PhotoSubject{
	{"rating plate", "rating_plate"},
	{"wiring", "wiring_diagram"},
	{"components", "system_components"},
	{"gas valve", "gas_valve"},
	{"control board", "control_board"},
	{"heat exchanger", "heat_exchanger"},
	{"electrical connections", "electrical_connections"},
}

// PhotoTags returns the deduplicated canonical tags whose keywords appear in
// the text, in table order.
func PhotoTags(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	seen := make(map[string]bool)
	for _, s := range PhotoSubjects {
		if strings.Contains(lower, s.Keyword) && !seen[s.Tag] {
			seen[s.Tag] = true
			tags = append(tags, s.Tag)
		}
	}
	return tags
}

// CommonParts is the ordered catalog of replaceable parts recognized in
// diagnostic text.
var CommonParts = []string{
	"contactor", "capacitor", "thermostat", "gas valve", "flame sensor",
	"heat exchanger", "blower motor", "control board", "igniter", "transformer",
	"pressure switch", "limit switch", "inducer motor", "expansion valve",
}

// PartNames returns the deduplicated canonical part names mentioned in the
// text, title-cased, in catalog order.
func PartNames(text string) []string {
	lower := strings.ToLower(text)
	var parts []string
	seen := make(map[string]bool)
	for _, p := range CommonParts {
		if strings.Contains(lower, p) && !seen[p] {
			seen[p] = true
			parts = append(parts, titleCase(p))
		}
	}
	return parts
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
