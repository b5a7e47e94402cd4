package diagnose

import "strings"

// ResolveUrgency classifies the response into exactly one tier. The ladder is
// evaluated top-down and the first match wins, independent of where in the
// text the trigger appears; a text satisfying several tiers therefore
// resolves to the most severe one.
func ResolveUrgency(raw string, safetyWarnings []string) Urgency {
	upper := strings.ToUpper(raw)

	for _, w := range safetyWarnings {
		wu := strings.ToUpper(w)
		if strings.Contains(wu, "EMERGENCY") || strings.Contains(wu, "DANGER") {
			return UrgencyEmergency
		}
	}

	switch {
	case strings.Contains(upper, "GAS LEAK") || strings.Contains(upper, "ELECTRICAL HAZARD"):
		return UrgencyEmergency
	case strings.Contains(upper, "URGENT") || strings.Contains(upper, "IMMEDIATELY") || strings.Contains(upper, "ASAP"):
		return UrgencyUrgent
	case strings.Contains(upper, "SOON") || strings.Contains(upper, "PROMPT") || strings.Contains(upper, "PRIORITY"):
		return UrgencyModerate
	default:
		return UrgencyRoutine
	}
}
