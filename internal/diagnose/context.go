package diagnose

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// historyWindow bounds how many trailing exchanges of conversation history
// are replayed into the prompt context.
const historyWindow = 3

// assistantClip bounds replayed assistant turns so long prior answers do not
// crowd out the current request.
const assistantClip = 200

// BuildContext flattens a request into the user-turn text sent to the model.
// Sections for absent fields are omitted entirely rather than rendered empty.
func BuildContext(req *DiagnosticRequest, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== PROFESSIONAL DIAGNOSTIC SESSION ===\n")
	fmt.Fprintf(&b, "Session ID: %s\n", req.SessionID)
	fmt.Fprintf(&b, "User ID: %s\n", req.UserID)
	fmt.Fprintf(&b, "Timestamp: %s\n\n", now.Format(time.RFC3339))

	if plate := req.RatingPlate; plate != nil {
		b.WriteString("EQUIPMENT SPECIFICATIONS (Rating Plate Analysis):\n")
		fmt.Fprintf(&b, "- Model Number: %s\n", plate.ModelNumber)
		fmt.Fprintf(&b, "- Manufacturer: %s\n", plate.Manufacturer)
		if plate.CapacityBTUH > 0 {
			fmt.Fprintf(&b, "- Capacity: %d BTU/h\n", plate.CapacityBTUH)
		}
		if plate.RefrigerantType != "" {
			fmt.Fprintf(&b, "- Refrigerant Type: %s\n", plate.RefrigerantType)
		}
		if len(plate.ElectricalSpecs) > 0 {
			fmt.Fprintf(&b, "- Electrical Specifications: %s\n", formatSpecs(plate.ElectricalSpecs))
		}
		if plate.YearManufactured > 0 {
			fmt.Fprintf(&b, "- Manufacturing Year: %d\n", plate.YearManufactured)
		}
		b.WriteString("\n")
	}

	if req.SystemType != "" {
		fmt.Fprintf(&b, "SYSTEM CLASSIFICATION: %s\n\n", enumTitle(string(req.SystemType)))
	}
	if req.SystemAge > 0 {
		fmt.Fprintf(&b, "SYSTEM AGE: %d years\n\n", req.SystemAge)
	}

	b.WriteString("REPORTED SYMPTOMS AND SITUATION:\n")
	fmt.Fprintf(&b, "Primary Issue: %s\n", req.Symptoms)
	if req.IssueCategory != "" {
		fmt.Fprintf(&b, "Issue Category: %s\n", enumTitle(string(req.IssueCategory)))
	}
	if req.WhenOccurred != "" {
		fmt.Fprintf(&b, "Timing/Occurrence: %s\n", req.WhenOccurred)
	}
	if req.EnvironmentalConditions != "" {
		fmt.Fprintf(&b, "Environmental Conditions: %s\n", req.EnvironmentalConditions)
	}
	b.WriteString("\n")

	if len(req.ActionsTaken) > 0 {
		b.WriteString("ACTIONS ALREADY TAKEN:\n")
		for _, action := range req.ActionsTaken {
			fmt.Fprintf(&b, "- %s\n", action)
		}
		b.WriteString("\n")
	}

	if len(req.MeasurementsTaken) > 0 {
		b.WriteString("MEASUREMENTS AND DATA COLLECTED:\n")
		for _, key := range sortedKeys(req.MeasurementsTaken) {
			fmt.Fprintf(&b, "- %s: %s\n", key, req.MeasurementsTaken[key])
		}
		b.WriteString("\n")
	}

	if len(req.ConversationHistory) > 0 {
		b.WriteString("CONVERSATION HISTORY (Recent Context):\n")
		history := req.ConversationHistory
		if len(history) > historyWindow {
			history = history[len(history)-historyWindow:]
		}
		for _, exchange := range history {
			fmt.Fprintf(&b, "Technician: %s\n", exchange.User)
			fmt.Fprintf(&b, "Assistant: %s...\n\n", clipRunes(exchange.Assistant, assistantClip))
		}
	}

	b.WriteString("=== PROFESSIONAL DIAGNOSTIC REQUEST ===\n")
	b.WriteString("Provide comprehensive technical analysis suitable for a certified HVAC professional.\n")
	b.WriteString("Focus on actionable diagnostics, safety considerations, and expert-level guidance.\n")

	return b.String()
}

// formatSpecs renders a spec map as "key=value" pairs in key order, keeping
// the context reproducible for identical requests.
func formatSpecs(specs map[string]string) string {
	pairs := make([]string, 0, len(specs))
	for _, key := range sortedKeys(specs) {
		pairs = append(pairs, key+"="+specs[key])
	}
	return strings.Join(pairs, ", ")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// enumTitle turns a snake_case enum value into display form.
func enumTitle(v string) string {
	words := strings.Split(v, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func clipRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
