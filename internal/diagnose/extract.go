package diagnose

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/larklabs/hvacjack/internal/heuristics"
)

// Field caps. Every capped field keeps its first N qualifying matches in
// source-line order.
const (
	maxSafetyWarnings      = 5
	maxImmediateActions    = 6
	maxDiagnosticQuestions = 4
	maxLikelyCauses        = 5
	maxRecommendedTests    = 5
	maxManufacturerNotes   = 3
	maxAdditionalData      = 3
)

// Minimum cleaned-line lengths, filtering headings and noise.
const (
	minWarningLen  = 10
	minActionLen   = 15
	minQuestionLen = 20
	minNoteLen     = 20
)

// Extract converts raw model text into a structured report. It never fails:
// text with no recognizable patterns produces a report with empty fields and
// routine urgency. Every sub-extraction runs independently over a line split
// of the same text, so results are reproducible for identical input.
func Extract(raw string, req *DiagnosticRequest) *DiagnosticReport {
	warnings := extractSafetyWarnings(raw)

	report := &DiagnosticReport{
		ResponseID:      uuid.New().String(),
		SessionID:       req.SessionID,
		Timestamp:       time.Now().UTC(),
		PrimaryResponse: raw,

		SafetyWarnings: warnings,
		Urgency:        ResolveUrgency(raw, warnings),

		ImmediateActions:    extractImmediateActions(raw),
		DiagnosticQuestions: extractQuestions(raw),
		RecommendedTests:    extractRecommendedTests(raw),

		LikelyCauses:      extractLikelyCauses(raw),
		ManufacturerNotes: extractManufacturerNotes(raw),

		RequiresProfessional:   heuristics.Professional.Matches(raw),
		EstimatedTime:          extractEstimatedTime(raw),
		PartsPotentiallyNeeded: heuristics.PartNames(raw),

		PhotoRequests:        heuristics.PhotoTags(raw),
		AdditionalDataNeeded: extractAdditionalDataNeeded(raw),
	}

	if req.RatingPlate != nil && req.RatingPlate.Manufacturer != "" {
		report.EquipmentSpecificGuidance = extractEquipmentGuidance(raw, req.RatingPlate.Manufacturer)
	}

	return report
}

// extractSafetyWarnings keeps lines carrying a safety keyword.
func extractSafetyWarnings(raw string) []string {
	var warnings []string
	for _, line := range heuristics.Lines(raw) {
		if !heuristics.Safety.Matches(line) {
			continue
		}
		clean := heuristics.StripBullet(line)
		if len(clean) > minWarningLen {
			warnings = append(warnings, clean)
			if len(warnings) == maxSafetyWarnings {
				break
			}
		}
	}
	return warnings
}

// extractImmediateActions keeps enumerated lines triggered by an action verb.
func extractImmediateActions(raw string) []string {
	var actions []string
	for _, line := range heuristics.Lines(raw) {
		if !heuristics.IsEnumerated(line) || !heuristics.ActionVerbs.Matches(line) {
			continue
		}
		clean := heuristics.StripBullet(line)
		if len(clean) > minActionLen {
			actions = append(actions, clean)
			if len(actions) == maxImmediateActions {
				break
			}
		}
	}
	return actions
}

// extractQuestions keeps substantial lines containing a question mark.
func extractQuestions(raw string) []string {
	var questions []string
	for _, line := range heuristics.Lines(raw) {
		if !strings.Contains(line, "?") || len(strings.TrimSpace(line)) <= minQuestionLen {
			continue
		}
		questions = append(questions, heuristics.StripBullet(line))
		if len(questions) == maxDiagnosticQuestions {
			break
		}
	}
	return questions
}

// extractRecommendedTests keeps lines describing a measurement or check,
// marking those flagged first/immediate/critical as high priority.
func extractRecommendedTests(raw string) []RecommendedTest {
	var tests []RecommendedTest
	for _, line := range heuristics.Lines(raw) {
		if !heuristics.Tests.Matches(line) {
			continue
		}
		priority := "normal"
		if heuristics.TestPriority.Matches(line) {
			priority = "high"
		}
		tests = append(tests, RecommendedTest{
			Test:     heuristics.StripBullet(line),
			Priority: priority,
		})
		if len(tests) == maxRecommendedTests {
			break
		}
	}
	return tests
}

// extractManufacturerNotes keeps model- and bulletin-specific lines.
func extractManufacturerNotes(raw string) []string {
	var notes []string
	for _, line := range heuristics.Lines(raw) {
		if !heuristics.Manufacturer.Matches(line) {
			continue
		}
		clean := heuristics.StripBullet(line)
		if len(clean) > minNoteLen {
			notes = append(notes, clean)
			if len(notes) == maxManufacturerNotes {
				break
			}
		}
	}
	return notes
}

// extractEstimatedTime returns the first line pairing a time word with a
// digit, or empty.
func extractEstimatedTime(raw string) string {
	for _, line := range heuristics.Lines(raw) {
		if heuristics.TimeWords.Matches(line) && heuristics.ContainsDigit(line) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

// extractAdditionalDataNeeded keeps question lines asking for more readings
// or information.
func extractAdditionalDataNeeded(raw string) []string {
	var requests []string
	for _, line := range heuristics.Lines(raw) {
		if !strings.Contains(line, "?") || !heuristics.DataRequest.Matches(line) {
			continue
		}
		requests = append(requests, heuristics.StripBullet(line))
		if len(requests) == maxAdditionalData {
			break
		}
	}
	return requests
}

// extractEquipmentGuidance returns the first line mentioning the request's
// manufacturer, or empty.
func extractEquipmentGuidance(raw, manufacturer string) string {
	needle := strings.ToLower(manufacturer)
	for _, line := range heuristics.Lines(raw) {
		if strings.Contains(strings.ToLower(line), needle) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}
