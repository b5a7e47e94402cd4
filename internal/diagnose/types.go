// Package diagnose turns free-form troubleshooting text from the model
// collaborator into a stable, typed diagnostic report. The extraction layer
// is deterministic and pure; only the Service touches the network.
package diagnose

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/larklabs/hvacjack/internal/nameplate"
)

// SystemType classifies the equipment under diagnosis.
type SystemType string

const (
	SystemResidentialSplit  SystemType = "residential_split"
	SystemPackageUnit       SystemType = "package_unit"
	SystemHeatPump          SystemType = "heat_pump"
	SystemCommercialRooftop SystemType = "commercial_rooftop"
	SystemGasFurnace        SystemType = "gas_furnace"
	SystemBoiler            SystemType = "boiler"
	SystemDualFuel          SystemType = "dual_fuel"
	SystemVRF               SystemType = "vrf_vrv"
)

// IssueCategory classifies the reported problem.
type IssueCategory string

const (
	IssueHeating       IssueCategory = "heating"
	IssueCooling       IssueCategory = "cooling"
	IssueAirflow       IssueCategory = "airflow"
	IssueElectrical    IssueCategory = "electrical"
	IssueGasCombustion IssueCategory = "gas_combustion"
	IssueControls      IssueCategory = "controls"
	IssueRefrigerant   IssueCategory = "refrigerant"
	IssueVentilation   IssueCategory = "ventilation"
)

// Urgency is the escalation tier of a report. The numeric order is the
// severity order, so tiers compare directly with <.
type Urgency int

const (
	UrgencyRoutine Urgency = iota
	UrgencyModerate
	UrgencyUrgent
	UrgencyEmergency
)

var urgencyNames = map[Urgency]string{
	UrgencyRoutine:   "routine",
	UrgencyModerate:  "moderate",
	UrgencyUrgent:    "urgent",
	UrgencyEmergency: "emergency",
}

func (u Urgency) String() string {
	if name, ok := urgencyNames[u]; ok {
		return name
	}
	return "routine"
}

// MarshalJSON serializes the tier as its lowercase name.
func (u Urgency) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON parses a lowercase tier name.
func (u *Urgency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for tier, name := range urgencyNames {
		if name == s {
			*u = tier
			return nil
		}
	}
	return fmt.Errorf("unknown urgency tier: %q", s)
}

// Exchange is one prompter/responder pair of conversation history.
type Exchange struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// DiagnosticRequest carries everything known about the problem before the
// model collaborator is consulted.
type DiagnosticRequest struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`

	// System information
	SystemType  SystemType        `json:"system_type,omitempty"`
	RatingPlate *nameplate.Record `json:"rating_plate_data,omitempty"`
	SystemAge   int               `json:"system_age,omitempty"`

	// Issue description
	IssueCategory           IssueCategory `json:"issue_category,omitempty"`
	Symptoms                string        `json:"symptoms"`
	WhenOccurred            string        `json:"when_occurred,omitempty"`
	EnvironmentalConditions string        `json:"environmental_conditions,omitempty"`
	Location                string        `json:"location,omitempty"`

	// Previous actions
	ActionsTaken      []string          `json:"actions_taken,omitempty"`
	MeasurementsTaken map[string]string `json:"measurements_taken,omitempty"`

	// Conversation history
	ConversationHistory []Exchange `json:"conversation_history,omitempty"`
}

// Validate checks the request invariants.
func (r *DiagnosticRequest) Validate() error {
	if r.Symptoms == "" {
		return errors.New("symptoms description is required")
	}
	return nil
}

// LikelyCause is one entry of the editorial cause table matched against the
// response text.
type LikelyCause struct {
	Cause       string   `json:"cause"`
	Probability string   `json:"probability"` // "high", "medium", "low"
	Indicators  []string `json:"indicators"`
}

// RecommendedTest is a test procedure extracted from the response.
type RecommendedTest struct {
	Test     string `json:"test"`
	Priority string `json:"priority"` // "high" or "normal"
}

// DiagnosticReport is the structured result of one troubleshooting exchange.
// It is immutable once built; the verbatim model text is always preserved in
// PrimaryResponse.
type DiagnosticReport struct {
	ResponseID string    `json:"response_id"`
	SessionID  string    `json:"session_id"`
	Timestamp  time.Time `json:"timestamp"`

	// Response content
	PrimaryResponse string   `json:"primary_response"`
	SafetyWarnings  []string `json:"safety_warnings"`
	Urgency         Urgency  `json:"urgency_level"`

	// Diagnostic guidance
	ImmediateActions    []string          `json:"immediate_actions"`
	DiagnosticQuestions []string          `json:"diagnostic_questions"`
	RecommendedTests    []RecommendedTest `json:"recommended_tests"`

	// Professional insights
	LikelyCauses              []LikelyCause `json:"likely_causes"`
	EquipmentSpecificGuidance string        `json:"equipment_specific_guidance,omitempty"`
	ManufacturerNotes         []string      `json:"manufacturer_notes"`

	// Follow-up
	RequiresProfessional   bool     `json:"requires_professional"`
	EstimatedTime          string   `json:"estimated_time,omitempty"`
	PartsPotentiallyNeeded []string `json:"parts_potentially_needed"`

	// System integration
	PhotoRequests        []string `json:"photo_requests"`
	AdditionalDataNeeded []string `json:"additional_data_needed"`
}
