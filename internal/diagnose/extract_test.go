package diagnose

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/larklabs/hvacjack/internal/nameplate"
)

const sampleResponse = `WARNING: Gas leak detected near the valve assembly.
1. Turn off the gas supply at the meter before continuing.
2. Check voltage at the capacitor terminals first.
What reading do you measure across the contactor coil?
The capacitor shows visible bulging and the contactor contains pitted contacts.
Per the manufacturer service bulletin, this model has a known igniter defect.
A licensed technician should handle the gas valve replacement.
Take a photo of the rating plate and the wiring near the control board.
This repair should take about 45 minutes.`

func sampleRequest() *DiagnosticRequest {
	return &DiagnosticRequest{
		UserID:    "tech-7",
		SessionID: "session-42",
		Symptoms:  "furnace won't ignite",
	}
}

func TestExtractSampleResponse(t *testing.T) {
	report := Extract(sampleResponse, sampleRequest())

	if report.ResponseID == "" {
		t.Error("expected a response ID")
	}
	if report.SessionID != "session-42" {
		t.Errorf("session ID = %q, want session-42", report.SessionID)
	}
	if report.PrimaryResponse != sampleResponse {
		t.Error("primary response must preserve the raw text verbatim")
	}

	wantWarnings := []string{"WARNING: Gas leak detected near the valve assembly."}
	if !reflect.DeepEqual(report.SafetyWarnings, wantWarnings) {
		t.Errorf("safety warnings = %v, want %v", report.SafetyWarnings, wantWarnings)
	}

	if report.Urgency != UrgencyEmergency {
		t.Errorf("urgency = %v, want emergency", report.Urgency)
	}

	wantActions := []string{
		"Turn off the gas supply at the meter before continuing.",
		"Check voltage at the capacitor terminals first.",
	}
	if !reflect.DeepEqual(report.ImmediateActions, wantActions) {
		t.Errorf("immediate actions = %v, want %v", report.ImmediateActions, wantActions)
	}

	wantQuestions := []string{"What reading do you measure across the contactor coil?"}
	if !reflect.DeepEqual(report.DiagnosticQuestions, wantQuestions) {
		t.Errorf("questions = %v, want %v", report.DiagnosticQuestions, wantQuestions)
	}

	wantTests := []RecommendedTest{
		{Test: "Check voltage at the capacitor terminals first.", Priority: "high"},
		{Test: "What reading do you measure across the contactor coil?", Priority: "normal"},
	}
	if !reflect.DeepEqual(report.RecommendedTests, wantTests) {
		t.Errorf("recommended tests = %v, want %v", report.RecommendedTests, wantTests)
	}

	wantCauses := []string{
		"Gas Valve failure/malfunction",
		"Control Board failure/malfunction",
		"Capacitor failure/malfunction",
		"Contactor failure/malfunction",
	}
	if len(report.LikelyCauses) != len(wantCauses) {
		t.Fatalf("likely causes = %v, want %d entries", report.LikelyCauses, len(wantCauses))
	}
	for i, want := range wantCauses {
		if report.LikelyCauses[i].Cause != want {
			t.Errorf("cause[%d] = %q, want %q", i, report.LikelyCauses[i].Cause, want)
		}
	}
	if report.LikelyCauses[2].Probability != "high" {
		t.Errorf("capacitor probability = %q, want high", report.LikelyCauses[2].Probability)
	}

	if len(report.ManufacturerNotes) != 1 || !strings.Contains(report.ManufacturerNotes[0], "service bulletin") {
		t.Errorf("manufacturer notes = %v", report.ManufacturerNotes)
	}

	if !report.RequiresProfessional {
		t.Error("expected requires_professional for licensed technician language")
	}
	if report.EstimatedTime != "This repair should take about 45 minutes." {
		t.Errorf("estimated time = %q", report.EstimatedTime)
	}

	wantParts := []string{"Contactor", "Capacitor", "Gas Valve", "Control Board", "Igniter"}
	if !reflect.DeepEqual(report.PartsPotentiallyNeeded, wantParts) {
		t.Errorf("parts = %v, want %v", report.PartsPotentiallyNeeded, wantParts)
	}

	wantPhotos := []string{"rating_plate", "wiring_diagram", "gas_valve", "control_board"}
	if !reflect.DeepEqual(report.PhotoRequests, wantPhotos) {
		t.Errorf("photo requests = %v, want %v", report.PhotoRequests, wantPhotos)
	}

	wantData := []string{"What reading do you measure across the contactor coil?"}
	if !reflect.DeepEqual(report.AdditionalDataNeeded, wantData) {
		t.Errorf("additional data = %v, want %v", report.AdditionalDataNeeded, wantData)
	}
}

func TestExtractEmptyText(t *testing.T) {
	report := Extract("", sampleRequest())

	if report.Urgency != UrgencyRoutine {
		t.Errorf("urgency = %v, want routine", report.Urgency)
	}
	if report.RequiresProfessional {
		t.Error("empty text must not require a professional")
	}
	if len(report.SafetyWarnings) != 0 || len(report.ImmediateActions) != 0 ||
		len(report.DiagnosticQuestions) != 0 || len(report.RecommendedTests) != 0 ||
		len(report.LikelyCauses) != 0 || len(report.ManufacturerNotes) != 0 ||
		len(report.PartsPotentiallyNeeded) != 0 || len(report.PhotoRequests) != 0 ||
		len(report.AdditionalDataNeeded) != 0 {
		t.Errorf("empty text produced non-empty fields: %+v", report)
	}
	if report.EstimatedTime != "" {
		t.Errorf("estimated time = %q, want empty", report.EstimatedTime)
	}
}

func TestExtractCaps(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, "WARNING: hazard condition number %d present near the unit.\n", i)
		fmt.Fprintf(&b, "%d. Check the blower compartment panel alignment again today.\n", i+1)
		fmt.Fprintf(&b, "Could you measure the static pressure on circuit %d for me?\n", i)
		fmt.Fprintf(&b, "Per the manufacturer bulletin, revision %d applies to this series.\n", i)
	}
	report := Extract(b.String(), sampleRequest())

	if len(report.SafetyWarnings) != maxSafetyWarnings {
		t.Errorf("warnings = %d, want %d", len(report.SafetyWarnings), maxSafetyWarnings)
	}
	if len(report.ImmediateActions) != maxImmediateActions {
		t.Errorf("actions = %d, want %d", len(report.ImmediateActions), maxImmediateActions)
	}
	if len(report.DiagnosticQuestions) != maxDiagnosticQuestions {
		t.Errorf("questions = %d, want %d", len(report.DiagnosticQuestions), maxDiagnosticQuestions)
	}
	if len(report.RecommendedTests) != maxRecommendedTests {
		t.Errorf("tests = %d, want %d", len(report.RecommendedTests), maxRecommendedTests)
	}
	if len(report.ManufacturerNotes) != maxManufacturerNotes {
		t.Errorf("notes = %d, want %d", len(report.ManufacturerNotes), maxManufacturerNotes)
	}
	if len(report.AdditionalDataNeeded) != maxAdditionalData {
		t.Errorf("additional data = %d, want %d", len(report.AdditionalDataNeeded), maxAdditionalData)
	}
}

func TestExtractDerivedFieldsReproducible(t *testing.T) {
	req := sampleRequest()
	a := Extract(sampleResponse, req)
	b := Extract(sampleResponse, req)

	// ResponseID and Timestamp differ per call; everything derived from the
	// text must not.
	b.ResponseID = a.ResponseID
	b.Timestamp = a.Timestamp
	if !reflect.DeepEqual(a, b) {
		t.Error("extraction is not reproducible for identical input")
	}
}

func TestExtractShortLinesFiltered(t *testing.T) {
	raw := "DANGER: ok\n1. Check it\nIs it on?\nmodel X"
	report := Extract(raw, sampleRequest())

	if len(report.SafetyWarnings) != 0 {
		t.Errorf("short warning kept: %v", report.SafetyWarnings)
	}
	if len(report.ImmediateActions) != 0 {
		t.Errorf("short action kept: %v", report.ImmediateActions)
	}
	if len(report.DiagnosticQuestions) != 0 {
		t.Errorf("short question kept: %v", report.DiagnosticQuestions)
	}
	if len(report.ManufacturerNotes) != 0 {
		t.Errorf("short note kept: %v", report.ManufacturerNotes)
	}
}

func TestExtractEquipmentGuidance(t *testing.T) {
	req := sampleRequest()
	req.RatingPlate = &nameplate.Record{Manufacturer: "Carrier"}

	raw := "The unit is running.\nCarrier units of this series need the blower door switch checked.\nDone."
	report := Extract(raw, req)

	want := "Carrier units of this series need the blower door switch checked."
	if report.EquipmentSpecificGuidance != want {
		t.Errorf("guidance = %q, want %q", report.EquipmentSpecificGuidance, want)
	}

	// No mention of the manufacturer leaves the field empty.
	report = Extract("The unit is running fine now.", req)
	if report.EquipmentSpecificGuidance != "" {
		t.Errorf("guidance = %q, want empty", report.EquipmentSpecificGuidance)
	}
}

func TestResolveUrgency(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		warnings []string
		want     Urgency
	}{
		{"plain text", "the filter looks fine", nil, UrgencyRoutine},
		{"warning with danger word", "text", []string{"DANGER: carbon monoxide risk"}, UrgencyEmergency},
		{"warning with emergency word", "text", []string{"This is an emergency shutoff case"}, UrgencyEmergency},
		{"gas leak in body", "a gas leak was reported", nil, UrgencyEmergency},
		{"electrical hazard in body", "Electrical hazard at the disconnect", nil, UrgencyEmergency},
		{"urgent keyword", "this needs attention immediately", nil, UrgencyUrgent},
		{"asap keyword", "replace the part ASAP", nil, UrgencyUrgent},
		{"moderate keyword", "schedule service soon", nil, UrgencyModerate},
		{"priority keyword", "make this a priority item", nil, UrgencyModerate},
		{"severity wins over order", "make this a priority but there is a gas leak", nil, UrgencyEmergency},
		{"danger warning beats priority body", "make this a priority item", []string{"DANGER: open flame near supply"}, UrgencyEmergency},
		{"urgent wins over moderate", "do this soon, ideally immediately", nil, UrgencyUrgent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveUrgency(tt.raw, tt.warnings); got != tt.want {
				t.Errorf("ResolveUrgency() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUrgencyJSONRoundTrip(t *testing.T) {
	for _, u := range []Urgency{UrgencyRoutine, UrgencyModerate, UrgencyUrgent, UrgencyEmergency} {
		data, err := u.MarshalJSON()
		if err != nil {
			t.Fatalf("marshal %v: %v", u, err)
		}
		var back Urgency
		if err := back.UnmarshalJSON(data); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != u {
			t.Errorf("round trip %v -> %s -> %v", u, data, back)
		}
	}

	var u Urgency
	if err := u.UnmarshalJSON([]byte(`"catastrophic"`)); err == nil {
		t.Error("expected error for unknown tier")
	}
}
