package diagnose

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/larklabs/hvacjack/internal/llmcall"
	promptdiag "github.com/larklabs/hvacjack/internal/prompts/diagnose"
	"github.com/larklabs/hvacjack/internal/providers"
)

func newTestService(mock *providers.MockClient, recorder *llmcall.Recorder) *Service {
	logger := slog.New(slog.DiscardHandler)
	return NewService(mock, recorder, logger, DefaultOptions())
}

func TestServiceDiagnose(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseText = sampleResponse
	recorder := llmcall.NewRecorder(llmcall.DefaultCapacity, nil)
	svc := newTestService(mock, recorder)

	report, err := svc.Diagnose(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("Diagnose() error: %v", err)
	}

	if report.Urgency != UrgencyEmergency {
		t.Errorf("urgency = %v, want emergency", report.Urgency)
	}
	if report.SessionID != "session-42" {
		t.Errorf("session ID = %q", report.SessionID)
	}

	last := mock.LastRequest()
	if last == nil {
		t.Fatal("mock saw no request")
	}
	if len(last.Messages) != 2 {
		t.Fatalf("sent %d messages, want 2", len(last.Messages))
	}
	if last.Messages[0].Role != "system" || last.Messages[0].Content != promptdiag.SystemPrompt() {
		t.Error("first message must carry the system prompt")
	}
	if last.Messages[1].Role != "user" || !strings.Contains(last.Messages[1].Content, "Primary Issue: furnace won't ignite") {
		t.Error("second message must carry the request context")
	}
	if last.Temperature != 0.2 || last.MaxTokens != 2500 {
		t.Errorf("sampling params = (%v, %d)", last.Temperature, last.MaxTokens)
	}

	if recorder.Len() != 1 {
		t.Fatalf("recorded %d calls, want 1", recorder.Len())
	}
	call := recorder.Recent(1)[0]
	if call.PromptKey != promptdiag.SystemPromptKey {
		t.Errorf("recorded prompt key = %q", call.PromptKey)
	}
	if !call.Success || call.SessionID != "session-42" {
		t.Errorf("recorded call = %+v", call)
	}
}

func TestServiceDiagnoseRetriesTransientFailures(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseText = "All clear, no faults found in the unit."
	mock.FailFirst = 2
	svc := newTestService(mock, nil)

	report, err := svc.Diagnose(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("Diagnose() error after retries: %v", err)
	}
	if mock.RequestCount() != 3 {
		t.Errorf("request count = %d, want 3", mock.RequestCount())
	}
	if report.Urgency != UrgencyRoutine {
		t.Errorf("urgency = %v, want routine", report.Urgency)
	}
}

func TestServiceDiagnoseExhaustsRetries(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ShouldFail = true
	svc := newTestService(mock, nil)

	if _, err := svc.Diagnose(context.Background(), sampleRequest()); err == nil {
		t.Fatal("expected error when all attempts fail")
	}
	if mock.RequestCount() != 3 {
		t.Errorf("request count = %d, want 3", mock.RequestCount())
	}
}

func TestServiceDiagnoseRejectsInvalidRequest(t *testing.T) {
	mock := providers.NewMockClient()
	svc := newTestService(mock, nil)

	if _, err := svc.Diagnose(context.Background(), &DiagnosticRequest{SessionID: "s"}); err == nil {
		t.Fatal("expected validation error for missing symptoms")
	}
	if mock.RequestCount() != 0 {
		t.Errorf("invalid request reached the collaborator, count = %d", mock.RequestCount())
	}
}

func TestValidateRequestJSON(t *testing.T) {
	valid := []byte(`{"session_id":"s","symptoms":"no heat","system_type":"gas_furnace"}`)
	if err := ValidateRequestJSON(valid); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	tests := []struct {
		name string
		raw  string
	}{
		{"missing symptoms", `{"session_id":"s"}`},
		{"empty symptoms", `{"symptoms":""}`},
		{"bad system type", `{"symptoms":"x","system_type":"window_unit"}`},
		{"bad issue category", `{"symptoms":"x","issue_category":"plumbing"}`},
		{"negative age", `{"symptoms":"x","system_age":-1}`},
		{"not json", `{"symptoms":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateRequestJSON([]byte(tt.raw)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
