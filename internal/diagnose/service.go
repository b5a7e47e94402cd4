package diagnose

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"

	"github.com/larklabs/hvacjack/internal/llmcall"
	promptdiag "github.com/larklabs/hvacjack/internal/prompts/diagnose"
	"github.com/larklabs/hvacjack/internal/providers"
)

// Options controls one diagnostic session's model parameters.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	MaxAttempts int
}

// DefaultOptions returns the tuned defaults for troubleshooting sessions.
// Low temperature keeps technical answers consistent across retries.
func DefaultOptions() Options {
	return Options{
		Temperature: 0.2,
		MaxTokens:   2500,
		Timeout:     120 * time.Second,
		MaxAttempts: 3,
	}
}

// Service runs diagnostic sessions against a model collaborator and turns
// the replies into structured reports.
type Service struct {
	llm      providers.LLMClient
	recorder *llmcall.Recorder
	logger   *slog.Logger
	opts     Options
}

// NewService creates a diagnostic service. Recorder may be nil to disable
// call recording.
func NewService(llm providers.LLMClient, recorder *llmcall.Recorder, logger *slog.Logger, opts Options) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultOptions().MaxAttempts
	}
	return &Service{
		llm:      llm,
		recorder: recorder,
		logger:   logger,
		opts:     opts,
	}
}

// Diagnose validates the request, consults the model collaborator, and
// extracts a structured report from its reply. Transient collaborator
// failures are retried with backoff; permanent ones surface immediately.
func (s *Service) Diagnose(ctx context.Context, req *DiagnosticRequest) (*DiagnosticReport, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid diagnostic request: %w", err)
	}

	requestID := uuid.New().String()
	chatReq := &providers.ChatRequest{
		Messages: []providers.Message{
			{Role: "system", Content: promptdiag.SystemPrompt()},
			{Role: "user", Content: BuildContext(req, time.Now())},
		},
		Model:       s.opts.Model,
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
		Timeout:     s.opts.Timeout,
		RequestID:   requestID,
	}

	s.logger.Info("starting diagnostic session",
		"session_id", req.SessionID,
		"request_id", requestID,
		"system_type", req.SystemType,
		"issue_category", req.IssueCategory)

	var result *providers.ChatResult
	err := retry.Do(
		func() error {
			var chatErr error
			result, chatErr = s.llm.Chat(ctx, chatReq)
			return chatErr
		},
		retry.Context(ctx),
		retry.Attempts(uint(s.opts.MaxAttempts)),
		retry.RetryIf(providers.Transient),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			s.logger.Warn("retrying collaborator call",
				"request_id", requestID,
				"attempt", attempt+1,
				"error", err)
		}),
	)

	s.record(result, req)

	if err != nil {
		s.logger.Error("diagnostic session failed",
			"session_id", req.SessionID,
			"request_id", requestID,
			"error", err)
		return nil, fmt.Errorf("collaborator call failed: %w", err)
	}

	report := Extract(result.Content, req)
	report.SessionID = req.SessionID

	s.logger.Info("diagnostic session complete",
		"session_id", req.SessionID,
		"request_id", requestID,
		"urgency", report.Urgency.String(),
		"warnings", len(report.SafetyWarnings),
		"requires_professional", report.RequiresProfessional)

	return report, nil
}

func (s *Service) record(result *providers.ChatResult, req *DiagnosticRequest) {
	if s.recorder == nil || result == nil {
		return
	}
	temp := s.opts.Temperature
	s.recorder.Record(llmcall.FromChatResult(result, llmcall.RecordOptions{
		SessionID:   req.SessionID,
		UserID:      req.UserID,
		PromptKey:   promptdiag.SystemPromptKey,
		Temperature: &temp,
	}))
}
