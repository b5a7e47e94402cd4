package nameplate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"

	"github.com/larklabs/hvacjack/internal/llmcall"
	promptplate "github.com/larklabs/hvacjack/internal/prompts/nameplate"
	"github.com/larklabs/hvacjack/internal/providers"
	"github.com/larklabs/hvacjack/internal/resources"
)

// Options controls the vision-model parameters for nameplate analysis.
type Options struct {
	Model       string
	MaxTokens   int
	Timeout     time.Duration
	MaxAttempts int
}

// DefaultOptions returns the tuned defaults for rating-plate reads.
func DefaultOptions() Options {
	return Options{
		MaxTokens:   1500,
		Timeout:     120 * time.Second,
		MaxAttempts: 3,
	}
}

// AnalyzeRequest is one rating-plate photo to analyze.
type AnalyzeRequest struct {
	Image     []byte
	UserID    string
	SessionID string
}

// Validate checks the request invariants.
func (r *AnalyzeRequest) Validate() error {
	if len(r.Image) == 0 {
		return errors.New("image data is required")
	}
	return nil
}

// Service runs rating-plate photos through the vision model, extracts a
// specification record, and optionally enriches the analysis text with
// reference links.
type Service struct {
	llm       providers.LLMClient
	recorder  *llmcall.Recorder
	augmenter *resources.Augmenter
	logger    *slog.Logger
	opts      Options
}

// NewService creates a nameplate analysis service. Recorder and augmenter
// may be nil to disable call recording and resource enrichment.
func NewService(llm providers.LLMClient, recorder *llmcall.Recorder, augmenter *resources.Augmenter, logger *slog.Logger, opts Options) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultOptions().MaxAttempts
	}
	return &Service{
		llm:       llm,
		recorder:  recorder,
		augmenter: augmenter,
		logger:    logger,
		opts:      opts,
	}
}

// Analyze sends the photo to the vision model and extracts a Record from its
// answer. Resource augmentation is best-effort: its failure or absence never
// fails the analysis, it only leaves RawAnalysis unenriched.
func (s *Service) Analyze(ctx context.Context, req *AnalyzeRequest) (*Record, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analyze request: %w", err)
	}

	requestID := uuid.New().String()
	chatReq := &providers.ChatRequest{
		Messages: []providers.Message{
			{
				Role:    "user",
				Content: promptplate.AnalyzePrompt(),
				Images:  [][]byte{req.Image},
			},
		},
		Model:     s.opts.Model,
		MaxTokens: s.opts.MaxTokens,
		Timeout:   s.opts.Timeout,
		RequestID: requestID,
	}

	s.logger.Info("starting nameplate analysis",
		"session_id", req.SessionID,
		"request_id", requestID,
		"image_bytes", len(req.Image))

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
	)

	s.record(result, req)

	if err != nil {
		s.logger.Error("nameplate analysis failed",
			"session_id", req.SessionID,
			"request_id", requestID,
			"error", err)
		return nil, fmt.Errorf("collaborator call failed: %w", err)
	}

	record := Extract(result.Content)
	s.augment(ctx, record)

	s.logger.Info("nameplate analysis complete",
		"session_id", req.SessionID,
		"request_id", requestID,
		"model_number", record.ModelNumber,
		"manufacturer", record.Manufacturer)

	return record, nil
}

// augment appends the resource block to the analysis text when a usable
// query exists and any category yields a hit.
func (s *Service) augment(ctx context.Context, record *Record) {
	if s.augmenter == nil {
		return
	}
	query := resources.ExtractQuery(record.RawAnalysis)
	if query == "" {
		return
	}
	block, ok := s.augmenter.Augment(ctx, query)
	if !ok {
		return
	}
	record.RawAnalysis += "\n\n" + block
}

func (s *Service) record(result *providers.ChatResult, req *AnalyzeRequest) {
	if s.recorder == nil || result == nil {
		return
	}
	s.recorder.Record(llmcall.FromChatResult(result, llmcall.RecordOptions{
		SessionID: req.SessionID,
		UserID:    req.UserID,
		PromptKey: promptplate.AnalyzePromptKey,
	}))
}
