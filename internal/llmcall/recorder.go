package llmcall

import (
	"log/slog"
	"sync"
)

// DefaultCapacity bounds the in-memory call history. This core persists
// nothing, so the recorder is a rolling window, not a store of record.
const DefaultCapacity = 256

// Recorder keeps a bounded in-memory history of model calls.
type Recorder struct {
	mu       sync.Mutex
	calls    []*Call
	capacity int
	logger   *slog.Logger
}

// NewRecorder creates a recorder with the given capacity (0 means default).
func NewRecorder(capacity int, logger *slog.Logger) *Recorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{capacity: capacity, logger: logger}
}

// Record appends a call, evicting the oldest entry once at capacity.
func (r *Recorder) Record(call *Call) {
	if call == nil {
		return
	}

	r.mu.Lock()
	if len(r.calls) == r.capacity {
		r.calls = r.calls[1:]
	}
	r.calls = append(r.calls, call)
	r.mu.Unlock()

	r.logger.Debug("recorded model call",
		"id", call.ID,
		"prompt_key", call.PromptKey,
		"provider", call.Provider,
		"latency_ms", call.LatencyMs,
		"success", call.Success)
}

// Recent returns up to n most recent calls, newest last.
func (r *Recorder) Recent(n int) []*Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n <= 0 || n > len(r.calls) {
		n = len(r.calls)
	}
	out := make([]*Call, n)
	copy(out, r.calls[len(r.calls)-n:])
	return out
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}
