package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

// recordingPipelineHooks counts events for testing.
type recordingPipelineHooks struct {
	NoopPipelineHooks
	mu      sync.Mutex
	layouts int
}

func (h *recordingPipelineHooks) OnLayoutStart(ctx context.Context, lineCount int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.layouts++
}

func TestSetPipelineHooks(t *testing.T) {
	defer Reset()

	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)

	Pipeline().OnLayoutStart(context.Background(), 3)
	Pipeline().OnLayoutStart(context.Background(), 7)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.layouts != 2 {
		t.Errorf("layouts = %d, want 2", rec.layouts)
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	defer Reset()

	SetPipelineHooks(nil)
	SetCacheHooks(nil)

	// Defaults should still be in place and callable
	Pipeline().OnRenderComplete(context.Background(), "pdf", time.Millisecond, nil)
	Cache().OnCacheMiss(context.Background(), "artifact")
}

func TestReset(t *testing.T) {
	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)
	Reset()

	Pipeline().OnLayoutStart(context.Background(), 1)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.layouts != 0 {
		t.Error("Reset should restore no-op hooks")
	}
}
