package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexanderramin/farmtrip/internal/llm"
	"github.com/alexanderramin/farmtrip/internal/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOllamaStub(t *testing.T, handler http.HandlerFunc) llm.LLMClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = srv.URL
	cfg.Model = "test-model"
	cfg.MaxRetries = 0
	return llm.NewOllamaClient(cfg, llm.NoopObserver{})
}

// TestSlotService_WithHTTPTestServer runs the full path from the HTTP body
// through JSON extraction and the confidence policy.
func TestSlotService_WithHTTPTestServer(t *testing.T) {
	client := newOllamaStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model": "test-model",
			// Fenced output with a trailing comma, as small models produce.
			"response": "```json\n{\"region\":\"김제시\",\"activity_types\":[\"사과\"],\"duration_days\":10,\"start_month\":10,\"confidence\":.92,}\n```",
		})
	})

	res, err := newTestSlotService(client).Extract(context.Background(), "10월에 김제에서 열흘", region.Names())

	require.NoError(t, err)
	assert.Equal(t, StateExecuted, res.State)
	assert.Equal(t, "김제시", res.Slots.Region)
	assert.InDelta(t, 0.92, res.Slots.Confidence, 0.001)
}

func TestSlotService_WithHTTPTestServer_TimeoutFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.MaxRetries = 0
	cfg.Tasks = map[llm.TaskType]llm.TaskConfig{llm.TaskSlots: {TimeoutMs: 30}}
	client := llm.NewOllamaClient(cfg, llm.NoopObserver{})

	res, err := newTestSlotService(client).Extract(context.Background(), "부안 2박", region.Names())

	require.NoError(t, err)
	assert.Equal(t, StateFallback, res.State)
	assert.ErrorIs(t, res.Cause, llm.ErrTimeout)
	assert.Equal(t, 3, *res.Slots.DurationDays)
}
