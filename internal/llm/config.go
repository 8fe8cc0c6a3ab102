package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM call.
type TaskType string

const (
	// TaskSlots extracts trip slots (region, month, duration, preferences)
	// from a free-text trip request.
	TaskSlots TaskType = "slots"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides the global timeout when > 0
}

// LLMConfig configures the optional language-model backend. Every caller has
// a rule-based fallback, so the backend is off unless enabled.
type LLMConfig struct {
	Enabled             bool
	LogCalls            bool
	Endpoint            string
	Model               string
	TimeoutMs           int
	MaxRetries          int
	ConfidenceThreshold float64
	Tasks               map[TaskType]TaskConfig
}

func DefaultConfig() LLMConfig {
	return LLMConfig{
		Endpoint:            "http://localhost:11434",
		Model:               "llama3.2",
		TimeoutMs:           8000,
		MaxRetries:          1,
		ConfidenceThreshold: 0.85,
		Tasks: map[TaskType]TaskConfig{
			TaskSlots: {Temperature: 0.1, MaxTokens: 512, TimeoutMs: 8000},
		},
	}
}

// LoadConfig overlays FARMTRIP_LLM_* environment variables on the defaults.
// Malformed values are ignored.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	envBool("FARMTRIP_LLM_ENABLED", &cfg.Enabled)
	envBool("FARMTRIP_LLM_LOG_CALLS", &cfg.LogCalls)
	if v := os.Getenv("FARMTRIP_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("FARMTRIP_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if n, ok := envInt("FARMTRIP_LLM_TIMEOUT_MS"); ok && n > 0 {
		cfg.TimeoutMs = n
	}
	if n, ok := envInt("FARMTRIP_LLM_MAX_RETRIES"); ok && n >= 0 {
		cfg.MaxRetries = n
	}
	if v := os.Getenv("FARMTRIP_LLM_CONFIDENCE_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.ConfidenceThreshold = f
		}
	}
	if n, ok := envInt("FARMTRIP_LLM_SLOTS_TIMEOUT_MS"); ok && n > 0 {
		tc := cfg.Tasks[TaskSlots]
		tc.TimeoutMs = n
		cfg.Tasks[TaskSlots] = tc
	}
	return cfg
}

// TaskTimeout returns the task-specific timeout, or the global one.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func envBool(name string, dst *bool) {
	if v := os.Getenv(name); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}
