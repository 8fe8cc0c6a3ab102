package intelligence

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/farmtrip/internal/llm"
	"github.com/alexanderramin/farmtrip/internal/region"
)

// SlotService extracts trip slots from free text.
type SlotService interface {
	Extract(ctx context.Context, text string, allowedRegions []string) (*SlotResolution, error)
}

type slotService struct {
	client   llm.LLMClient
	policy   ConfirmationPolicy
	fallback *RuleSlotExtractor
}

// NewSlotService returns a model-backed extractor. A nil client always uses
// the rule extractor.
func NewSlotService(client llm.LLMClient, policy ConfirmationPolicy, fallback *RuleSlotExtractor) SlotService {
	return &slotService{
		client:   client,
		policy:   policy,
		fallback: fallback,
	}
}

func (s *slotService) Extract(ctx context.Context, text string, allowedRegions []string) (*SlotResolution, error) {
	if s.client == nil {
		return s.useFallback(text, nil), nil
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSlots,
		SystemPrompt: buildSlotSystemPrompt(allowedRegions),
		UserPrompt:   text,
		JSONMode:     true,
	})
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, ctx.Err()
		}
		return s.useFallback(text, fmt.Errorf("llm slot extraction failed: %w", err)), nil
	}

	slots, err := llm.ExtractJSON(resp.Text, slotValidator(allowedRegions))
	if err != nil {
		return s.useFallback(text, err), nil
	}
	if slots.Region != "" {
		slots.Region, _ = region.Normalize(slots.Region)
	}

	state := s.policy.Evaluate(slots)
	res := &SlotResolution{Slots: slots, State: state}
	switch state {
	case StateExecuted:
		res.Message = fmt.Sprintf("Understood request (confidence: %.0f%%)", slots.Confidence*100)
	default:
		res.Slots = ParsedSlots{Confidence: slots.Confidence}
		res.Message = fmt.Sprintf("Low confidence (%.0f%%); please state region, month and length explicitly.", slots.Confidence*100)
	}
	return res, nil
}

func (s *slotService) useFallback(text string, cause error) *SlotResolution {
	slots := s.fallback.Extract(text)
	msg := "Parsed with built-in rules"
	if cause != nil {
		msg += " (language model unavailable)"
	}
	return &SlotResolution{Slots: slots, State: StateFallback, Message: msg, Cause: cause}
}

// slotValidator rejects regions outside the allowed set and impossible values.
func slotValidator(allowedRegions []string) llm.SchemaValidator[ParsedSlots] {
	allowed := make(map[string]bool, len(allowedRegions))
	for _, r := range allowedRegions {
		allowed[r] = true
	}
	return func(p ParsedSlots) error {
		if p.Confidence < 0 || p.Confidence > 1 {
			return fmt.Errorf("confidence must be in [0,1], got %f", p.Confidence)
		}
		if p.Region != "" {
			name, ok := region.Normalize(p.Region)
			if !ok || (len(allowed) > 0 && !allowed[name]) {
				return fmt.Errorf("region %q is not supported", p.Region)
			}
		}
		if p.StartMonth != nil && (*p.StartMonth < 1 || *p.StartMonth > 12) {
			return fmt.Errorf("start_month must be in 1..12, got %d", *p.StartMonth)
		}
		if p.DurationDays != nil && *p.DurationDays < 1 {
			return fmt.Errorf("duration_days must be positive, got %d", *p.DurationDays)
		}
		return nil
	}
}
