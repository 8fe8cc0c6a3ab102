package intelligence

// ConfirmationPolicy decides whether model-extracted slots are trusted.
type ConfirmationPolicy struct {
	Threshold float64
}

func DefaultConfirmationPolicy(threshold float64) ConfirmationPolicy {
	return ConfirmationPolicy{Threshold: threshold}
}

// Evaluate maps model confidence to an execution state.
func (p ConfirmationPolicy) Evaluate(slots ParsedSlots) ExecutionState {
	if slots.Confidence >= p.Threshold {
		return StateExecuted
	}
	return StateNeedsClarification
}
