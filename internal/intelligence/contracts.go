package intelligence

// ParsedSlots is the structured form of a free-text trip request.
// Pointer fields are nil when the text does not state them.
type ParsedSlots struct {
	Region        string   `json:"region"`
	ActivityTypes []string `json:"activity_types"`
	DurationDays  *int     `json:"duration_days,omitempty"`
	StartMonth    *int     `json:"start_month,omitempty"`
	Landscapes    []string `json:"landscapes,omitempty"`
	TravelStyles  []string `json:"travel_styles,omitempty"`
	Confidence    float64  `json:"confidence"`
}

// ExecutionState describes how a slot extraction may be used.
type ExecutionState string

const (
	// StateExecuted means the slots can be used as-is.
	StateExecuted ExecutionState = "executed"
	// StateNeedsClarification means the model was unsure; slots are dropped.
	StateNeedsClarification ExecutionState = "needs_clarification"
	// StateFallback means the rule extractor produced the slots.
	StateFallback ExecutionState = "fallback"
)

// SlotResolution is the result of slot extraction.
type SlotResolution struct {
	Slots   ParsedSlots    `json:"slots"`
	State   ExecutionState `json:"state"`
	Message string         `json:"message"`
	// Cause is set when the model path failed and rules took over.
	Cause error `json:"-"`
}

// Usable reports whether the slots may feed scheduling.
func (r *SlotResolution) Usable() bool {
	return r != nil && r.State != StateNeedsClarification
}
