package domain

// Slot is a value tagged with its provenance so callers can tell an
// extracted value from a policy default or a missing one.
type Slot[T any] struct {
	Value      T
	Provenance Provenance
}

func Resolved[T any](v T) Slot[T] {
	return Slot[T]{Value: v, Provenance: ProvenanceResolved}
}

func Defaulted[T any](v T) Slot[T] {
	return Slot[T]{Value: v, Provenance: ProvenanceDefaulted}
}

func Absent[T any]() Slot[T] {
	return Slot[T]{Provenance: ProvenanceAbsent}
}

// Get returns the value and whether one is present (resolved or defaulted).
func (s Slot[T]) Get() (T, bool) {
	return s.Value, s.Provenance == ProvenanceResolved || s.Provenance == ProvenanceDefaulted
}

func (s Slot[T]) IsResolved() bool  { return s.Provenance == ProvenanceResolved }
func (s Slot[T]) IsDefaulted() bool { return s.Provenance == ProvenanceDefaulted }

// Or returns s when it holds a value, otherwise fallback.
func (s Slot[T]) Or(fallback Slot[T]) Slot[T] {
	if _, ok := s.Get(); ok {
		return s
	}
	return fallback
}
