package domain

type ScheduleType string

const (
	ScheduleFarm ScheduleType = "farm"
	ScheduleTour ScheduleType = "tour"
)

// Label returns the Korean display label for the schedule type.
func (t ScheduleType) Label() string {
	switch t {
	case ScheduleFarm:
		return "농가"
	case ScheduleTour:
		return "관광지"
	default:
		return string(t)
	}
}

type CompanionType string

const (
	CompanionSolo    CompanionType = "solo"
	CompanionCouple  CompanionType = "couple"
	CompanionFamily  CompanionType = "family"
	CompanionFriends CompanionType = "friends"
)

// Provenance records where a resolved value came from.
type Provenance string

const (
	ProvenanceResolved  Provenance = "resolved"
	ProvenanceDefaulted Provenance = "defaulted"
	ProvenanceAbsent    Provenance = "absent"
)
