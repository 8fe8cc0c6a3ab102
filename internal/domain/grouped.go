package domain

import "time"

type GroupKind string

const (
	GroupFarmPeriod GroupKind = "farm_period"
	GroupTourDay    GroupKind = "tour_day"
	GroupFreeDay    GroupKind = "free_day"
)

// GroupEntry is one row of the grouped schedule: the whole farm block
// collapsed into a period, or a single non-farm day.
type GroupEntry struct {
	Kind         GroupKind
	Title        string
	StartDay     int
	EndDay       int
	Dates        []time.Time
	DurationDays int
	FarmName     string
	FarmAddress  string
	WorkTime     string
	Description  string
	Items        []ScheduleItem
}

// CalendarEvent is a calendar projection of a schedule item.
type CalendarEvent struct {
	DateTime string
	Activity string
	Day      int
	Type     ScheduleType
}
