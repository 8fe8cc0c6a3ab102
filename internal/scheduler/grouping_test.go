package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupSchedule_FarmBlockCollapses(t *testing.T) {
	it, err := BuildItinerary(buildInput(10,
		attraction("a-1", "벽골제", "김제시 부량면 1"),
		attraction("a-2", "금산사", "김제시 금산면 1"),
		attraction("a-3", "아리랑문학마을", "김제시 부량면 2"),
	))
	require.NoError(t, err)

	groups := GroupSchedule(it)

	require.Len(t, groups, 4)
	titles := []string{groups[0].Title, groups[1].Title, groups[2].Title, groups[3].Title}
	assert.Equal(t, []string{"도착 및 관광", "농가 체험", "관광지 투어", "마무리 관광"}, titles)

	farm := groups[1]
	assert.Equal(t, domain.GroupFarmPeriod, farm.Kind)
	assert.Equal(t, 2, farm.StartDay)
	assert.Equal(t, 8, farm.EndDay)
	assert.Equal(t, 7, farm.DurationDays)
	assert.Len(t, farm.Dates, 7)
	assert.Equal(t, "08:00-17:00", farm.WorkTime)
	assert.Equal(t, "햇살농원", farm.FarmName)
	assert.Equal(t, "Day 2-8: 햇살농원 농가 일정", farm.Description)
}

func TestGroupSchedule_FreeDays(t *testing.T) {
	it, err := BuildItinerary(buildInput(10, attraction("a-1", "벽골제", "김제시 부량면 1")))
	require.NoError(t, err)

	groups := GroupSchedule(it)

	require.Len(t, groups, 4)
	assert.Equal(t, domain.GroupTourDay, groups[0].Kind)
	assert.Equal(t, domain.GroupFreeDay, groups[2].Kind)
	assert.Equal(t, domain.GroupFreeDay, groups[3].Kind)
	assert.Equal(t, FreeDayName, groups[3].Title)
}

func TestGroupSchedule_FarmOnly(t *testing.T) {
	it, err := BuildItinerary(buildInput(1))
	require.NoError(t, err)

	groups := GroupSchedule(it)

	require.Len(t, groups, 1)
	assert.Equal(t, "Day 1: 햇살농원 농가 일정", groups[0].Description)
}

func TestCalendar_MaterializeAndMerge(t *testing.T) {
	it, err := BuildItinerary(buildInput(3, attraction("a-1", "벽골제", "김제시 부량면 1")))
	require.NoError(t, err)

	cal := Materialize(it)

	assert.Equal(t, len(it.Items), cal.Len())
	assert.Equal(t, []string{"2026-10"}, cal.Months())
	assert.Equal(t, []int{1, 2, 3}, cal.Days("2026-10"))

	day1 := cal["2026-10"][1]
	require.Len(t, day1, 1)
	assert.Equal(t, "10/01/2026 3:00 pm", day1[0].DateTime)
	assert.Equal(t, "벽골제", day1[0].Activity)
	assert.Equal(t, "10/02/2026 8:00 am", cal["2026-10"][2][0].DateTime)

	assert.Zero(t, cal.Merge(it), "merging the same itinerary twice adds nothing")
	assert.Equal(t, len(it.Items), cal.Len())
}

func TestCalendar_SpansMonths(t *testing.T) {
	in := buildInput(5)
	in.Start = time.Date(2026, 10, 30, 0, 0, 0, 0, time.UTC)
	it, err := BuildItinerary(in)
	require.NoError(t, err)

	cal := Materialize(it)

	assert.Equal(t, []string{"2026-10", "2026-11"}, cal.Months())
	assert.Equal(t, []int{30, 31}, cal.Days("2026-10"))
	assert.Equal(t, []int{1, 2, 3}, cal.Days("2026-11"))
}

func TestCalendarEvents_FreeDayDefaultsToMorning(t *testing.T) {
	it, err := BuildItinerary(buildInput(3, attraction("a-1", "벽골제", "김제시 부량면 1")))
	require.NoError(t, err)

	events := CalendarEvents(it)

	require.Len(t, events, 3)
	assert.Equal(t, FreeDayName, events[2].Activity)
	assert.Equal(t, "10/03/2026 9:00 am", events[2].DateTime)
}

func TestParseClock(t *testing.T) {
	h, m, ok := ParseClock("08:30")
	assert.True(t, ok)
	assert.Equal(t, 8, h)
	assert.Equal(t, 30, m)

	_, _, ok = ParseClock("25:00")
	assert.False(t, ok)
	_, _, ok = ParseClock("")
	assert.False(t, ok)
}
