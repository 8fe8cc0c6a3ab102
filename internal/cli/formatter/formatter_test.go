package formatter

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/farmtrip/internal/app"
	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/alexanderramin/farmtrip/internal/repository"
	"github.com/alexanderramin/farmtrip/internal/scheduler"
	"github.com/alexanderramin/farmtrip/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func testResponse() *app.ScheduleResponse {
	farm := testutil.NewTestFarm("김제 과수농장", testutil.WithFarmID("farm-orchard"))
	it := testutil.NewTestItinerary(farm, testutil.WithWarnings("1 attraction(s) did not fit a 3-day trip"))
	return &app.ScheduleResponse{
		Itinerary:   it,
		Duration:    domain.Resolved(3),
		Start:       domain.Defaulted(it.StartDate),
		UsedDefault: true,
		Groups:      scheduler.GroupSchedule(it),
		Events:      scheduler.CalendarEvents(it),
	}
}

func TestFormatItinerary(t *testing.T) {
	out := stripANSI(FormatItinerary(testResponse()))

	assert.Contains(t, out, "ITINERARY")
	assert.Contains(t, out, "김제시")
	assert.Contains(t, out, "2026-10-01")
	assert.Contains(t, out, "● resolved")
	assert.Contains(t, out, "○ defaulted")
	assert.Contains(t, out, "filled in from defaults")

	assert.Contains(t, out, "Day 1")
	assert.Contains(t, out, "10월 01일 (목)")
	assert.Contains(t, out, "관광지")
	assert.Contains(t, out, "농가")
	assert.Contains(t, out, "08:00-17:00")
	assert.Contains(t, out, "벽골제")
	assert.Contains(t, out, "아리랑문학마을")

	assert.Contains(t, out, "OVERVIEW")
	assert.Contains(t, out, "농가 체험")
	assert.Contains(t, out, "총 3일 · 농가 1일 · 관광 2일 · v1")
	assert.Contains(t, out, "! 1 attraction(s) did not fit")

	// Days appear in order.
	assert.Less(t, strings.Index(out, "Day 1"), strings.Index(out, "Day 2"))
	assert.Less(t, strings.Index(out, "Day 2"), strings.Index(out, "Day 3"))
}

func TestFormatItinerary_SpecialAndFreeItems(t *testing.T) {
	resp := testResponse()
	it := resp.Itinerary
	it.Items[0].Special = true
	it.Items[0].Name = "김제지평선축제"
	it.Items[2] = domain.ScheduleItem{Day: 3, Date: it.Items[2].Date, Type: domain.ScheduleTour,
		Name: scheduler.FreeDayName, StartTime: "10:00", Free: true}
	ev := &domain.SpecialEvent{Name: "김제지평선축제"}
	resp.SpecialEvent = ev
	resp.Groups = scheduler.GroupSchedule(it)

	out := stripANSI(FormatItinerary(resp))
	assert.Contains(t, out, "★ 김제지평선축제")
	assert.Contains(t, out, "EVENT")
	assert.Contains(t, out, "자유 일정")
}

func TestFormatRecommendation(t *testing.T) {
	farm := testutil.NewTestFarm("김제 과수농장", testutil.WithTags("사과", "수확"))
	a := testutil.NewTestAttraction("금산사")
	resp := &app.RecommendResponse{
		Region: "김제시",
		Farms:  []app.RankedFarm{{Farm: *farm, Rank: 1, Score: 2}},
		Tours: []app.RankedAttraction{{Attraction: *a, Rank: 1, Score: 3,
			Reasons: []app.ScoreReason{{Message: "Matches 1 travel style(s)"}, {Message: "Matches a preferred landscape"}}}},
		Filtered: 2,
	}

	out := stripANSI(FormatRecommendation(resp))
	assert.Contains(t, out, "FARMS · 김제시")
	assert.Contains(t, out, "김제 과수농장")
	assert.Contains(t, out, "사과, 수확")
	assert.Contains(t, out, "2.0")
	assert.Contains(t, out, "금산사")
	assert.Contains(t, out, "Matches 1 travel style(s); Matches a preferred landscape")
	assert.Contains(t, out, "2 facility listing(s) skipped.")
}

func TestFormatRecommendation_Empty(t *testing.T) {
	out := stripANSI(FormatRecommendation(&app.RecommendResponse{Region: "무주군"}))
	assert.Contains(t, out, "No farms listed")
	assert.Contains(t, out, "No attractions listed")
	assert.NotContains(t, out, "skipped")
}

func TestFormatCalendar(t *testing.T) {
	it := testResponse().Itinerary
	cal := scheduler.Materialize(it)

	out := stripANSI(FormatCalendar(cal, true))
	assert.Contains(t, out, "2026-10")
	assert.Contains(t, out, " 1.")
	assert.Contains(t, out, "3:00 pm")
	assert.Contains(t, out, "벽골제")
	assert.Contains(t, out, "(day 3)")
	assert.Contains(t, out, "(cached)")
	assert.Less(t, strings.Index(out, "벽골제"), strings.Index(out, "아리랑문학마을"))

	assert.Contains(t, stripANSI(FormatCalendar(nil, false)), "No events.")
}

func TestFormatRegions(t *testing.T) {
	out := stripANSI(FormatRegions([]string{"군산시", "김제시"}, []repository.RegionCount{
		{Region: "김제시", Farms: 2, Attractions: 5},
	}))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], "군산시")
	assert.Contains(t, lines[3], "김제시")
	assert.Contains(t, lines[3], "5")
}

func TestFormatCatalogLists(t *testing.T) {
	farms := stripANSI(FormatFarmList([]domain.Farm{*testutil.NewTestFarm("들녘 벼농장", testutil.WithFarmID("farm-rice"))}))
	assert.Contains(t, farms, "들녘 벼농장")
	assert.Contains(t, farms, "farm-rice")
	assert.Contains(t, farms, "--", "no tags")

	attractions := stripANSI(FormatAttractionList([]domain.Attraction{
		*testutil.NewTestAttraction("망해사", testutil.WithLandscapes("바다"), testutil.WithStyles("역사")),
	}))
	assert.Contains(t, attractions, "망해사")
	assert.Contains(t, attractions, "바다")
	assert.Contains(t, attractions, "역사")
}

func TestFormatImportResultAndValidation(t *testing.T) {
	out := stripANSI(FormatImportResult(2, 5, []string{"김제시", "완주군"}))
	assert.Contains(t, out, "2 farms, 5 attractions")
	assert.Contains(t, out, "김제시, 완주군")

	out = stripANSI(FormatValidationErrors([]error{errors.New("farms[0].name is required")}))
	assert.Contains(t, out, "Validation failed (1 errors):")
	assert.Contains(t, out, "- farms[0].name is required")
}

func TestFormatRevisionHistory(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	out := stripANSI(formatRevisionHistoryAt([]repository.Revision{
		{Version: 1, CreatedAt: now.Add(-2 * time.Hour)},
		{Version: 2, Feedback: "첫째날 일정을 바꿔주세요", CreatedAt: now.Add(-5 * time.Minute)},
	}, now))
	assert.Contains(t, out, "v1")
	assert.Contains(t, out, "2h ago")
	assert.Contains(t, out, "(generated)")
	assert.Contains(t, out, "5m ago")
	assert.Contains(t, out, "첫째날 일정을 바꿔주세요")
}

func TestRenderTable_AlignsWideCharacters(t *testing.T) {
	out := stripANSI(RenderTable([]string{"NAME", "N"}, [][]string{{"벽골제", "1"}, {"ab", "2"}}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	// "벽골제" is six cells wide, so the second column starts at 8.
	assert.Equal(t, "벽골제  1", lines[2])
	assert.Equal(t, "ab      2", lines[3])
	assert.Empty(t, RenderTable(nil, nil))
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Just now", HumanTimestampFrom(now.Add(-10*time.Second), now))
	assert.Equal(t, "3h ago", HumanTimestampFrom(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2026-09-28 12:00", HumanTimestampFrom(now.Add(-72*time.Hour), now))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "전북 김제…", Truncate("전북 김제시 부량면", 6))
	assert.Equal(t, "short", Truncate("short", 10))
}
