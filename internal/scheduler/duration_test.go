package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationExtractor_Extract(t *testing.T) {
	e := NewDurationExtractor(testVocab.Numerals)

	tests := []struct {
		text    string
		days    int
		clamped bool
		found   bool
	}{
		{"10월에 김제에서 열흘 동안 일하고 싶어", 10, false, true},
		{"3박4일로 다녀올게요", 4, false, true},
		{"2박 정도", 3, false, true},
		{"일주일 정도 머물래요", 7, false, true},
		{"5일 일정", 5, false, true},
		{"2주 동안", 10, true, true},
		{"이주일 농촌 체험", 10, true, true},
		{"하루만 체험해볼래", 1, false, true},
		{"10월 1일부터 3일간", 3, false, true},
		{"10월 1일부터 놀고 싶어", 0, false, false},
		{"2일차 일정", 0, false, false},
		{"0일", 0, false, false},
		{"사과 따기 하고 싶어요", 0, false, false},
		{"", 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			m, ok := e.Extract(tt.text)
			require.Equal(t, tt.found, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.days, m.Days)
			assert.Equal(t, tt.clamped, m.Clamped)
			assert.NotEmpty(t, m.Phrase)
		})
	}
}

func TestDurationExtractor_ClampKeepsRaw(t *testing.T) {
	e := NewDurationExtractor(testVocab.Numerals)

	m, ok := e.Extract("30일")
	require.True(t, ok)
	assert.Equal(t, domain.MaxTripDays, m.Days)
	assert.Equal(t, 30, m.Raw)
	assert.True(t, m.Clamped)
}

func TestStartPeriodResolver_Resolve(t *testing.T) {
	r := NewStartPeriodResolver(testVocab.Seasons, testVocab.SpecialEvents())
	today := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name      string
		text      string
		region    string
		want      time.Time
		defaulted bool
		event     bool
	}{
		{"gimje october anchors on event", "10월에 김제에서 열흘", "김제시", date(2026, 10, 1), false, true},
		{"other region mid month", "10월에 전주 여행", "전주시", date(2026, 10, 15), false, false},
		{"early month", "11월 초에 갈래요", "전주시", date(2026, 11, 1), false, false},
		{"late month", "5월 말", "전주시", date(2026, 5, 25), false, false},
		{"negated month", "10월 말고 11월에", "전주시", date(2026, 11, 15), false, false},
		{"negated event month", "10월 말고 11월 초", "김제시", date(2026, 11, 1), false, false},
		{"explicit date", "12월 24일부터", "전주시", date(2026, 12, 24), false, false},
		{"past month rolls over", "2월", "전주시", date(2027, 2, 15), false, false},
		{"season", "가을에 김제", "김제시", date(2026, 10, 1), false, true},
		{"next month", "다음 달에 출발", "전주시", date(2026, 4, 1), false, false},
		{"next week", "다음주에", "전주시", date(2026, 3, 17), false, false},
		{"weekend", "이번 주말", "전주시", date(2026, 3, 14), false, false},
		{"tomorrow", "내일 바로", "전주시", date(2026, 3, 11), false, false},
		{"no reference", "사과 따기", "김제시", date(2026, 3, 11), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Resolve(tt.text, tt.region, today)
			got, ok := res.Date.Get()
			require.True(t, ok)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, tt.defaulted, res.Date.IsDefaulted())
			if tt.event {
				require.NotNil(t, res.Event)
				assert.Equal(t, "김제지평선축제", res.Event.Name)
			} else {
				assert.Nil(t, res.Event)
			}
		})
	}
}

func TestStartPeriodResolver_NearestFutureOccurrence(t *testing.T) {
	r := NewStartPeriodResolver(testVocab.Seasons, testVocab.SpecialEvents())
	today := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	res := r.Resolve("10월에 김제", "김제시", today)

	got, _ := res.Date.Get()
	assert.Equal(t, time.Date(2027, 10, 1, 0, 0, 0, 0, time.UTC), got)
	assert.NotNil(t, res.Event)
}

func TestStartPeriodResolver_TodayIsNotPast(t *testing.T) {
	r := NewStartPeriodResolver(nil, nil)
	today := time.Date(2026, 5, 15, 9, 0, 0, 0, time.UTC)

	res := r.Resolve("5월", "전주시", today)

	got, _ := res.Date.Get()
	assert.Equal(t, time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestStartPeriodResolver_ResolveMonth(t *testing.T) {
	r := NewStartPeriodResolver(testVocab.Seasons, testVocab.SpecialEvents())
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	res := r.ResolveMonth(10, "김제", today)
	got, _ := res.Date.Get()
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), got)
	assert.True(t, res.Date.IsResolved())
	require.NotNil(t, res.Event)

	invalid := r.ResolveMonth(13, "김제", today)
	assert.True(t, invalid.Date.IsDefaulted())
}
