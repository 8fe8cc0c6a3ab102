package scheduler

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/farmtrip/internal/app"
	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildInput(duration int, tours ...domain.Attraction) BuildInput {
	return BuildInput{
		ID:       "it-1",
		Region:   "김제시",
		Farm:     testFarm(),
		Tours:    tours,
		Duration: duration,
		Start:    octFirst(),
		Now:      octFirst(),
	}
}

func dayTypes(it *domain.Itinerary) []string {
	out := make([]string, it.TotalDays)
	for day := 1; day <= it.TotalDays; day++ {
		items := it.ItemsOn(day)
		switch {
		case len(items) == 0:
			out[day-1] = "-"
		case items[0].Free:
			out[day-1] = "free"
		default:
			out[day-1] = string(items[0].Type)
		}
	}
	return out
}

func TestBuildItinerary_TenDaysOneTour(t *testing.T) {
	tour := attraction("a-1", "벽골제", "전북특별자치도 김제시 부량면 벽골제로 100")

	it, err := BuildItinerary(buildInput(10, tour))
	require.NoError(t, err)

	assert.Equal(t, []string{"tour", "farm", "farm", "farm", "farm", "farm", "farm", "farm", "free", "free"}, dayTypes(it))

	day1 := it.ItemsOn(1)
	require.Len(t, day1, 1)
	assert.Equal(t, "벽골제", day1[0].Name)
	assert.Equal(t, "15:00", day1[0].StartTime)

	free := it.ItemsOn(9)[0]
	assert.Equal(t, FreeDayName, free.Name)
	assert.Equal(t, domain.ScheduleTour, free.Type)

	farm := it.ItemsOn(2)[0]
	assert.Equal(t, "08:00", farm.StartTime)
	assert.Equal(t, "17:00", farm.EndTime)

	s := it.Summary()
	assert.Equal(t, 10, s.Duration)
	assert.Equal(t, 7, s.FarmDaysCount)
	assert.Equal(t, 3, s.TourDaysCount)
}

func TestBuildItinerary_SpecialEventOpensDayOne(t *testing.T) {
	in := buildInput(10,
		attraction("a-1", "아리랑문학마을", "전북특별자치도 김제시 부량면 용성리 1"),
		attraction("a-2", "금산사", "전북특별자치도 김제시 금산면 모악15길 1"),
	)
	in.Special = gimjeFestival()
	require.NotNil(t, in.Special)

	it, err := BuildItinerary(in)
	require.NoError(t, err)

	day1 := it.ItemsOn(1)
	require.NotEmpty(t, day1)
	assert.Equal(t, "김제지평선축제", day1[0].Name)
	assert.True(t, day1[0].Special)
	assert.Equal(t, "10:00", day1[0].StartTime)
	assert.Equal(t, "10월 01일 (목)", day1[0].DateLabel())

	start, end, ok := it.FarmRange()
	require.True(t, ok)
	assert.Equal(t, 2, start)
	assert.Equal(t, 8, end)
	assert.Empty(t, it.Warnings, "Oct 1-10 covers the festival days")
}

func TestBuildItinerary_SpecialEventOutsideTripWarns(t *testing.T) {
	in := buildInput(3)
	in.Special = gimjeFestival()

	it, err := BuildItinerary(in)
	require.NoError(t, err)

	assert.Equal(t, "김제지평선축제", it.ItemsOn(1)[0].Name)
	require.Len(t, it.Warnings, 1)
	assert.Equal(t, "김제지평선축제 runs 10월 8일-12일, outside the trip dates", it.Warnings[0])
}

func TestBuildItinerary_NoToursFarmCoversTrip(t *testing.T) {
	it, err := BuildItinerary(buildInput(4))
	require.NoError(t, err)

	assert.Equal(t, []string{"farm", "farm", "farm", "farm"}, dayTypes(it))
	assert.Equal(t, 0, it.Summary().TourDaysCount)
}

func TestBuildItinerary_Layouts(t *testing.T) {
	tours := []domain.Attraction{
		attraction("a-1", "A", "김제시 부량면 1"),
		attraction("a-2", "B", "김제시 부량면 2"),
		attraction("a-3", "C", "김제시 부량면 3"),
	}

	tests := []struct {
		duration int
		want     []string
	}{
		{1, []string{"farm"}},
		{2, []string{"tour", "farm"}},
		{3, []string{"tour", "farm", "tour"}},
		{6, []string{"tour", "farm", "farm", "farm", "farm", "tour"}},
		{7, []string{"tour", "farm", "farm", "farm", "farm", "tour", "tour"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d days", tt.duration), func(t *testing.T) {
			it, err := BuildItinerary(buildInput(tt.duration, tours...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, dayTypes(it))
		})
	}
}

func TestBuildItinerary_SingleDayWarnsAboutTours(t *testing.T) {
	it, err := BuildItinerary(buildInput(1, attraction("a-1", "벽골제", "김제시 부량면 1")))
	require.NoError(t, err)

	require.Len(t, it.Items, 1)
	assert.Equal(t, domain.ScheduleFarm, it.Items[0].Type)
	require.Len(t, it.Warnings, 1)
	assert.Contains(t, it.Warnings[0], "did not fit")
}

func TestBuildItinerary_ExtraToursPackEarliestDays(t *testing.T) {
	var tours []domain.Attraction
	for i := 0; i < 5; i++ {
		tours = append(tours, attraction(fmt.Sprintf("a-%d", i), fmt.Sprintf("T%d", i), "김제시 부량면 1"))
	}

	it, err := BuildItinerary(buildInput(5, tours...))
	require.NoError(t, err)

	day1, day5 := it.ItemsOn(1), it.ItemsOn(5)
	assert.Len(t, day1, 3)
	assert.Len(t, day5, 2)
	assert.Equal(t, []string{"15:00", "17:00", "19:00"}, []string{day1[0].StartTime, day1[1].StartTime, day1[2].StartTime})
	assert.Equal(t, []string{"10:00", "13:00"}, []string{day5[0].StartTime, day5[1].StartTime})
}

func TestBuildItinerary_ClustersByLocality(t *testing.T) {
	tours := []domain.Attraction{
		attraction("a-1", "은파호수공원", "전북특별자치도 군산시 나운동 1"),
		attraction("a-2", "벽골제", "전북특별자치도 김제시 부량면 1"),
		attraction("a-3", "경암동 철길마을", "전북특별자치도 군산시 경암동 1"),
		attraction("a-4", "근대역사박물관", "전북특별자치도 군산시 나운동 2"),
	}

	clustered := ClusterByLocality(tours)

	names := make([]string, len(clustered))
	for i, a := range clustered {
		names[i] = a.Name
	}
	assert.Equal(t, []string{"은파호수공원", "근대역사박물관", "경암동 철길마을", "벽골제"}, names)
}

func TestBuildItinerary_DropsDuplicateTours(t *testing.T) {
	tour := attraction("a-1", "벽골제", "김제시 부량면 1")

	it, err := BuildItinerary(buildInput(3, tour, tour))
	require.NoError(t, err)

	assert.Len(t, it.ItemsOn(1), 1)
	assert.True(t, it.ItemsOn(3)[0].Free)
}

func TestBuildItinerary_Errors(t *testing.T) {
	in := buildInput(3)
	in.Farm = nil
	_, err := BuildItinerary(in)
	assert.True(t, app.IsScheduleError(err, app.ErrNoFarmSelected))

	in = buildInput(0)
	_, err = BuildItinerary(in)
	assert.True(t, app.IsScheduleError(err, app.ErrDurationUnavailable))
}

func TestBuildItinerary_ClampsLongTrips(t *testing.T) {
	it, err := BuildItinerary(buildInput(14))
	require.NoError(t, err)
	assert.Equal(t, domain.MaxTripDays, it.TotalDays)
	assert.NotEmpty(t, it.Warnings)
}

// TestBuildItinerary_Invariants property-tests the structural guarantees over
// random trip lengths, tour counts and special events.
func TestBuildItinerary_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	cities := []string{
		"전북특별자치도 김제시 부량면",
		"전북특별자치도 김제시 금산면",
		"전북특별자치도 군산시 나운동",
		"전북특별자치도 전주시 완산구",
	}

	for trial := 0; trial < 300; trial++ {
		duration := rng.Intn(domain.MaxTripDays) + 1
		var tours []domain.Attraction
		n := rng.Intn(12)
		for i := 0; i < n; i++ {
			tours = append(tours, attraction(
				fmt.Sprintf("a-%d", i),
				fmt.Sprintf("관광지%d", i),
				fmt.Sprintf("%s %d", cities[rng.Intn(len(cities))], i),
			))
		}
		in := buildInput(duration, tours...)
		if rng.Intn(2) == 0 {
			in.Special = gimjeFestival()
		}

		it, err := BuildItinerary(in)
		require.NoError(t, err, "trial %d", trial)
		require.NoError(t, it.Validate(), "trial %d", trial)

		again, err := BuildItinerary(in)
		require.NoError(t, err)
		assert.Equal(t, it, again, "trial %d: build must be deterministic", trial)

		s := it.Summary()
		assert.Equal(t, duration, s.FarmDaysCount+s.TourDaysCount, "trial %d", trial)
		assert.GreaterOrEqual(t, s.FarmDaysCount, 1, "trial %d", trial)

		if in.Special != nil && duration > 1 {
			first := it.ItemsOn(1)[0]
			assert.True(t, first.Special, "trial %d: special event opens day 1", trial)
		}

		// Tour day loads differ by at most one.
		minLoad, maxLoad := -1, 0
		for day := 1; day <= duration; day++ {
			items := it.ItemsOn(day)
			if items[0].Type != domain.ScheduleTour {
				continue
			}
			n := len(items)
			if items[0].Free {
				n = 0
			}
			if minLoad < 0 || n < minLoad {
				minLoad = n
			}
			if n > maxLoad {
				maxLoad = n
			}
		}
		if minLoad >= 0 {
			assert.LessOrEqual(t, maxLoad-minLoad, 1, "trial %d", trial)
		}
	}
}

func TestSlotTime(t *testing.T) {
	assert.Equal(t, "15:00", SlotTime(true, 0))
	assert.Equal(t, "10:00", SlotTime(false, 0))
	assert.Equal(t, "16:00", SlotTime(false, 2))
	assert.Equal(t, "20:00", SlotTime(false, 9))
}

func TestPlanLayout_Dates(t *testing.T) {
	it, err := BuildItinerary(buildInput(3, attraction("a-1", "벽골제", "김제시 부량면 1")))
	require.NoError(t, err)

	for _, item := range it.Items {
		assert.Equal(t, octFirst().AddDate(0, 0, item.Day-1), item.Date)
	}
	assert.Equal(t, time.UTC, it.StartDate.Location())
}
