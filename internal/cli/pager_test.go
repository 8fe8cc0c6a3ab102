package cli

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alexanderramin/farmtrip/internal/app"
	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/alexanderramin/farmtrip/internal/teatest"
	"github.com/alexanderramin/farmtrip/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizedPager(t *testing.T, lines, height int) pagerModel {
	t.Helper()
	m, cmd := newPagerModel("김제시 · 김제 과수농장", numberedLines(lines)).
		Update(tea.WindowSizeMsg{Width: 80, Height: height})
	assert.Nil(t, cmd)
	return m.(pagerModel)
}

func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return strings.Join(lines, "\n")
}

func TestPager_WaitsForWindowSize(t *testing.T) {
	m := newPagerModel("title", "body")
	assert.Equal(t, "Loading…", m.View())
}

func TestPager_RendersTitleAndStatus(t *testing.T) {
	m := sizedPager(t, 50, 20)

	view := stripANSI(m.View())
	assert.Contains(t, view, "김제시 · 김제 과수농장")
	assert.Contains(t, view, "[TOP]")
	assert.Contains(t, view, "q: quit")
	assert.Equal(t, 17, m.vp.Height)
}

func TestPager_Navigation(t *testing.T) {
	d := teatest.New(t, newPagerModel("title", numberedLines(50)), 80, 20)

	d.Press("down", "down")
	assert.Equal(t, 2, d.Model.(pagerModel).vp.YOffset)
	assert.Contains(t, stripANSI(d.View()), "[6%]")

	d.Press("G")
	assert.True(t, d.Model.(pagerModel).vp.AtBottom())
	assert.Contains(t, stripANSI(d.View()), "[END]")
	assert.Contains(t, d.View(), "line 50")

	d.Press("g")
	assert.True(t, d.Model.(pagerModel).vp.AtTop())
	assert.False(t, d.Quit)
}

func TestPager_QuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			d := teatest.New(t, newPagerModel("title", "body"), 80, 20)
			d.Press(k)
			assert.True(t, d.Quit)
		})
	}
}

func TestPager_Resize(t *testing.T) {
	m := sizedPager(t, 5, 20)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = next.(pagerModel)
	assert.Equal(t, 40, m.vp.Width)
	assert.Equal(t, 7, m.vp.Height)
}

func TestPickerOptions(t *testing.T) {
	farm := testutil.NewTestFarm("김제 과수농장", testutil.WithFarmID("farm-orchard"), testutil.WithTags("사과"))
	plain := testutil.NewTestFarm("들녘 벼농장", testutil.WithFarmID("farm-rice"))
	rec := &app.RecommendResponse{
		Region: "김제시",
		Farms:  []app.RankedFarm{{Farm: *farm, Rank: 1, Score: 2}, {Farm: *plain, Rank: 2}},
		Tours: []app.RankedAttraction{
			{Attraction: domain.Attraction{ID: "geumsansa", Name: "금산사"}, Rank: 1, Score: 3},
			{Attraction: domain.Attraction{ID: "byeokgolje", Name: "벽골제"}, Rank: 2},
		},
	}

	farms := farmOptions(rec.Farms)
	require.Len(t, farms, 2)
	assert.Equal(t, "farm-orchard", farms[0].Value)
	assert.Equal(t, "김제 과수농장  (08:00-17:00)  사과", stripANSI(farms[0].Key))
	assert.Equal(t, "들녘 벼농장  (08:00-17:00)", farms[1].Key)

	tours := tourOptions(rec.Tours)
	require.Len(t, tours, 2)
	assert.Equal(t, "금산사  ★3", tours[0].Key)
	assert.Equal(t, "벽골제", tours[1].Key)
	assert.Equal(t, "byeokgolje", tours[1].Value)

	var sel tripSelection
	assert.NotNil(t, tripPickerForm(rec, &sel))
}
