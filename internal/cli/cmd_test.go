package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/farmtrip/internal/app"
	"github.com/alexanderramin/farmtrip/internal/config"
	"github.com/alexanderramin/farmtrip/internal/repository"
	"github.com/alexanderramin/farmtrip/internal/service"
	"github.com/alexanderramin/farmtrip/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gimjeCatalogYAML = `region: 김제시
farms:
  - id: farm-orchard
    name: 김제 과수농장
    address: 전북 김제시 금산면 청도리 123
    tags: [사과, 수확]
attractions:
  - id: byeokgolje
    name: 벽골제
    address: 전북 김제시 부량면 벽골제로 442
    style_keywords: 역사;체험
  - id: arirang
    name: 아리랑문학마을
    address: 전북 김제시 부량면 용성리 1
    style_keywords: [문화]
  - id: geumsansa
    name: 금산사
    address: 전북 김제시 금산면 모악15길 1
    landscape_keywords: [산]
    style_keywords: [힐링]
  - id: parking
    name: 김제시청 주차장
    address: 전북 김제시 신풍동 1
`

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(db)
	vocab := config.DefaultVocabulary()

	candidates := repository.NewSQLiteCandidateRepo(db)
	itineraries := repository.NewSQLiteItineraryRepo(db)
	today := time.Date(2026, time.September, 15, 9, 0, 0, 0, time.UTC)

	return &App{
		Catalog:   service.NewCatalogService(candidates, uow),
		Recommend: service.NewRecommendService(candidates, vocab),
		Schedules: service.NewScheduleService(candidates, itineraries, uow, service.ScheduleOptions{
			Vocabulary:          vocab,
			DefaultDurationDays: 1,
			Clock:               func() time.Time { return today },
		}),
		Calendars: service.NewCalendarService(itineraries),
		// Slot extraction left nil: the LLM is disabled.
	}
}

// seedCatalog imports the Gimje test catalog through the CLI.
func seedCatalog(t *testing.T, a *App) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gimje.yaml")
	require.NoError(t, os.WriteFile(path, []byte(gimjeCatalogYAML), 0o644))
	_, err := executeCmd(t, a, "catalog", "import", path)
	require.NoError(t, err)
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

// generate schedules the Gimje October trip and returns its ID.
func generate(t *testing.T, a *App) string {
	t.Helper()
	out, err := executeCmd(t, a, "schedule", "--region", "김제", "--farm", "farm-orchard",
		"--tour", "byeokgolje", "--json", "10월에", "열흘", "동안")
	require.NoError(t, err)

	var view app.ItineraryView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	return view.ItineraryID
}

// --- Root command ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	a := testApp(t)

	output, err := executeCmd(t, a)
	require.NoError(t, err)
	assert.Contains(t, output, "farmtrip")
	assert.Contains(t, output, "schedule")
}

// --- catalog ---

func TestCatalogImportAndList(t *testing.T) {
	a := testApp(t)
	path := filepath.Join(t.TempDir(), "gimje.yaml")
	require.NoError(t, os.WriteFile(path, []byte(gimjeCatalogYAML), 0o644))

	out, err := executeCmd(t, a, "catalog", "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 farms, 4 attractions")

	out, err = executeCmd(t, a, "catalog", "farms", "--region", "김제")
	require.NoError(t, err)
	assert.Contains(t, out, "김제 과수농장")
	assert.Contains(t, out, "사과, 수확")

	out, err = executeCmd(t, a, "catalog", "attractions", "--region", "김제시")
	require.NoError(t, err)
	assert.Contains(t, out, "금산사")
	assert.Contains(t, out, "김제시청 주차장", "the raw catalog is listed unfiltered")

	out, err = executeCmd(t, a, "catalog", "farms", "--region", "완주")
	require.NoError(t, err)
	assert.Contains(t, out, "No farms found.")
}

func TestCatalogValidate(t *testing.T) {
	a := testApp(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(gimjeCatalogYAML), 0o644))
	out, err := executeCmd(t, a, "catalog", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid: 1 farms, 4 attractions")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"farms":[{"name":"","region":"서울"}]}`), 0o644))
	out, err = executeCmd(t, a, "catalog", "validate", bad)
	require.Error(t, err)
	assert.Contains(t, out, "Validation failed")
	assert.Contains(t, out, "farms[0].name is required")
}

func TestCatalogFarms_RequiresRegion(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "catalog", "farms")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "region")
}

func TestRegionsCmd(t *testing.T) {
	a := testApp(t)
	seedCatalog(t, a)

	out, err := executeCmd(t, a, "regions")
	require.NoError(t, err)
	assert.Contains(t, out, "전주시")
	assert.Contains(t, out, "김제시")
	assert.Regexp(t, `김제시\s+1\s+4`, out)
}

// --- recommend ---

func TestRecommendCmd(t *testing.T) {
	a := testApp(t)
	seedCatalog(t, a)

	out, err := executeCmd(t, a, "recommend", "--region", "김제", "--landscape", "숲", "--job", "사과")
	require.NoError(t, err)
	assert.Contains(t, out, "FARMS · 김제시")
	assert.Contains(t, out, "1 facility listing(s) skipped.")
	assert.Less(t, strings.Index(out, "금산사"), strings.Index(out, "벽골제"), "the forest match ranks first")
	assert.NotContains(t, out, "주차장")
}

func TestRecommendCmd_Errors(t *testing.T) {
	a := testApp(t)
	seedCatalog(t, a)

	_, err := executeCmd(t, a, "recommend", "--region", "서울")
	require.Error(t, err)
	assert.True(t, app.IsScheduleError(err, app.ErrUnsupportedRegion))

	_, err = executeCmd(t, a, "recommend", "--region", "김제", "--companion", "pets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid companion")
}

// --- schedule / revise ---

func TestScheduleCmd_Text(t *testing.T) {
	a := testApp(t)
	seedCatalog(t, a)

	out, err := executeCmd(t, a, "schedule", "--farm", "farm-orchard", "--tour", "byeokgolje",
		"10월에 김제에서 열흘 동안 일하고 싶어")
	require.NoError(t, err)
	assert.Contains(t, out, "ITINERARY")
	assert.Contains(t, out, "2026-10-01")
	assert.Contains(t, out, "★ 김제지평선축제")
	assert.Contains(t, out, "총 10일 · 농가 7일 · 관광 3일 · v1")
}

func TestScheduleCmd_JSONView(t *testing.T) {
	a := testApp(t)
	seedCatalog(t, a)

	out, err := executeCmd(t, a, "schedule", "--region", "김제", "--farm", "farm-orchard", "--json")
	require.NoError(t, err)

	var view app.ItineraryView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, 1, view.TotalDays)
	assert.True(t, view.UsedDefault)
	assert.Equal(t, "defaulted", view.Resolution.Duration)
	assert.Equal(t, "2026-09-16", view.StartDate)
	require.Len(t, view.Itinerary, 1)
	assert.Equal(t, "farm", view.Itinerary[0].ScheduleType)
}

func TestScheduleCmd_Errors(t *testing.T) {
	a := testApp(t)
	seedCatalog(t, a)

	_, err := executeCmd(t, a, "schedule", "--region", "김제", "사흘")
	require.Error(t, err)
	assert.True(t, app.IsScheduleError(err, app.ErrNoFarmSelected), "no picker without a terminal")

	_, err = executeCmd(t, a, "schedule", "--farm", "farm-orchard", "사흘")
	require.Error(t, err)
	assert.True(t, app.IsScheduleError(err, app.ErrUnsupportedRegion))

	_, err = executeCmd(t, a, "schedule", "--region", "김제", "--farm", "farm-orchard", "--today", "9/15", "사흘")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --today")
}

func TestReviseCmd(t *testing.T) {
	a := testApp(t)
	seedCatalog(t, a)
	id := generate(t, a)

	out, err := executeCmd(t, a, "revise", id[:8], "첫째날", "일정을", "바꿔주세요")
	require.NoError(t, err)
	assert.Contains(t, out, "v2")
	assert.Contains(t, out, "아리랑문학마을")

	_, err = executeCmd(t, a, "revise", id, "3일차 바꿔줘")
	require.Error(t, err)
	assert.True(t, app.IsScheduleError(err, app.ErrFeedbackTargetInvalid))

	out, err = executeCmd(t, a, "history", id)
	require.NoError(t, err)
	assert.Contains(t, out, "(generated)")
	assert.Contains(t, out, "첫째날 일정을 바꿔주세요")
}

func TestReviseCmd_UnknownID(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "revise", "nope", "첫째날 바꿔줘")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "itinerary not found")
}

// --- show / list / calendar ---

func TestShowAndListCmd(t *testing.T) {
	a := testApp(t)
	seedCatalog(t, a)
	id := generate(t, a)

	out, err := executeCmd(t, a, "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "김제 과수농장")
	assert.Contains(t, out, "Day 10")

	// --pager falls back to plain output without a terminal.
	out, err = executeCmd(t, a, "show", "--pager", id[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "OVERVIEW")

	out, err = executeCmd(t, a, "list")
	require.NoError(t, err)
	assert.Contains(t, out, id[:8])
	assert.Contains(t, out, "v1")
}

func TestListCmd_Empty(t *testing.T) {
	a := testApp(t)

	out, err := executeCmd(t, a, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No itineraries found.")
}

func TestCalendarCmd(t *testing.T) {
	a := testApp(t)
	seedCatalog(t, a)
	id := generate(t, a)

	out, err := executeCmd(t, a, "calendar", id)
	require.NoError(t, err)
	assert.Contains(t, out, "2026-10")
	assert.Contains(t, out, "김제지평선축제")
	assert.NotContains(t, out, "(cached)")

	out, err = executeCmd(t, a, "calendar", id)
	require.NoError(t, err)
	assert.Contains(t, out, "(cached)")

	out, err = executeCmd(t, a, "calendar", id, id)
	require.NoError(t, err)
	assert.Contains(t, out, "10 events from 2 itineraries")
}

func TestResolveItineraryID_Ambiguous(t *testing.T) {
	a := testApp(t)
	seedCatalog(t, a)
	generate(t, a)
	generate(t, a)

	// UUIDv7 ids lead with a timestamp, so ids minted together share a prefix.
	_, err := resolveItineraryID(t.Context(), a, "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}
