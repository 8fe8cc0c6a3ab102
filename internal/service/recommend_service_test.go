package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/farmtrip/internal/app"
	"github.com/alexanderramin/farmtrip/internal/config"
	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/alexanderramin/farmtrip/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_RanksRegionCatalog(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRecommendService(env.candidates, config.DefaultVocabulary())

	profile := domain.PreferenceProfile{
		Landscapes:   []string{"숲"},
		TravelStyles: []string{"휴식"},
		JobTags:      []string{"사과"},
	}
	resp, err := svc.Recommend(context.Background(), app.NewRecommendRequest("김제", profile))
	require.NoError(t, err)

	assert.Equal(t, "김제시", resp.Region)
	assert.Equal(t, 1, resp.Filtered, "the parking lot is not an attraction")
	require.Len(t, resp.Tours, 4)
	assert.Equal(t, "금산사", resp.Tours[0].Attraction.Name, "synonyms match 산 and 힐링")
	assert.Equal(t, 1, resp.Tours[0].Rank)
	assert.NotEmpty(t, resp.Tours[0].Reasons)
	for _, r := range resp.Tours {
		assert.NotEqual(t, "parking", r.Attraction.ID)
	}

	require.Len(t, resp.Farms, 2, "farms from other regions are excluded")
	assert.Equal(t, "farm-orchard", resp.Farms[0].Farm.ID)
	assert.Greater(t, resp.Farms[0].Score, resp.Farms[1].Score)
}

func TestRecommend_Limits(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRecommendService(env.candidates, config.DefaultVocabulary())

	req := app.NewRecommendRequest("김제시", domain.PreferenceProfile{})
	req.FarmLimit = 1
	req.TourLimit = 2
	resp, err := svc.Recommend(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Farms, 1)
	assert.Len(t, resp.Tours, 2)
	assert.Equal(t, "벽골제", resp.Tours[0].Attraction.Name, "ties keep catalog order")
}

func TestRecommend_Errors(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRecommendService(env.candidates, config.DefaultVocabulary())

	_, err := svc.Recommend(context.Background(), app.NewRecommendRequest("서울", domain.PreferenceProfile{}))
	assert.True(t, app.IsScheduleError(err, app.ErrUnsupportedRegion))

	_, err = svc.Recommend(context.Background(), app.NewRecommendRequest("무주군", domain.PreferenceProfile{}))
	assert.True(t, app.IsScheduleError(err, app.ErrNoCandidates))
}

func TestScoreAndRank(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRecommendService(env.candidates, config.DefaultVocabulary())
	ctx := context.Background()

	resp, err := svc.ScoreAndRank(ctx, app.ScoreRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Ranked)

	_, err = svc.ScoreAndRank(ctx, app.ScoreRequest{RequireMatch: true})
	assert.True(t, app.IsScheduleError(err, app.ErrNoCandidates))

	resp, err = svc.ScoreAndRank(ctx, app.ScoreRequest{
		Candidates: []domain.Attraction{
			*testutil.NewTestAttraction("해변공원", testutil.WithLandscapes("해변")),
			*testutil.NewTestAttraction("역사관", testutil.WithStyles("유적")),
		},
		Styles: []string{"문화"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Ranked, 2)
	assert.Equal(t, "역사관", resp.Ranked[0].Attraction.Name)
	assert.Equal(t, 2, resp.Ranked[1].Rank)
}
