package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/farmtrip/internal/app"
	"github.com/alexanderramin/farmtrip/internal/config"
	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/alexanderramin/farmtrip/internal/repository"
	"github.com/alexanderramin/farmtrip/internal/scheduler"
	"golang.org/x/sync/errgroup"
)

type recommendService struct {
	candidates repository.CandidateRepo
	tools      *textTools
	observer   UseCaseObserver
}

func NewRecommendService(candidates repository.CandidateRepo, vocab config.Vocabulary, observers ...UseCaseObserver) RecommendService {
	return &recommendService{
		candidates: candidates,
		tools:      newTextTools(vocab),
		observer:   useCaseObserverOrNoop(observers),
	}
}

// ScoreAndRank ranks an explicit candidate list. It never touches the store.
func (s *recommendService) ScoreAndRank(ctx context.Context, req app.ScoreRequest) (resp *app.ScoreResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"candidates": len(req.Candidates)}
	defer observe(ctx, s.observer, "score-and-rank", startedAt, fields, &err)

	if len(req.Candidates) == 0 && req.RequireMatch {
		return nil, app.NewScheduleError(app.ErrNoCandidates, "no candidates to rank")
	}
	scored := scheduler.ScoreAndRank(req.Candidates, req.Styles, req.Landscapes, s.tools.tags)
	return &app.ScoreResponse{Ranked: toRankedAttractions(scored, 0)}, nil
}

func (s *recommendService) Recommend(ctx context.Context, req app.RecommendRequest) (resp *app.RecommendResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"region": req.Region}
	defer observe(ctx, s.observer, "recommend", startedAt, fields, &err)

	regionName, err := requireRegion(req.Region)
	if err != nil {
		return nil, err
	}

	var farms []domain.Farm
	var tours []scheduler.ScoredAttraction
	var filtered int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := s.candidates.ListFarmsByRegion(gctx, regionName)
		if err != nil {
			return fmt.Errorf("loading farms: %w", err)
		}
		farms = f
		return nil
	})
	g.Go(func() error {
		t, dropped, err := rankedPool(gctx, s.candidates, s.tools, regionName, req.Profile)
		if err != nil {
			return err
		}
		tours, filtered = t, dropped
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(farms) == 0 && len(tours) == 0 {
		return nil, app.NewScheduleError(app.ErrNoCandidates, "no farms or attractions are listed for %s", regionName)
	}

	fields["farms"] = len(farms)
	fields["tours"] = len(tours)
	fields["filtered"] = filtered
	return &app.RecommendResponse{
		Region:   regionName,
		Farms:    toRankedFarms(scheduler.ScoreFarms(farms, req.Profile.JobTags, s.tools.tags), req.FarmLimit),
		Tours:    toRankedAttractions(tours, req.TourLimit),
		Filtered: filtered,
	}, nil
}
