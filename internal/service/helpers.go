package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/farmtrip/internal/app"
	"github.com/alexanderramin/farmtrip/internal/config"
	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/alexanderramin/farmtrip/internal/region"
	"github.com/alexanderramin/farmtrip/internal/repository"
	"github.com/alexanderramin/farmtrip/internal/scheduler"
)

// textTools holds the vocabulary-driven parsers shared by the services.
// Every field is read-only after construction.
type textTools struct {
	tags      *scheduler.TagCanonicalizer
	durations *scheduler.DurationExtractor
	starts    *scheduler.StartPeriodResolver
	reviser   *scheduler.Reviser
	avoid     []string
}

func newTextTools(vocab config.Vocabulary) *textTools {
	return &textTools{
		tags:      scheduler.NewTagCanonicalizer(vocab.Synonyms),
		durations: scheduler.NewDurationExtractor(vocab.Numerals),
		starts:    scheduler.NewStartPeriodResolver(vocab.Seasons, vocab.SpecialEvents()),
		reviser:   scheduler.NewReviser(scheduler.NewFeedbackParser(vocab.Ordinals)),
		avoid:     vocab.AvoidKeywords,
	}
}

// requireRegion maps input to a supported region or fails with
// UNSUPPORTED_REGION.
func requireRegion(input string) (string, error) {
	name, ok := region.Normalize(input)
	if !ok {
		if input == "" {
			return "", app.NewScheduleError(app.ErrUnsupportedRegion, "no region given")
		}
		return "", app.NewScheduleError(app.ErrUnsupportedRegion, "region %q is not supported", input)
	}
	return name, nil
}

// rankedPool loads a region's attractions, drops facilities and ranks the
// rest for the profile.
func rankedPool(ctx context.Context, candidates repository.CandidateRepo, tools *textTools, regionName string, profile domain.PreferenceProfile) ([]scheduler.ScoredAttraction, int, error) {
	all, err := candidates.ListAttractionsByRegion(ctx, regionName)
	if err != nil {
		return nil, 0, fmt.Errorf("loading attractions: %w", err)
	}
	kept, dropped := scheduler.FilterFacilities(all, tools.avoid)
	return scheduler.ScoreAndRank(kept, profile.TravelStyles, profile.Landscapes, tools.tags), dropped, nil
}

func toRankedAttractions(scored []scheduler.ScoredAttraction, limit int) []app.RankedAttraction {
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	out := make([]app.RankedAttraction, 0, len(scored))
	for i, s := range scored {
		out = append(out, app.RankedAttraction{
			Attraction: s.Attraction,
			Rank:       i + 1,
			Score:      s.Score,
			Reasons:    s.Reasons,
		})
	}
	return out
}

func toRankedFarms(scored []scheduler.ScoredFarm, limit int) []app.RankedFarm {
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	out := make([]app.RankedFarm, 0, len(scored))
	for i, s := range scored {
		out = append(out, app.RankedFarm{
			Farm:    s.Farm,
			Rank:    i + 1,
			Score:   s.Score,
			Reasons: s.Reasons,
		})
	}
	return out
}

// mergeTags appends extra tags not already present, keeping first-seen order.
func mergeTags(base []string, extra ...[]string) []string {
	seen := make(map[string]bool, len(base))
	out := make([]string, 0, len(base))
	for _, t := range base {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, group := range extra {
		for _, t := range group {
			if t != "" && !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// scheduleResponse derives the grouped view and calendar events from it.
func scheduleResponse(it *domain.Itinerary) *app.ScheduleResponse {
	return &app.ScheduleResponse{
		Itinerary: it,
		Duration:  domain.Slot[int]{Value: it.TotalDays, Provenance: it.DurationSource},
		Start:     domain.Slot[time.Time]{Value: it.StartDate, Provenance: it.StartSource},
		Groups:    scheduler.GroupSchedule(it),
		Events:    scheduler.CalendarEvents(it),
	}
}
