package scheduler

import (
	"fmt"

	"github.com/alexanderramin/farmtrip/internal/app"
	"github.com/alexanderramin/farmtrip/internal/domain"
)

type ScoringWeights struct {
	Style     float64
	Landscape float64
	Job       float64
}

func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		Style:     2.0,
		Landscape: 1.0,
		Job:       2.0,
	}
}

// ScoringInput is one candidate with the canonicalized user tag sets.
type ScoringInput struct {
	Attraction domain.Attraction
	Index      int
	Styles     map[string]bool
	Landscapes map[string]bool
	Weights    ScoringWeights
	Tags       *TagCanonicalizer
}

type ScoredAttraction struct {
	Attraction domain.Attraction
	Index      int
	Score      float64
	Reasons    []app.ScoreReason
}

type ScoredFarm struct {
	Farm    domain.Farm
	Index   int
	Score   float64
	Reasons []app.ScoreReason
}

func ScoreAttraction(input ScoringInput) ScoredAttraction {
	result := ScoredAttraction{
		Attraction: input.Attraction,
		Index:      input.Index,
	}

	var score float64
	factors := []func(ScoringInput) (float64, *app.ScoreReason){
		scoreStyleMatch,
		scoreLandscapeMatch,
	}
	for _, f := range factors {
		delta, reason := f(input)
		score += delta
		if reason != nil {
			result.Reasons = append(result.Reasons, *reason)
		}
	}

	result.Score = score
	return result
}

// scoreStyleMatch counts distinct user styles found among the candidate's
// style keywords.
func scoreStyleMatch(input ScoringInput) (float64, *app.ScoreReason) {
	if len(input.Styles) == 0 {
		return 0, nil
	}
	keywords := input.Tags.CanonicalSet(input.Attraction.StyleKeywords)
	matched := 0
	for style := range input.Styles {
		if keywords[style] {
			matched++
		}
	}
	if matched == 0 {
		return 0, nil
	}
	delta := float64(matched) * input.Weights.Style
	return delta, &app.ScoreReason{
		Code:        app.ReasonStyleMatch,
		Message:     fmt.Sprintf("Matches %d travel style(s)", matched),
		WeightDelta: delta,
	}
}

// scoreLandscapeMatch adds a flat bonus when any landscape overlaps.
func scoreLandscapeMatch(input ScoringInput) (float64, *app.ScoreReason) {
	if len(input.Landscapes) == 0 {
		return 0, nil
	}
	for _, kw := range input.Attraction.LandscapeKeywords {
		if input.Landscapes[input.Tags.Canonical(kw)] {
			delta := input.Weights.Landscape
			return delta, &app.ScoreReason{
				Code:        app.ReasonLandscapeMatch,
				Message:     "Matches a preferred landscape",
				WeightDelta: delta,
			}
		}
	}
	return 0, nil
}

// ScoreAndRank scores every candidate and returns them in canonical order.
// It is pure: equal inputs always yield an identical sequence.
func ScoreAndRank(candidates []domain.Attraction, styles, landscapes []string, tags *TagCanonicalizer) []ScoredAttraction {
	if len(candidates) == 0 {
		return []ScoredAttraction{}
	}
	styleSet := tags.CanonicalSet(styles)
	landscapeSet := tags.CanonicalSet(landscapes)
	weights := DefaultWeights()

	scored := make([]ScoredAttraction, 0, len(candidates))
	for i, c := range candidates {
		scored = append(scored, ScoreAttraction(ScoringInput{
			Attraction: c,
			Index:      i,
			Styles:     styleSet,
			Landscapes: landscapeSet,
			Weights:    weights,
			Tags:       tags,
		}))
	}
	CanonicalSort(scored)
	return scored
}

// ScoreFarms ranks farms by overlap between their tags and the user's job tags.
func ScoreFarms(farms []domain.Farm, jobTags []string, tags *TagCanonicalizer) []ScoredFarm {
	jobSet := tags.CanonicalSet(jobTags)
	weights := DefaultWeights()

	scored := make([]ScoredFarm, 0, len(farms))
	for i, f := range farms {
		sf := ScoredFarm{Farm: f, Index: i}
		farmTags := tags.CanonicalSet(f.Tags)
		matched := 0
		for tag := range jobSet {
			if farmTags[tag] {
				matched++
			}
		}
		if matched > 0 {
			sf.Score = float64(matched) * weights.Job
			sf.Reasons = append(sf.Reasons, app.ScoreReason{
				Code:        app.ReasonJobMatch,
				Message:     fmt.Sprintf("Matches %d preferred job(s)", matched),
				WeightDelta: sf.Score,
			})
		}
		scored = append(scored, sf)
	}
	SortFarms(scored)
	return scored
}
