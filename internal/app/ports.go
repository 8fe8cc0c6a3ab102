package app

import "context"

type ScoreUseCase interface {
	ScoreAndRank(ctx context.Context, req ScoreRequest) (*ScoreResponse, error)
}

type RecommendUseCase interface {
	Recommend(ctx context.Context, req RecommendRequest) (*RecommendResponse, error)
}

type GenerateScheduleUseCase interface {
	Generate(ctx context.Context, req GenerateRequest) (*ScheduleResponse, error)
}

type ReviseScheduleUseCase interface {
	Revise(ctx context.Context, req ReviseRequest) (*ScheduleResponse, error)
}

type MaterializeCalendarUseCase interface {
	Materialize(ctx context.Context, itineraryID string) (*CalendarResponse, error)
}
