package service

import (
	"context"

	"github.com/alexanderramin/farmtrip/internal/app"
	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/alexanderramin/farmtrip/internal/importer"
	"github.com/alexanderramin/farmtrip/internal/repository"
	"github.com/alexanderramin/farmtrip/internal/scheduler"
)

type RecommendService interface {
	app.ScoreUseCase
	app.RecommendUseCase
}

type ScheduleService interface {
	app.GenerateScheduleUseCase
	app.ReviseScheduleUseCase
	Get(ctx context.Context, id string) (*app.ScheduleResponse, error)
	List(ctx context.Context, limit int) ([]*domain.Itinerary, error)
	History(ctx context.Context, id string) ([]repository.Revision, error)
}

type CalendarService interface {
	app.MaterializeCalendarUseCase
	// Combine merges several itineraries into one calendar. added counts the
	// events that were not already present.
	Combine(ctx context.Context, ids ...string) (cal scheduler.Calendar, added int, err error)
}

// ImportResult holds the outcome of a catalog import.
type ImportResult struct {
	Farms       int
	Attractions int
	Regions     []string
}

type CatalogService interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.CatalogSchema) (*ImportResult, error)
	Overview(ctx context.Context) ([]repository.RegionCount, error)
	ListFarms(ctx context.Context, region string) ([]domain.Farm, error)
	ListAttractions(ctx context.Context, region string) ([]domain.Attraction, error)
}
