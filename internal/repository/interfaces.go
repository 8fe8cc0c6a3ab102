package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/farmtrip/internal/domain"
)

// RegionCount is one row of the catalog overview.
type RegionCount struct {
	Region      string
	Farms       int
	Attractions int
}

// Revision is one stored version of an itinerary.
type Revision struct {
	ItineraryID string
	Version     int
	Feedback    string
	CreatedAt   time.Time
}

// CandidateRepo is the farm/attraction catalog. List calls return rows in
// catalog order, which callers use as the scoring tie-break index.
type CandidateRepo interface {
	ListAttractionsByRegion(ctx context.Context, region string) ([]domain.Attraction, error)
	ListFarmsByRegion(ctx context.Context, region string) ([]domain.Farm, error)
	GetFarm(ctx context.Context, id string) (*domain.Farm, error)
	GetAttractionsByIDs(ctx context.Context, ids []string) ([]domain.Attraction, error)
	UpsertFarm(ctx context.Context, f *domain.Farm) error
	UpsertAttraction(ctx context.Context, a *domain.Attraction) error
	CountByRegion(ctx context.Context) ([]RegionCount, error)
}

type ItineraryRepo interface {
	Create(ctx context.Context, it *domain.Itinerary) error
	// Update replaces the stored head, which must still be at it.Version-1,
	// and records feedback as the revision that produced it.Version.
	Update(ctx context.Context, it *domain.Itinerary, feedback string) error
	GetByID(ctx context.Context, id string) (*domain.Itinerary, error)
	List(ctx context.Context, limit int) ([]*domain.Itinerary, error)
	ListRevisions(ctx context.Context, id string) ([]Revision, error)
	Delete(ctx context.Context, id string) error
}
