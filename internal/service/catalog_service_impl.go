package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/farmtrip/internal/db"
	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/alexanderramin/farmtrip/internal/importer"
	"github.com/alexanderramin/farmtrip/internal/repository"
)

type catalogService struct {
	candidates repository.CandidateRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

func NewCatalogService(candidates repository.CandidateRepo, uow db.UnitOfWork, observers ...UseCaseObserver) CatalogService {
	return &catalogService{
		candidates: candidates,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := importer.LoadCatalogSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog file: %w", err)
	}
	return s.ImportSchema(ctx, schema)
}

// ImportSchema validates, converts and upserts the catalog in one
// transaction; a failure leaves the store unchanged.
func (s *catalogService) ImportSchema(ctx context.Context, schema *importer.CatalogSchema) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"farms": len(schema.Farms), "attractions": len(schema.Attractions)}
	defer observe(ctx, s.observer, "import-catalog", startedAt, fields, &err)

	if errs := importer.ValidateCatalogSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	catalog, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting catalog: %w", err)
	}

	regions := make(map[string]bool)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteCandidateRepo(tx)
		for _, f := range catalog.Farms {
			if err := repo.UpsertFarm(ctx, f); err != nil {
				return fmt.Errorf("importing farm %q: %w", f.Name, err)
			}
			regions[f.Region] = true
		}
		for _, a := range catalog.Attractions {
			if err := repo.UpsertAttraction(ctx, a); err != nil {
				return fmt.Errorf("importing attraction %q: %w", a.Name, err)
			}
			regions[a.Region] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result = &ImportResult{Farms: len(catalog.Farms), Attractions: len(catalog.Attractions)}
	for r := range regions {
		result.Regions = append(result.Regions, r)
	}
	sort.Strings(result.Regions)
	return result, nil
}

func (s *catalogService) Overview(ctx context.Context) ([]repository.RegionCount, error) {
	return s.candidates.CountByRegion(ctx)
}

func (s *catalogService) ListFarms(ctx context.Context, region string) ([]domain.Farm, error) {
	name, err := requireRegion(region)
	if err != nil {
		return nil, err
	}
	return s.candidates.ListFarmsByRegion(ctx, name)
}

func (s *catalogService) ListAttractions(ctx context.Context, region string) ([]domain.Attraction, error) {
	name, err := requireRegion(region)
	if err != nil {
		return nil, err
	}
	return s.candidates.ListAttractionsByRegion(ctx, name)
}

func formatValidationErrors(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "catalog validation failed (%d errors):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return fmt.Errorf("%s", b.String())
}
