package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/farmtrip/internal/app"
	"github.com/alexanderramin/farmtrip/internal/config"
	"github.com/alexanderramin/farmtrip/internal/db"
	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/alexanderramin/farmtrip/internal/intelligence"
	"github.com/alexanderramin/farmtrip/internal/region"
	"github.com/alexanderramin/farmtrip/internal/repository"
	"github.com/alexanderramin/farmtrip/internal/scheduler"
	"github.com/google/uuid"
)

// ScheduleOptions configures NewScheduleService.
type ScheduleOptions struct {
	Vocabulary config.Vocabulary
	// DefaultDurationDays is used when the request states no length.
	// 0 turns a missing length into DURATION_UNAVAILABLE.
	DefaultDurationDays int
	// Slots is the free-text slot extractor. nil skips it.
	Slots intelligence.SlotService
	// Clock defaults to time.Now.
	Clock func() time.Time
}

type scheduleService struct {
	candidates  repository.CandidateRepo
	itineraries repository.ItineraryRepo
	uow         db.UnitOfWork
	tools       *textTools
	opts        ScheduleOptions
	locks       *idLocker
	observer    UseCaseObserver
}

func NewScheduleService(
	candidates repository.CandidateRepo,
	itineraries repository.ItineraryRepo,
	uow db.UnitOfWork,
	opts ScheduleOptions,
	observers ...UseCaseObserver,
) ScheduleService {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &scheduleService{
		candidates:  candidates,
		itineraries: itineraries,
		uow:         uow,
		tools:       newTextTools(opts.Vocabulary),
		opts:        opts,
		locks:       newIDLocker(),
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) Generate(ctx context.Context, req app.GenerateRequest) (resp *app.ScheduleResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"region": req.Region, "farm_id": req.FarmID, "tours": len(req.TourIDs)}
	defer observe(ctx, s.observer, "generate-schedule", startedAt, fields, &err)

	today := s.opts.Clock()
	now := today.UTC()
	if req.Today != nil {
		today = *req.Today
	}

	slots, err := s.extractSlots(ctx, req)
	if err != nil {
		return nil, err
	}

	regionName, err := s.resolveRegion(req, slots)
	if err != nil {
		return nil, err
	}
	fields["region"] = regionName

	farm, err := s.loadFarm(ctx, req.FarmID, regionName)
	if err != nil {
		return nil, err
	}

	profile := req.Profile.Clone()
	if slots.Usable() {
		profile.JobTags = mergeTags(profile.JobTags, slots.Slots.ActivityTypes)
		profile.Landscapes = mergeTags(profile.Landscapes, slots.Slots.Landscapes)
		profile.TravelStyles = mergeTags(profile.TravelStyles, slots.Slots.TravelStyles)
	}

	tours, err := s.loadTours(ctx, req.TourIDs, profile)
	if err != nil {
		return nil, err
	}

	duration, durationWarning, err := s.resolveDuration(req.Text, slots)
	if err != nil {
		return nil, err
	}
	start := s.resolveStart(req.Text, regionName, today, slots)

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating itinerary id: %w", err)
	}
	it, err := scheduler.BuildItinerary(scheduler.BuildInput{
		ID:             id.String(),
		Region:         regionName,
		Farm:           farm,
		Tours:          tours,
		Special:        start.Event,
		Duration:       duration.Value,
		Start:          start.Date.Value,
		Profile:        profile,
		DurationSource: duration.Provenance,
		StartSource:    start.Date.Provenance,
		Now:            now.Truncate(time.Second),
	})
	if err != nil {
		return nil, err
	}
	if durationWarning != "" {
		it.Warnings = append([]string{durationWarning}, it.Warnings...)
	}

	if err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteItineraryRepo(tx).Create(ctx, it)
	}); err != nil {
		return nil, fmt.Errorf("saving itinerary: %w", err)
	}

	resp = scheduleResponse(it)
	resp.Duration = duration
	resp.Start = start.Date
	resp.SpecialEvent = start.Event
	resp.UsedDefault = duration.IsDefaulted() || start.Date.IsDefaulted()
	if slots != nil {
		resp.NLUState = string(slots.State)
	}
	fields["itinerary_id"] = it.ID
	fields["total_days"] = it.TotalDays
	fields["used_default"] = resp.UsedDefault
	return resp, nil
}

func (s *scheduleService) Revise(ctx context.Context, req app.ReviseRequest) (resp *app.ScheduleResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"itinerary_id": req.ItineraryID}
	defer observe(ctx, s.observer, "revise-schedule", startedAt, fields, &err)

	unlock := s.locks.Lock(req.ItineraryID)
	defer unlock()

	current, err := s.itineraries.GetByID(ctx, req.ItineraryID)
	if err != nil {
		return nil, fmt.Errorf("loading itinerary: %w", err)
	}

	// The pool is read before the write transaction; an in-memory store has
	// a single connection.
	pool, _, err := rankedPool(ctx, s.candidates, s.tools, current.Region, current.Profile)
	if err != nil {
		return nil, err
	}

	now := s.opts.Clock().UTC().Truncate(time.Second)
	if req.Now != nil {
		now = *req.Now
	}
	revised, err := s.tools.reviser.Revise(current, req.Feedback, pool, now)
	if err != nil {
		return nil, err
	}

	if err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteItineraryRepo(tx).Update(ctx, revised, req.Feedback)
	}); err != nil {
		return nil, fmt.Errorf("saving revision: %w", err)
	}

	fields["version"] = revised.Version
	return scheduleResponse(revised), nil
}

func (s *scheduleService) Get(ctx context.Context, id string) (*app.ScheduleResponse, error) {
	it, err := s.itineraries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return scheduleResponse(it), nil
}

func (s *scheduleService) List(ctx context.Context, limit int) ([]*domain.Itinerary, error) {
	return s.itineraries.List(ctx, limit)
}

func (s *scheduleService) History(ctx context.Context, id string) ([]repository.Revision, error) {
	return s.itineraries.ListRevisions(ctx, id)
}

// extractSlots runs free-text slot extraction when enabled. A nil result
// means it did not run.
func (s *scheduleService) extractSlots(ctx context.Context, req app.GenerateRequest) (*intelligence.SlotResolution, error) {
	if s.opts.Slots == nil || !req.UseNLU || strings.TrimSpace(req.Text) == "" {
		return nil, nil
	}
	res, err := s.opts.Slots.Extract(ctx, req.Text, region.Names())
	if err != nil {
		return nil, fmt.Errorf("extracting request slots: %w", err)
	}
	return res, nil
}

// resolveRegion prefers the explicit region, then the extracted one, then a
// region named in the text.
func (s *scheduleService) resolveRegion(req app.GenerateRequest, slots *intelligence.SlotResolution) (string, error) {
	if req.Region != "" {
		return requireRegion(req.Region)
	}
	if slots.Usable() && slots.Slots.Region != "" {
		return requireRegion(slots.Slots.Region)
	}
	if name, ok := region.ExtractFromText(req.Text); ok {
		return name, nil
	}
	return requireRegion("")
}

func (s *scheduleService) loadFarm(ctx context.Context, farmID, regionName string) (*domain.Farm, error) {
	if farmID == "" {
		return nil, app.NewScheduleError(app.ErrNoFarmSelected, "a farm must be selected before scheduling")
	}
	farm, err := s.candidates.GetFarm(ctx, farmID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, app.NewScheduleError(app.ErrNoFarmSelected, "farm %s does not exist", farmID)
		}
		return nil, fmt.Errorf("loading farm: %w", err)
	}
	if farm.Region != regionName {
		return nil, app.NewScheduleError(app.ErrNoFarmSelected, "farm %q is in %s, not %s", farm.Name, farm.Region, regionName)
	}
	return farm, nil
}

// loadTours returns the selected attractions ranked for the profile.
func (s *scheduleService) loadTours(ctx context.Context, ids []string, profile domain.PreferenceProfile) ([]domain.Attraction, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := s.candidates.GetAttractionsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("loading attractions: %w", err)
	}
	if len(found) < len(idSet(ids)) {
		have := make(map[string]bool, len(found))
		for _, a := range found {
			have[a.ID] = true
		}
		var missing []string
		for _, id := range ids {
			if !have[id] {
				missing = append(missing, id)
			}
		}
		return nil, app.NewScheduleError(app.ErrNoCandidates, "unknown attraction(s): %s", strings.Join(missing, ", "))
	}
	ranked := scheduler.ScoreAndRank(found, profile.TravelStyles, profile.Landscapes, s.tools.tags)
	out := make([]domain.Attraction, len(ranked))
	for i, r := range ranked {
		out[i] = r.Attraction
	}
	return out, nil
}

// resolveDuration reads the length from the text, then the extracted slots,
// then the default policy.
func (s *scheduleService) resolveDuration(text string, slots *intelligence.SlotResolution) (domain.Slot[int], string, error) {
	if m, ok := s.tools.durations.Extract(text); ok {
		var warning string
		if m.Clamped {
			warning = fmt.Sprintf("requested %d days (%s); trips are limited to %d days", m.Raw, m.Phrase, domain.MaxTripDays)
		}
		return domain.Resolved(m.Days), warning, nil
	}
	if slots.Usable() && slots.Slots.DurationDays != nil && *slots.Slots.DurationDays > 0 {
		return domain.Resolved(*slots.Slots.DurationDays), "", nil
	}
	if s.opts.DefaultDurationDays > 0 {
		return domain.Defaulted(s.opts.DefaultDurationDays), "", nil
	}
	return domain.Absent[int](), "", app.NewScheduleError(app.ErrDurationUnavailable, "the request does not state a trip length")
}

func (s *scheduleService) resolveStart(text, regionName string, today time.Time, slots *intelligence.SlotResolution) scheduler.StartResolution {
	res := s.tools.starts.Resolve(text, regionName, today)
	if res.Date.IsDefaulted() && slots.Usable() && slots.Slots.StartMonth != nil {
		return s.tools.starts.ResolveMonth(*slots.Slots.StartMonth, regionName, today)
	}
	return res
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
