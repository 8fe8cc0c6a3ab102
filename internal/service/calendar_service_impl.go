package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/farmtrip/internal/app"
	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/alexanderramin/farmtrip/internal/repository"
	"github.com/alexanderramin/farmtrip/internal/scheduler"
)

type calendarEntry struct {
	hash     string
	version  int
	calendar scheduler.Calendar
}

type calendarService struct {
	itineraries repository.ItineraryRepo
	observer    UseCaseObserver

	mu    sync.Mutex
	cache map[string]calendarEntry
}

// NewCalendarService returns a service that memoizes calendars per
// itinerary id and content hash, so an unchanged itinerary is never
// materialized twice.
func NewCalendarService(itineraries repository.ItineraryRepo, observers ...UseCaseObserver) CalendarService {
	return &calendarService{
		itineraries: itineraries,
		observer:    useCaseObserverOrNoop(observers),
		cache:       make(map[string]calendarEntry),
	}
}

func (s *calendarService) Materialize(ctx context.Context, itineraryID string) (resp *app.CalendarResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"itinerary_id": itineraryID}
	defer observe(ctx, s.observer, "materialize-calendar", startedAt, fields, &err)

	it, err := s.itineraries.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("loading itinerary: %w", err)
	}
	hash, err := contentHash(it)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	entry, cached := s.cache[it.ID]
	if !cached || entry.hash != hash {
		entry = calendarEntry{hash: hash, version: it.Version, calendar: scheduler.Materialize(it)}
		s.cache[it.ID] = entry
		cached = false
	}
	months := cloneCalendar(entry.calendar)
	s.mu.Unlock()

	fields["cached"] = cached
	fields["events"] = entry.calendar.Len()
	return &app.CalendarResponse{
		ItineraryID: it.ID,
		Version:     entry.version,
		Months:      months,
		Cached:      cached,
	}, nil
}

func (s *calendarService) Combine(ctx context.Context, ids ...string) (scheduler.Calendar, int, error) {
	cal := scheduler.NewCalendar()
	added := 0
	for _, id := range ids {
		it, err := s.itineraries.GetByID(ctx, id)
		if err != nil {
			return nil, 0, fmt.Errorf("loading itinerary %s: %w", id, err)
		}
		added += cal.Merge(it)
	}
	return cal, added, nil
}

// contentHash hashes the transported shape so equal itineraries share one
// cache entry whatever their in-memory representation.
func contentHash(it *domain.Itinerary) (string, error) {
	data, err := json.Marshal(app.NewItineraryView(it, nil, nil))
	if err != nil {
		return "", fmt.Errorf("hashing itinerary: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func cloneCalendar(c scheduler.Calendar) map[string]map[int][]domain.CalendarEvent {
	out := make(map[string]map[int][]domain.CalendarEvent, len(c))
	for month, days := range c {
		m := make(map[int][]domain.CalendarEvent, len(days))
		for day, events := range days {
			m[day] = append([]domain.CalendarEvent(nil), events...)
		}
		out[month] = m
	}
	return out
}
