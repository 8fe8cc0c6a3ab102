package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/farmtrip/internal/db"
	"github.com/alexanderramin/farmtrip/internal/domain"
)

// SQLiteItineraryRepo implements ItineraryRepo using a SQLite database.
// Create and Update issue several statements; callers run them inside a
// UnitOfWork so a head never exists without its items.
type SQLiteItineraryRepo struct {
	db db.DBTX
}

// NewSQLiteItineraryRepo creates a new SQLiteItineraryRepo.
func NewSQLiteItineraryRepo(conn db.DBTX) *SQLiteItineraryRepo {
	return &SQLiteItineraryRepo{db: conn}
}

const itineraryColumns = `id, version, region, start_date, total_days,
	farm_id, farm_name, farm_address, farm_work_start, farm_work_end,
	profile_json, duration_source, start_source, warnings, created_at, updated_at`

const warningSep = "\n"

func (r *SQLiteItineraryRepo) Create(ctx context.Context, it *domain.Itinerary) error {
	profile, err := json.Marshal(it.Profile)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	query := `INSERT INTO itineraries (` + itineraryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		it.ID,
		it.Version,
		it.Region,
		it.StartDate.Format(dateLayout),
		it.TotalDays,
		it.Farm.ID,
		it.Farm.Name,
		it.Farm.Address,
		domain.CoalesceStr(it.Farm.WorkStart, domain.DefaultWorkStart),
		domain.CoalesceStr(it.Farm.WorkEnd, domain.DefaultWorkEnd),
		string(profile),
		string(it.DurationSource),
		string(it.StartSource),
		strings.Join(it.Warnings, warningSep),
		it.CreatedAt.UTC().Format(time.RFC3339),
		it.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting itinerary: %w", err)
	}
	if err := r.insertItems(ctx, it); err != nil {
		return err
	}
	return r.insertRevision(ctx, it, "")
}

func (r *SQLiteItineraryRepo) Update(ctx context.Context, it *domain.Itinerary, feedback string) error {
	profile, err := json.Marshal(it.Profile)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	query := `UPDATE itineraries SET version = ?, region = ?, start_date = ?, total_days = ?,
		farm_id = ?, farm_name = ?, farm_address = ?, farm_work_start = ?, farm_work_end = ?,
		profile_json = ?, duration_source = ?, start_source = ?, warnings = ?, updated_at = ?
		WHERE id = ? AND version = ?`
	res, err := r.db.ExecContext(ctx, query,
		it.Version,
		it.Region,
		it.StartDate.Format(dateLayout),
		it.TotalDays,
		it.Farm.ID,
		it.Farm.Name,
		it.Farm.Address,
		domain.CoalesceStr(it.Farm.WorkStart, domain.DefaultWorkStart),
		domain.CoalesceStr(it.Farm.WorkEnd, domain.DefaultWorkEnd),
		string(profile),
		string(it.DurationSource),
		string(it.StartSource),
		strings.Join(it.Warnings, warningSep),
		it.UpdatedAt.UTC().Format(time.RFC3339),
		it.ID,
		it.Version-1,
	)
	if err != nil {
		return fmt.Errorf("updating itinerary: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating itinerary: %w", err)
	}
	if n == 0 {
		if _, getErr := r.getHead(ctx, it.ID); getErr != nil {
			return getErr
		}
		return fmt.Errorf("itinerary %s at version %d: %w", it.ID, it.Version-1, ErrVersionConflict)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM itinerary_items WHERE itinerary_id = ?`, it.ID); err != nil {
		return fmt.Errorf("clearing itinerary items: %w", err)
	}
	if err := r.insertItems(ctx, it); err != nil {
		return err
	}
	return r.insertRevision(ctx, it, feedback)
}

func (r *SQLiteItineraryRepo) GetByID(ctx context.Context, id string) (*domain.Itinerary, error) {
	it, err := r.getHead(ctx, id)
	if err != nil {
		return nil, err
	}
	if it.Items, err = r.listItems(ctx, id); err != nil {
		return nil, err
	}
	return it, nil
}

// List returns the most recently updated itineraries first, items included.
// limit <= 0 means no limit.
func (r *SQLiteItineraryRepo) List(ctx context.Context, limit int) ([]*domain.Itinerary, error) {
	query := `SELECT ` + itineraryColumns + ` FROM itineraries ORDER BY updated_at DESC, id`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing itineraries: %w", err)
	}

	var out []*domain.Itinerary
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating itineraries: %w", err)
	}
	rows.Close()

	// Items are loaded after the head cursor closes; an in-memory database
	// has a single connection.
	for _, it := range out {
		if it.Items, err = r.listItems(ctx, it.ID); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *SQLiteItineraryRepo) ListRevisions(ctx context.Context, id string) ([]Revision, error) {
	query := `SELECT itinerary_id, version, feedback, created_at
		FROM itinerary_revisions WHERE itinerary_id = ? ORDER BY version`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("listing revisions: %w", err)
	}
	defer rows.Close()

	var out []Revision
	for rows.Next() {
		var rev Revision
		var createdAt string
		if err := rows.Scan(&rev.ItineraryID, &rev.Version, &rev.Feedback, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning revision: %w", err)
		}
		if rev.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing revision created_at: %w", err)
		}
		out = append(out, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating revisions: %w", err)
	}
	return out, nil
}

func (r *SQLiteItineraryRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM itineraries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting itinerary: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("itinerary %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteItineraryRepo) getHead(ctx context.Context, id string) (*domain.Itinerary, error) {
	query := `SELECT ` + itineraryColumns + ` FROM itineraries WHERE id = ?`
	it, err := scanItinerary(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("itinerary %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return it, nil
}

func (r *SQLiteItineraryRepo) insertItems(ctx context.Context, it *domain.Itinerary) error {
	query := `INSERT INTO itinerary_items (itinerary_id, seq, day, date, schedule_type, name,
		start_time, end_time, address, source_id, free, special)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, item := range it.Items {
		_, err := r.db.ExecContext(ctx, query,
			it.ID,
			i,
			item.Day,
			item.Date.Format(dateLayout),
			string(item.Type),
			item.Name,
			item.StartTime,
			item.EndTime,
			item.Address,
			item.SourceID,
			boolToInt(item.Free),
			boolToInt(item.Special),
		)
		if err != nil {
			return fmt.Errorf("inserting itinerary item %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteItineraryRepo) insertRevision(ctx context.Context, it *domain.Itinerary, feedback string) error {
	query := `INSERT INTO itinerary_revisions (itinerary_id, version, feedback, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, it.ID, it.Version, feedback, it.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting revision: %w", err)
	}
	return nil
}

func (r *SQLiteItineraryRepo) listItems(ctx context.Context, id string) ([]domain.ScheduleItem, error) {
	query := `SELECT day, date, schedule_type, name, start_time, end_time, address, source_id, free, special
		FROM itinerary_items WHERE itinerary_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("listing itinerary items: %w", err)
	}
	defer rows.Close()

	var items []domain.ScheduleItem
	for rows.Next() {
		var item domain.ScheduleItem
		var date, typ string
		var free, special int
		err := rows.Scan(&item.Day, &date, &typ, &item.Name, &item.StartTime, &item.EndTime,
			&item.Address, &item.SourceID, &free, &special)
		if err != nil {
			return nil, fmt.Errorf("scanning itinerary item: %w", err)
		}
		if item.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("parsing item date: %w", err)
		}
		item.Type = domain.ScheduleType(typ)
		item.Free = intToBool(free)
		item.Special = intToBool(special)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating itinerary items: %w", err)
	}
	return items, nil
}

// scanItinerary returns sql.ErrNoRows unwrapped so getHead can map it.
func scanItinerary(row rowScanner) (*domain.Itinerary, error) {
	var it domain.Itinerary
	var startDate, profileJSON, durationSrc, startSrc, warnings, createdAt, updatedAt string
	err := row.Scan(
		&it.ID, &it.Version, &it.Region, &startDate, &it.TotalDays,
		&it.Farm.ID, &it.Farm.Name, &it.Farm.Address, &it.Farm.WorkStart, &it.Farm.WorkEnd,
		&profileJSON, &durationSrc, &startSrc, &warnings, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning itinerary: %w", err)
	}

	if it.StartDate, err = time.Parse(dateLayout, startDate); err != nil {
		return nil, fmt.Errorf("parsing start_date: %w", err)
	}
	if it.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if it.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	if err := json.Unmarshal([]byte(profileJSON), &it.Profile); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	it.Region = strings.TrimSpace(it.Region)
	it.Farm.Region = it.Region
	it.DurationSource = domain.Provenance(durationSrc)
	it.StartSource = domain.Provenance(startSrc)
	if warnings != "" {
		it.Warnings = strings.Split(warnings, warningSep)
	}
	return &it, nil
}
