package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/farmtrip/internal/db"
	"github.com/alexanderramin/farmtrip/internal/domain"
)

// SQLiteCandidateRepo implements CandidateRepo using a SQLite database.
type SQLiteCandidateRepo struct {
	db db.DBTX
}

// NewSQLiteCandidateRepo creates a new SQLiteCandidateRepo.
func NewSQLiteCandidateRepo(conn db.DBTX) *SQLiteCandidateRepo {
	return &SQLiteCandidateRepo{db: conn}
}

const attractionColumns = `id, name, address, region, landscape_keywords, style_keywords, raw_score`

const farmColumns = `id, name, address, region, tags, work_start, work_end`

func (r *SQLiteCandidateRepo) ListAttractionsByRegion(ctx context.Context, region string) ([]domain.Attraction, error) {
	// rowid is insertion order; upserts keep it.
	query := `SELECT ` + attractionColumns + ` FROM attractions WHERE region = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, region)
	if err != nil {
		return nil, fmt.Errorf("listing attractions: %w", err)
	}
	defer rows.Close()
	return r.collectAttractions(rows)
}

func (r *SQLiteCandidateRepo) ListFarmsByRegion(ctx context.Context, region string) ([]domain.Farm, error) {
	query := `SELECT ` + farmColumns + ` FROM farms WHERE region = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, region)
	if err != nil {
		return nil, fmt.Errorf("listing farms: %w", err)
	}
	defer rows.Close()

	var farms []domain.Farm
	for rows.Next() {
		f, err := scanFarm(rows)
		if err != nil {
			return nil, err
		}
		farms = append(farms, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating farms: %w", err)
	}
	return farms, nil
}

func (r *SQLiteCandidateRepo) GetFarm(ctx context.Context, id string) (*domain.Farm, error) {
	query := `SELECT ` + farmColumns + ` FROM farms WHERE id = ?`
	f, err := scanFarm(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("farm %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &f, nil
}

// GetAttractionsByIDs returns the attractions in the order of ids. Unknown
// ids are skipped; callers compare lengths when every id must exist.
func (r *SQLiteCandidateRepo) GetAttractionsByIDs(ctx context.Context, ids []string) ([]domain.Attraction, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	query := `SELECT ` + attractionColumns + ` FROM attractions WHERE id IN (` + placeholders(len(ids)) + `)`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("getting attractions: %w", err)
	}
	defer rows.Close()

	found, err := r.collectAttractions(rows)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Attraction, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}
	out := make([]domain.Attraction, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok && !seen[id] {
			out = append(out, a)
			seen[id] = true
		}
	}
	return out, nil
}

func (r *SQLiteCandidateRepo) UpsertFarm(ctx context.Context, f *domain.Farm) error {
	now := nowUTC()
	query := `INSERT INTO farms (id, name, address, region, tags, work_start, work_end, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			address = excluded.address,
			region = excluded.region,
			tags = excluded.tags,
			work_start = excluded.work_start,
			work_end = excluded.work_end,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		f.ID,
		f.Name,
		f.Address,
		f.Region,
		joinList(f.Tags),
		domain.CoalesceStr(f.WorkStart, domain.DefaultWorkStart),
		domain.CoalesceStr(f.WorkEnd, domain.DefaultWorkEnd),
		now, now,
	)
	if err != nil {
		return fmt.Errorf("upserting farm: %w", err)
	}
	return nil
}

func (r *SQLiteCandidateRepo) UpsertAttraction(ctx context.Context, a *domain.Attraction) error {
	now := nowUTC()
	query := `INSERT INTO attractions (id, name, address, region, landscape_keywords, style_keywords, raw_score, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			address = excluded.address,
			region = excluded.region,
			landscape_keywords = excluded.landscape_keywords,
			style_keywords = excluded.style_keywords,
			raw_score = excluded.raw_score,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Name,
		a.Address,
		a.Region,
		joinList(a.LandscapeKeywords),
		joinList(a.StyleKeywords),
		nullableFloatToValue(a.RawScore),
		now, now,
	)
	if err != nil {
		return fmt.Errorf("upserting attraction: %w", err)
	}
	return nil
}

func (r *SQLiteCandidateRepo) CountByRegion(ctx context.Context) ([]RegionCount, error) {
	query := `SELECT region, SUM(farms), SUM(attractions) FROM (
			SELECT region, 1 AS farms, 0 AS attractions FROM farms
			UNION ALL
			SELECT region, 0, 1 FROM attractions
		) GROUP BY region ORDER BY region`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting catalog: %w", err)
	}
	defer rows.Close()

	var counts []RegionCount
	for rows.Next() {
		var c RegionCount
		if err := rows.Scan(&c.Region, &c.Farms, &c.Attractions); err != nil {
			return nil, fmt.Errorf("scanning region count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating region counts: %w", err)
	}
	return counts, nil
}

func (r *SQLiteCandidateRepo) collectAttractions(rows *sql.Rows) ([]domain.Attraction, error) {
	var out []domain.Attraction
	for rows.Next() {
		var a domain.Attraction
		var landscapes, styles string
		var raw sql.NullFloat64
		if err := rows.Scan(&a.ID, &a.Name, &a.Address, &a.Region, &landscapes, &styles, &raw); err != nil {
			return nil, fmt.Errorf("scanning attraction row: %w", err)
		}
		a.LandscapeKeywords = splitList(landscapes)
		a.StyleKeywords = splitList(styles)
		a.RawScore = parseNullableFloat(raw)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attractions: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanFarm returns sql.ErrNoRows unwrapped so GetFarm can map it.
func scanFarm(row rowScanner) (domain.Farm, error) {
	var f domain.Farm
	var tags string
	err := row.Scan(&f.ID, &f.Name, &f.Address, &f.Region, &tags, &f.WorkStart, &f.WorkEnd)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return f, err
		}
		return f, fmt.Errorf("scanning farm: %w", err)
	}
	f.Tags = splitList(tags)
	return f, nil
}
