package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement, then the data backfills. All steps
// are idempotent so Migrate runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN re-runs on every open.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillRevisions(db); err != nil {
		return fmt.Errorf("backfilling itinerary revisions: %w", err)
	}
	return nil
}

// migrateBackfillRevisions records the current version of itineraries saved
// before revision history existed.
func migrateBackfillRevisions(db *sql.DB) error {
	_, err := db.Exec(`INSERT INTO itinerary_revisions (itinerary_id, version, feedback, created_at)
		SELECT i.id, i.version, '', i.updated_at
		FROM itineraries i
		WHERE NOT EXISTS (
			SELECT 1 FROM itinerary_revisions r
			WHERE r.itinerary_id = i.id AND r.version = i.version
		)`)
	return err
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS farms (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		address    TEXT NOT NULL DEFAULT '',
		region     TEXT NOT NULL,
		tags       TEXT NOT NULL DEFAULT '',
		work_start TEXT NOT NULL DEFAULT '08:00',
		work_end   TEXT NOT NULL DEFAULT '17:00',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_farms_region ON farms(region)`,

	`CREATE TABLE IF NOT EXISTS attractions (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		address            TEXT NOT NULL DEFAULT '',
		region             TEXT NOT NULL,
		landscape_keywords TEXT NOT NULL DEFAULT '',
		style_keywords     TEXT NOT NULL DEFAULT '',
		raw_score          REAL,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attractions_region ON attractions(region)`,

	`CREATE TABLE IF NOT EXISTS itineraries (
		id              TEXT PRIMARY KEY,
		version         INTEGER NOT NULL CHECK(version >= 1),
		region          TEXT NOT NULL,
		start_date      TEXT NOT NULL,
		total_days      INTEGER NOT NULL CHECK(total_days BETWEEN 1 AND 10),
		farm_id         TEXT NOT NULL DEFAULT '',
		farm_name       TEXT NOT NULL,
		farm_address    TEXT NOT NULL DEFAULT '',
		farm_work_start TEXT NOT NULL DEFAULT '08:00',
		farm_work_end   TEXT NOT NULL DEFAULT '17:00',
		profile_json    TEXT NOT NULL DEFAULT '{}',
		duration_source TEXT NOT NULL DEFAULT 'resolved'
		                CHECK(duration_source IN ('resolved','defaulted','absent')),
		start_source    TEXT NOT NULL DEFAULT 'resolved'
		                CHECK(start_source IN ('resolved','defaulted','absent')),
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,
	`ALTER TABLE itineraries ADD COLUMN warnings TEXT NOT NULL DEFAULT ''`,

	`CREATE TABLE IF NOT EXISTS itinerary_items (
		itinerary_id  TEXT NOT NULL REFERENCES itineraries(id) ON DELETE CASCADE,
		seq           INTEGER NOT NULL,
		day           INTEGER NOT NULL CHECK(day BETWEEN 1 AND 10),
		date          TEXT NOT NULL,
		schedule_type TEXT NOT NULL CHECK(schedule_type IN ('farm','tour')),
		name          TEXT NOT NULL,
		start_time    TEXT NOT NULL DEFAULT '',
		end_time      TEXT NOT NULL DEFAULT '',
		address       TEXT NOT NULL DEFAULT '',
		source_id     TEXT NOT NULL DEFAULT '',
		free          INTEGER NOT NULL DEFAULT 0,
		special       INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (itinerary_id, seq)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_itinerary_items_day ON itinerary_items(itinerary_id, day)`,

	`CREATE TABLE IF NOT EXISTS itinerary_revisions (
		itinerary_id TEXT NOT NULL REFERENCES itineraries(id) ON DELETE CASCADE,
		version      INTEGER NOT NULL,
		feedback     TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		PRIMARY KEY (itinerary_id, version)
	)`,
}
