package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration is one versioned schema step.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations holds the schema in apply order. The tables persist the last
// ingested snapshot only; all analytics recompute in memory from the
// loaded batch.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_locations",
		SQL: `
			CREATE TABLE IF NOT EXISTS locations (
				location_id TEXT PRIMARY KEY,
				location_name TEXT NOT NULL,
				region TEXT,
				location_type TEXT,
				latitude REAL DEFAULT 0,
				longitude REAL DEFAULT 0,
				owner TEXT
			)
		`,
	},
	{
		Version: 2,
		Name:    "create_movements",
		SQL: `
			CREATE TABLE IF NOT EXISTS movements (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				sn INTEGER,
				cow_id TEXT NOT NULL,
				from_location_id TEXT,
				to_location_id TEXT,
				moved_at TIMESTAMP,
				reached_at TIMESTAMP,
				movement_type TEXT,
				distance_km REAL DEFAULT 0,
				top_event TEXT,
				to_sub_location TEXT,
				vendor TEXT
			)
		`,
	},
	{
		Version: 3,
		Name:    "index_movements",
		SQL: `
			CREATE INDEX IF NOT EXISTS idx_movements_cow ON movements(cow_id);
			CREATE INDEX IF NOT EXISTS idx_movements_moved ON movements(moved_at)
		`,
	},
}

// Migrate applies pending migrations in version order.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating migrations: %w", err)
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		log.Printf("[Database] applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}
