package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/stc-cow/cowtrack-backend-go/internal/models"
)

// LocationRepository handles database operations for the location directory
type LocationRepository struct {
	db *sql.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// ReplaceAll swaps the stored directory for a freshly ingested one.
func (r *LocationRepository) ReplaceAll(locations []models.Location) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM locations"); err != nil {
		return fmt.Errorf("failed to clear locations: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO locations (location_id, location_name, region, location_type, latitude, longitude, owner)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(location_id) DO UPDATE SET
			location_name = excluded.location_name,
			region = excluded.region,
			location_type = excluded.location_type,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			owner = excluded.owner
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare location insert: %w", err)
	}
	defer stmt.Close()

	for _, loc := range locations {
		if _, err := stmt.Exec(loc.ID, loc.Name, loc.Region, loc.Type, loc.Latitude, loc.Longitude, loc.Owner); err != nil {
			return fmt.Errorf("failed to insert location %s: %w", loc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit locations: %w", err)
	}
	return nil
}

// GetAll retrieves locations with optional region/type filters.
func (r *LocationRepository) GetAll(filter models.LocationFilter) ([]models.Location, error) {
	query := `SELECT location_id, location_name, region, location_type, latitude, longitude, owner FROM locations`

	var conditions []string
	var args []interface{}
	if filter.Region != "" {
		conditions = append(conditions, "region = ?")
		args = append(args, strings.ToUpper(filter.Region))
	}
	if filter.Type != "" {
		conditions = append(conditions, "location_type = ?")
		args = append(args, filter.Type)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY location_id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var loc models.Location
		var region, locType, owner sql.NullString
		if err := rows.Scan(&loc.ID, &loc.Name, &region, &locType, &loc.Latitude, &loc.Longitude, &owner); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		loc.Region = region.String
		loc.Type = locType.String
		loc.Owner = owner.String
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locations: %w", err)
	}
	return locations, nil
}

// GetByID retrieves one location, nil when absent.
func (r *LocationRepository) GetByID(id string) (*models.Location, error) {
	var loc models.Location
	var region, locType, owner sql.NullString
	err := r.db.QueryRow(`
		SELECT location_id, location_name, region, location_type, latitude, longitude, owner
		FROM locations WHERE location_id = ?
	`, strings.ToUpper(strings.TrimSpace(id))).Scan(&loc.ID, &loc.Name, &region, &locType, &loc.Latitude, &loc.Longitude, &owner)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query location %s: %w", id, err)
	}
	loc.Region = region.String
	loc.Type = locType.String
	loc.Owner = owner.String
	return &loc, nil
}
