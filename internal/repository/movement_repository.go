package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/stc-cow/cowtrack-backend-go/internal/models"
)

// MovementRepository handles database operations for the movement log
type MovementRepository struct {
	db *sql.DB
}

// NewMovementRepository creates a new movement repository
func NewMovementRepository(db *sql.DB) *MovementRepository {
	return &MovementRepository{db: db}
}

// ReplaceAll swaps the stored movement batch for a freshly ingested one.
func (r *MovementRepository) ReplaceAll(movements []models.Movement) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM movements"); err != nil {
		return fmt.Errorf("failed to clear movements: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO movements (sn, cow_id, from_location_id, to_location_id, moved_at, reached_at, movement_type, distance_km, top_event, to_sub_location, vendor)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare movement insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range movements {
		if _, err := stmt.Exec(
			m.SN, m.COWID, m.FromLocationID, m.ToLocationID,
			timestampValue(m.MovedAt), timestampValue(m.ReachedAt),
			string(m.MovementType), m.DistanceKM, m.TopEvent, m.ToSubLocation, m.Vendor,
		); err != nil {
			return fmt.Errorf("failed to insert movement sn=%d: %w", m.SN, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit movements: %w", err)
	}
	return nil
}

// GetAll retrieves the full movement batch ordered by departure time.
func (r *MovementRepository) GetAll(filter models.MovementFilter) ([]models.Movement, error) {
	query := `
		SELECT sn, cow_id, from_location_id, to_location_id, moved_at, reached_at, movement_type, distance_km, top_event, to_sub_location, vendor
		FROM movements`

	var conditions []string
	var args []interface{}
	if filter.COWID != "" {
		conditions = append(conditions, "cow_id = ?")
		args = append(args, strings.ToUpper(filter.COWID))
	}
	if filter.Type != "" {
		conditions = append(conditions, "movement_type = ?")
		args = append(args, filter.Type)
	}
	if filter.StartTime > 0 {
		conditions = append(conditions, "moved_at >= ?")
		args = append(args, time.Unix(filter.StartTime, 0).UTC())
	}
	if filter.EndTime > 0 {
		conditions = append(conditions, "moved_at <= ?")
		args = append(args, time.Unix(filter.EndTime, 0).UTC())
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY moved_at, sn"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements: %w", err)
	}
	defer rows.Close()

	var movements []models.Movement
	for rows.Next() {
		var m models.Movement
		var movedAt, reachedAt sql.NullTime
		var movementType, topEvent, subLocation, vendor sql.NullString
		if err := rows.Scan(&m.SN, &m.COWID, &m.FromLocationID, &m.ToLocationID, &movedAt, &reachedAt, &movementType, &m.DistanceKM, &topEvent, &subLocation, &vendor); err != nil {
			return nil, fmt.Errorf("failed to scan movement: %w", err)
		}
		if movedAt.Valid {
			m.MovedAt = movedAt.Time.UTC()
		}
		if reachedAt.Valid {
			m.ReachedAt = reachedAt.Time.UTC()
		}
		m.MovementType = models.MovementType(movementType.String)
		m.TopEvent = topEvent.String
		m.ToSubLocation = subLocation.String
		m.Vendor = vendor.String
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movements: %w", err)
	}
	return movements, nil
}

// Count returns the stored batch size.
func (r *MovementRepository) Count() (int64, error) {
	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM movements").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count movements: %w", err)
	}
	return total, nil
}

// timestampValue maps the zero-time sentinel to NULL so unparseable dates
// stay distinguishable in storage.
func timestampValue(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}
