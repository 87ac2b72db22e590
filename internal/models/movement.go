package models

import "time"

// Movement classification. Full means site-to-site, Half means exactly one
// endpoint was a warehouse, Zero means warehouse-to-warehouse or an
// unresolvable endpoint.
type MovementType string

const (
	MovementFull MovementType = "Full"
	MovementHalf MovementType = "Half"
	MovementZero MovementType = "Zero"
)

// Movement is one relocation event of a COW. Movements are loaded as an
// immutable batch per refresh; enrichment copies, it never mutates.
type Movement struct {
	SN             int64     `json:"sn" db:"sn"`
	COWID          string    `json:"cow_id" db:"cow_id"`
	FromLocationID string    `json:"from_location_id" db:"from_location_id"`
	ToLocationID   string    `json:"to_location_id" db:"to_location_id"`
	MovedAt        time.Time `json:"moved_at" db:"moved_at"`
	ReachedAt      time.Time `json:"reached_at" db:"reached_at"`
	// MovementType is ground truth once present on the record; the
	// classifier only fills it in when the source left it blank.
	MovementType  MovementType `json:"movement_type,omitempty" db:"movement_type"`
	DistanceKM    float64      `json:"distance_km" db:"distance_km"`
	TopEvent      string       `json:"top_event,omitempty" db:"top_event"`
	ToSubLocation string       `json:"to_sub_location,omitempty" db:"to_sub_location"`
	Vendor        string       `json:"vendor,omitempty" db:"vendor"`
}

// MovementFilter represents filter parameters for querying movements.
type MovementFilter struct {
	COWID     string `form:"cowId"`
	Type      string `form:"type"`
	StartTime int64  `form:"startTime"`
	EndTime   int64  `form:"endTime"`
}
