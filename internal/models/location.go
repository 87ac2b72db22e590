package models

import "strings"

// Region names used across the Saudi deployment footprint.
const (
	RegionCentral = "CENTRAL"
	RegionWest    = "WEST"
	RegionEast    = "EAST"
	RegionSouth   = "SOUTH"
	RegionNorth   = "NORTH"
)

// Regions lists the known regions in display order.
var Regions = []string{RegionCentral, RegionWest, RegionEast, RegionSouth, RegionNorth}

// Location type tags as supplied by the directory export.
const (
	LocationTypeSite      = "Site"
	LocationTypeWarehouse = "Warehouse"
)

// Location is one entry of the location directory: a broadcast site or a
// staging warehouse. Loaded once per ingest, immutable afterwards.
type Location struct {
	ID        string  `json:"location_id" db:"location_id"`
	Name      string  `json:"location_name" db:"location_name"`
	Region    string  `json:"region" db:"region"`
	Type      string  `json:"location_type" db:"location_type"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Owner     string  `json:"owner,omitempty" db:"owner"`
}

// IsWarehouse reports whether the location acts as a warehouse: either the
// type tag says so, or the name carries a "WH" marker (the directory export
// tags many warehouses only through their naming convention).
func (l Location) IsWarehouse() bool {
	if l.Type == LocationTypeWarehouse {
		return true
	}
	return strings.Contains(strings.ToUpper(l.Name), "WH")
}

// LocationFilter represents filter parameters for querying locations.
type LocationFilter struct {
	Region string `form:"region"`
	Type   string `form:"type"`
}
