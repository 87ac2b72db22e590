package models

// ChartPoint is the generic name/value pair consumed by the dashboard charts.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// MapPoint is one overlay marker for the fleet map.
type MapPoint struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Value float64 `json:"value"`
	Label string  `json:"label,omitempty"`
}

// COWMetrics holds the derived state of one COW, recomputed on demand from
// its movement history.
type COWMetrics struct {
	COWID           string               `json:"cow_id"`
	TotalMovements  int                  `json:"total_movements"`
	TotalDistanceKM float64              `json:"total_distance_km"`
	AvgDistanceKM   float64              `json:"avg_distance_km"`
	MovementMix     map[MovementType]int `json:"movement_mix"`
	AvgIdleDays     float64              `json:"avg_idle_days"`
	IsStatic        bool                 `json:"is_static"`
	LastMovedAt     string               `json:"last_moved_at,omitempty"`
	RegionsServed   []string             `json:"regions_served"`
}

// WarehouseMetrics holds per-warehouse traffic and idle accumulation.
type WarehouseMetrics struct {
	LocationID       string       `json:"location_id"`
	Name             string       `json:"name"`
	Outgoing         int          `json:"outgoing"`
	Incoming         int          `json:"incoming"`
	AvgOutDistanceKM float64      `json:"avg_out_distance_km"`
	AvgInDistanceKM  float64      `json:"avg_in_distance_km"`
	TopDestRegions   []ChartPoint `json:"top_dest_regions"`
	TotalIdleDays    float64      `json:"total_idle_days"`
}

// RegionMetrics holds per-region deployment and transition counts.
type RegionMetrics struct {
	Region            string  `json:"region"`
	Movements         int     `json:"movements"`
	DeployedCOWs      int     `json:"deployed_cows"`
	ActiveCOWs        int     `json:"active_cows"`
	StaticCOWs        int     `json:"static_cows"`
	CrossRegionMoves  int     `json:"cross_region_moves"`
	AvgDeploymentDays float64 `json:"avg_deployment_days"`
}

// StayRecord is one closed interval a COW spent parked at a location
// between two consecutive movements.
type StayRecord struct {
	COWID         string  `json:"cow_id"`
	WarehouseName string  `json:"warehouse_name"`
	StayDays      float64 `json:"stay_days"`
	ArrivalDate   string  `json:"arrival_date"`
	DepartureDate string  `json:"departure_date"`
}

// DwellSummary aggregates the stay stream for the dwell-time dashboard.
type DwellSummary struct {
	Stays         []StayRecord       `json:"stays"`
	TopCOWs       []ChartPoint       `json:"top_cows"`
	TopWarehouses []ChartPoint       `json:"top_warehouses"`
	AvgStayPerWH  map[string]float64 `json:"avg_stay_per_warehouse"`
	StayDaysP50   float64            `json:"stay_days_p50"`
	StayDaysP90   float64            `json:"stay_days_p90"`
}

// AgingRow is one table row of the off-air aging detail view.
type AgingRow struct {
	COWID         string  `json:"cow_id"`
	MovementCount int     `json:"movement_count"`
	TotalIdleDays float64 `json:"total_idle_days"`
	AvgIdleDays   float64 `json:"avg_idle_days"`
	TopWarehouse  string  `json:"top_warehouse"`
}

// AgingReport is the full output of the off-air aging engine: bucket counts
// for charting, the detail table, and drill-down maps.
type AgingReport struct {
	Buckets    []ChartPoint        `json:"buckets"`
	Table      []AgingRow          `json:"table"`
	COWValues  map[string]float64  `json:"cow_values"`
	BucketCOWs map[string][]string `json:"bucket_cows"`
	Unit       string              `json:"unit"`
}

// EventCount is one ranked entry of the event or vendor rollup.
type EventCount struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// FleetOverview is the landing-page summary.
type FleetOverview struct {
	TotalCOWs      int                  `json:"total_cows"`
	TotalMovements int                  `json:"total_movements"`
	TotalLocations int                  `json:"total_locations"`
	Warehouses     int                  `json:"warehouses"`
	StaticCOWs     int                  `json:"static_cows"`
	MovementMix    map[MovementType]int `json:"movement_mix"`
	ByRegion       []ChartPoint         `json:"by_region"`
}
