package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stc-cow/cowtrack-backend-go/internal/analytics"
	"github.com/stc-cow/cowtrack-backend-go/internal/models"
	"github.com/stc-cow/cowtrack-backend-go/internal/repository"
	"github.com/stc-cow/cowtrack-backend-go/internal/stats"
)

// topN is the default ranking depth for dashboard charts.
const topN = 10

// AnalyticsService loads the stored batch and runs the aggregation engine
// over it. The engine itself is pure; this layer owns the loading and the
// enrichment step every aggregation consumes.
type AnalyticsService struct {
	locationRepo *repository.LocationRepository
	movementRepo *repository.MovementRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(locationRepo *repository.LocationRepository, movementRepo *repository.MovementRepository) *AnalyticsService {
	return &AnalyticsService{locationRepo: locationRepo, movementRepo: movementRepo}
}

// loadBatch fetches the stored snapshot and enriches the movements.
func (s *AnalyticsService) loadBatch() ([]models.Movement, []models.Location, error) {
	locations, err := s.locationRepo.GetAll(models.LocationFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load locations: %w", err)
	}
	movements, err := s.movementRepo.GetAll(models.MovementFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load movements: %w", err)
	}
	return analytics.Enrich(movements, locations), locations, nil
}

// GetFleetOverview returns the landing-page summary.
func (s *AnalyticsService) GetFleetOverview() (models.FleetOverview, error) {
	movements, locations, err := s.loadBatch()
	if err != nil {
		return models.FleetOverview{}, err
	}
	return analytics.ComputeFleetOverview(movements, locations), nil
}

// GetCOWList returns per-COW metrics for the fleet table, sorted by ID.
func (s *AnalyticsService) GetCOWList() ([]models.COWMetrics, error) {
	movements, locations, err := s.loadBatch()
	if err != nil {
		return nil, err
	}
	all := analytics.ComputeAllCOWMetrics(movements, analytics.Index(locations))

	list := make([]models.COWMetrics, 0, len(all))
	for _, cm := range all {
		list = append(list, cm)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].COWID < list[j].COWID })
	return list, nil
}

// GetCOWMetrics returns metrics for one COW, nil when it never moved.
func (s *AnalyticsService) GetCOWMetrics(cowID string) (*models.COWMetrics, error) {
	movements, locations, err := s.loadBatch()
	if err != nil {
		return nil, err
	}
	cowID = strings.ToUpper(strings.TrimSpace(cowID))
	for _, m := range movements {
		if m.COWID == cowID {
			metrics := analytics.ComputeCOWMetrics(cowID, movements, analytics.Index(locations))
			return &metrics, nil
		}
	}
	return nil, nil
}

// GetWarehouseMetrics returns metrics for one warehouse location, nil when
// the location is unknown or not a warehouse.
func (s *AnalyticsService) GetWarehouseMetrics(locationID string) (*models.WarehouseMetrics, error) {
	movements, locations, err := s.loadBatch()
	if err != nil {
		return nil, err
	}
	byID := analytics.Index(locations)
	loc, ok := byID[strings.ToUpper(strings.TrimSpace(locationID))]
	if !ok || !loc.IsWarehouse() {
		return nil, nil
	}
	metrics := analytics.ComputeWarehouseMetrics(loc, movements, byID)
	return &metrics, nil
}

// GetAllWarehouseMetrics returns metrics for every warehouse, sorted by
// total idle days descending.
func (s *AnalyticsService) GetAllWarehouseMetrics() ([]models.WarehouseMetrics, error) {
	movements, locations, err := s.loadBatch()
	if err != nil {
		return nil, err
	}
	byID := analytics.Index(locations)

	var list []models.WarehouseMetrics
	for _, loc := range locations {
		if !loc.IsWarehouse() {
			continue
		}
		list = append(list, analytics.ComputeWarehouseMetrics(loc, movements, byID))
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].TotalIdleDays != list[j].TotalIdleDays {
			return list[i].TotalIdleDays > list[j].TotalIdleDays
		}
		return list[i].LocationID < list[j].LocationID
	})
	return list, nil
}

// GetRegionMetrics returns metrics for one region.
func (s *AnalyticsService) GetRegionMetrics(region string) (models.RegionMetrics, error) {
	movements, locations, err := s.loadBatch()
	if err != nil {
		return models.RegionMetrics{}, err
	}
	byID := analytics.Index(locations)
	cowMetrics := analytics.ComputeAllCOWMetrics(movements, byID)
	return analytics.ComputeRegionMetrics(strings.ToUpper(strings.TrimSpace(region)), movements, byID, cowMetrics), nil
}

// GetAllRegionMetrics returns metrics for every known region.
func (s *AnalyticsService) GetAllRegionMetrics() ([]models.RegionMetrics, error) {
	movements, locations, err := s.loadBatch()
	if err != nil {
		return nil, err
	}
	byID := analytics.Index(locations)
	cowMetrics := analytics.ComputeAllCOWMetrics(movements, byID)

	list := make([]models.RegionMetrics, 0, len(models.Regions))
	for _, region := range models.Regions {
		list = append(list, analytics.ComputeRegionMetrics(region, movements, byID, cowMetrics))
	}
	return list, nil
}

// GetDwellSummary runs the dwell-time engine and its rankings.
func (s *AnalyticsService) GetDwellSummary() (models.DwellSummary, error) {
	movements, locations, err := s.loadBatch()
	if err != nil {
		return models.DwellSummary{}, err
	}
	stays := analytics.ComputeStays(movements, analytics.Index(locations))
	stayDays := make([]float64, len(stays))
	for i, s := range stays {
		stayDays[i] = s.StayDays
	}
	return models.DwellSummary{
		Stays:         stays,
		TopCOWs:       analytics.TopCOWsByStay(stays, topN),
		TopWarehouses: analytics.TopWarehousesByStay(stays, topN),
		AvgStayPerWH:  analytics.AverageStayPerWarehouse(stays),
		StayDaysP50:   stats.Percentile(stayDays, 50),
		StayDaysP90:   stats.Percentile(stayDays, 90),
	}, nil
}

// GetAgingReport runs the off-air warehouse aging engine.
func (s *AnalyticsService) GetAgingReport() (models.AgingReport, error) {
	movements, locations, err := s.loadBatch()
	if err != nil {
		return models.AgingReport{}, err
	}
	return analytics.ComputeOffAirAging(movements, analytics.Index(locations)), nil
}

// GetShortIdleReport runs the short-idle variant of the aging engine.
func (s *AnalyticsService) GetShortIdleReport() (models.AgingReport, error) {
	movements, locations, err := s.loadBatch()
	if err != nil {
		return models.AgingReport{}, err
	}
	return analytics.ComputeShortIdle(movements, analytics.Index(locations)), nil
}

// EventRollup bundles the ranking with its independent filtered total.
type EventRollup struct {
	Top   []models.EventCount `json:"top"`
	Total int                 `json:"total"`
}

// GetEventRollup returns the top events with the filtered total.
func (s *AnalyticsService) GetEventRollup() (EventRollup, error) {
	movements, _, err := s.loadBatch()
	if err != nil {
		return EventRollup{}, err
	}
	return EventRollup{
		Top:   analytics.TopEvents(movements, topN),
		Total: analytics.EventTotal(movements),
	}, nil
}

// GetVendorRollup returns the top vendors.
func (s *AnalyticsService) GetVendorRollup() ([]models.EventCount, error) {
	movements, _, err := s.loadBatch()
	if err != nil {
		return nil, err
	}
	return analytics.TopVendors(movements, topN), nil
}

// GetMapOverlay returns per-location movement volume markers.
func (s *AnalyticsService) GetMapOverlay() ([]models.MapPoint, error) {
	movements, locations, err := s.loadBatch()
	if err != nil {
		return nil, err
	}
	return analytics.ComputeMapOverlay(movements, locations), nil
}
