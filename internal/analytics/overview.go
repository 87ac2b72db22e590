package analytics

import "github.com/stc-cow/cowtrack-backend-go/internal/models"

// ComputeFleetOverview derives the landing-page summary from an enriched
// batch: fleet size, movement mix, static share, and per-region movement
// volume (counted by destination region).
func ComputeFleetOverview(movements []models.Movement, locations []models.Location) models.FleetOverview {
	byID := Index(locations)
	overview := models.FleetOverview{
		TotalMovements: len(movements),
		TotalLocations: len(locations),
		MovementMix:    map[models.MovementType]int{models.MovementFull: 0, models.MovementHalf: 0, models.MovementZero: 0},
	}

	for _, loc := range locations {
		if loc.IsWarehouse() {
			overview.Warehouses++
		}
	}

	byRegion := make(map[string]int)
	for _, m := range movements {
		overview.MovementMix[m.MovementType]++
		if to, ok := byID[m.ToLocationID]; ok && to.Region != "" {
			byRegion[to.Region]++
		}
	}
	overview.ByRegion = rankCounts(byRegion, 0)

	cowMetrics := ComputeAllCOWMetrics(movements, byID)
	overview.TotalCOWs = len(cowMetrics)
	for _, cm := range cowMetrics {
		if cm.IsStatic {
			overview.StaticCOWs++
		}
	}
	return overview
}

// ComputeMapOverlay emits one marker per location with its movement volume
// (arrivals plus departures), for the fleet map layer.
func ComputeMapOverlay(movements []models.Movement, locations []models.Location) []models.MapPoint {
	volume := make(map[string]int)
	for _, m := range movements {
		volume[m.FromLocationID]++
		volume[m.ToLocationID]++
	}

	points := make([]models.MapPoint, 0, len(locations))
	for _, loc := range locations {
		points = append(points, models.MapPoint{
			Lat:   loc.Latitude,
			Lon:   loc.Longitude,
			Value: float64(volume[loc.ID]),
			Label: loc.Name,
		})
	}
	return points
}
