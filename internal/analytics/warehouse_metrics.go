package analytics

import (
	"sort"

	"github.com/stc-cow/cowtrack-backend-go/internal/models"
)

// topDestRegionLimit caps the destination-region ranking per warehouse.
const topDestRegionLimit = 5

// ComputeWarehouseMetrics derives traffic and idle accumulation for one
// warehouse location. Idle accumulation models how long COWs sat at the
// warehouse before leaving: for each incoming movement, the gap to that
// COW's next outgoing movement whose departure is strictly after the
// arrival. Incoming movements with no later outgoing movement contribute
// nothing; the COW may still be parked there or left untracked.
func ComputeWarehouseMetrics(loc models.Location, movements []models.Movement, byID map[string]models.Location) models.WarehouseMetrics {
	metrics := models.WarehouseMetrics{
		LocationID:     loc.ID,
		Name:           loc.Name,
		TopDestRegions: []models.ChartPoint{},
	}
	if !loc.IsWarehouse() {
		return metrics
	}

	var outDistance, inDistance float64
	destRegions := make(map[string]int)
	var incoming, outgoing []models.Movement
	for _, m := range movements {
		if m.FromLocationID == loc.ID {
			outgoing = append(outgoing, m)
			outDistance += m.DistanceKM
			if to, ok := byID[m.ToLocationID]; ok && to.Region != "" {
				destRegions[to.Region]++
			}
		}
		if m.ToLocationID == loc.ID {
			incoming = append(incoming, m)
			inDistance += m.DistanceKM
		}
	}

	metrics.Outgoing = len(outgoing)
	metrics.Incoming = len(incoming)
	if len(outgoing) > 0 {
		metrics.AvgOutDistanceKM = round2(outDistance / float64(len(outgoing)))
	}
	if len(incoming) > 0 {
		metrics.AvgInDistanceKM = round2(inDistance / float64(len(incoming)))
	}

	metrics.TopDestRegions = rankCounts(destRegions, topDestRegionLimit)

	var idleTotal float64
	for _, in := range incoming {
		var next *models.Movement
		for i := range outgoing {
			out := &outgoing[i]
			if out.COWID != in.COWID || !out.MovedAt.After(in.ReachedAt) {
				continue
			}
			if next == nil || out.MovedAt.Before(next.MovedAt) {
				next = out
			}
		}
		if next != nil {
			idleTotal += daysBetween(in.ReachedAt, next.MovedAt)
		}
	}
	metrics.TotalIdleDays = round2(idleTotal)

	return metrics
}

// rankCounts turns a frequency map into a descending chart series capped at
// limit. Equal counts fall back to name order so rankings are stable.
func rankCounts(counts map[string]int, limit int) []models.ChartPoint {
	points := make([]models.ChartPoint, 0, len(counts))
	for name, n := range counts {
		points = append(points, models.ChartPoint{Name: name, Value: float64(n)})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Name < points[j].Name
	})
	if limit > 0 && len(points) > limit {
		points = points[:limit]
	}
	return points
}
