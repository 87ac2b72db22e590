package analytics

import (
	"sort"
	"time"

	"github.com/stc-cow/cowtrack-backend-go/internal/models"
)

// dateLayout is the display format for movement dates on the dashboard.
const dateLayout = "2006-01-02"

// ComputeCOWMetrics derives the per-COW aggregate from the enriched batch.
// Idle duration between consecutive movements (in MovedAt order) is the gap
// from the previous arrival to the next departure; non-positive gaps from
// overlapping or identical timestamps are excluded from the average rather
// than counted as zero. A COW with at most one movement is static.
func ComputeCOWMetrics(cowID string, movements []models.Movement, byID map[string]models.Location) models.COWMetrics {
	var own []models.Movement
	for _, m := range movements {
		if m.COWID == cowID {
			own = append(own, m)
		}
	}

	metrics := models.COWMetrics{
		COWID:       cowID,
		MovementMix: map[models.MovementType]int{models.MovementFull: 0, models.MovementHalf: 0, models.MovementZero: 0},
	}
	if len(own) == 0 {
		metrics.IsStatic = true
		metrics.RegionsServed = []string{}
		return metrics
	}

	sort.SliceStable(own, func(i, j int) bool {
		return own[i].MovedAt.Before(own[j].MovedAt)
	})

	var totalDistance float64
	var lastMoved time.Time
	regionSet := make(map[string]bool)
	for _, m := range own {
		totalDistance += m.DistanceKM
		metrics.MovementMix[m.MovementType]++
		if m.MovedAt.After(lastMoved) {
			lastMoved = m.MovedAt
		}
		if to, ok := byID[m.ToLocationID]; ok && to.Region != "" {
			regionSet[to.Region] = true
		}
	}

	var idleSum float64
	idleCount := 0
	for i := 1; i < len(own); i++ {
		gap := daysBetween(own[i-1].ReachedAt, own[i].MovedAt)
		if gap > 0 {
			idleSum += gap
			idleCount++
		}
	}

	metrics.TotalMovements = len(own)
	metrics.TotalDistanceKM = round2(totalDistance)
	metrics.AvgDistanceKM = round2(totalDistance / float64(len(own)))
	if idleCount > 0 {
		metrics.AvgIdleDays = round2(idleSum / float64(idleCount))
	}
	metrics.IsStatic = len(own) <= 1
	if !lastMoved.IsZero() {
		metrics.LastMovedAt = lastMoved.Format(dateLayout)
	}

	regions := make([]string, 0, len(regionSet))
	for r := range regionSet {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	metrics.RegionsServed = regions

	return metrics
}

// ComputeAllCOWMetrics runs the per-COW aggregation for every COW that
// appears in the batch. COWs exist only through their movements; an ID with
// zero movements is never represented.
func ComputeAllCOWMetrics(movements []models.Movement, byID map[string]models.Location) map[string]models.COWMetrics {
	seen := make(map[string]bool)
	out := make(map[string]models.COWMetrics)
	for _, m := range movements {
		if m.COWID == "" || seen[m.COWID] {
			continue
		}
		seen[m.COWID] = true
		out[m.COWID] = ComputeCOWMetrics(m.COWID, movements, byID)
	}
	return out
}
