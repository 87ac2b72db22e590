package analytics

import "github.com/stc-cow/cowtrack-backend-go/internal/models"

// ComputeRegionMetrics derives deployment and transition counts for one
// region. A movement belongs to the region when either endpoint resolves
// there; a COW counts as deployed when a movement destination resolves
// there. Active/static splits cross-reference the per-COW static flag, so
// callers pass the output of ComputeAllCOWMetrics.
//
// Average deployment duration is the signed mean of (ReachedAt - MovedAt)
// over Full movements touching the region. Unlike the idle calculations,
// negative spans from bad timestamps are NOT filtered here; the dashboard
// has always reported the signed mean and downstream consumers reconcile
// against it. See the regression test before changing the sign handling.
func ComputeRegionMetrics(region string, movements []models.Movement, byID map[string]models.Location, cowMetrics map[string]models.COWMetrics) models.RegionMetrics {
	metrics := models.RegionMetrics{Region: region}

	deployed := make(map[string]bool)
	var durationSum float64
	durationCount := 0

	for _, m := range movements {
		fromRegion := ""
		toRegion := ""
		if from, ok := byID[m.FromLocationID]; ok {
			fromRegion = from.Region
		}
		if to, ok := byID[m.ToLocationID]; ok {
			toRegion = to.Region
		}
		if fromRegion != region && toRegion != region {
			continue
		}

		metrics.Movements++
		if toRegion == region && m.COWID != "" {
			deployed[m.COWID] = true
		}
		if fromRegion != "" && toRegion != "" && fromRegion != toRegion {
			metrics.CrossRegionMoves++
		}
		if m.MovementType == models.MovementFull {
			durationSum += daysBetween(m.MovedAt, m.ReachedAt)
			durationCount++
		}
	}

	metrics.DeployedCOWs = len(deployed)
	for cowID := range deployed {
		if cm, ok := cowMetrics[cowID]; ok && cm.IsStatic {
			metrics.StaticCOWs++
		} else {
			metrics.ActiveCOWs++
		}
	}
	if durationCount > 0 {
		metrics.AvgDeploymentDays = round2(durationSum / float64(durationCount))
	}

	return metrics
}
