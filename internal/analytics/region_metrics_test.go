package analytics

import (
	"testing"

	"github.com/stc-cow/cowtrack-backend-go/internal/models"
)

func TestRegionMetricsCounts(t *testing.T) {
	locations := testDirectory()
	byID := Index(locations)
	movements := Enrich([]models.Movement{
		mv("C1", "S-1", "S-2", day(1), day(2)), // CENTRAL -> WEST
		mv("C2", "S-2", "S-1", day(3), day(4)), // WEST -> CENTRAL
		mv("C3", "S-3", "S-3", day(5), day(6)), // EAST only
	}, locations)
	cowMetrics := ComputeAllCOWMetrics(movements, byID)

	metrics := ComputeRegionMetrics(models.RegionCentral, movements, byID, cowMetrics)
	if metrics.Movements != 2 {
		t.Fatalf("expected 2 movements touching CENTRAL, got %d", metrics.Movements)
	}
	if metrics.DeployedCOWs != 1 {
		t.Fatalf("only C2 ends in CENTRAL, got %d deployed", metrics.DeployedCOWs)
	}
	if metrics.StaticCOWs != 1 || metrics.ActiveCOWs != 0 {
		t.Fatalf("C2 has a single movement and is static, got active=%d static=%d", metrics.ActiveCOWs, metrics.StaticCOWs)
	}
	if metrics.CrossRegionMoves != 2 {
		t.Fatalf("expected 2 cross-region movements, got %d", metrics.CrossRegionMoves)
	}
}

func TestRegionDeploymentDurationFullOnly(t *testing.T) {
	locations := testDirectory()
	byID := Index(locations)
	movements := Enrich([]models.Movement{
		mv("C1", "S-1", "S-2", day(1), day(3)),  // Full, 2 days
		mv("C2", "WH-A", "S-1", day(1), day(9)), // Half, ignored
	}, locations)
	cowMetrics := ComputeAllCOWMetrics(movements, byID)

	metrics := ComputeRegionMetrics(models.RegionCentral, movements, byID, cowMetrics)
	if metrics.AvgDeploymentDays != 2 {
		t.Fatalf("expected avg deployment 2 days over Full movements only, got %v", metrics.AvgDeploymentDays)
	}
}

func TestRegionDeploymentDurationKeepsSign(t *testing.T) {
	// Reached before Moved gives a negative span. The idle calculations
	// drop negative gaps, this one does not; the test pins the difference
	// so any future sign fix is a deliberate, visible change.
	locations := testDirectory()
	byID := Index(locations)
	movements := Enrich([]models.Movement{
		mv("C1", "S-1", "S-2", day(5), day(3)), // Full, -2 days
		mv("C2", "S-2", "S-1", day(1), day(5)), // Full, +4 days
	}, locations)
	cowMetrics := ComputeAllCOWMetrics(movements, byID)

	metrics := ComputeRegionMetrics(models.RegionCentral, movements, byID, cowMetrics)
	if metrics.AvgDeploymentDays != 1 {
		t.Fatalf("expected signed mean (+4-2)/2 = 1, got %v", metrics.AvgDeploymentDays)
	}
}

func TestRegionMetricsEmptyBatch(t *testing.T) {
	byID := Index(testDirectory())
	metrics := ComputeRegionMetrics(models.RegionNorth, nil, byID, nil)
	if metrics.Movements != 0 || metrics.DeployedCOWs != 0 || metrics.AvgDeploymentDays != 0 {
		t.Fatalf("empty batch must yield zeroed metrics, got %+v", metrics)
	}
}
