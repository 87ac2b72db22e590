package analytics

import (
	"testing"

	"github.com/stc-cow/cowtrack-backend-go/internal/models"
)

func TestCOWMetricsRoundTripScenario(t *testing.T) {
	locations := testDirectory()
	movements := Enrich([]models.Movement{
		mv("C1", "WH-A", "S-1", day(1), day(2)),
		mv("C1", "S-1", "WH-A", day(10), day(11)),
	}, locations)
	byID := Index(locations)

	metrics := ComputeCOWMetrics("C1", movements, byID)
	if metrics.TotalMovements != 2 {
		t.Fatalf("expected 2 movements, got %d", metrics.TotalMovements)
	}
	if metrics.MovementMix[models.MovementHalf] != 2 || metrics.MovementMix[models.MovementFull] != 0 {
		t.Fatalf("expected mix {Half:2}, got %+v", metrics.MovementMix)
	}
	if metrics.IsStatic {
		t.Fatalf("a COW with two movements is not static")
	}
	// Gap from reaching S-1 (day 2) to departing again (day 10).
	if metrics.AvgIdleDays != 8 {
		t.Fatalf("expected avg idle 8 days, got %v", metrics.AvgIdleDays)
	}
	if metrics.TotalDistanceKM != 200 || metrics.AvgDistanceKM != 100 {
		t.Fatalf("unexpected distance totals: %v / %v", metrics.TotalDistanceKM, metrics.AvgDistanceKM)
	}
	if metrics.LastMovedAt != "2024-01-10" {
		t.Fatalf("expected last moved 2024-01-10, got %s", metrics.LastMovedAt)
	}
}

func TestCOWMetricsSingleMovementIsStatic(t *testing.T) {
	locations := testDirectory()
	movements := Enrich([]models.Movement{mv("C1", "S-1", "S-2", day(1), day(2))}, locations)

	metrics := ComputeCOWMetrics("C1", movements, Index(locations))
	if !metrics.IsStatic {
		t.Fatalf("a COW with one movement must be static")
	}
	if metrics.AvgIdleDays != 0 {
		t.Fatalf("no idle gaps expected, got %v", metrics.AvgIdleDays)
	}
}

func TestCOWMetricsNegativeIdleGapExcluded(t *testing.T) {
	locations := testDirectory()
	// Second departure before the first arrival: the gap is negative and
	// must not drag the average down.
	movements := Enrich([]models.Movement{
		mv("C1", "S-1", "S-2", day(1), day(5)),
		mv("C1", "S-2", "S-3", day(3), day(6)),
		mv("C1", "S-3", "S-1", day(10), day(11)),
	}, locations)

	metrics := ComputeCOWMetrics("C1", movements, Index(locations))
	// Only the day 6 -> day 10 gap counts.
	if metrics.AvgIdleDays != 4 {
		t.Fatalf("expected avg idle 4 (negative gap excluded), got %v", metrics.AvgIdleDays)
	}
}

func TestCOWMetricsRegionsServed(t *testing.T) {
	locations := testDirectory()
	movements := Enrich([]models.Movement{
		mv("C1", "S-1", "S-2", day(1), day(2)), // WEST
		mv("C1", "S-2", "S-3", day(3), day(4)), // EAST
		mv("C1", "S-3", "S-2", day(5), day(6)), // WEST again
	}, locations)

	metrics := ComputeCOWMetrics("C1", movements, Index(locations))
	if len(metrics.RegionsServed) != 2 {
		t.Fatalf("expected 2 distinct regions, got %v", metrics.RegionsServed)
	}
	if metrics.RegionsServed[0] != models.RegionEast || metrics.RegionsServed[1] != models.RegionWest {
		t.Fatalf("expected [EAST WEST], got %v", metrics.RegionsServed)
	}
}

func TestComputeAllCOWMetricsOnlyKnownCOWs(t *testing.T) {
	locations := testDirectory()
	movements := Enrich([]models.Movement{
		mv("C1", "S-1", "S-2", day(1), day(2)),
		mv("C2", "S-2", "S-3", day(3), day(4)),
	}, locations)

	all := ComputeAllCOWMetrics(movements, Index(locations))
	if len(all) != 2 {
		t.Fatalf("expected metrics for exactly 2 COWs, got %d", len(all))
	}
	if _, ok := all["C3"]; ok {
		t.Fatalf("a COW with zero movements must not appear")
	}
}
