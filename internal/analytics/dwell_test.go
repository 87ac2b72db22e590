package analytics

import (
	"testing"

	"github.com/stc-cow/cowtrack-backend-go/internal/models"
)

func TestStaysCloseOnlyInnerIntervals(t *testing.T) {
	locations := testDirectory()
	movements := Enrich([]models.Movement{
		mv("C1", "S-1", "WH-A", day(1), day(2)),
		mv("C1", "WH-A", "S-2", day(5), day(6)),
		mv("C1", "S-2", "S-3", day(10), day(11)),
	}, locations)

	stays := ComputeStays(movements, Index(locations))
	if len(stays) != 2 {
		t.Fatalf("3 movements must close at most 2 stays, got %d", len(stays))
	}
	if stays[0].WarehouseName != "Riyadh WH A" || stays[0].StayDays != 3 {
		t.Fatalf("unexpected first stay: %+v", stays[0])
	}
	// Second stay is at a plain site: the dwell view records any
	// resolvable destination, not only warehouses.
	if stays[1].WarehouseName != "Site Corniche" || stays[1].StayDays != 4 {
		t.Fatalf("unexpected second stay: %+v", stays[1])
	}
}

func TestStaysSingleMovementYieldsNone(t *testing.T) {
	locations := testDirectory()
	movements := Enrich([]models.Movement{
		mv("C1", "S-1", "WH-A", day(1), day(2)),
	}, locations)

	if stays := ComputeStays(movements, Index(locations)); len(stays) != 0 {
		t.Fatalf("a single movement closes no interval, got %d stays", len(stays))
	}
}

func TestStaysRoundTripScenario(t *testing.T) {
	locations := testDirectory()
	movements := Enrich([]models.Movement{
		mv("C1", "WH-A", "S-1", day(1), day(2)),
		mv("C1", "S-1", "WH-A", day(10), day(11)),
	}, locations)

	stays := ComputeStays(movements, Index(locations))
	if len(stays) != 1 {
		t.Fatalf("expected exactly 1 stay, got %d", len(stays))
	}
	s := stays[0]
	if s.COWID != "C1" || s.WarehouseName != "Site Olaya" || s.StayDays != 8 {
		t.Fatalf("unexpected stay record: %+v", s)
	}
	if s.ArrivalDate != "2024-01-02" || s.DepartureDate != "2024-01-10" {
		t.Fatalf("unexpected stay dates: %+v", s)
	}
}

func TestStaysNegativeDurationDropped(t *testing.T) {
	locations := testDirectory()
	movements := Enrich([]models.Movement{
		mv("C1", "S-1", "S-2", day(1), day(10)),
		mv("C1", "S-2", "S-3", day(5), day(12)), // departs before prior arrival
	}, locations)

	if stays := ComputeStays(movements, Index(locations)); len(stays) != 0 {
		t.Fatalf("negative duration must not produce a stay, got %+v", stays)
	}
}

func TestStaysUnresolvableDestinationSkipped(t *testing.T) {
	locations := testDirectory()
	movements := Enrich([]models.Movement{
		mv("C1", "S-1", "GHOST", day(1), day(2)),
		mv("C1", "GHOST", "S-2", day(5), day(6)),
	}, locations)

	if stays := ComputeStays(movements, Index(locations)); len(stays) != 0 {
		t.Fatalf("unresolvable destination must be skipped, got %+v", stays)
	}
}

func TestTopCOWsByStayRanking(t *testing.T) {
	stays := []models.StayRecord{
		{COWID: "C1", WarehouseName: "WH-A", StayDays: 5},
		{COWID: "C2", WarehouseName: "WH-A", StayDays: 3},
		{COWID: "C1", WarehouseName: "WH-B", StayDays: 2},
		{COWID: "C3", WarehouseName: "WH-B", StayDays: 7},
	}

	top := TopCOWsByStay(stays, 2)
	if len(top) != 2 {
		t.Fatalf("expected top 2, got %d", len(top))
	}
	if top[0].Name != "C1" || top[0].Value != 7 {
		t.Fatalf("expected C1 with 7 days first (ID order breaks the tie with C3), got %+v", top[0])
	}
	if top[1].Name != "C3" || top[1].Value != 7 {
		t.Fatalf("expected C3 with 7 days second, got %+v", top[1])
	}
}

func TestAverageStayPerWarehouse(t *testing.T) {
	stays := []models.StayRecord{
		{COWID: "C1", WarehouseName: "WH-A", StayDays: 4},
		{COWID: "C2", WarehouseName: "WH-A", StayDays: 8},
		{COWID: "C3", WarehouseName: "WH-B", StayDays: 5},
	}

	avg := AverageStayPerWarehouse(stays)
	if avg["WH-A"] != 6 || avg["WH-B"] != 5 {
		t.Fatalf("unexpected averages: %+v", avg)
	}
}
