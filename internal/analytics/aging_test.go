package analytics

import (
	"testing"

	"github.com/stc-cow/cowtrack-backend-go/internal/models"
)

func TestOffAirAgingWarehouseOnly(t *testing.T) {
	locations := testDirectory()
	// C1 parks at WH-A (counts) and at a plain site (does not).
	movements := Enrich([]models.Movement{
		mv("C1", "S-1", "WH-A", day(1), day(2)),
		mv("C1", "WH-A", "S-1", day(8), day(9)),   // 6 idle days at WH-A
		mv("C1", "S-1", "WH-A", day(20), day(21)), // site stay in between ignored
	}, locations)

	report := ComputeOffAirAging(movements, Index(locations))
	if len(report.Table) != 1 {
		t.Fatalf("expected 1 table row, got %d", len(report.Table))
	}
	row := report.Table[0]
	if row.COWID != "C1" || row.TotalIdleDays != 6 {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row.TopWarehouse != "Riyadh WH A" {
		t.Fatalf("expected top warehouse Riyadh WH A, got %s", row.TopWarehouse)
	}
	if row.MovementCount != 3 {
		t.Fatalf("expected 3 off-air movements, got %d", row.MovementCount)
	}
	// 6 idle days over (3-1) closed slots.
	if row.AvgIdleDays != 3 {
		t.Fatalf("expected avg idle 3, got %v", row.AvgIdleDays)
	}
}

func TestOffAirAgingExcludesFullMovements(t *testing.T) {
	locations := testDirectory()
	// Full movements never enter the off-air pipeline, even with a
	// warehouse-resolving gap between them.
	movements := []models.Movement{
		mv("C1", "S-1", "S-2", day(1), day(2)),
		mv("C1", "S-2", "S-3", day(9), day(10)),
	}
	movements[0].MovementType = models.MovementFull
	movements[1].MovementType = models.MovementFull

	report := ComputeOffAirAging(movements, Index(locations))
	if len(report.Table) != 0 {
		t.Fatalf("Full movements must be filtered out, got %+v", report.Table)
	}
}

func TestOffAirAgingZeroIdleCOWExcluded(t *testing.T) {
	locations := testDirectory()
	movements := Enrich([]models.Movement{
		mv("C1", "S-1", "WH-A", day(1), day(2)),
	}, locations)

	report := ComputeOffAirAging(movements, Index(locations))
	if len(report.Table) != 0 || len(report.COWValues) != 0 {
		t.Fatalf("a COW without accumulated idle must be excluded, got %+v", report)
	}
	var total float64
	for _, b := range report.Buckets {
		total += b.Value
	}
	if total != 0 {
		t.Fatalf("empty report must have zeroed buckets, got %+v", report.Buckets)
	}
}

func TestOffAirAgingBucketPartition(t *testing.T) {
	locations := testDirectory()
	var movements []models.Movement
	// C1: 60 idle days -> 2 months -> bucket 0-3.
	movements = append(movements,
		mv("C1", "S-1", "WH-A", day(1), day(2)),
		mv("C1", "WH-A", "S-1", day(62), day(63)),
	)
	// C2: 300 idle days -> 10 months -> bucket 9-12.
	movements = append(movements,
		mv("C2", "S-1", "WH-A", day(1), day(2)),
		mv("C2", "WH-A", "S-1", day(302), day(303)),
	)
	// C3: 450 idle days -> 15 months -> bucket >12.
	movements = append(movements,
		mv("C3", "S-1", "WH-A", day(1), day(2)),
		mv("C3", "WH-A", "S-1", day(452), day(453)),
	)
	enriched := Enrich(movements, locations)

	report := ComputeOffAirAging(enriched, Index(locations))
	if len(report.COWValues) != 3 {
		t.Fatalf("expected 3 aged COWs, got %d", len(report.COWValues))
	}

	// Every aged COW sits in exactly one bucket and bucket counts add up.
	seen := make(map[string]int)
	var total float64
	for label, cows := range report.BucketCOWs {
		for _, id := range cows {
			seen[id]++
		}
		for _, b := range report.Buckets {
			if b.Name == label && b.Value != float64(len(cows)) {
				t.Fatalf("bucket %s count %v != member list %d", label, b.Value, len(cows))
			}
		}
	}
	for _, b := range report.Buckets {
		total += b.Value
	}
	if total != float64(len(report.COWValues)) {
		t.Fatalf("bucket counts sum %v, want %d", total, len(report.COWValues))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("COW %s appears in %d buckets", id, n)
		}
	}

	if report.COWValues["C1"] != 2 || report.COWValues["C2"] != 10 || report.COWValues["C3"] != 15 {
		t.Fatalf("unexpected month values: %+v", report.COWValues)
	}
	wantBucket := map[string]string{"C1": "0-3", "C2": "9-12", "C3": ">12"}
	for id, want := range wantBucket {
		found := ""
		for label, cows := range report.BucketCOWs {
			for _, c := range cows {
				if c == id {
					found = label
				}
			}
		}
		if found != want {
			t.Fatalf("COW %s in bucket %q, want %q", id, found, want)
		}
	}
}

func TestOffAirAgingBucketUpperBoundInclusive(t *testing.T) {
	locations := testDirectory()
	// Exactly 90 idle days = 3.0 months: stays in the 0-3 bucket.
	movements := Enrich([]models.Movement{
		mv("C1", "S-1", "WH-A", day(1), day(2)),
		mv("C1", "WH-A", "S-1", day(92), day(93)),
	}, locations)

	report := ComputeOffAirAging(movements, Index(locations))
	if cows := report.BucketCOWs["0-3"]; len(cows) != 1 || cows[0] != "C1" {
		t.Fatalf("3.0 months must land in 0-3 (inclusive bound), got %+v", report.BucketCOWs)
	}
}

func TestOffAirAgingNegativeGapIgnored(t *testing.T) {
	locations := testDirectory()
	movements := Enrich([]models.Movement{
		mv("C1", "S-1", "WH-A", day(1), day(10)),
		mv("C1", "WH-A", "S-1", day(5), day(12)),
	}, locations)

	report := ComputeOffAirAging(movements, Index(locations))
	if len(report.Table) != 0 {
		t.Fatalf("a negative gap contributes nothing, got %+v", report.Table)
	}
}

func TestShortIdleBucketsDays(t *testing.T) {
	locations := testDirectory()
	var movements []models.Movement
	// C1: 4 idle days -> 1-5. C2: 12 idle days -> 11-15.
	movements = append(movements,
		mv("C1", "S-1", "WH-A", day(1), day(2)),
		mv("C1", "WH-A", "S-1", day(6), day(7)),
		mv("C2", "S-1", "WH-A", day(1), day(2)),
		mv("C2", "WH-A", "S-1", day(14), day(15)),
	)
	enriched := Enrich(movements, locations)

	report := ComputeShortIdle(enriched, Index(locations))
	if report.Unit != "days" {
		t.Fatalf("expected day unit, got %s", report.Unit)
	}
	if cows := report.BucketCOWs["1-5"]; len(cows) != 1 || cows[0] != "C1" {
		t.Fatalf("expected C1 in 1-5, got %+v", report.BucketCOWs)
	}
	if cows := report.BucketCOWs["11-15"]; len(cows) != 1 || cows[0] != "C2" {
		t.Fatalf("expected C2 in 11-15, got %+v", report.BucketCOWs)
	}
	if report.COWValues["C1"] != 4 || report.COWValues["C2"] != 12 {
		t.Fatalf("unexpected day values: %+v", report.COWValues)
	}
}
