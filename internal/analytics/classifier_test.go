package analytics

import (
	"testing"
	"time"

	"github.com/stc-cow/cowtrack-backend-go/internal/models"
)

func testDirectory() []models.Location {
	return []models.Location{
		{ID: "WH-A", Name: "Riyadh WH A", Region: models.RegionCentral, Type: models.LocationTypeWarehouse, Latitude: 24.7, Longitude: 46.7},
		{ID: "WH-B", Name: "Jeddah Central WH", Region: models.RegionWest, Type: models.LocationTypeSite, Latitude: 21.5, Longitude: 39.2},
		{ID: "S-1", Name: "Site Olaya", Region: models.RegionCentral, Type: models.LocationTypeSite, Latitude: 24.69, Longitude: 46.68},
		{ID: "S-2", Name: "Site Corniche", Region: models.RegionWest, Type: models.LocationTypeSite, Latitude: 21.6, Longitude: 39.1},
		{ID: "S-3", Name: "Site Dammam", Region: models.RegionEast, Type: models.LocationTypeSite, Latitude: 26.4, Longitude: 50.1},
	}
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func mv(cowID, from, to string, moved, reached time.Time) models.Movement {
	return models.Movement{COWID: cowID, FromLocationID: from, ToLocationID: to, MovedAt: moved, ReachedAt: reached, DistanceKM: 100}
}

func TestClassifyRuleTable(t *testing.T) {
	byID := Index(testDirectory())

	cases := []struct {
		from, to string
		want     models.MovementType
	}{
		{"S-1", "S-2", models.MovementFull},
		{"WH-A", "S-1", models.MovementHalf},
		{"S-1", "WH-A", models.MovementHalf},
		{"WH-A", "WH-B", models.MovementZero},
		{"missing", "S-1", models.MovementZero},
		{"S-1", "missing", models.MovementZero},
		{"", "", models.MovementZero},
	}
	for _, c := range cases {
		got := Classify(mv("C1", c.from, c.to, day(1), day(2)), byID)
		if got != c.want {
			t.Fatalf("Classify(%s -> %s) = %s, want %s", c.from, c.to, got, c.want)
		}
	}
}

func TestClassifyWarehouseByName(t *testing.T) {
	// WH-B is tagged Site but its name contains "WH".
	byID := Index(testDirectory())
	got := Classify(mv("C1", "WH-B", "S-1", day(1), day(2)), byID)
	if got != models.MovementHalf {
		t.Fatalf("expected name-based warehouse detection to yield Half, got %s", got)
	}
}

func TestEnrichPreservesSuppliedType(t *testing.T) {
	m := mv("C1", "S-1", "S-2", day(1), day(2))
	m.MovementType = models.MovementZero // contradicts the Site->Site rule

	out := Enrich([]models.Movement{m}, testDirectory())
	if len(out) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(out))
	}
	if out[0].MovementType != models.MovementZero {
		t.Fatalf("supplied movement type must win, got %s", out[0].MovementType)
	}
}

func TestEnrichFillsBlankTypeAndKeepsDistance(t *testing.T) {
	m := mv("C1", "WH-A", "S-1", day(1), day(2))
	m.DistanceKM = 42.5

	input := []models.Movement{m}
	out := Enrich(input, testDirectory())

	if out[0].MovementType != models.MovementHalf {
		t.Fatalf("expected Half, got %s", out[0].MovementType)
	}
	if out[0].DistanceKM != 42.5 {
		t.Fatalf("distance must pass through verbatim, got %v", out[0].DistanceKM)
	}
	if input[0].MovementType != "" {
		t.Fatalf("input batch must not be mutated")
	}
}
