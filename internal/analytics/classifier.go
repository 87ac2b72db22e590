// Package analytics implements the movement aggregation engine behind the
// COW fleet dashboard. Every function in this package is a pure transform:
// slices and maps in, new slices and maps out. Malformed or incomplete
// records are excluded from the affected computation instead of failing the
// batch, because the upstream data comes from hand-maintained spreadsheets.
package analytics

import (
	"math"
	"time"

	"github.com/stc-cow/cowtrack-backend-go/internal/models"
)

// Index builds the by-ID location lookup used by every aggregation pass.
// Built once per analytics call; later duplicates win, matching the
// directory export where corrected rows are appended at the end.
func Index(locations []models.Location) map[string]models.Location {
	byID := make(map[string]models.Location, len(locations))
	for _, loc := range locations {
		byID[loc.ID] = loc
	}
	return byID
}

// Classify assigns a movement type from the endpoint locations:
//
//	Site -> Site           Full
//	one endpoint warehouse Half
//	Warehouse -> Warehouse Zero
//	endpoint unresolvable  Zero (conservative default)
//
// Total over all inputs; never fails.
func Classify(m models.Movement, byID map[string]models.Location) models.MovementType {
	from, okFrom := byID[m.FromLocationID]
	to, okTo := byID[m.ToLocationID]
	if !okFrom || !okTo {
		return models.MovementZero
	}

	fromWH := from.IsWarehouse()
	toWH := to.IsWarehouse()
	switch {
	case !fromWH && !toWH:
		return models.MovementFull
	case fromWH && toWH:
		return models.MovementZero
	default:
		return models.MovementHalf
	}
}

// Enrich returns a new batch in which every movement carries a movement
// type. A type already present on the record is ground truth and is copied
// through untouched; only blank records go through the classifier.
// DistanceKM is always the source-supplied value, never recomputed from
// coordinates. The input slice is not mutated.
func Enrich(movements []models.Movement, locations []models.Location) []models.Movement {
	byID := Index(locations)
	out := make([]models.Movement, len(movements))
	for i, m := range movements {
		if m.MovementType == "" {
			m.MovementType = Classify(m, byID)
		}
		out[i] = m
	}
	return out
}

// daysBetween returns the fractional day count from a to b. Negative when
// b precedes a; callers decide whether signed values are meaningful.
func daysBetween(a, b time.Time) float64 {
	return b.Sub(a).Hours() / 24
}

// round2 rounds to two decimals for display-facing totals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
