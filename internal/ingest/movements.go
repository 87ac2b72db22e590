package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/stc-cow/cowtrack-backend-go/internal/models"
)

// ParseMovements reads the movement log export. Movement_Type is kept only
// when it is one of the known classifications; anything else is left blank
// for the classifier to fill during enrichment. Distance_KM is coerced but
// never recomputed from coordinates.
func ParseMovements(r io.Reader) ([]models.Movement, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read movements header: %w", err)
	}
	cols := indexHeader(header)

	var movements []models.Movement
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read movements row %d: %w", line+1, err)
		}
		line++

		cowID := trimUpper(field(record, cols, "cow_id"))
		if cowID == "" {
			continue
		}

		m := models.Movement{
			SN:             parseInt(field(record, cols, "sn")),
			COWID:          cowID,
			FromLocationID: trimUpper(field(record, cols, "from_location_id")),
			ToLocationID:   trimUpper(field(record, cols, "to_location_id")),
			MovedAt:        ParseTimestamp(field(record, cols, "moved_datetime")),
			ReachedAt:      ParseTimestamp(field(record, cols, "reached_datetime")),
			MovementType:   normalizeMovementType(field(record, cols, "movement_type")),
			DistanceKM:     parseFloat(field(record, cols, "distance_km")),
			TopEvent:       trimSpaceOnly(field(record, cols, "top_event")),
			ToSubLocation:  trimSpaceOnly(field(record, cols, "to_sub_location")),
			Vendor:         trimSpaceOnly(field(record, cols, "vendor")),
		}
		movements = append(movements, m)
	}
	return movements, nil
}

func normalizeMovementType(raw string) models.MovementType {
	switch trimUpper(raw) {
	case "FULL":
		return models.MovementFull
	case "HALF":
		return models.MovementHalf
	case "ZERO":
		return models.MovementZero
	default:
		return ""
	}
}

func parseInt(value string) int64 {
	n, err := strconv.ParseInt(trimSpaceOnly(value), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
