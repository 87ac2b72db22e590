// Package ingest adapts the fleet team's spreadsheet exports into the
// in-memory batches the analytics core runs on: header-addressed CSV
// parsing, date and numeric coercion, warehouse-name canonicalization, and
// region inference for rows with a blank region column. Parse failures on
// a whole file are errors; malformed individual fields degrade to
// sentinels the core knows how to skip.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stc-cow/cowtrack-backend-go/internal/models"
	"github.com/stc-cow/cowtrack-backend-go/internal/spatial"
)

// Options configures the adapters.
type Options struct {
	// WarehouseAliases maps raw warehouse spellings to canonical names.
	// Nil means DefaultWarehouseAliases.
	WarehouseAliases map[string]string
}

func (o Options) aliases() map[string]string {
	if o.WarehouseAliases != nil {
		return o.WarehouseAliases
	}
	return DefaultWarehouseAliases
}

// ParseLocations reads the location directory export. Columns are found by
// header name, case-insensitively, so column reordering in the sheet does
// not break imports.
func ParseLocations(r io.Reader, opts Options) ([]models.Location, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read locations header: %w", err)
	}
	cols := indexHeader(header)

	var locations []models.Location
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read locations row %d: %w", line+1, err)
		}
		line++

		id := trimUpper(field(record, cols, "location_id"))
		if id == "" {
			continue
		}

		loc := models.Location{
			ID:        id,
			Name:      CanonicalName(field(record, cols, "location_name"), opts.aliases()),
			Region:    trimUpper(field(record, cols, "region")),
			Type:      normalizeLocationType(field(record, cols, "location_type")),
			Latitude:  parseFloat(field(record, cols, "latitude")),
			Longitude: parseFloat(field(record, cols, "longitude")),
			Owner:     trimSpaceOnly(field(record, cols, "owner")),
		}
		if loc.Region == "" {
			loc.Region = spatial.NearestRegion(loc.Latitude, loc.Longitude)
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// normalizeLocationType maps the free-ish type column onto the two known
// tags; anything unrecognized defaults to Site and warehouse detection
// falls back to the name convention.
func normalizeLocationType(raw string) string {
	switch trimUpper(raw) {
	case "WAREHOUSE", "WH":
		return models.LocationTypeWarehouse
	default:
		return models.LocationTypeSite
	}
}

// indexHeader maps lower-cased header names to column positions.
func indexHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

// parseFloat coerces sheet numerics: thousands separators stripped,
// garbage becomes 0.
func parseFloat(value string) float64 {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func trimUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func trimSpaceOnly(s string) string {
	return strings.TrimSpace(s)
}
