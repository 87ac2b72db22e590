// Package spatial provides the small amount of geometry the ingestion
// layer needs: great-circle distances and nearest-region inference for
// directory rows whose region column came in blank.
package spatial

import (
	"github.com/golang/geo/s2"

	"github.com/stc-cow/cowtrack-backend-go/internal/models"
)

// EarthRadiusMeters is the mean Earth radius used for distance conversion.
const EarthRadiusMeters = 6371000.0

// HaversineDistance calculates the great-circle distance between two points
// in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// regionAnchor is the reference point of one operating region, placed at
// its main metro area.
type regionAnchor struct {
	region string
	lat    float64
	lon    float64
}

var regionAnchors = []regionAnchor{
	{models.RegionCentral, 24.7136, 46.6753}, // Riyadh
	{models.RegionWest, 21.4858, 39.1925},    // Jeddah
	{models.RegionEast, 26.4207, 50.0888},    // Dammam
	{models.RegionSouth, 18.2465, 42.5117},   // Abha
	{models.RegionNorth, 28.3838, 36.5550},   // Tabuk
}

// NearestRegion infers a region from coordinates by picking the closest
// regional anchor. Returns "" for the (0,0) null-island rows the sheet
// export produces when coordinates are missing.
func NearestRegion(lat, lon float64) string {
	if lat == 0 && lon == 0 {
		return ""
	}

	best := ""
	bestDist := -1.0
	for _, a := range regionAnchors {
		d := HaversineDistance(lat, lon, a.lat, a.lon)
		if bestDist < 0 || d < bestDist {
			best = a.region
			bestDist = d
		}
	}
	return best
}
