package analytics

import (
	"sort"

	"github.com/stc-cow/cowtrack-backend-go/internal/models"
)

// daysPerMonth converts accumulated idle days to months for bucketing.
// Fixed 30-day months, not calendar-aware; the buckets are coarse enough
// that calendar drift does not matter.
const daysPerMonth = 30.0

// agingBucket is one upper-bound-inclusive band of the aging chart.
type agingBucket struct {
	label string
	max   float64 // inclusive upper bound; <0 means unbounded
}

// monthBuckets bands total idle months for the off-air aging chart.
var monthBuckets = []agingBucket{
	{label: "0-3", max: 3},
	{label: "3-6", max: 6},
	{label: "6-9", max: 9},
	{label: "9-12", max: 12},
	{label: ">12", max: -1},
}

// shortIdleBuckets bands raw idle days to surface recently idled COWs.
var shortIdleBuckets = []agingBucket{
	{label: "1-5", max: 5},
	{label: "6-10", max: 10},
	{label: "11-15", max: 15},
	{label: ">15", max: -1},
}

// ComputeOffAirAging answers "how long have off-air COWs been idling at
// warehouses". The pipeline:
//
//  1. keep only Half/Zero movements,
//  2. group per COW, ascending by departure time,
//  3. for each adjacent pair, count the gap only when the intermediate
//     destination actually qualifies as a warehouse (stricter than the
//     dwell engine) and the gap is positive,
//  4. drop COWs that never accumulated idle time,
//  5. bucket each COW's lifetime idle total, converted to 30-day months.
//
// Every surviving COW lands in exactly one bucket.
func ComputeOffAirAging(movements []models.Movement, byID map[string]models.Location) models.AgingReport {
	return computeAging(movements, byID, monthBuckets, "months", func(totalIdleDays float64) float64 {
		return totalIdleDays / daysPerMonth
	})
}

// ComputeShortIdle is the short-horizon companion of ComputeOffAirAging:
// same filtering and grouping, but bucketing raw idle days into narrow
// bands instead of months.
func ComputeShortIdle(movements []models.Movement, byID map[string]models.Location) models.AgingReport {
	return computeAging(movements, byID, shortIdleBuckets, "days", func(totalIdleDays float64) float64 {
		return totalIdleDays
	})
}

func computeAging(movements []models.Movement, byID map[string]models.Location, buckets []agingBucket, unit string, toBucketValue func(float64) float64) models.AgingReport {
	var offAir []models.Movement
	for _, m := range movements {
		if m.MovementType == models.MovementHalf || m.MovementType == models.MovementZero {
			offAir = append(offAir, m)
		}
	}

	groups := groupByCOW(offAir)
	cowIDs := make([]string, 0, len(groups))
	for id := range groups {
		cowIDs = append(cowIDs, id)
	}
	sort.Strings(cowIDs)

	report := models.AgingReport{
		Table:      []models.AgingRow{},
		COWValues:  make(map[string]float64),
		BucketCOWs: make(map[string][]string),
		Unit:       unit,
	}
	bucketCounts := make(map[string]int, len(buckets))

	for _, cowID := range cowIDs {
		seq := groups[cowID]
		var totalIdle float64
		perWarehouse := make(map[string]float64)
		for i := 0; i+1 < len(seq); i++ {
			current, next := seq[i], seq[i+1]
			loc, ok := byID[current.ToLocationID]
			if !ok || !loc.IsWarehouse() {
				continue
			}
			days := daysBetween(current.ReachedAt, next.MovedAt)
			if days <= 0 {
				continue
			}
			totalIdle += days
			perWarehouse[loc.Name] += days
		}

		// A COW that never aged at a warehouse stays out of the report.
		if totalIdle <= 0 {
			continue
		}

		avgIdle := 0.0
		if len(seq) > 1 {
			avgIdle = totalIdle / float64(len(seq)-1)
		}
		report.Table = append(report.Table, models.AgingRow{
			COWID:         cowID,
			MovementCount: len(seq),
			TotalIdleDays: round2(totalIdle),
			AvgIdleDays:   round2(avgIdle),
			TopWarehouse:  topWarehouse(perWarehouse),
		})

		value := toBucketValue(totalIdle)
		report.COWValues[cowID] = round2(value)
		label := bucketLabel(buckets, value)
		bucketCounts[label]++
		report.BucketCOWs[label] = append(report.BucketCOWs[label], cowID)
	}

	report.Buckets = make([]models.ChartPoint, 0, len(buckets))
	for _, b := range buckets {
		report.Buckets = append(report.Buckets, models.ChartPoint{Name: b.label, Value: float64(bucketCounts[b.label])})
	}
	return report
}

// bucketLabel assigns a value to the first band whose inclusive upper bound
// covers it; the final unbounded band catches the rest.
func bucketLabel(buckets []agingBucket, value float64) string {
	for _, b := range buckets {
		if b.max < 0 || value <= b.max {
			return b.label
		}
	}
	return buckets[len(buckets)-1].label
}

// topWarehouse picks the warehouse with the largest accumulated idle total,
// name order breaking ties.
func topWarehouse(perWarehouse map[string]float64) string {
	best := ""
	bestDays := -1.0
	names := make([]string, 0, len(perWarehouse))
	for name := range perWarehouse {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if perWarehouse[name] > bestDays {
			best = name
			bestDays = perWarehouse[name]
		}
	}
	return best
}
