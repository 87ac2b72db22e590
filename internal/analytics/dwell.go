package analytics

import (
	"sort"

	"github.com/stc-cow/cowtrack-backend-go/internal/models"
)

// ComputeStays reconstructs each COW's chronological movement sequence and
// emits one stay record per closed interval: the COW arrived somewhere
// (current movement's destination) and later departed (next movement).
//
// Any destination that resolves in the directory counts as a stay location,
// warehouse or not. That is looser than the off-air aging engine, which
// insists on warehouses; the dashboard's dwell view has always shown both
// site and warehouse parking, so the two engines intentionally differ.
//
// Only strictly positive durations become records, and the final movement
// of each sequence never closes an interval, so a COW with N movements
// yields at most N-1 stays and a single-movement COW yields none.
func ComputeStays(movements []models.Movement, byID map[string]models.Location) []models.StayRecord {
	groups := groupByCOW(movements)

	cowIDs := make([]string, 0, len(groups))
	for id := range groups {
		cowIDs = append(cowIDs, id)
	}
	sort.Strings(cowIDs)

	var stays []models.StayRecord
	for _, cowID := range cowIDs {
		seq := groups[cowID]
		for i := 0; i+1 < len(seq); i++ {
			current, next := seq[i], seq[i+1]
			loc, ok := byID[current.ToLocationID]
			if !ok {
				continue
			}
			days := daysBetween(current.ReachedAt, next.MovedAt)
			if days <= 0 {
				continue
			}
			stays = append(stays, models.StayRecord{
				COWID:         cowID,
				WarehouseName: loc.Name,
				StayDays:      round2(days),
				ArrivalDate:   current.ReachedAt.Format(dateLayout),
				DepartureDate: next.MovedAt.Format(dateLayout),
			})
		}
	}
	return stays
}

// TopCOWsByStay ranks COWs by total accumulated stay days, descending.
// Ties fall back to COW ID order.
func TopCOWsByStay(stays []models.StayRecord, n int) []models.ChartPoint {
	totals := make(map[string]float64)
	for _, s := range stays {
		totals[s.COWID] += s.StayDays
	}
	return rankTotals(totals, n)
}

// TopWarehousesByStay ranks stay locations by total accumulated stay days.
func TopWarehousesByStay(stays []models.StayRecord, n int) []models.ChartPoint {
	totals := make(map[string]float64)
	for _, s := range stays {
		totals[s.WarehouseName] += s.StayDays
	}
	return rankTotals(totals, n)
}

// AverageStayPerWarehouse returns the mean stay duration per stay location.
func AverageStayPerWarehouse(stays []models.StayRecord) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, s := range stays {
		sums[s.WarehouseName] += s.StayDays
		counts[s.WarehouseName]++
	}
	out := make(map[string]float64, len(sums))
	for name, sum := range sums {
		out[name] = round2(sum / float64(counts[name]))
	}
	return out
}

// groupByCOW splits the batch per COW and sorts each group ascending by
// departure time. Movements with a blank COW ID are dropped.
func groupByCOW(movements []models.Movement) map[string][]models.Movement {
	groups := make(map[string][]models.Movement)
	for _, m := range movements {
		if m.COWID == "" {
			continue
		}
		groups[m.COWID] = append(groups[m.COWID], m)
	}
	for id := range groups {
		seq := groups[id]
		sort.SliceStable(seq, func(i, j int) bool {
			return seq[i].MovedAt.Before(seq[j].MovedAt)
		})
		groups[id] = seq
	}
	return groups
}

// rankTotals turns a totals map into a descending chart series capped at n,
// with name order breaking ties.
func rankTotals(totals map[string]float64, n int) []models.ChartPoint {
	points := make([]models.ChartPoint, 0, len(totals))
	for name, total := range totals {
		points = append(points, models.ChartPoint{Name: name, Value: round2(total)})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Name < points[j].Name
	})
	if n > 0 && len(points) > n {
		points = points[:n]
	}
	return points
}
