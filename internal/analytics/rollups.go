package analytics

import (
	"sort"
	"strings"

	"github.com/stc-cow/cowtrack-backend-go/internal/models"
)

// eventStoplist drops placeholder values that dominate the raw event column
// without carrying information. Matched case-insensitively after trimming.
var eventStoplist = map[string]bool{
	"wh":     true,
	"others": true,
	"other":  true,
	"#n/a":   true,
	"":       true,
}

// TopEvents ranks the free-text event field: TopEvent when present,
// otherwise ToSubLocation. Values group case-insensitively while the
// first-seen original casing is kept for display. Percentages are relative
// to the stoplist-filtered total, not the raw batch size.
func TopEvents(movements []models.Movement, n int) []models.EventCount {
	return rollup(movements, n, eventValue, eventStoplist)
}

// EventTotal returns the stoplist-filtered event count independent of the
// top-N cut, so headline numbers and the ranking stay consistent.
func EventTotal(movements []models.Movement) int {
	total := 0
	for _, m := range movements {
		key := strings.ToLower(strings.TrimSpace(eventValue(m)))
		if !eventStoplist[key] {
			total++
		}
	}
	return total
}

// TopVendors ranks the vendor field. Same shape as the event rollup but
// with no stoplist beyond dropping blanks.
func TopVendors(movements []models.Movement, n int) []models.EventCount {
	return rollup(movements, n, func(m models.Movement) string { return m.Vendor }, map[string]bool{"": true})
}

func eventValue(m models.Movement) string {
	if strings.TrimSpace(m.TopEvent) != "" {
		return m.TopEvent
	}
	return m.ToSubLocation
}

func rollup(movements []models.Movement, n int, value func(models.Movement) string, stoplist map[string]bool) []models.EventCount {
	counts := make(map[string]int)
	display := make(map[string]string)
	total := 0
	for _, m := range movements {
		raw := strings.TrimSpace(value(m))
		key := strings.ToLower(raw)
		if stoplist[key] {
			continue
		}
		if _, seen := display[key]; !seen {
			display[key] = raw
		}
		counts[key]++
		total++
	}

	out := make([]models.EventCount, 0, len(counts))
	for key, count := range counts {
		out = append(out, models.EventCount{Name: display[key], Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	for i := range out {
		out[i].Percent = round2(float64(out[i].Count) / float64(total) * 100)
	}
	return out
}
