package aggregators

import "site-analytics/internal/models"

// BuildSeries lays the accumulated slots onto the full period. Labels come from the
// period bounds, so slots the upstream omitted appear with zero metrics and labels
// outside the period are ignored.
func BuildSeries(period models.Period, slots map[string]SlotMetrics) []models.TimeSlot {
	labels := period.SlotLabels()
	series := make([]models.TimeSlot, len(labels))
	for i, label := range labels {
		m := slots[label]
		series[i] = models.TimeSlot{
			Label:          label,
			Count:          m.Count,
			Bytes:          m.Bytes,
			CachedBytes:    m.CachedBytes,
			CachedRequests: m.CachedRequests,
			Threats:        m.Threats,
		}
	}
	return series
}
