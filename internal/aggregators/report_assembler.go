package aggregators

import (
	"cmp"
	"slices"

	"site-analytics/internal/models"
)

// TopN is the maximum length of every breakdown list in a report.
const TopN = 10

// AssembleReport finalizes a report: the total is the sum of the series counts and every
// breakdown is ranked by count descending, ties broken by key ascending, and cut to TopN.
func AssembleReport(period models.Period, mode models.Mode, series []models.TimeSlot, slots *SlotAccumulator, breakdown *BreakdownPartial, failure *models.PartialFailure) *models.AnalyticsReport {
	var total int64
	for _, slot := range series {
		total += slot.Count
	}

	report := &models.AnalyticsReport{
		PeriodLabel:    period.Label(),
		Granularity:    period.Granularity,
		Mode:           mode,
		GeneratedAt:    period.End,
		TotalRequests:  total,
		TimeSeries:     series,
		TopPaths:       []models.PathCount{},
		TopCountries:   []models.CountryCount{},
		StatusCodes:    []models.StatusCount{},
		Browsers:       []models.BrowserCount{},
		PartialFailure: failure,
	}

	if slots != nil {
		for _, r := range rankTop(slots.StatusCodes, TopN) {
			report.StatusCodes = append(report.StatusCodes, models.StatusCount{Status: r.key, Count: r.count})
		}
		for _, r := range rankTop(slots.Browsers, TopN) {
			report.Browsers = append(report.Browsers, models.BrowserCount{Browser: r.key, Count: r.count})
		}
	}
	if breakdown != nil {
		for _, r := range rankTop(breakdown.Paths, TopN) {
			report.TopPaths = append(report.TopPaths, models.PathCount{Path: r.key, Count: r.count})
		}
		for _, r := range rankTop(breakdown.Countries, TopN) {
			report.TopCountries = append(report.TopCountries, models.CountryCount{Country: r.key, Count: r.count})
		}
	}

	return report
}

type ranked[K cmp.Ordered] struct {
	key   K
	count int64
}

func rankTop[K cmp.Ordered](counts map[K]int64, limit int) []ranked[K] {
	entries := make([]ranked[K], 0, len(counts))
	for k, v := range counts {
		entries = append(entries, ranked[K]{key: k, count: v})
	}
	slices.SortFunc(entries, func(a, b ranked[K]) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.key, b.key)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
