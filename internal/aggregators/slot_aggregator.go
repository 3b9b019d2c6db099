package aggregators

import (
	"encoding/json"
	"fmt"

	"site-analytics/internal/cloudflare"
	"site-analytics/internal/models"
)

const unknownBrowser = "Unknown"

// SlotMetrics are the additive per-slot counters.
type SlotMetrics struct {
	Count          int64
	Bytes          int64
	CachedBytes    int64
	CachedRequests int64
	Threats        int64
}

func (m *SlotMetrics) add(other SlotMetrics) {
	m.Count += other.Count
	m.Bytes += other.Bytes
	m.CachedBytes += other.CachedBytes
	m.CachedRequests += other.CachedRequests
	m.Threats += other.Threats
}

// SlotAccumulator is the parsed main query: metrics keyed by slot label plus
// period-wide status code and browser family tallies.
type SlotAccumulator struct {
	Slots       map[string]SlotMetrics
	StatusCodes map[int]int64
	Browsers    map[string]int64
}

func NewSlotAccumulator() *SlotAccumulator {
	return &SlotAccumulator{
		Slots:       make(map[string]SlotMetrics),
		StatusCodes: make(map[int]int64),
		Browsers:    make(map[string]int64),
	}
}

//go:generate mockgen -source=slot_aggregator.go -destination=./mocks/slot_aggregator_mock.go -package=mocks
type SlotAggregator interface {
	// Aggregate parses the main query data. Entries falling into the same slot are summed.
	Aggregate(data json.RawMessage, granularity models.Granularity, mode models.Mode) (*SlotAccumulator, error)
}

type slotAggregator struct{}

func NewSlotAggregator() SlotAggregator {
	return &slotAggregator{}
}

func (a *slotAggregator) Aggregate(data json.RawMessage, granularity models.Granularity, mode models.Mode) (*SlotAccumulator, error) {
	zone, err := firstZone[totalsZone](data)
	if err != nil {
		return nil, err
	}

	acc := NewSlotAccumulator()
	for i, group := range zone.Totals {
		raw := group.Dimensions.Date
		if granularity == models.GranularityHourly {
			raw = group.Dimensions.Datetime
		}
		label, err := granularity.ParseSlotLabel(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: totals entry %d: %w", cloudflare.ErrParse, i, err)
		}

		count := group.Sum.Requests
		if mode.IsEngagement() {
			count = group.Sum.PageViews
		}
		slot := acc.Slots[label]
		slot.add(SlotMetrics{
			Count:          count,
			Bytes:          group.Sum.Bytes,
			CachedBytes:    group.Sum.CachedBytes,
			CachedRequests: group.Sum.CachedRequests,
			Threats:        group.Sum.Threats,
		})
		acc.Slots[label] = slot

		for _, status := range group.Sum.ResponseStatusMap {
			acc.StatusCodes[status.EdgeResponseStatus] += status.Requests
		}
		for _, browser := range group.Sum.BrowserMap {
			family := browser.UABrowserFamily
			if family == "" {
				family = unknownBrowser
			}
			acc.Browsers[family] += browser.PageViews
		}
	}

	return acc, nil
}
