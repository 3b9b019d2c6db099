package models

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidPeriodDays = errors.New("period must cover at least one day")

const hourlySlotCount = 24

// TimeWindow is the half-open interval [Start, End).
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Period is the reporting range of one analytics request, anchored at the instant
// it was created. A one-day period is 24 hourly slots ending at the current hour;
// longer periods are one daily slot per calendar day (UTC) ending today.
type Period struct {
	Days        int
	Granularity Granularity
	Start       time.Time // start of the first slot
	End         time.Time // anchor instant, exclusive upper bound
}

func NewPeriod(days int, now time.Time) (Period, error) {
	if days < 1 {
		return Period{}, fmt.Errorf("%w: got %d", ErrInvalidPeriodDays, days)
	}

	now = now.UTC()
	granularity := GranularityForDays(days)
	slotCount := days
	if granularity == GranularityHourly {
		slotCount = hourlySlotCount
	}
	lastSlot := granularity.SlotStart(now)

	return Period{
		Days:        days,
		Granularity: granularity,
		Start:       lastSlot.Add(-time.Duration(slotCount-1) * granularity.Duration()),
		End:         now,
	}, nil
}

// Label is the short period name shown to the caller, e.g. "7d".
func (p Period) Label() string {
	return fmt.Sprintf("%dd", p.Days)
}

func (p Period) SlotCount() int {
	if p.Granularity == GranularityHourly {
		return hourlySlotCount
	}
	return p.Days
}

// SlotLabels enumerates every expected slot label in chronological order.
// Labels are derived from the period bounds only.
func (p Period) SlotLabels() []string {
	labels := make([]string, p.SlotCount())
	step := p.Granularity.Duration()
	for i := range labels {
		labels[i] = p.Granularity.SlotLabel(p.Start.Add(time.Duration(i) * step))
	}
	return labels
}

// LastSlotStart is the start of the slot containing End.
func (p Period) LastSlotStart() time.Time {
	return p.Granularity.SlotStart(p.End)
}

// Windows splits the period into consecutive breakdown windows. An hourly period is the
// trailing 24 hours; a daily period yields one window per calendar day with the last one
// clipped to End.
func (p Period) Windows() []TimeWindow {
	if p.Granularity == GranularityHourly {
		return []TimeWindow{{Start: p.End.Add(-24 * time.Hour), End: p.End}}
	}

	windows := make([]TimeWindow, 0, p.Days)
	for i := 0; i < p.Days; i++ {
		start := p.Start.AddDate(0, 0, i)
		end := start.AddDate(0, 0, 1)
		if end.After(p.End) {
			end = p.End
		}
		windows = append(windows, TimeWindow{Start: start, End: end})
	}
	return windows
}
