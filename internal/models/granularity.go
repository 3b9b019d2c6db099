package models

import (
	"fmt"
	"time"
)

// Granularity is the width of one slot in a report's time series.
type Granularity string

const (
	GranularityHourly Granularity = "hourly"
	GranularityDaily  Granularity = "daily"
)

const (
	dayLayout  = "2006-01-02"
	hourLayout = "2006-01-02T15:04:05Z"
)

func GranularityForDays(days int) Granularity {
	if days == 1 {
		return GranularityHourly
	}
	return GranularityDaily
}

func (g Granularity) Duration() time.Duration {
	switch g {
	case GranularityHourly:
		return time.Hour
	case GranularityDaily:
		return 24 * time.Hour
	default:
		panic(fmt.Sprintf("invalid Granularity: %q", g))
	}
}

// SlotStart truncates t (in UTC) to the start of its containing slot.
func (g Granularity) SlotStart(t time.Time) time.Time {
	utc := t.UTC()

	switch g {
	case GranularityHourly:
		return utc.Truncate(time.Hour)
	case GranularityDaily:
		return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	default:
		panic(fmt.Sprintf("invalid Granularity: %q", g))
	}
}

// SlotLabel formats the slot containing t: an ISO hour for hourly slots,
// an ISO date for daily slots.
func (g Granularity) SlotLabel(t time.Time) string {
	start := g.SlotStart(t)

	switch g {
	case GranularityHourly:
		return start.Format(hourLayout)
	default:
		return start.Format(dayLayout)
	}
}

// ParseSlotLabel maps a raw upstream dimension value onto a slot label.
// Hourly values are RFC3339 timestamps normalised to their hour; daily values
// are used as-is once they parse as a date.
func (g Granularity) ParseSlotLabel(raw string) (string, error) {
	switch g {
	case GranularityHourly:
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return "", fmt.Errorf("invalid hourly timestamp %q: %w", raw, err)
		}
		return g.SlotLabel(t), nil
	case GranularityDaily:
		if _, err := time.Parse(dayLayout, raw); err != nil {
			return "", fmt.Errorf("invalid date %q: %w", raw, err)
		}
		return raw, nil
	default:
		panic(fmt.Sprintf("invalid Granularity: %q", g))
	}
}
