package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPeriod_RejectsNonPositiveDays(t *testing.T) {
	t.Parallel()

	for _, days := range []int{0, -1} {
		_, err := NewPeriod(days, time.Now())
		assert.ErrorIs(t, err, ErrInvalidPeriodDays)
	}
}

func TestNewPeriod_Hourly(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 15, 13, 27, 5, 0, time.UTC)
	period, err := NewPeriod(1, now)
	require.NoError(t, err)

	assert.Equal(t, GranularityHourly, period.Granularity)
	assert.Equal(t, "1d", period.Label())
	assert.Equal(t, 24, period.SlotCount())
	assert.Equal(t, time.Date(2026, 10, 14, 14, 0, 0, 0, time.UTC), period.Start)
	assert.Equal(t, time.Date(2026, 10, 15, 13, 0, 0, 0, time.UTC), period.LastSlotStart())

	labels := period.SlotLabels()
	require.Len(t, labels, 24)
	assert.Equal(t, "2026-10-14T14:00:00Z", labels[0])
	assert.Equal(t, "2026-10-15T13:00:00Z", labels[23])
	assertStrictlyIncreasing(t, labels)
}

func TestNewPeriod_Daily(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 15, 13, 27, 5, 0, time.UTC)
	period, err := NewPeriod(7, now)
	require.NoError(t, err)

	assert.Equal(t, GranularityDaily, period.Granularity)
	assert.Equal(t, "7d", period.Label())

	labels := period.SlotLabels()
	require.Len(t, labels, 7)
	assert.Equal(t, "2026-10-09", labels[0])
	assert.Equal(t, "2026-10-15", labels[6])
	assertStrictlyIncreasing(t, labels)
}

func TestNewPeriod_DailyAcrossMonthBoundary(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 2, 0, 5, 0, 0, time.UTC)
	period, err := NewPeriod(4, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}, period.SlotLabels())
}

func TestNewPeriod_NormalisesToUTC(t *testing.T) {
	t.Parallel()

	// 23:30 in UTC-5 is already the next day in UTC
	now := time.Date(2026, 10, 15, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))
	period, err := NewPeriod(2, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-10-15", "2026-10-16"}, period.SlotLabels())
}

func TestPeriod_Windows_Hourly(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 15, 13, 27, 5, 0, time.UTC)
	period, err := NewPeriod(1, now)
	require.NoError(t, err)

	windows := period.Windows()
	require.Len(t, windows, 1)
	assert.Equal(t, now.Add(-24*time.Hour), windows[0].Start)
	assert.Equal(t, now, windows[0].End)
	assert.Equal(t, 24*time.Hour, windows[0].Duration())
}

func TestPeriod_Windows_Daily(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 15, 13, 27, 5, 0, time.UTC)
	period, err := NewPeriod(3, now)
	require.NoError(t, err)

	windows := period.Windows()
	require.Len(t, windows, 3)
	assert.Equal(t, TimeWindow{
		Start: time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC),
	}, windows[0])
	assert.Equal(t, windows[0].End, windows[1].Start)
	assert.Equal(t, windows[1].End, windows[2].Start)
	assert.Equal(t, now, windows[2].End, "last window is clipped to now")
	for _, w := range windows {
		assert.LessOrEqual(t, w.Duration(), 24*time.Hour)
	}
}

func TestModeFromEngagement(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ModeEngagement, ModeFromEngagement(true))
	assert.True(t, ModeFromEngagement(true).IsEngagement())
	assert.Equal(t, ModeStandard, ModeFromEngagement(false))
	assert.False(t, ModeStandard.IsEngagement())
}

func TestSettings_MergeAndMask(t *testing.T) {
	t.Parallel()

	stored := Settings{APIToken: "stored-token-1234", Domain: "example.com"}
	fallback := Settings{APIToken: "config-token", ZoneID: "zone", Domain: "other.com"}

	merged := stored.Merge(fallback)
	assert.Equal(t, Settings{APIToken: "stored-token-1234", ZoneID: "zone", Domain: "example.com"}, merged)

	assert.Equal(t, "****1234", merged.Masked().APIToken)
	assert.Equal(t, "****", Settings{APIToken: "abc"}.Masked().APIToken)
	assert.Equal(t, "", Settings{}.Masked().APIToken)
	assert.True(t, IsMaskedToken(merged.Masked().APIToken))
	assert.False(t, IsMaskedToken("abc"))
}

func assertStrictlyIncreasing(t *testing.T, labels []string) {
	t.Helper()
	for i := 1; i < len(labels); i++ {
		assert.Less(t, labels[i-1], labels[i], "labels must be chronological and distinct")
	}
}
