package aggregators

import (
	"site-analytics/internal/shared/metrics"
)

const (
	chunkOutcomeOK     = "ok"
	chunkOutcomeFailed = "failed"
)

var (
	// metricFetchTotal counts analytics fetches by mode and error code (empty on success).
	metricFetchTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalytics,
			Name:      "fetch_total",
		},
		[]string{"mode", metrics.FieldErrorCode},
	)

	// metricBreakdownChunkTotal counts breakdown chunks by outcome. A failed chunk does not
	// fail the fetch; it only leaves its windows out of the path and country lists.
	metricBreakdownChunkTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalytics,
			Name:      "breakdown_chunk_total",
		},
		[]string{"outcome"},
	)
)
