package sites

import (
	"site-analytics/internal/shared/metrics"
	"site-analytics/internal/shared/svcerrors"
)

var (
	metricSettingsUpdateTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSites,
			Name:      "settings_update_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricLookupTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSites,
			Name:      "lookup_total",
		},
		[]string{"lookup", metrics.FieldErrorCode},
	)
)

func errorCodeOf(err error) string {
	if err == nil {
		return metrics.ValueNoError
	}
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Code
	}
	return "unknown"
}
