package cloudflare

import (
	"errors"

	"site-analytics/internal/shared/metrics"
)

const (
	operationGraphQL    = "graphql"
	operationZoneLookup = "zone_lookup"
	operationDeployment = "deployment_lookup"

	outcomeOK          = "ok"
	outcomeTransport   = "transport_error"
	outcomeParse       = "parse_error"
	outcomeAPIReported = "api_error"
	outcomeNotFound    = "not_found"
)

var (
	metricRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubCloudflare,
			Name:      "request_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)
)

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrTransport):
		return outcomeTransport
	case errors.Is(err, ErrAPIReported):
		return outcomeAPIReported
	case errors.Is(err, ErrZoneNotFound), errors.Is(err, ErrDeploymentNotFound):
		return outcomeNotFound
	default:
		return outcomeParse
	}
}
