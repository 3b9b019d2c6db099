package aggregators

import (
	"errors"
	"fmt"

	"site-analytics/internal/cloudflare"
	"site-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidDays        = "ANL_1000"
	codeMissingCredentials = "ANL_1001"

	codeUpstreamTransport   = "ANL_8000"
	codeUpstreamParse       = "ANL_8001"
	codeUpstreamAPIReported = "ANL_8002"

	codeInternalInvalidPeriod = "ANL_9000"
	codeCanceled              = "ANL_9100"
)

// errInvalidDays returns an error when the requested period is out of range.
func errInvalidDays(days, maxDays int) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDays,
		fmt.Sprintf("days must be between 1 and %d, got %d", maxDays, days), nil)
}

// errMissingCredentials returns an error when no zone or API token is configured.
func errMissingCredentials(field string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingCredentials,
		fmt.Sprintf("%s is not configured", field), nil)
}

// errMainQueryFailed classifies a failure of the totals query. It is always fatal.
func errMainQueryFailed(cause error) *svcerrors.ServiceError {
	switch {
	case errors.Is(cause, cloudflare.ErrAPIReported):
		return svcerrors.NewUpstreamFailureError(codeUpstreamAPIReported,
			fmt.Sprintf("Analytics query failed: %v", cause), cause)
	case errors.Is(cause, cloudflare.ErrTransport):
		return svcerrors.NewUpstreamFailureError(codeUpstreamTransport,
			fmt.Sprintf("Failed to fetch analytics: %v", cause), cause)
	default:
		return svcerrors.NewUpstreamFailureError(codeUpstreamParse,
			fmt.Sprintf("Failed to parse analytics response: %v", cause), cause)
	}
}

// errInternalInvalidPeriod returns an error when a validated day count still yields no period.
func errInternalInvalidPeriod(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalInvalidPeriod, fmt.Errorf("invalidPeriod: %w", cause))
}

// errCanceled returns an error when the caller's context ended mid-fetch.
func errCanceled(cause error) *svcerrors.ServiceError {
	return svcerrors.NewCanceledError(codeCanceled, cause)
}
