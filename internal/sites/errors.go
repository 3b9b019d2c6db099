package sites

import (
	"errors"
	"fmt"
	"strings"

	"site-analytics/internal/cloudflare"
	"site-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidSettings   = "SET_1000"
	codeDomainMissing     = "SET_1001"
	codeDeploymentMissing = "SET_1002"
	codeTokenMissing      = "SET_1003"

	codeSettingsStoreFailed = "SET_9000"

	codeZoneNotFound       = "ANL_2000"
	codeDeploymentNotFound = "ANL_2001"

	codeLookupTransport   = "ANL_8100"
	codeLookupParse       = "ANL_8101"
	codeLookupAPIReported = "ANL_8102"
)

func errInvalidSettings(details []string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidSettings,
		"invalid settings: "+strings.Join(details, ", "), nil)
}

func errDomainMissing() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeDomainMissing, "domain is not configured", nil)
}

func errDeploymentNotConfigured() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeDeploymentMissing,
		"account id and project name must be configured", nil)
}

func errTokenMissing() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeTokenMissing, "api token is not configured", nil)
}

func errSettingsStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeSettingsStoreFailed, fmt.Errorf("settingsStoreFailed: %w", cause))
}

// errZoneLookupFailed maps a zone lookup failure. A missing zone is reported verbatim.
func errZoneLookupFailed(domain string, cause error) *svcerrors.ServiceError {
	if errors.Is(cause, cloudflare.ErrZoneNotFound) {
		return svcerrors.NewNotFoundError(codeZoneNotFound,
			fmt.Sprintf("no zone found for domain '%s'", domain), cause)
	}
	return errLookupUpstream("Failed to look up zone", cause)
}

func errDeploymentLookupFailed(cause error) *svcerrors.ServiceError {
	if errors.Is(cause, cloudflare.ErrDeploymentNotFound) {
		return svcerrors.NewNotFoundError(codeDeploymentNotFound,
			"no successful production deployment found", cause)
	}
	return errLookupUpstream("Failed to fetch deployments", cause)
}

func errLookupUpstream(prefix string, cause error) *svcerrors.ServiceError {
	code := codeLookupParse
	switch {
	case errors.Is(cause, cloudflare.ErrTransport):
		code = codeLookupTransport
	case errors.Is(cause, cloudflare.ErrAPIReported):
		code = codeLookupAPIReported
	}
	return svcerrors.NewUpstreamFailureError(code, fmt.Sprintf("%s: %v", prefix, cause), cause)
}
