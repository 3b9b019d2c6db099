package cloudflare

import "errors"

// Failure classes of a single upstream call. Errors returned by Client wrap exactly one of them.
var (
	// ErrTransport means the API could not be reached or answered with a non-2xx status.
	ErrTransport = errors.New("transport failure")
	// ErrParse means the response body did not have the expected shape.
	ErrParse = errors.New("unexpected response")
	// ErrAPIReported means the API answered but reported errors in its payload.
	ErrAPIReported = errors.New("api reported error")

	ErrZoneNotFound       = errors.New("zone not found")
	ErrDeploymentNotFound = errors.New("deployment not found")
)
