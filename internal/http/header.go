package http

import (
	"net/http"
	"strings"

	"github.com/mileusna/useragent"
)

const (
	headerRequestID   = "x-request-id"
	headerContentType = "content-type"
	headerUserAgent   = "user-agent"

	contentTypeJSON = "application/json"

	unknownUserAgent = "unknown"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func contentType(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerContentType))
}

// userAgentFamily reduces the caller's user agent to its family, e.g. "Chrome" or "curl".
func userAgentFamily(r *http.Request) string {
	ua := strings.TrimSpace(r.Header.Get(headerUserAgent))
	if ua == "" {
		return unknownUserAgent
	}
	if parsed := useragent.Parse(ua); parsed.Name != "" {
		return parsed.Name
	}
	return unknownUserAgent
}
