package http

import (
	"net/http"

	"site-analytics/internal/sites"
)

type resolveZoneRequest struct {
	Domain string `json:"domain"`
}

type resolveZoneHandler struct {
	siteService sites.SiteService
}

func NewResolveZoneHandler(siteService sites.SiteService) AppHttpHandler {
	return &resolveZoneHandler{siteService: siteService}
}

// Handle processes POST /zones/resolve requests. Without a domain in the body the
// configured domain is used.
func (h *resolveZoneHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req resolveZoneRequest
	if err := decodeJSONBody(w, r, maxSettingsBodyBytes, &req); err != nil {
		return err
	}

	settings, err := h.siteService.ResolveZone(r.Context(), req.Domain)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, settings)
	return nil
}
