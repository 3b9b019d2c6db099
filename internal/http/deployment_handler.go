package http

import (
	"net/http"

	"site-analytics/internal/sites"
)

type lastDeploymentHandler struct {
	siteService sites.SiteService
}

func NewLastDeploymentHandler(siteService sites.SiteService) AppHttpHandler {
	return &lastDeploymentHandler{siteService: siteService}
}

// Handle processes GET /deployments/latest requests.
func (h *lastDeploymentHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	deployment, err := h.siteService.LastDeployment(r.Context())
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, deployment)
	return nil
}
