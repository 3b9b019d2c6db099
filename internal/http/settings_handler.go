package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"site-analytics/internal/models"
	"site-analytics/internal/sites"
)

const maxSettingsBodyBytes = 16 << 10

type getSettingsHandler struct {
	siteService sites.SiteService
}

func NewGetSettingsHandler(siteService sites.SiteService) AppHttpHandler {
	return &getSettingsHandler{siteService: siteService}
}

// Handle processes GET /settings requests. The token is never returned in full.
func (h *getSettingsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	settings, err := h.siteService.Settings(r.Context())
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, settings)
	return nil
}

type updateSettingsHandler struct {
	siteService sites.SiteService
}

func NewUpdateSettingsHandler(siteService sites.SiteService) AppHttpHandler {
	return &updateSettingsHandler{siteService: siteService}
}

// Handle processes PUT /settings requests.
func (h *updateSettingsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var update models.Settings
	if err := decodeJSONBody(w, r, maxSettingsBodyBytes, &update); err != nil {
		return err
	}

	settings, err := h.siteService.UpdateSettings(r.Context(), &update)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, settings)
	return nil
}

type resetSettingsHandler struct {
	siteService sites.SiteService
}

func NewResetSettingsHandler(siteService sites.SiteService) AppHttpHandler {
	return &resetSettingsHandler{siteService: siteService}
}

// Handle processes DELETE /settings requests.
func (h *resetSettingsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if err := h.siteService.ResetSettings(r.Context()); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// decodeJSONBody decodes a single JSON object. An empty body leaves out untouched.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, maxBytes int64, out any) error {
	if ct := contentType(r); ct != "" {
		if mediaType, _, err := mime.ParseMediaType(ct); err != nil || mediaType != contentTypeJSON {
			return errInvalidBody(errors.New("content type must be " + contentTypeJSON))
		}
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errInvalidBody(err)
	}
	return nil
}
