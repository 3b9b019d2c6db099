package http

import (
	"net/http"
	"strconv"

	"site-analytics/internal/aggregators"
	"site-analytics/internal/shared/validators"
	"site-analytics/internal/sites"
)

const defaultAnalyticsDays = 7

type analyticsQuery struct {
	Days       int  `query:"days" validate:"min=1"`
	Engagement bool `query:"engagement"`
}

type analyticsHandler struct {
	analyticsService aggregators.AnalyticsService
	siteService      sites.SiteService
	validate         *validators.Validate
}

func NewAnalyticsHandler(analyticsService aggregators.AnalyticsService, siteService sites.SiteService) AppHttpHandler {
	return &analyticsHandler{
		analyticsService: analyticsService,
		siteService:      siteService,
		validate:         validators.New("query"),
	}
}

// Handle processes GET /analytics?days=N&engagement=true|false requests.
func (h *analyticsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	query, err := h.parseQuery(r)
	if err != nil {
		return err
	}

	conn, err := h.siteService.Connection(r.Context())
	if err != nil {
		return err
	}

	report, err := h.analyticsService.FetchAnalytics(r.Context(), conn.ZoneID, conn.APIToken, query.Days, query.Engagement)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, report)
	return nil
}

func (h *analyticsHandler) parseQuery(r *http.Request) (*analyticsQuery, error) {
	values := r.URL.Query()
	query := &analyticsQuery{Days: defaultAnalyticsDays}

	if raw := values.Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errInvalidQueryParam([]string{"days (int)"})
		}
		query.Days = days
	}
	if raw := values.Get("engagement"); raw != "" {
		engagement, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errInvalidQueryParam([]string{"engagement (bool)"})
		}
		query.Engagement = engagement
	}

	if err := h.validate.Struct(query); err != nil {
		return nil, errInvalidQueryParam(validators.Describe(err))
	}
	return query, nil
}
