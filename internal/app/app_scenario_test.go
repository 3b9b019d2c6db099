package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"site-analytics/internal/cloudflare"
	"site-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	scenarioToken  = "scenario-token-1234"
	scenarioZoneID = "023e105f4ecef8ad9ca31a8372d0c353"
)

// fakeUpstream answers zone lookups and analytics queries the way the real API shapes them.
func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/client/v4/zones", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+scenarioToken, r.Header.Get("Authorization"))
		if r.URL.Query().Get("name") != "example.com" {
			_, _ = w.Write([]byte(`{"success":true,"errors":[],"result":[]}`))
			return
		}
		fmt.Fprintf(w, `{"success":true,"errors":[],"result":[{"id":%q}]}`, scenarioZoneID)
	})
	mux.HandleFunc("/graphql", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+scenarioToken, r.Header.Get("Authorization"))

		var query cloudflare.GraphQLQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&query))
		assert.Equal(t, scenarioZoneID, query.Variables["zoneTag"])

		zone := make(map[string]any)
		if strings.Contains(query.Query, "totals:") {
			zone["totals"] = []any{map[string]any{
				"dimensions": map[string]any{"date": query.Variables["until"]},
				"sum": map[string]any{
					"requests": 42, "pageViews": 20, "bytes": 4096,
					"responseStatusMap": []any{map[string]any{"edgeResponseStatus": 200, "requests": 40}, map[string]any{"edgeResponseStatus": 404, "requests": 2}},
					"browserMap":        []any{map[string]any{"uaBrowserFamily": "Chrome", "pageViews": 20}},
				},
			}}
		} else {
			for i := 0; ; i++ {
				if _, ok := query.Variables[fmt.Sprintf("since%d", i)]; !ok {
					break
				}
				zone[fmt.Sprintf("paths_%d", i)] = []any{
					map[string]any{"count": 2, "dimensions": map[string]any{"clientRequestPath": "/blog/hello"}},
					map[string]any{"count": 5, "dimensions": map[string]any{"clientRequestPath": "/favicon.ico"}},
				}
				zone[fmt.Sprintf("countries_%d", i)] = []any{
					map[string]any{"count": 1, "dimensions": map[string]any{"clientCountryName": "DE"}},
				}
			}
		}

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"data":   map[string]any{"viewer": map[string]any{"zones": []any{zone}}},
			"errors": nil,
		}))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestScenario_ConfigureResolveAndFetch(t *testing.T) {
	t.Parallel()

	upstream := fakeUpstream(t)
	cfg := validConfig(t)
	cfg.Log.Level = "error"
	cfg.Cloudflare.GraphQLEndpoint = upstream.URL + "/graphql"
	cfg.Cloudflare.APIBaseURL = upstream.URL + "/client/v4"

	application, err := New(cfg)
	require.NoError(t, err)
	handler := application.server.Handler

	do := func(method, target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	// 1. save the token and domain
	rr := do(http.MethodPut, "/settings", fmt.Sprintf(`{"apiToken":%q,"domain":"example.com"}`, scenarioToken))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), scenarioToken)

	// 2. analytics needs a zone first
	rr = do(http.MethodGet, "/analytics", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// 3. resolve the zone of the saved domain
	rr = do(http.MethodPost, "/zones/resolve", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var settings models.Settings
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &settings))
	assert.Equal(t, scenarioZoneID, settings.ZoneID)
	assert.Equal(t, "****1234", settings.APIToken)

	// 4. standard report over a week
	rr = do(http.MethodGet, "/analytics?days=7", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var report models.AnalyticsReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, "7d", report.PeriodLabel)
	assert.Equal(t, models.GranularityDaily, report.Granularity)
	require.Len(t, report.TimeSeries, 7)
	assert.Equal(t, int64(42), report.TimeSeries[6].Count)
	assert.Equal(t, int64(42), report.TotalRequests)
	assert.Equal(t, []models.PathCount{{Path: "/favicon.ico", Count: 35}, {Path: "/blog/hello", Count: 14}}, report.TopPaths)
	assert.Equal(t, []models.CountryCount{{Country: "DE", Count: 7}}, report.TopCountries)
	assert.Equal(t, []models.StatusCount{{Status: 200, Count: 40}, {Status: 404, Count: 2}}, report.StatusCodes)
	assert.Nil(t, report.PartialFailure)

	// 5. engagement report drops non-content paths and counts page views
	rr = do(http.MethodGet, "/analytics?days=7&engagement=true", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	report = models.AnalyticsReport{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Equal(t, int64(20), report.TotalRequests)
	assert.Equal(t, []models.PathCount{{Path: "/blog/hello", Count: 14}}, report.TopPaths)

	// 6. unknown domain is reported verbatim
	rr = do(http.MethodPost, "/zones/resolve", `{"domain":"unknown.org"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "no zone found for domain 'unknown.org'")
}
