package cloudflare

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Query_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var query GraphQLQuery
		require.NoError(t, json.Unmarshal(body, &query))
		assert.Equal(t, "{ viewer { zones { __typename } } }", query.Query)
		assert.Equal(t, "zone-1", query.Variables["zoneTag"])

		_, _ = w.Write([]byte(`{"data":{"viewer":{"zones":[]}},"errors":null}`))
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	data, err := c.Query(context.Background(), "token-1", &GraphQLQuery{
		Query:     "{ viewer { zones { __typename } } }",
		Variables: map[string]any{"zoneTag": "zone-1"},
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"viewer":{"zones":[]}}`, string(data))
}

func TestClient_Query_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantMessage string
	}{
		{
			name:        "api reported error inside 200",
			status:      http.StatusOK,
			body:        `{"data":null,"errors":[{"message":"quota exceeded"}]}`,
			wantErr:     ErrAPIReported,
			wantMessage: "quota exceeded",
		},
		{
			name:        "api reported error without message",
			status:      http.StatusOK,
			body:        `{"data":null,"errors":[{}]}`,
			wantErr:     ErrAPIReported,
			wantMessage: "unknown GraphQL error",
		},
		{
			name:    "malformed body",
			status:  http.StatusOK,
			body:    `<html>oops</html>`,
			wantErr: ErrParse,
		},
		{
			name:    "missing data",
			status:  http.StatusOK,
			body:    `{"data":null}`,
			wantErr: ErrParse,
		},
		{
			name:        "non-2xx status",
			status:      http.StatusForbidden,
			body:        `{"errors":[{"message":"Authentication error"}]}`,
			wantErr:     ErrTransport,
			wantMessage: "Authentication error",
		},
		{
			name:    "non-2xx status without json",
			status:  http.StatusBadGateway,
			body:    `bad gateway`,
			wantErr: ErrTransport,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).Query(context.Background(), "t", &GraphQLQuery{Query: "{}"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMessage != "" {
				assert.Contains(t, err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestClient_Query_NetworkFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	_, err := newTestClient(endpoint).Query(context.Background(), "t", &GraphQLQuery{Query: "{}"})
	assert.ErrorIs(t, err, ErrTransport)
}

func TestClient_Query_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	c := NewClient(ClientOptions{GraphQLEndpoint: server.URL, APIBaseURL: server.URL, Timeout: 50 * time.Millisecond})
	_, err := c.Query(context.Background(), "t", &GraphQLQuery{Query: "{}"})
	assert.ErrorIs(t, err, ErrTransport)
}

func TestClient_LookupZoneID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zones", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		switch r.URL.Query().Get("name") {
		case "example.com":
			_, _ = w.Write([]byte(`{"success":true,"errors":[],"result":[{"id":"zone-a"},{"id":"zone-b"}]}`))
		case "denied.com":
			_, _ = w.Write([]byte(`{"success":false,"errors":[{"code":9109,"message":"Invalid access token"}],"result":null}`))
		default:
			_, _ = w.Write([]byte(`{"success":true,"errors":[],"result":[]}`))
		}
	}))
	defer server.Close()

	c := newTestClient(server.URL)

	zoneID, err := c.LookupZoneID(context.Background(), "token-1", "example.com")
	require.NoError(t, err)
	assert.Equal(t, "zone-a", zoneID, "first matching zone wins")

	_, err = c.LookupZoneID(context.Background(), "token-1", "missing.org")
	assert.ErrorIs(t, err, ErrZoneNotFound)
	assert.Contains(t, err.Error(), "no zone found for domain 'missing.org'")

	_, err = c.LookupZoneID(context.Background(), "token-1", "denied.com")
	assert.ErrorIs(t, err, ErrAPIReported)
	assert.Contains(t, err.Error(), "Invalid access token")
}

func TestClient_LastDeployment(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/acc-1/pages/projects/blog/deployments", r.URL.Path)
		assert.Equal(t, "production", r.URL.Query().Get("env"))
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))

		_, _ = w.Write([]byte(`{"success":true,"errors":[],"result":[
			{"url":"https://building.example.pages.dev","created_on":"2026-10-15T10:00:00Z",
			 "latest_stage":{"name":"build","status":"active","ended_on":null}},
			{"url":"https://abc.example.pages.dev","created_on":"2026-10-14T09:00:00Z",
			 "latest_stage":{"name":"deploy","status":"success","ended_on":"2026-10-14T09:02:00Z"},
			 "deployment_trigger":{"metadata":{"commit_hash":"abc123","commit_message":"Add post"}}},
			{"url":"https://old.example.pages.dev","created_on":"2026-10-10T09:00:00Z",
			 "latest_stage":{"name":"deploy","status":"success","ended_on":"2026-10-10T09:02:00Z"}}
		]}`))
	}))
	defer server.Close()

	deployment, err := newTestClient(server.URL).LastDeployment(context.Background(), "t", "acc-1", "blog")
	require.NoError(t, err)

	assert.Equal(t, "2026-10-14T09:02:00Z", deployment.DeployedAt)
	assert.Equal(t, "success", deployment.Status)
	require.NotNil(t, deployment.CommitHash)
	assert.Equal(t, "abc123", *deployment.CommitHash)
	require.NotNil(t, deployment.CommitMessage)
	assert.Equal(t, "Add post", *deployment.CommitMessage)
	require.NotNil(t, deployment.URL)
	assert.Equal(t, "https://abc.example.pages.dev", *deployment.URL)
}

func TestClient_LastDeployment_FallsBackToCreatedOn(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"result":[
			{"created_on":"2026-10-14T09:00:00Z","latest_stage":{"name":"deploy","status":"success"}}
		]}`))
	}))
	defer server.Close()

	deployment, err := newTestClient(server.URL).LastDeployment(context.Background(), "t", "acc-1", "blog")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-14T09:00:00Z", deployment.DeployedAt)
	assert.Nil(t, deployment.CommitHash)
	assert.Nil(t, deployment.URL)
}

func TestClient_LastDeployment_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"result":[{"latest_stage":{"name":"deploy","status":"failure"}}]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).LastDeployment(context.Background(), "t", "acc-1", "blog")
	assert.ErrorIs(t, err, ErrDeploymentNotFound)
}

func TestOutcomeOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, outcomeOK, outcomeOf(nil))
	assert.Equal(t, outcomeTransport, outcomeOf(ErrTransport))
	assert.Equal(t, outcomeAPIReported, outcomeOf(ErrAPIReported))
	assert.Equal(t, outcomeNotFound, outcomeOf(ErrZoneNotFound))
	assert.Equal(t, outcomeParse, outcomeOf(ErrParse))
}

func newTestClient(baseURL string) Client {
	return NewClient(ClientOptions{
		GraphQLEndpoint: baseURL,
		APIBaseURL:      baseURL,
		Timeout:         5 * time.Second,
	})
}
