package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"site-analytics/internal/models"
)

const (
	DefaultGraphQLEndpoint = "https://api.cloudflare.com/client/v4/graphql"
	DefaultAPIBaseURL      = "https://api.cloudflare.com/client/v4"
	DefaultTimeout         = 15 * time.Second

	maxResponseBytes = 16 << 20
)

// GraphQLQuery is the request body of one GraphQL call.
type GraphQLQuery struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

//go:generate mockgen -source=client.go -destination=./mocks/client_mock.go -package=mocks
type Client interface {
	// Query executes one GraphQL document and returns the raw "data" member of the response.
	Query(ctx context.Context, apiToken string, query *GraphQLQuery) (json.RawMessage, error)
	// LookupZoneID resolves a domain to the identifier of the first matching zone.
	LookupZoneID(ctx context.Context, apiToken string, domain string) (string, error)
	// LastDeployment returns the most recent successful production deployment of a Pages project.
	LastDeployment(ctx context.Context, apiToken string, accountID string, projectName string) (*models.Deployment, error)
}

type ClientOptions struct {
	GraphQLEndpoint string
	APIBaseURL      string
	Timeout         time.Duration
}

type client struct {
	httpClient      *http.Client
	graphqlEndpoint string
	apiBaseURL      string
}

// NewClient builds a Client sharing one pooled http.Client across calls.
// Every call is bounded by opts.Timeout; there are no retries.
func NewClient(opts ClientOptions) Client {
	if opts.GraphQLEndpoint == "" {
		opts.GraphQLEndpoint = DefaultGraphQLEndpoint
	}
	if opts.APIBaseURL == "" {
		opts.APIBaseURL = DefaultAPIBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	return &client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		graphqlEndpoint: opts.GraphQLEndpoint,
		apiBaseURL:      strings.TrimRight(opts.APIBaseURL, "/"),
	}
}

type apiMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []apiMessage    `json:"errors"`
}

type restResponse[T any] struct {
	Success bool         `json:"success"`
	Errors  []apiMessage `json:"errors"`
	Result  T            `json:"result"`
}

func (c *client) Query(ctx context.Context, apiToken string, query *GraphQLQuery) (data json.RawMessage, err error) {
	start := time.Now()
	defer func() {
		metricRequestDuration.WithLabelValues(operationGraphQL, outcomeOf(err)).Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to encode graphql query: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	status, respBody, err := c.do(req, apiToken)
	if err != nil {
		return nil, err
	}

	var envelope graphQLResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		if !isSuccess(status) {
			return nil, fmt.Errorf("%w: unexpected status %d", ErrTransport, status)
		}
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if !isSuccess(status) {
		return nil, fmt.Errorf("%w: unexpected status %d%s", ErrTransport, status, firstMessageSuffix(envelope.Errors))
	}
	if len(envelope.Errors) > 0 {
		msg := envelope.Errors[0].Message
		if msg == "" {
			msg = "unknown GraphQL error"
		}
		return nil, fmt.Errorf("%w: %s", ErrAPIReported, msg)
	}
	if isJSONNull(envelope.Data) {
		return nil, fmt.Errorf("%w: response has no data", ErrParse)
	}

	return envelope.Data, nil
}

func (c *client) LookupZoneID(ctx context.Context, apiToken string, domain string) (zoneID string, err error) {
	start := time.Now()
	defer func() {
		metricRequestDuration.WithLabelValues(operationZoneLookup, outcomeOf(err)).Observe(time.Since(start).Seconds())
	}()

	endpoint := fmt.Sprintf("%s/zones?name=%s", c.apiBaseURL, url.QueryEscape(domain))
	zones, err := getREST[[]struct {
		ID string `json:"id"`
	}](ctx, c, apiToken, endpoint)
	if err != nil {
		return "", err
	}

	for _, zone := range zones {
		if zone.ID != "" {
			return zone.ID, nil
		}
	}
	return "", fmt.Errorf("%w: no zone found for domain '%s'", ErrZoneNotFound, domain)
}

type pagesDeployment struct {
	URL         *string `json:"url"`
	CreatedOn   string  `json:"created_on"`
	LatestStage struct {
		Name    string  `json:"name"`
		Status  string  `json:"status"`
		EndedOn *string `json:"ended_on"`
	} `json:"latest_stage"`
	DeploymentTrigger struct {
		Metadata struct {
			CommitHash    *string `json:"commit_hash"`
			CommitMessage *string `json:"commit_message"`
		} `json:"metadata"`
	} `json:"deployment_trigger"`
}

func (c *client) LastDeployment(ctx context.Context, apiToken string, accountID string, projectName string) (deployment *models.Deployment, err error) {
	start := time.Now()
	defer func() {
		metricRequestDuration.WithLabelValues(operationDeployment, outcomeOf(err)).Observe(time.Since(start).Seconds())
	}()

	endpoint := fmt.Sprintf("%s/accounts/%s/pages/projects/%s/deployments?env=production&per_page=5",
		c.apiBaseURL, url.PathEscape(accountID), url.PathEscape(projectName))
	deployments, err := getREST[[]pagesDeployment](ctx, c, apiToken, endpoint)
	if err != nil {
		return nil, err
	}

	for _, dep := range deployments {
		if dep.LatestStage.Name != "deploy" || dep.LatestStage.Status != "success" {
			continue
		}
		deployedAt := dep.CreatedOn
		if dep.LatestStage.EndedOn != nil && *dep.LatestStage.EndedOn != "" {
			deployedAt = *dep.LatestStage.EndedOn
		}
		return &models.Deployment{
			DeployedAt:    deployedAt,
			CommitHash:    dep.DeploymentTrigger.Metadata.CommitHash,
			CommitMessage: dep.DeploymentTrigger.Metadata.CommitMessage,
			Status:        "success",
			URL:           dep.URL,
		}, nil
	}
	return nil, fmt.Errorf("%w: no successful production deployment found", ErrDeploymentNotFound)
}

func getREST[T any](ctx context.Context, c *client, apiToken string, endpoint string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	status, respBody, err := c.do(req, apiToken)
	if err != nil {
		return zero, err
	}

	var envelope restResponse[T]
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		if !isSuccess(status) {
			return zero, fmt.Errorf("%w: unexpected status %d", ErrTransport, status)
		}
		return zero, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if !isSuccess(status) {
		return zero, fmt.Errorf("%w: unexpected status %d%s", ErrTransport, status, firstMessageSuffix(envelope.Errors))
	}
	if !envelope.Success {
		msg := "request was not successful"
		if len(envelope.Errors) > 0 && envelope.Errors[0].Message != "" {
			msg = envelope.Errors[0].Message
		}
		return zero, fmt.Errorf("%w: %s", ErrAPIReported, msg)
	}
	return envelope.Result, nil
}

// do sends req with bearer auth and returns the status and the (size-limited) body.
func (c *client) do(req *http.Request, apiToken string) (int, []byte, error) {
	req.Header.Set("Authorization", "Bearer "+apiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: failed to read response: %w", ErrTransport, err)
	}
	if len(body) > maxResponseBytes {
		return 0, nil, fmt.Errorf("%w: response exceeds %d bytes", ErrParse, maxResponseBytes)
	}
	return resp.StatusCode, body, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func isJSONNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func firstMessageSuffix(messages []apiMessage) string {
	if len(messages) == 0 || messages[0].Message == "" {
		return ""
	}
	return ": " + messages[0].Message
}
