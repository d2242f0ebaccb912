// Package nodeapi provides a client for the HTTP API exposed by the blockchain
// nodes. Every endpoint is a GET returning a JSON document; failures come back
// as a {"success": false, "message": "..."} envelope.
package nodeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/chaindiff/internal/pkg/transport/nodeapi"

var (
	// ErrNodeReturnedError indicates that the node answered with its error envelope.
	ErrNodeReturnedError = errors.New("node error")

	// ErrEndpointNotFound indicates that the node does not serve the requested path.
	ErrEndpointNotFound = errors.New("endpoint not found")

	// ErrUnexpectedStatus indicates a non 2xx answer without the error envelope.
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// errorResponse is the envelope the node uses for failed requests.
type errorResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// Err returns the error described by the envelope, or nil when body is not
// an error envelope.
func (r errorResponse) Err(statusCode int) error {
	if r.Success == nil || *r.Success {
		return nil
	}

	if statusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrEndpointNotFound, r.Message)
	}
	return fmt.Errorf("%w: [%d] - %s", ErrNodeReturnedError, statusCode, r.Message)
}

func parseErrorResponse(statusCode int, body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	var data errorResponse
	if err := json.Unmarshal(trimmed, &data); err != nil {
		return nil
	}
	return data.Err(statusCode)
}

// Client performs requests against one node.
type Client interface {
	// BaseURL returns the node address the client was built for.
	BaseURL() string

	// Get requests path with the given query and returns the raw JSON body.
	Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
}

type client struct {
	baseURL    string
	httpClient *retryablehttp.Client

	tracer   trace.Tracer
	requests metric.Int64Counter
}

var _ Client = (*client)(nil)

func (c *client) BaseURL() string {
	return c.baseURL
}

func (c *client) endpoint(path string, query url.Values) string {
	endpoint := strings.TrimRight(c.baseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint
}

func (c *client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	ctx, span := c.tracer.Start(ctx, "nodeapi.Get", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	endpoint := c.endpoint(path, query)
	span.SetAttributes(attribute.String("http.url", endpoint))

	body, err := c.do(ctx, endpoint)

	outcome := "success"
	if err != nil {
		outcome = "failure"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	c.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("node", c.baseURL),
		attribute.String("path", path),
		attribute.String("outcome", outcome),
	))

	return body, err
}

func (c *client) do(ctx context.Context, endpoint string) (json.RawMessage, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if err := parseErrorResponse(res.StatusCode, body); err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	return body, nil
}

// NewClient returns a Client sending requests to the node at baseURL through
// httpClient. Requests are traced and counted through the global
// OpenTelemetry providers.
func NewClient(httpClient *retryablehttp.Client, baseURL string) (*client, error) {
	meter := otel.Meter(instrumentationName)
	requests, err := meter.Int64Counter("chaindiff.node.requests",
		metric.WithDescription("Requests sent to blockchain nodes"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return &client{
		baseURL:    baseURL,
		httpClient: httpClient,
		tracer:     otel.Tracer(instrumentationName),
		requests:   requests,
	}, nil
}
