package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"stock-news-alert/internal/logger"
	"stock-news-alert/internal/types"
)

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

// Client is a small JSON-over-HTTP client. Every call is single-shot: a
// failure surfaces immediately as a RemoteServiceError.
type Client struct {
	httpClient *http.Client
	service    string
	headers    map[string]string
	useLogging bool
}

// ClientOption configures the API client
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client, keeping its timeout if set
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc == nil {
			return
		}
		timeout := c.httpClient.Timeout
		c.httpClient = hc
		if c.httpClient.Timeout == 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHeader sets a default header for all requests
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithLogging enables request/response debug logging
func WithLogging(enabled bool) ClientOption {
	return func(c *Client) {
		c.useLogging = enabled
	}
}

// NewClient creates a client for the named service. The name is carried in
// every error the client returns.
func NewClient(service string, opts ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		service: service,
		headers: map[string]string{
			"Accept": "application/json",
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Response represents an HTTP response
type Response struct {
	StatusCode int
	Body       []byte
	service    string
}

// GET performs a GET request against rawURL with the given query parameters
func (c *Client) GET(ctx context.Context, rawURL string, query url.Values) (*Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &types.ConfigurationError{Msg: c.service + " base url", Err: err}
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	return c.Do(req)
}

// Do executes the HTTP request
func (c *Client) Do(req *http.Request) (*Response, error) {
	ctx := req.Context()

	for key, value := range c.headers {
		if req.Header.Get(key) == "" {
			req.Header.Set(key, value)
		}
	}

	var op *logger.OperationTimer
	if c.useLogging {
		// the query string carries API keys; log the path only
		op = logger.StartOperation(ctx, c.service+".http", "method", req.Method, "host", req.URL.Host, "path", req.URL.Path)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		rerr := &types.RemoteServiceError{Service: c.service, Msg: "request failed", Err: unwrapURLError(err)}
		if op != nil {
			op.EndWithError(rerr)
		}
		return nil, rerr
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		rerr := &types.RemoteServiceError{Service: c.service, StatusCode: httpResp.StatusCode, Msg: "failed to read response body", Err: err}
		if op != nil {
			op.EndWithError(rerr)
		}
		return nil, rerr
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Body:       body,
		service:    c.service,
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		rerr := &types.RemoteServiceError{
			Service:    c.service,
			StatusCode: httpResp.StatusCode,
			Msg:        snippet(body),
		}
		if op != nil {
			op.EndWithError(rerr)
		}
		return resp, rerr
	}

	if op != nil {
		op.End("status", httpResp.StatusCode, "body_size", len(body))
	}
	return resp, nil
}

// ParseJSON parses the response body as JSON into v
func (r *Response) ParseJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return &types.DataFormatError{Service: r.service, Msg: "response is not valid JSON", Err: err}
	}
	return nil
}

func snippet(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}

// unwrapURLError drops the *url.Error wrapper, whose message repeats the
// full URL including the API key.
func unwrapURLError(err error) error {
	if ue, ok := err.(*url.Error); ok {
		return ue.Err
	}
	return err
}
