// Package http is the transport shared by every builder. It scopes requests
// to an account, authenticates them and turns error responses into the
// alldressed error types.
package http

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/all-dressed/alldressed-go/internal/constants"
	"github.com/all-dressed/alldressed-go/pkg/alldressed"
)

// Request is a call relative to the account.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    any
	Headers map[string]string
}

// Response is the raw answer of the API.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// Envelope decodes the body as a response envelope.
func (r *Response) Envelope() (alldressed.Envelope, error) {
	return alldressed.DecodeEnvelope(r.Body)
}

// Client sends requests to one account of the API.
type Client struct {
	baseURL   string
	accountID string
	apiKey    string
	userAgent string

	logger alldressed.Logger
	debug  bool

	timeout       time.Duration
	skipTLSVerify bool
	retryMax      int
	retryWaitMin  time.Duration
	retryWaitMax  time.Duration
	transport     http.RoundTripper
	baseClient    *http.Client

	httpClient *retryablehttp.Client
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger alldressed.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDebug logs every request and response.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout bounds each request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithSkipTLSVerify disables verification of the server certificate.
func WithSkipTLSVerify(skip bool) Option {
	return func(c *Client) {
		c.skipTLSVerify = skip
	}
}

// WithRetryConfig retries 429 and 5xx responses up to retryMax times.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = retryMax
		c.retryWaitMin = waitMin
		c.retryWaitMax = waitMax
	}
}

// WithTransport replaces the round tripper, e.g. with a FakeTransport.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithHTTPClient uses client for the requests. Its transport is wrapped for
// tracing.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.baseClient = client
	}
}

// NewClient returns a transport for the account of baseURL.
func NewClient(baseURL, accountID, apiKey string, opts ...Option) *Client {
	client := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		accountID:    accountID,
		apiKey:       apiKey,
		userAgent:    constants.DefaultUserAgent,
		logger:       noopLogger{},
		timeout:      constants.DefaultHTTPTimeout,
		retryMax:     constants.DefaultRetryMax,
		retryWaitMin: constants.DefaultRetryWaitMin,
		retryWaitMax: constants.DefaultRetryWaitMax,
		tracer:       otel.Tracer(constants.TracerName),
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = client.newHTTPClient()
	retryClient.RetryMax = client.retryMax
	retryClient.RetryWaitMin = client.retryWaitMin
	retryClient.RetryWaitMax = client.retryWaitMax
	retryClient.ErrorHandler = keepResponse
	retryClient.Logger = nil

	if client.debug {
		retryClient.Logger = leveledLogger{logger: client.logger}
	}

	client.httpClient = retryClient

	return client
}

func (c *Client) newHTTPClient() *http.Client {
	if c.baseClient != nil {
		httpClient := *c.baseClient
		httpClient.Transport = otelhttp.NewTransport(c.roundTripper(c.baseClient.Transport))

		return &httpClient
	}

	return &http.Client{
		Timeout:   c.timeout,
		Transport: otelhttp.NewTransport(c.roundTripper(nil)),
	}
}

func (c *Client) roundTripper(fallback http.RoundTripper) http.RoundTripper {
	if c.transport != nil {
		return c.transport
	}

	if fallback != nil {
		return fallback
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.IdleConnTimeout = constants.DefaultIdleConnTimeout
	transport.TLSClientConfig = &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: c.skipTLSVerify, //nolint:gosec // opt-in through configuration
	}

	return transport
}

// AccountID returns the account requests are scoped to.
func (c *Client) AccountID() string {
	return c.accountID
}

// WithAccount returns a copy of the client scoped to another account. Both
// share the underlying connections.
func (c *Client) WithAccount(accountID string) *Client {
	clone := *c
	clone.accountID = accountID

	return &clone
}

// Logger returns the configured logger.
func (c *Client) Logger() alldressed.Logger {
	return c.logger
}

// URL returns the absolute URL of path for the account.
func (c *Client) URL(path string, query url.Values) string {
	endpoint := c.baseURL + "/" + constants.AccountsSegment + "/" + c.accountID + "/" + strings.Trim(path, "/")

	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	return endpoint
}

// Do sends req. Non-2xx responses are returned together with the error built
// by alldressed.NewResponseError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.accountID == "" {
		return nil, alldressed.ErrMissingAccount
	}

	ctx, span := c.tracer.Start(ctx, "alldressed.http", trace.WithAttributes(
		attribute.String("http.request.method", req.Method),
		attribute.String("alldressed.account", c.accountID),
		attribute.String("alldressed.path", req.Path),
	))
	defer span.End()

	endpoint := c.URL(req.Path, req.Query)

	var body interface{}

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		body = encoded
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    endpoint,
		})
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, fmt.Errorf("sending %s %s: %w", req.Method, req.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
		Header:     resp.Header,
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    endpoint,
		})
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respErr := alldressed.NewResponseError(resp.StatusCode, respBody)
		span.SetStatus(codes.Error, respErr.Error())

		return response, respErr
	}

	return response, nil
}

// Get sends a GET request with query.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post sends a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put sends a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch sends a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// keepResponse hands the last response back once retries are exhausted so
// that its status and body reach the caller.
func keepResponse(resp *http.Response, err error, _ int) (*http.Response, error) {
	if resp != nil {
		return resp, nil
	}

	return nil, err
}

type noopLogger struct{}

func (noopLogger) Debug(string, map[string]interface{}) {}
func (noopLogger) Info(string, map[string]interface{})  {}
func (noopLogger) Warn(string, map[string]interface{})  {}
func (noopLogger) Error(string, map[string]interface{}) {}

// leveledLogger bridges retryablehttp logs onto the client logger.
type leveledLogger struct {
	logger alldressed.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fields(keysAndValues))
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fields(keysAndValues))
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fields(keysAndValues))
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fields(keysAndValues))
}

func fields(keysAndValues []interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		out[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return out
}

var _ retryablehttp.LeveledLogger = leveledLogger{}
