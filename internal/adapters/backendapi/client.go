// Package backendapi is the HTTP/JSON client for the e-commerce backend.
//
// Responses are decoded from the {success,data,message,errors} envelope into
// typed records; non-2xx statuses map to internal/errors codes.
package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	domainauth "github.com/target/ecompanel-ui/internal/domain/auth"
	"github.com/target/ecompanel-ui/internal/domain/model"
	apperrors "github.com/target/ecompanel-ui/internal/errors"
	"github.com/target/ecompanel-ui/internal/observability/statsd"
)

const maxResponseBytes = 8 << 20

// Config configures a Client.
type Config struct {
	BaseURL         string
	Timeout         time.Duration
	RetryAttempts   int
	RetryBackoff    time.Duration
	TokenExpression string
	UserExpression  string
	HTTPClient      *http.Client
	Metrics         statsd.Sink
	Logger          *slog.Logger
}

// Client talks to the backend REST API. It is safe for concurrent use.
type Client struct {
	base      *url.URL
	hc        *http.Client
	retries   int
	backoff   time.Duration
	tokenExpr string
	userExpr  string
	metrics   statsd.Sink
	logger    *slog.Logger
}

// NewClient validates cfg and builds a Client.
func NewClient(cfg Config) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if raw == "" {
		return nil, errors.New("backend base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid backend base url %q", cfg.BaseURL)
	}

	tokenExpr, err := compileExpr(cfg.TokenExpression, "accessToken || token")
	if err != nil {
		return nil, fmt.Errorf("token expression: %w", err)
	}
	userExpr, err := compileExpr(cfg.UserExpression, "user")
	if err != nil {
		return nil, fmt.Errorf("user expression: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = 200 * time.Millisecond
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		base:      base,
		hc:        hc,
		retries:   max(cfg.RetryAttempts, 0),
		backoff:   backoff,
		tokenExpr: tokenExpr,
		userExpr:  userExpr,
		metrics:   cfg.Metrics,
		logger:    logger,
	}, nil
}

// compileExpr validates expr, substituting fallback when blank.
func compileExpr(expr, fallback string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		expr = fallback
	}
	if _, err := jmespath.Compile(expr); err != nil {
		return "", err
	}
	return expr, nil
}

// request describes one backend call.
type request struct {
	method string
	path   string
	query  url.Values

	// body is JSON-encoded unless raw is set.
	body        any
	raw         []byte
	contentType string

	// auth attaches the session token from the context. A missing token fails fast.
	// Writes and back-office reads (inactive or unpublished records) set it.
	auth bool
}

// envelope is decoded loosely so responses without a wrapper can still be read.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Title   string          `json:"title"`
}

// invoke performs req and returns the raw response body of a 2xx reply.
func (c *Client) invoke(ctx context.Context, req request) ([]byte, error) {
	body := req.raw
	contentType := req.contentType
	if body == nil && req.body != nil {
		b, err := json.Marshal(req.body)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "encode request")
		}
		body = b
		contentType = "application/json"
	}

	var token string
	if req.auth {
		tok, ok := domainauth.TokenFromContext(ctx)
		if !ok {
			return nil, apperrors.Unauthorized()
		}
		token = tok
	}

	attempts := 1
	if req.method == http.MethodGet {
		attempts += c.retries
	}

	var lastErr error
	for attempt := range attempts {
		payload, status, err := c.send(ctx, req, body, contentType, token)
		if err == nil {
			return payload, nil
		}
		lastErr = err
		if !retryable(status, err) || attempt == attempts-1 {
			break
		}
		delay := time.Duration(attempt+1) * c.backoff
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, apperrors.Wrap(ctx.Err(), apperrors.ErrCodeCanceled, "backend request canceled")
		case <-timer.C:
		}
	}
	return nil, lastErr
}

func (c *Client) send(ctx context.Context, req request, body []byte, contentType, token string) ([]byte, int, error) {
	u := c.base.JoinPath(req.path)
	if len(req.query) > 0 {
		u.RawQuery = req.query.Encode()
	}

	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, u.String(), rdr)
	if err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.ErrCodeInternal, "create backend request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.hc.Do(httpReq)
	if err != nil {
		c.observe(req, 0, time.Since(start))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, 0, apperrors.Wrap(ctxErr, apperrors.ErrCodeCanceled, "backend request canceled")
		}
		return nil, 0, apperrors.Unavailable(err, "backend request failed")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.observe(req, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, resp.StatusCode, apperrors.Unavailable(err, "read backend response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, errorFromResponse(resp.StatusCode, payload)
	}
	return payload, resp.StatusCode, nil
}

func (c *Client) observe(req request, status int, d time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.Timing("backend.request", d, map[string]string{
		"method":   req.method,
		"resource": resourceOf(req.path),
		"status":   strconv.Itoa(status),
	})
}

// resourceOf returns the first path segment after /api.
func resourceOf(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) >= 2 && strings.EqualFold(parts[0], "api") {
		return strings.ToLower(parts[1])
	}
	return "other"
}

func retryable(status int, err error) bool {
	if apperrors.GetCode(err) == apperrors.ErrCodeCanceled {
		return false
	}
	if status == 0 {
		return apperrors.IsUnavailable(err)
	}
	return status == http.StatusBadGateway || status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout
}

// errorFromResponse converts a non-2xx reply into an AppError.
func errorFromResponse(status int, body []byte) error {
	code := apperrors.FromStatus(status)
	if code == apperrors.ErrCodeUnauthorized {
		return apperrors.Unauthorized()
	}

	var env struct {
		Message string          `json:"message"`
		Title   string          `json:"title"`
		Errors  json.RawMessage `json:"errors"`
	}
	_ = json.Unmarshal(body, &env)

	// Message stays empty when the backend gave none so callers can substitute their own.
	appErr := apperrors.New(code, firstNonEmpty(env.Message, env.Title))
	appErr.Cause = fmt.Errorf("backend returned status %d", status)

	fields := decodeErrors(env.Errors)
	if len(fields) > 0 {
		appErr.Field = fields[0].Field
		appErr = appErr.WithDetails(fields.Messages()...)
	}
	return appErr
}

// decodeEnvelope unwraps a 2xx body into out. A body without a success flag is
// decoded directly. success=false is reported as a validation error.
func decodeEnvelope(payload []byte, out any) error {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return nil
	}
	var env envelope
	if payload[0] != '{' || json.Unmarshal(payload, &env) != nil || env.Success == nil {
		return decodeData(payload, out)
	}
	if !*env.Success {
		return errorFromFailedEnvelope(payload, env)
	}
	return decodeData(env.Data, out)
}

func errorFromFailedEnvelope(payload []byte, env envelope) error {
	var withErrors struct {
		Errors json.RawMessage `json:"errors"`
	}
	_ = json.Unmarshal(payload, &withErrors)
	appErr := apperrors.Validation(firstNonEmpty(env.Message, env.Title, "request was rejected"))
	if fields := decodeErrors(withErrors.Errors); len(fields) > 0 {
		appErr.Field = fields[0].Field
		appErr = appErr.WithDetails(fields.Messages()...)
	}
	return appErr
}

func decodeData(raw json.RawMessage, out any) error {
	if out == nil || len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "decode backend data")
	}
	return nil
}

func decodeErrors(raw json.RawMessage) model.ErrorList {
	if len(raw) == 0 {
		return nil
	}
	var list model.ErrorList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// getJSON performs an authenticated or anonymous GET and decodes the envelope data.
func getJSON[T any](ctx context.Context, c *Client, req request) (T, error) {
	var out T
	req.method = http.MethodGet
	payload, err := c.invoke(ctx, req)
	if err != nil {
		return out, err
	}
	if err := decodeEnvelope(payload, &out); err != nil {
		return out, err
	}
	return out, nil
}

// sendJSON performs a write and decodes the envelope data into a new T.
// A 2xx reply with no data yields the zero T.
func sendJSON[T any](ctx context.Context, c *Client, req request) (*T, error) {
	payload, err := c.invoke(ctx, req)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := decodeEnvelope(payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Health probes the backend root. Any HTTP response proves reachability.
func (c *Client) Health(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(httpReq)
	if err != nil {
		return apperrors.Unavailable(err, "backend unreachable")
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
	return resp.Body.Close()
}
