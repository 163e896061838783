// Package backend is the typed client of the Payzee REST API. It forwards the
// session identity as user_id/user_type cookies, guards the API with a circuit
// breaker, and classifies every failure into a domain error code once, here.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"payzee/internal/platform/metrics"
	"payzee/internal/platform/tracer"
	dErrors "payzee/pkg/domain-errors"
	"payzee/pkg/platform/circuit"
	"payzee/pkg/requestcontext"
)

// maxResponseBytes bounds how much of a backend response body is read.
const maxResponseBytes = 10 << 20

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Client. Only BaseURL is required.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient HTTPDoer
	Breaker    *circuit.Breaker
	Metrics    *metrics.Metrics
	Tracer     tracer.Tracer
	Logger     *slog.Logger
}

// Client calls the Payzee REST API.
type Client struct {
	baseURL string
	http    HTTPDoer
	breaker *circuit.Breaker
	metrics *metrics.Metrics
	tracer  tracer.Tracer
	logger  *slog.Logger
}

func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    cfg.HTTPClient,
		breaker: cfg.Breaker,
		metrics: cfg.Metrics,
		tracer:  cfg.Tracer,
		logger:  cfg.Logger,
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: cfg.Timeout}
	}
	if c.breaker == nil {
		c.breaker = circuit.New("backend")
	}
	if c.tracer == nil {
		c.tracer = tracer.NewNoop()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// call describes one backend request.
type call struct {
	method   string
	resource string // metrics/tracing label, e.g. "schemes"
	path     string
	body     any
	out      any
	// public calls (login, signup) carry no session cookies.
	public bool
}

// errorBody matches both FastAPI error shapes:
// {"detail": "message"} and {"detail": [{"msg": "...", "loc": [...]}]}.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationDetail struct {
	Msg string `json:"msg"`
}

func (c *Client) do(ctx context.Context, cl call) (err error) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, tracer.SpanBackendCall,
		tracer.String(tracer.AttrHTTPMethod, cl.method),
		tracer.String(tracer.AttrResource, cl.resource),
		tracer.String(tracer.AttrPath, cl.path),
	)
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = string(dErrors.CodeOf(err))
		}
		span.SetAttributes(tracer.String(tracer.AttrOutcome, outcome))
		span.End(err)
		c.metrics.ObserveBackendCall(cl.resource, cl.method, outcome, time.Since(start).Seconds())
	}()

	if !c.breaker.Allow() {
		span.AddEvent(tracer.EventBreakerRejected)
		return dErrors.New(dErrors.CodeUnavailable, "backend temporarily unavailable, please try again shortly")
	}

	req, err := c.newRequest(ctx, cl)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.transportError(ctx, cl, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(tracer.Int(tracer.AttrHTTPStatus, resp.StatusCode))

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.recordFailure(ctx)
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to read backend response")
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.recordFailure(ctx)
		c.logger.WarnContext(ctx, "backend server error",
			"method", cl.method,
			"path", cl.path,
			"status", resp.StatusCode,
			"request_id", requestcontext.RequestID(ctx),
		)
		return dErrors.New(dErrors.CodeUnavailable, "backend unavailable, please try again later")
	}
	c.recordSuccess(ctx)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classifyStatus(resp.StatusCode, cl.resource, payload)
	}

	if cl.out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, cl.out); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "malformed backend response")
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	var body io.Reader
	if cl.body != nil {
		raw, err := json.Marshal(cl.body)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode backend request")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build backend request")
	}
	req.Header.Set("Accept", "application/json")
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	if !cl.public {
		identity, err := requestcontext.RequireIdentity(ctx)
		if err != nil {
			return nil, err
		}
		req.AddCookie(&http.Cookie{Name: "user_id", Value: identity.GovernmentID.String()})
		req.AddCookie(&http.Cookie{Name: "user_type", Value: string(identity.UserType)})
	}
	return req, nil
}

func (c *Client) transportError(ctx context.Context, cl call, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		// The caller went away; the backend is not to blame.
		return dErrors.Wrap(err, dErrors.CodeTimeout, "request cancelled")
	case errors.Is(err, context.DeadlineExceeded) || isTimeout(err):
		c.recordFailure(ctx)
		return dErrors.Wrap(err, dErrors.CodeTimeout, "backend request timed out")
	default:
		c.recordFailure(ctx)
		c.logger.WarnContext(ctx, "backend unreachable",
			"method", cl.method,
			"path", cl.path,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "backend unreachable, please try again later")
	}
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

func (c *Client) recordFailure(ctx context.Context) {
	if change := c.breaker.RecordFailure(); change.Opened {
		c.logger.WarnContext(ctx, "backend circuit opened", "breaker", c.breaker.Name())
		c.metrics.SetBreakerOpen(c.breaker.Name(), true)
	}
}

func (c *Client) recordSuccess(ctx context.Context) {
	if change := c.breaker.RecordSuccess(); change.Closed {
		c.logger.InfoContext(ctx, "backend circuit closed", "breaker", c.breaker.Name())
		c.metrics.SetBreakerOpen(c.breaker.Name(), false)
	}
}

// classifyStatus maps a non-2xx, non-5xx backend status to a domain error.
func classifyStatus(status int, resource string, payload []byte) error {
	detail := errorDetail(payload)
	switch status {
	case http.StatusUnauthorized:
		return dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	case http.StatusForbidden:
		return dErrors.New(dErrors.CodeForbidden, "access denied")
	case http.StatusNotFound:
		return dErrors.New(dErrors.CodeNotFound, singular(resource)+" not found")
	case http.StatusUnprocessableEntity:
		if detail == "" {
			detail = "validation failed"
		}
		return dErrors.New(dErrors.CodeValidation, detail)
	case http.StatusConflict:
		if detail == "" {
			detail = "conflicting " + singular(resource)
		}
		return dErrors.New(dErrors.CodeConflict, detail)
	case http.StatusBadRequest:
		if detail == "" {
			detail = "bad request"
		}
		return dErrors.New(dErrors.CodeBadRequest, detail)
	default:
		return dErrors.New(dErrors.CodeUnavailable, fmt.Sprintf("unexpected backend status %d", status))
	}
}

// errorDetail returns the plain detail string, or the first validation message.
func errorDetail(payload []byte) string {
	var body errorBody
	if err := json.Unmarshal(payload, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}
	var msg string
	if err := json.Unmarshal(body.Detail, &msg); err == nil {
		return msg
	}
	var details []validationDetail
	if err := json.Unmarshal(body.Detail, &details); err == nil {
		for _, d := range details {
			if d.Msg != "" {
				return d.Msg
			}
		}
	}
	return ""
}

func singular(resource string) string {
	switch resource {
	case "":
		return "resource"
	case "citizens":
		return "beneficiary"
	default:
		return strings.TrimSuffix(resource, "s")
	}
}

// Ping reports whether the backend answers at all. Any status below 500 counts.
func (c *Client) Ping(ctx context.Context) error {
	if !c.breaker.Allow() {
		return dErrors.New(dErrors.CodeUnavailable, "backend circuit open")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("backend returned %d", resp.StatusCode)
	}
	return nil
}
