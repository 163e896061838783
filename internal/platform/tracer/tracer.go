// Package tracer is a thin tracing abstraction over OpenTelemetry used by the
// backend client and the services. Callers depend on Tracer and Span only;
// NoopTracer serves tests and OTelTracer serves production.
package tracer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, marking it failed when err is non-nil.
	// End must be called exactly once, typically via defer.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a span; the returned context carries it to child operations.
	//
	//   ctx, span := tr.Start(ctx, tracer.SpanBackendCall,
	//       tracer.String(tracer.AttrHTTPMethod, http.MethodGet),
	//   )
	//   defer span.End(err)
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// HashIdentifier shortens a SHA-256 of a login identifier so traces can be
// correlated without carrying the raw id number.
func HashIdentifier(value string) string {
	if value == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}

// Span names.
const (
	SpanBackendCall    = "backend.call"
	SpanDashboardBuild = "dashboard.build"
	SpanSchemeSubmit   = "scheme.submit"
	SpanLogin          = "auth.login"
)

// Attribute keys.
const (
	AttrHTTPMethod   = "http.method"
	AttrHTTPStatus   = "http.status_code"
	AttrResource     = "backend.resource"
	AttrPath         = "backend.path"
	AttrOutcome      = "backend.outcome"
	AttrGovernmentID = "government.id"
	AttrLoginID      = "login.id_hash"
	AttrShared       = "singleflight.shared"
)

// Event names.
const (
	EventBreakerRejected = "breaker.rejected"
)
