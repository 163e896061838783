package tracer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestNoopTracer(t *testing.T) {
	tr := NewNoop()
	ctx := context.Background()

	newCtx, span := tr.Start(ctx, SpanBackendCall, String(AttrHTTPMethod, "GET"))

	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)
	span.SetAttributes(Int(AttrHTTPStatus, 200))
	span.AddEvent(EventBreakerRejected)
	span.End(errors.New("boom"))
}

func TestOTelTracerWithInjectedProvider(t *testing.T) {
	tr := NewOTel(WithOTelTracer(noop.NewTracerProvider().Tracer("test")))

	ctx, span := tr.Start(context.Background(), SpanBackendCall, String(AttrResource, "schemes"))
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	assert.NotPanics(t, func() {
		span.SetAttributes(Int(AttrHTTPStatus, 502))
		span.AddEvent(EventBreakerRejected)
		span.End(errors.New("upstream down"))
	})
}

func TestToOTelAttributes(t *testing.T) {
	attrs := toOTelAttributes([]Attribute{
		String("s", "v"),
		Bool("b", true),
		Int("i", 3),
		Duration("d", 1500*time.Millisecond),
		Float64("f", 1.5),
		{Key: "dropped", Value: struct{}{}},
	})

	require.Len(t, attrs, 5)
	assert.Equal(t, attribute.String("s", "v"), attrs[0])
	assert.Equal(t, attribute.Int64("d", 1500), attrs[3])
	assert.Nil(t, toOTelAttributes(nil))
}

func TestHashIdentifier(t *testing.T) {
	assert.Empty(t, HashIdentifier(""))
	h := HashIdentifier("AADHAAR-1234")
	assert.Len(t, h, 16)
	assert.Equal(t, h, HashIdentifier("AADHAAR-1234"))
	assert.NotEqual(t, h, HashIdentifier("AADHAAR-1235"))
}
