package tracing

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace"
)

func TestStartTracing(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		// when
		ctx, span := StartTracing(context.Background(), "span", false)

		// then
		assert.Nil(t, span)
		assert.NotNil(t, ctx)
		EndTracing(span, errors.New("ignored"))
	})

	t.Run("enabled", func(t *testing.T) {
		// when
		_, span := StartTracing(context.Background(), "span", true, attribute.String("key", "value"))

		// then
		require.NotNil(t, span)
		EndTracing(span, errors.New("some error"))
	})
}

func TestSampler(t *testing.T) {
	assert.Equal(t, trace.AlwaysSample().Description(), sampler(0).Description())
	assert.Equal(t, trace.AlwaysSample().Description(), sampler(100).Description())
	assert.Equal(t, trace.TraceIDRatioBased(0.25).Description(), sampler(25).Description())
}

func TestEnable(t *testing.T) {
	// when
	cleanup, err := Enable(slog.Default(), "test", "", 100)

	// then
	require.ErrorIs(t, err, ErrTracingAddressEmpty)
	assert.Nil(t, cleanup)
}
