package tracing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

var ErrTracingAddressEmpty = errors.New("tracing enabled, but tracing address empty")

func newTraceProvider(ctx context.Context, serviceName string, sample int, opts ...otlptracegrpc.Option) (*trace.TracerProvider, *otlptrace.Exporter, error) {
	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, nil, err
	}

	return trace.NewTracerProvider(
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
		trace.WithBatcher(exporter),
		trace.WithSampler(sampler(sample)),
	), exporter, nil
}

// sampler maps a sample percentage to a sampler. 0 and 100 both sample everything.
func sampler(sample int) trace.Sampler {
	if sample <= 0 || sample >= 100 {
		return trace.AlwaysSample()
	}

	return trace.TraceIDRatioBased(float64(sample) / 100)
}

// Enable installs a global tracer provider exporting to dialAddr and returns its cleanup function.
func Enable(logger *slog.Logger, serviceName string, dialAddr string, sample int) (func(), error) {
	if dialAddr == "" {
		return nil, ErrTracingAddressEmpty
	}

	ctx := context.Background()

	tp, exporter, err := newTraceProvider(ctx, serviceName, sample, otlptracegrpc.WithEndpointURL(dialAddr), otlptracegrpc.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("failed to create trace provider: %v", err)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	otel.SetTracerProvider(tp)

	cleanup := func() {
		err := exporter.Shutdown(ctx)
		if err != nil {
			logger.Error("Failed to shutdown exporter", slog.String("err", err.Error()))
		}

		err = tp.Shutdown(ctx)
		if err != nil {
			logger.Error("Failed to shutdown tracing provider", slog.String("err", err.Error()))
		}
	}

	return cleanup, nil
}
