package rpc

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type routerMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func newRouterMetrics() *routerMetrics {
	meter := otel.Meter("resto-be/rpc")
	fallback := noop.NewMeterProvider().Meter("resto-be/rpc")

	requests, err := meter.Int64Counter("rpc.server.requests",
		metric.WithDescription("Procedure calls by outcome code"),
	)
	if err != nil {
		requests, _ = fallback.Int64Counter("rpc.server.requests")
	}

	duration, err := meter.Float64Histogram("rpc.server.duration",
		metric.WithDescription("Procedure call latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		duration, _ = fallback.Float64Histogram("rpc.server.duration")
	}

	return &routerMetrics{requests: requests, duration: duration}
}

func (m *routerMetrics) record(ctx context.Context, name string, kind Kind, code string, started time.Time) {
	attrs := metric.WithAttributes(
		attribute.String("rpc.method", name),
		attribute.String("rpc.kind", string(kind)),
		attribute.String("rpc.code", code),
	)
	m.requests.Add(ctx, 1, attrs)
	m.duration.Record(ctx, time.Since(started).Seconds(), attrs)
}
