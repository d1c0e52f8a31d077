package interceptors

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"opsboard/backend/internal/server/httperr"
)

const instrumentationName = "opsboard/backend/internal/server"

// Telemetry returns middleware that records a server span, a request counter and a duration
// histogram per request. Routes in skip (e.g. the health probe) are passed through untouched.
func Telemetry(tp trace.TracerProvider, mp metric.MeterProvider, skip map[string]bool) echo.MiddlewareFunc {
	tracer := tp.Tracer(instrumentationName)
	meter := mp.Meter(instrumentationName)
	requests, _ := meter.Int64Counter("http.server.requests",
		metric.WithDescription("Number of HTTP requests handled."))
	duration, _ := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of HTTP requests."), metric.WithUnit("s"))
	propagator := otel.GetTextMapPropagator()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route := c.Path()
			if skip[route] {
				return next(c)
			}
			ctx := propagator.Extract(req.Context(), propagation.HeaderCarrier(req.Header))
			ctx, span := tracer.Start(ctx, req.Method+" "+route, trace.WithSpanKind(trace.SpanKindServer))
			defer span.End()
			setContext(c, ctx)

			start := time.Now()
			err := next(c)
			elapsed := time.Since(start)

			status := c.Response().Status
			if err != nil {
				status, _ = httperr.Response(err)
				span.RecordError(err)
			}
			if status >= 500 {
				span.SetStatus(codes.Error, "server error")
			}
			attrs := []attribute.KeyValue{
				attribute.String("http.request.method", req.Method),
				attribute.String("http.route", route),
				attribute.Int("http.response.status_code", status),
			}
			span.SetAttributes(attrs...)
			if requests != nil {
				requests.Add(ctx, 1, metric.WithAttributes(attrs...))
			}
			if duration != nil {
				duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attrs...))
			}
			return err
		}
	}
}
