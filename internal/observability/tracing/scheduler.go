package tracing

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const schedulerTracerName = "github.com/KasumiMercury/motiva-notification-scheduling/internal/service/schedule"

func SchedulerTracer() trace.Tracer {
	return otel.Tracer(schedulerTracerName)
}

// InjectToHTTPRequest propagates the current trace context onto an outgoing
// request so downstream services continue the same trace.
func InjectToHTTPRequest(ctx context.Context, req *http.Request) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}

func StartRescheduleSpan(ctx context.Context, userID string) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "schedule.reschedule",
		trace.WithAttributes(
			attribute.String("user_id", userID),
		),
	)
}

func StartCancelSpan(ctx context.Context, userID string) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "schedule.cancel_all",
		trace.WithAttributes(
			attribute.String("user_id", userID),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "schedule.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordRescheduleResult(span trace.Span, windowStart, windowEnd time.Time, requestedCount, scheduledCount int, err error) {
	span.SetAttributes(
		attribute.String("window.start", windowStart.Format(time.RFC3339)),
		attribute.String("window.end", windowEnd.Format(time.RFC3339)),
		attribute.Int("reschedule.requested_count", requestedCount),
		attribute.Int("reschedule.scheduled_count", scheduledCount),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
