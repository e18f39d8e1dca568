package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	schedulerMeterName = "schedule.service"
)

type SchedulerMetrics struct {
	reschedules         metric.Int64Counter
	triggersScheduled   metric.Int64Counter
	rescheduleDuration  metric.Float64Histogram
	cancellations       metric.Int64Counter
	handlePersistErrors metric.Int64Counter
}

func NewSchedulerMetrics() (*SchedulerMetrics, error) {
	meter := otel.Meter(schedulerMeterName)

	reschedules, err := meter.Int64Counter(
		"schedule_reschedules_total",
		metric.WithDescription("Total number of reschedule runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, err
	}

	triggersScheduled, err := meter.Int64Counter(
		"schedule_triggers_total",
		metric.WithDescription("Total number of triggers registered with the push gateway"),
		metric.WithUnit("{trigger}"),
	)
	if err != nil {
		return nil, err
	}

	rescheduleDuration, err := meter.Float64Histogram(
		"schedule_reschedule_duration_seconds",
		metric.WithDescription("Reschedule run duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
		),
	)
	if err != nil {
		return nil, err
	}

	cancellations, err := meter.Int64Counter(
		"schedule_cancellations_total",
		metric.WithDescription("Total number of cancel-all runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, err
	}

	handlePersistErrors, err := meter.Int64Counter(
		"schedule_handle_persist_errors_total",
		metric.WithDescription("Failures persisting the gateway handle set"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerMetrics{
		reschedules:         reschedules,
		triggersScheduled:   triggersScheduled,
		rescheduleDuration:  rescheduleDuration,
		cancellations:       cancellations,
		handlePersistErrors: handlePersistErrors,
	}, nil
}

func (m *SchedulerMetrics) RecordReschedule(ctx context.Context, outcome string) {
	m.reschedules.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *SchedulerMetrics) RecordTriggersScheduled(ctx context.Context, count int) {
	m.triggersScheduled.Add(ctx, int64(count))
}

func (m *SchedulerMetrics) RecordRescheduleDuration(ctx context.Context, duration time.Duration) {
	m.rescheduleDuration.Record(ctx, duration.Seconds())
}

func (m *SchedulerMetrics) RecordCancellation(ctx context.Context, outcome string) {
	m.cancellations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *SchedulerMetrics) RecordHandlePersistError(ctx context.Context) {
	m.handlePersistErrors.Add(ctx, 1)
}
