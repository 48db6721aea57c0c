package metrics

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/metric"
)

var (
	initMetricsOnce      sync.Once
	submissionsCounter   metric.Int64Counter
	rejectionsCounter    metric.Int64Counter
	storageErrorsCounter metric.Int64Counter
)

// InitMetrics creates the meter instruments. Safe to call multiple times; only runs once.
// Call after InitMeterProvider. Until then every Record* call is a no-op.
func InitMetrics(ctx context.Context) error {
	var err error
	initMetricsOnce.Do(func() {
		m := Meter()
		submissionsCounter, err = m.Int64Counter("signup_submissions_total", metric.WithDescription("Stored signups by status"))
		if err != nil {
			return
		}
		rejectionsCounter, err = m.Int64Counter("signup_rejections_total", metric.WithDescription("Signups rejected by validation"))
		if err != nil {
			return
		}
		storageErrorsCounter, err = m.Int64Counter("signup_storage_errors_total", metric.WithDescription("Failed store operations"))
	})
	return err
}

// RecordSubmission records one stored signup.
func RecordSubmission(ctx context.Context, status string) {
	if submissionsCounter == nil {
		return
	}
	submissionsCounter.Add(ctx, 1, metric.WithAttributes(AttrStatus.String(status)))
}

// RecordRejection records a signup rejected with the given validation reason.
func RecordRejection(ctx context.Context, reason string) {
	if rejectionsCounter == nil {
		return
	}
	rejectionsCounter.Add(ctx, 1, metric.WithAttributes(AttrReason.String(reason)))
}

// RecordStorageError records a failed store operation (append, read).
func RecordStorageError(ctx context.Context, op string) {
	if storageErrorsCounter == nil {
		return
	}
	storageErrorsCounter.Add(ctx, 1, metric.WithAttributes(AttrOp.String(op)))
}
