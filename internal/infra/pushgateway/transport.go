package pushgateway

import "context"

//go:generate mockgen -source=transport.go -destination=mock.go -package=pushgateway

// Transport registers future point-in-time notification triggers with the push
// delivery layer. Handles returned by Schedule stay valid until cancelled or fired.
type Transport interface {
	Schedule(ctx context.Context, notification *Notification) (*ScheduleResponse, error)
	CancelAll(ctx context.Context, userID string) error
	ListScheduled(ctx context.Context, userID string) ([]ScheduledNotification, error)
}
