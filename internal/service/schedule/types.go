package schedule

import (
	"time"

	"github.com/KasumiMercury/motiva-notification-scheduling/internal/domain"
)

type TriggerItem struct {
	Time    time.Time   `json:"time"`
	Tone    domain.Tone `json:"tone"`
	Title   string      `json:"title"`
	QuoteID string      `json:"quote_id"`
	Handle  string      `json:"handle,omitempty"`
	Success bool        `json:"success"`
	Error   string      `json:"error,omitempty"`
}

type RescheduleResult struct {
	UserID         string        `json:"user_id"`
	WindowStart    time.Time     `json:"window_start"`
	WindowEnd      time.Time     `json:"window_end"`
	RequestedCount int           `json:"requested_count"`
	SuccessCount   int           `json:"success_count"`
	FailedCount    int           `json:"failed_count"`
	Triggers       []TriggerItem `json:"triggers"`
}

type TestResult struct {
	UserID     string    `json:"user_id"`
	Handle     string    `json:"handle"`
	ScheduleAt time.Time `json:"schedule_at"`
}

type Stats struct {
	UserID               string     `json:"user_id"`
	ScheduledCount       int        `json:"scheduled_count"`
	PersistedHandleCount int        `json:"persisted_handle_count"`
	NextTriggerTime      *time.Time `json:"next_trigger_time,omitempty"`
}
