package pushgateway

import "time"

type Notification struct {
	UserID     string    `json:"user_id"`
	ScheduleAt time.Time `json:"-"`

	Title   string            `json:"title"`
	Body    string            `json:"body"`
	Payload map[string]string `json:"payload,omitempty"`
}

type ScheduleResponse struct {
	Handle       string    `json:"handle"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
}

type ScheduledNotification struct {
	Handle       string    `json:"handle"`
	ScheduleTime time.Time `json:"schedule_time"`
}

type gatewayScheduleRequest struct {
	Notification gatewayNotification `json:"notification"`
	ScheduleTime string              `json:"scheduleTime,omitempty"`
}

type gatewayNotification struct {
	UserID  string            `json:"userId"`
	Title   string            `json:"title"`
	Body    string            `json:"body"`
	Payload map[string]string `json:"payload,omitempty"`
}

type gatewayScheduleResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}

type gatewayListResponse struct {
	Notifications []gatewayListItem `json:"notifications"`
}

type gatewayListItem struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
}
