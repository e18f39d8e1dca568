//go:build gcloud

package pushgateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	cloudtasks "cloud.google.com/go/cloudtasks/apiv2"
	taskspb "cloud.google.com/go/cloudtasks/apiv2/cloudtaskspb"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// CloudTasksTransport schedules triggers as Cloud Tasks with a per-user task-ID
// prefix so cancel and list can be scoped to one user within the shared queue.
type CloudTasksTransport struct {
	client     *cloudtasks.Client
	projectID  string
	locationID string
	queueID    string
	targetURL  string
}

type CloudTasksConfig struct {
	ProjectID  string
	LocationID string
	QueueID    string
	TargetURL  string
}

func NewCloudTasksTransport(ctx context.Context, cfg CloudTasksConfig) (*CloudTasksTransport, error) {
	client, err := cloudtasks.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud tasks client: %w", err)
	}

	return &CloudTasksTransport{
		client:     client,
		projectID:  cfg.ProjectID,
		locationID: cfg.LocationID,
		queueID:    cfg.QueueID,
		targetURL:  cfg.TargetURL,
	}, nil
}

func (t *CloudTasksTransport) queuePath() string {
	return fmt.Sprintf("projects/%s/locations/%s/queues/%s",
		t.projectID, t.locationID, t.queueID)
}

func (t *CloudTasksTransport) taskIDPrefix(userID string) string {
	return "motiva-" + strings.ReplaceAll(userID, ":", "-") + "-"
}

func (t *CloudTasksTransport) Schedule(ctx context.Context, notification *Notification) (*ScheduleResponse, error) {
	payload, err := json.Marshal(notification)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification: %w", err)
	}

	taskName := fmt.Sprintf("%s/tasks/%s%s",
		t.queuePath(), t.taskIDPrefix(notification.UserID), uuid.NewString())

	task := &taskspb.Task{
		Name: taskName,
		MessageType: &taskspb.Task_HttpRequest{
			HttpRequest: &taskspb.HttpRequest{
				HttpMethod: taskspb.HttpMethod_POST,
				Url:        t.targetURL,
				Headers: map[string]string{
					"Content-Type": "application/json",
				},
				Body: payload,
			},
		},
	}
	if !notification.ScheduleAt.IsZero() {
		task.ScheduleTime = timestamppb.New(notification.ScheduleAt)
	}

	created, err := t.client.CreateTask(ctx, &taskspb.CreateTaskRequest{
		Parent: t.queuePath(),
		Task:   task,
	})
	if err != nil {
		slog.Warn("failed to create cloud task",
			slog.String("user_id", notification.UserID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create cloud task: %w", err)
	}

	var scheduleTime, createTime time.Time
	if created.ScheduleTime != nil {
		scheduleTime = created.ScheduleTime.AsTime()
	}
	if created.CreateTime != nil {
		createTime = created.CreateTime.AsTime()
	}

	slog.Info("trigger registered with Cloud Tasks",
		slog.String("handle", created.Name),
		slog.String("user_id", notification.UserID),
		slog.Time("schedule_time", scheduleTime),
	)

	return &ScheduleResponse{
		Handle:       created.Name,
		ScheduleTime: scheduleTime,
		CreateTime:   createTime,
	}, nil
}

func (t *CloudTasksTransport) CancelAll(ctx context.Context, userID string) error {
	scheduled, err := t.ListScheduled(ctx, userID)
	if err != nil {
		return err
	}

	for _, notification := range scheduled {
		if err := t.deleteTask(ctx, notification.Handle); err != nil {
			return err
		}
	}

	slog.Debug("cancelled all cloud tasks for user",
		slog.String("user_id", userID),
		slog.Int("cancelled", len(scheduled)),
	)
	return nil
}

func (t *CloudTasksTransport) ListScheduled(ctx context.Context, userID string) ([]ScheduledNotification, error) {
	prefix := fmt.Sprintf("%s/tasks/%s", t.queuePath(), t.taskIDPrefix(userID))

	scheduled := make([]ScheduledNotification, 0)
	it := t.client.ListTasks(ctx, &taskspb.ListTasksRequest{
		Parent: t.queuePath(),
	})
	for {
		task, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list cloud tasks: %w", err)
		}

		if !strings.HasPrefix(task.Name, prefix) {
			continue
		}

		var scheduleTime time.Time
		if task.ScheduleTime != nil {
			scheduleTime = task.ScheduleTime.AsTime()
		}
		scheduled = append(scheduled, ScheduledNotification{
			Handle:       task.Name,
			ScheduleTime: scheduleTime,
		})
	}

	return scheduled, nil
}

func (t *CloudTasksTransport) deleteTask(ctx context.Context, taskPath string) error {
	err := t.client.DeleteTask(ctx, &taskspb.DeleteTaskRequest{
		Name: taskPath,
	})
	if err != nil {
		// Already-fired tasks disappear from the queue; cancel treats that as done.
		if status.Code(err) == codes.NotFound {
			slog.Info("task not found in Cloud Tasks (may have fired)",
				slog.String("handle", taskPath),
			)
			return nil
		}
		return fmt.Errorf("failed to delete cloud task: %w", err)
	}
	return nil
}

func (t *CloudTasksTransport) Close() error {
	return t.client.Close()
}
