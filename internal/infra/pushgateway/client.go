//go:build !gcloud

package pushgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Client talks to the Motiva push gateway over HTTP. Schedule retries with
// exponential backoff because a lost registration silently drops a trigger.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
}

func NewClient(baseURL string, maxRetries int) *Client {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: maxRetries,
	}
}

func (c *Client) Schedule(ctx context.Context, notification *Notification) (*ScheduleResponse, error) {
	gatewayReq := gatewayScheduleRequest{
		Notification: gatewayNotification{
			UserID:  notification.UserID,
			Title:   notification.Title,
			Body:    notification.Body,
			Payload: notification.Payload,
		},
	}
	if !notification.ScheduleAt.IsZero() {
		gatewayReq.ScheduleTime = notification.ScheduleAt.Format(time.RFC3339)
	}

	reqBody, err := json.Marshal(gatewayReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schedule request: %w", err)
	}

	scheduleURL := fmt.Sprintf("%s/api/v1/notifications", c.baseURL)
	idempotencyKey := uuid.NewString()

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			slog.Debug("retrying trigger registration",
				slog.String("user_id", notification.UserID),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := c.doSchedule(ctx, scheduleURL, reqBody, idempotencyKey, notification.UserID)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}

	slog.Error("all retries exhausted for trigger registration",
		slog.String("user_id", notification.UserID),
		slog.Int("max_retries", c.maxRetries),
		slog.String("error", lastErr.Error()),
	)
	return nil, fmt.Errorf("failed to register trigger after %d retries: %w", c.maxRetries, lastErr)
}

func (c *Client) doSchedule(ctx context.Context, scheduleURL string, reqBody []byte, idempotencyKey, userID string) (*ScheduleResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, scheduleURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Idempotency-Key", idempotencyKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("failed to send request to push gateway",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		slog.Warn("unexpected status code from push gateway",
			slog.String("user_id", userID),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var gatewayResp gatewayScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&gatewayResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	scheduleTime, _ := time.Parse(time.RFC3339, gatewayResp.ScheduleTime)
	createTime, _ := time.Parse(time.RFC3339, gatewayResp.CreateTime)

	slog.Info("trigger registered with push gateway",
		slog.String("handle", gatewayResp.Name),
		slog.String("user_id", userID),
		slog.Time("schedule_time", scheduleTime),
	)

	return &ScheduleResponse{
		Handle:       gatewayResp.Name,
		ScheduleTime: scheduleTime,
		CreateTime:   createTime,
	}, nil
}

func (c *Client) CancelAll(ctx context.Context, userID string) error {
	cancelURL := fmt.Sprintf("%s/api/v1/users/%s/notifications", c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, cancelURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("failed to send cancel request to push gateway",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	// 404 means nothing is registered for this user, which cancel treats as done.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	slog.Debug("cancelled all gateway triggers",
		slog.String("user_id", userID),
	)
	return nil
}

func (c *Client) ListScheduled(ctx context.Context, userID string) ([]ScheduledNotification, error) {
	listURL := fmt.Sprintf("%s/api/v1/users/%s/notifications", c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return []ScheduledNotification{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var listResp gatewayListResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	scheduled := make([]ScheduledNotification, 0, len(listResp.Notifications))
	for _, item := range listResp.Notifications {
		scheduleTime, _ := time.Parse(time.RFC3339, item.ScheduleTime)
		scheduled = append(scheduled, ScheduledNotification{
			Handle:       item.Name,
			ScheduleTime: scheduleTime,
		})
	}

	return scheduled, nil
}
