//go:build !gcloud

package pushgateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSchedule(t *testing.T) {
	scheduleAt := time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/notifications" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("X-Idempotency-Key") == "" {
			t.Error("expected idempotency key header")
		}

		var req gatewayScheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Notification.UserID != "user-1" {
			t.Errorf("expected user-1, got %s", req.Notification.UserID)
		}
		if req.ScheduleTime != scheduleAt.Format(time.RFC3339) {
			t.Errorf("unexpected schedule time: %s", req.ScheduleTime)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(gatewayScheduleResponse{
			Name:         "notifications/abc123",
			ScheduleTime: req.ScheduleTime,
			CreateTime:   time.Now().UTC().Format(time.RFC3339),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 3)
	resp, err := client.Schedule(context.Background(), &Notification{
		UserID:     "user-1",
		Title:      "Good morning",
		Body:       "quote body",
		ScheduleAt: scheduleAt,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Handle != "notifications/abc123" {
		t.Errorf("expected handle notifications/abc123, got %s", resp.Handle)
	}
	if !resp.ScheduleTime.Equal(scheduleAt) {
		t.Errorf("expected schedule time %v, got %v", scheduleAt, resp.ScheduleTime)
	}
}

func TestScheduleRetriesOnFailure(t *testing.T) {
	var attempts int
	var keys []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		keys = append(keys, r.Header.Get("X-Idempotency-Key"))
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(gatewayScheduleResponse{
			Name: "notifications/retry-ok",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 3)
	resp, err := client.Schedule(context.Background(), &Notification{
		UserID: "user-1",
		Title:  "t",
		Body:   "b",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
	if resp.Handle != "notifications/retry-ok" {
		t.Errorf("unexpected handle: %s", resp.Handle)
	}

	// The same idempotency key must be reused across retries.
	for i := 1; i < len(keys); i++ {
		if keys[i] != keys[0] {
			t.Errorf("attempt %d used a different idempotency key", i+1)
		}
	}
}

func TestScheduleExhaustsRetries(t *testing.T) {
	var attempts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2)
	_, err := client.Schedule(context.Background(), &Notification{UserID: "user-1"})
	if err == nil {
		t.Fatal("expected error after exhausting retries, got nil")
	}
	if attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", attempts)
	}
}

func TestCancelAll(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"ok", http.StatusOK, false},
		{"no content", http.StatusNoContent, false},
		{"nothing registered", http.StatusNotFound, false},
		{"server error", http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete {
					t.Errorf("expected DELETE, got %s", r.Method)
				}
				if r.URL.Path != "/api/v1/users/user-1/notifications" {
					t.Errorf("unexpected path: %s", r.URL.Path)
				}
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(server.URL, 1)
			err := client.CancelAll(context.Background(), "user-1")
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestListScheduled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(gatewayListResponse{
			Notifications: []gatewayListItem{
				{Name: "notifications/n1", ScheduleTime: "2026-03-10T09:05:00Z"},
				{Name: "notifications/n2", ScheduleTime: "2026-03-10T14:30:00Z"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 1)
	scheduled, err := client.ListScheduled(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(scheduled) != 2 {
		t.Fatalf("expected 2 scheduled notifications, got %d", len(scheduled))
	}
	if scheduled[0].Handle != "notifications/n1" {
		t.Errorf("unexpected handle: %s", scheduled[0].Handle)
	}
	want := time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC)
	if !scheduled[0].ScheduleTime.Equal(want) {
		t.Errorf("expected schedule time %v, got %v", want, scheduled[0].ScheduleTime)
	}
}

func TestListScheduledNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 1)
	scheduled, err := client.ListScheduled(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scheduled) != 0 {
		t.Errorf("expected empty list, got %d items", len(scheduled))
	}
}
