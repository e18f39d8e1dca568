package profileapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/KasumiMercury/motiva-notification-scheduling/internal/domain"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/observability/logging"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/observability/tracing"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) GetSchedulingProfile(ctx context.Context, userID string) (*domain.SchedulingProfile, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = fmt.Sprintf("/api/v1/users/%s/scheduling-profile", url.PathEscape(userID))

	ctx, span := tracing.StartExternalAPISpan(ctx, "get_scheduling_profile", u.String())
	defer span.End()

	slog.Debug("fetching scheduling profile",
		slog.String("url", u.String()),
		slog.String("user_id", userID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-request-id", logging.RequestIDFromContext(ctx))
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		slog.Error("failed to send request to user backend",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrProfileNotFound
	}
	if resp.StatusCode != http.StatusOK {
		slog.Error("unexpected status code from user backend",
			slog.String("url", u.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var profileResp profileResponse
	if err := json.Unmarshal(body, &profileResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	profile, err := toProfile(&profileResp)
	if err != nil {
		return nil, err
	}

	slog.Debug("fetched scheduling profile",
		slog.String("user_id", profile.UserID),
		slog.Int("interest_count", len(profile.InterestCategoryIDs)),
	)

	return profile, nil
}

func toProfile(resp *profileResponse) (*domain.SchedulingProfile, error) {
	profile := &domain.SchedulingProfile{
		UserID:              resp.UserID,
		Name:                resp.Name,
		Count:               domain.DefaultNotificationCount,
		InterestCategoryIDs: resp.InterestCategoryIDs,
	}

	if resp.NotificationCount > 0 {
		count := domain.NotificationCount(resp.NotificationCount)
		if err := count.Validate(); err != nil {
			slog.Warn("backend returned disallowed notification count, using default",
				slog.String("user_id", resp.UserID),
				slog.Int("count", resp.NotificationCount),
			)
		} else {
			profile.Count = count
		}
	}

	// An unset window is a valid "not configured yet" state; a malformed one is not.
	if resp.WindowStart == "" || resp.WindowEnd == "" {
		return profile, nil
	}

	start, err := domain.ParseClockTime(resp.WindowStart)
	if err != nil {
		return nil, fmt.Errorf("invalid window start: %w", err)
	}
	end, err := domain.ParseClockTime(resp.WindowEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid window end: %w", err)
	}

	profile.Window = &domain.DailyWindow{Start: start, End: end}
	return profile, nil
}
