package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KasumiMercury/motiva-notification-scheduling/internal/domain"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/infra/profileapi"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/infra/pushgateway"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/infra/quotecatalog"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/observability/metrics"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/observability/tracing"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/service/content"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/service/distribute"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/service/window"
)

// testNotificationDelay is how far ahead a test notification is scheduled so
// the gateway accepts it as a future trigger but the user sees it right away.
const testNotificationDelay = 2 * time.Second

type Service struct {
	profileRepo      profileapi.ProfileRepository
	quoteRepo        quotecatalog.QuoteRepository
	transport        pushgateway.Transport
	handleStore      domain.HandleStore
	windowResolver   *window.Resolver
	distributor      *distribute.Distributor
	selector         *content.Selector
	schedulerMetrics *metrics.SchedulerMetrics

	now func() time.Time

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

func NewService(
	profileRepo profileapi.ProfileRepository,
	quoteRepo quotecatalog.QuoteRepository,
	transport pushgateway.Transport,
	handleStore domain.HandleStore,
	windowResolver *window.Resolver,
	distributor *distribute.Distributor,
	selector *content.Selector,
	schedulerMetrics *metrics.SchedulerMetrics,
) *Service {
	return &Service{
		profileRepo:      profileRepo,
		quoteRepo:        quoteRepo,
		transport:        transport,
		handleStore:      handleStore,
		windowResolver:   windowResolver,
		distributor:      distributor,
		selector:         selector,
		schedulerMetrics: schedulerMetrics,
		now:              time.Now,
		userLocks:        make(map[string]*sync.Mutex),
	}
}

// userLock serializes scheduling runs per user so concurrent reschedules
// cannot interleave cancel and register against the gateway.
func (s *Service) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

// Reschedule replaces the user's active triggers with a fresh set distributed
// across the resolved daily window. Existing triggers are cancelled and the
// persisted handle set cleared before anything else, so a run that stops at
// any later step still leaves the previous set removed. A failed cancel aborts
// the run; registering over live triggers would duplicate notifications. The
// at parameter overrides the clock for deterministic runs; zero means now.
func (s *Service) Reschedule(ctx context.Context, userID string, at time.Time) (*RescheduleResult, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	ctx, span := tracing.StartRescheduleSpan(ctx, userID)
	defer span.End()

	start := s.now()
	defer func() {
		if s.schedulerMetrics != nil {
			s.schedulerMetrics.RecordRescheduleDuration(ctx, s.now().Sub(start))
		}
	}()

	now := at
	if now.IsZero() {
		now = s.now()
	}

	if err := s.transport.CancelAll(ctx, userID); err != nil {
		slog.ErrorContext(ctx, "failed to cancel existing triggers",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		s.recordReschedule(ctx, "cancel_error")
		return nil, fmt.Errorf("failed to cancel existing triggers: %w", err)
	}

	if err := s.handleStore.ClearHandleSet(ctx, userID); err != nil {
		slog.WarnContext(ctx, "failed to clear persisted handle set",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		// The run continues; the stale set expires on its own.
	}

	profile, err := s.profileRepo.GetSchedulingProfile(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch scheduling profile",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		s.recordReschedule(ctx, "profile_error")
		return nil, err
	}

	if !profile.Configured() {
		slog.InfoContext(ctx, "user has no completed scheduling configuration",
			slog.String("user_id", userID),
		)
		s.recordReschedule(ctx, "not_configured")
		return nil, domain.ErrNotConfigured
	}

	pool, err := s.quoteRepo.GetQuotesForCategories(ctx, profile.InterestCategoryIDs)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load quote pool",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		s.recordReschedule(ctx, "catalog_error")
		return nil, err
	}

	resolved := s.windowResolver.Resolve(*profile.Window, now)
	times := s.distributor.Distribute(resolved, int(profile.Count))

	selections, err := s.selector.Select(pool, times)
	if err != nil {
		slog.InfoContext(ctx, "no content available for interest categories",
			slog.String("user_id", userID),
			slog.Int("category_count", len(profile.InterestCategoryIDs)),
		)
		s.recordReschedule(ctx, "no_content")
		return nil, err
	}

	result := &RescheduleResult{
		UserID:         userID,
		WindowStart:    resolved.Start,
		WindowEnd:      resolved.End,
		RequestedCount: int(profile.Count),
		Triggers:       make([]TriggerItem, 0, len(selections)),
	}

	handleSet := domain.NewHandleSet(userID)
	for _, sel := range selections {
		item := TriggerItem{
			Time:    sel.Time,
			Tone:    sel.Tone,
			Title:   sel.Title,
			QuoteID: sel.Quote.ID,
		}

		resp, err := s.transport.Schedule(ctx, &pushgateway.Notification{
			UserID:     userID,
			ScheduleAt: sel.Time,
			Title:      sel.Title,
			Body:       notificationBody(sel.Quote),
			Payload: map[string]string{
				"quote_id":    sel.Quote.ID,
				"category_id": sel.Quote.CategoryID,
				"tone":        sel.Tone.String(),
			},
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to register trigger",
				slog.String("user_id", userID),
				slog.Time("trigger_time", sel.Time),
				slog.String("error", err.Error()),
			)
			item.Error = err.Error()
			result.FailedCount++
			result.Triggers = append(result.Triggers, item)
			continue
		}

		item.Handle = resp.Handle
		item.Success = true
		result.SuccessCount++
		result.Triggers = append(result.Triggers, item)

		// Persist after every registration so a crash mid-run still leaves
		// the already-registered handles recoverable.
		handleSet.Add(resp.Handle)
		if err := s.handleStore.SaveHandleSet(ctx, handleSet); err != nil {
			slog.WarnContext(ctx, "failed to persist handle set",
				slog.String("user_id", userID),
				slog.Int("handle_count", handleSet.Count()),
				slog.String("error", err.Error()),
			)
			if s.schedulerMetrics != nil {
				s.schedulerMetrics.RecordHandlePersistError(ctx)
			}
		}
	}

	var runErr error
	if result.SuccessCount == 0 {
		runErr = fmt.Errorf("failed to register any of %d triggers for user %s", len(selections), userID)
	}

	tracing.RecordRescheduleResult(span, resolved.Start, resolved.End, result.RequestedCount, result.SuccessCount, runErr)

	if s.schedulerMetrics != nil {
		s.schedulerMetrics.RecordTriggersScheduled(ctx, result.SuccessCount)
	}

	if runErr != nil {
		s.recordReschedule(ctx, "failed")
		return result, runErr
	}

	slog.InfoContext(ctx, "reschedule completed",
		slog.String("user_id", userID),
		slog.Time("window_start", resolved.Start),
		slog.Time("window_end", resolved.End),
		slog.Int("requested", result.RequestedCount),
		slog.Int("scheduled", result.SuccessCount),
		slog.Int("failed", result.FailedCount),
	)

	if result.FailedCount > 0 {
		s.recordReschedule(ctx, "partial")
	} else {
		s.recordReschedule(ctx, "success")
	}

	return result, nil
}

// CancelAll removes every active trigger and the persisted handle set. It is
// idempotent; cancelling a user with nothing scheduled succeeds.
func (s *Service) CancelAll(ctx context.Context, userID string) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	ctx, span := tracing.StartCancelSpan(ctx, userID)
	defer span.End()

	if err := s.transport.CancelAll(ctx, userID); err != nil {
		if s.schedulerMetrics != nil {
			s.schedulerMetrics.RecordCancellation(ctx, "failed")
		}
		return fmt.Errorf("failed to cancel triggers: %w", err)
	}

	if err := s.handleStore.ClearHandleSet(ctx, userID); err != nil {
		slog.WarnContext(ctx, "failed to clear persisted handle set",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	if s.schedulerMetrics != nil {
		s.schedulerMetrics.RecordCancellation(ctx, "success")
	}

	slog.InfoContext(ctx, "cancelled all triggers",
		slog.String("user_id", userID),
	)

	return nil
}

// SendTest registers a single near-immediate notification so the user can
// verify delivery end to end. The trigger is not tracked in the handle set
// and does not touch the active schedule.
func (s *Service) SendTest(ctx context.Context, userID string) (*TestResult, error) {
	name := "there"
	profile, err := s.profileRepo.GetSchedulingProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		// An unknown profile still gets a test push with the generic greeting.
	} else if profile.Name != "" {
		name = profile.Name
	}

	scheduleAt := s.now().Add(testNotificationDelay)

	resp, err := s.transport.Schedule(ctx, &pushgateway.Notification{
		UserID:     userID,
		ScheduleAt: scheduleAt,
		Title:      "Notifications are working",
		Body:       fmt.Sprintf("Hi %s, this is what your daily quotes will look like.", name),
		Payload: map[string]string{
			"test": "true",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register test notification: %w", err)
	}

	slog.InfoContext(ctx, "test notification registered",
		slog.String("user_id", userID),
		slog.Time("schedule_at", scheduleAt),
	)

	return &TestResult{
		UserID:     userID,
		Handle:     resp.Handle,
		ScheduleAt: resp.ScheduleTime,
	}, nil
}

// Stats reports the gateway's live view next to the persisted handle set so
// drift between the two is visible.
func (s *Service) Stats(ctx context.Context, userID string) (*Stats, error) {
	scheduled, err := s.transport.ListScheduled(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled triggers: %w", err)
	}

	stats := &Stats{
		UserID:         userID,
		ScheduledCount: len(scheduled),
	}

	var next time.Time
	for _, n := range scheduled {
		if next.IsZero() || n.ScheduleTime.Before(next) {
			next = n.ScheduleTime
		}
	}
	if !next.IsZero() {
		stats.NextTriggerTime = &next
	}

	handleSet, err := s.handleStore.GetHandleSet(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrHandleSetNotFound) {
		return nil, fmt.Errorf("failed to load persisted handle set: %w", err)
	}
	stats.PersistedHandleCount = handleSet.Count()

	return stats, nil
}

func (s *Service) recordReschedule(ctx context.Context, outcome string) {
	if s.schedulerMetrics != nil {
		s.schedulerMetrics.RecordReschedule(ctx, outcome)
	}
}

func notificationBody(quote domain.Quote) string {
	if quote.Author == "" {
		return quote.Content
	}
	return fmt.Sprintf("%s\n- %s", quote.Content, quote.Author)
}
