package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/motiva-notification-scheduling/internal/domain"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/service/schedule"
)

type ScheduleHandler struct {
	scheduleService *schedule.Service
}

func NewScheduleHandler(scheduleService *schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// HandleReschedule rebuilds the user's notification schedule. The optional
// now query parameter overrides the clock for deterministic runs and replays.
func (h *ScheduleHandler) HandleReschedule(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userID")

	var at time.Time
	if nowStr := c.Query("now"); nowStr != "" {
		parsed, err := time.Parse(time.RFC3339, nowStr)
		if err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid now time format, expected RFC3339")
			return
		}
		at = parsed
		slog.InfoContext(ctx, "using virtual time",
			slog.Time("virtual_now", at),
		)
	}

	result, err := h.scheduleService.Reschedule(ctx, userID, at)
	if err != nil {
		// A user who has not finished onboarding or has no matching content
		// is an expected outcome, not a server failure.
		switch {
		case errors.Is(err, domain.ErrNotConfigured):
			respondSkipped(c, "not_configured")
			return
		case errors.Is(err, domain.ErrNoContent):
			respondSkipped(c, "no_content")
			return
		case errors.Is(err, domain.ErrProfileNotFound):
			respondError(c, http.StatusNotFound, "not_found", "user has no scheduling profile")
			return
		default:
			slog.ErrorContext(ctx, "reschedule failed",
				slog.String("user_id", userID),
				slog.String("error", err.Error()),
			)
			respondError(c, http.StatusInternalServerError, "processing_error", "failed to reschedule notifications")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  result,
	})
}

func (h *ScheduleHandler) HandleCancel(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userID")

	if err := h.scheduleService.CancelAll(ctx, userID); err != nil {
		slog.ErrorContext(ctx, "cancel failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to cancel notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

func (h *ScheduleHandler) HandleSendTest(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userID")

	result, err := h.scheduleService.SendTest(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "test notification failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to send test notification")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  result,
	})
}

func (h *ScheduleHandler) HandleStats(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userID")

	stats, err := h.scheduleService.Stats(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "stats lookup failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to collect schedule stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func respondSkipped(c *gin.Context, reason string) {
	c.JSON(http.StatusOK, gin.H{
		"success": false,
		"reason":  reason,
	})
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, gin.H{
		"error":   errType,
		"message": message,
	})
}
