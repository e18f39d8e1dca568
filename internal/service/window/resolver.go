package window

import (
	"log/slog"
	"time"

	"github.com/KasumiMercury/motiva-notification-scheduling/internal/domain"
)

// Span is a daily window resolved to concrete timestamps. It is recomputed on
// every scheduling run and never persisted.
type Span struct {
	Start time.Time
	End   time.Time
}

func (s Span) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve picks today or tomorrow as the base date for the window:
//   - window fully elapsed today: both ends shift forward one day
//   - window already begun: start clamps to now, end stays at today's end
//   - window still ahead today: unchanged
func (r *Resolver) Resolve(w domain.DailyWindow, now time.Time) Span {
	todayStart := w.Start.At(now)
	todayEnd := w.End.At(now)

	switch {
	case todayEnd.Before(now):
		slog.Debug("window elapsed today, rolling over to tomorrow",
			slog.Time("today_start", todayStart),
			slog.Time("today_end", todayEnd),
		)
		return Span{
			Start: todayStart.Add(24 * time.Hour),
			End:   todayEnd.Add(24 * time.Hour),
		}
	case todayStart.Before(now):
		slog.Debug("window already begun, clamping start to now",
			slog.Time("today_start", todayStart),
			slog.Time("now", now),
		)
		return Span{Start: now, End: todayEnd}
	default:
		return Span{Start: todayStart, End: todayEnd}
	}
}
