package distribute

import (
	"log/slog"
	"time"

	"github.com/KasumiMercury/motiva-notification-scheduling/internal/random"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/service/window"
)

const (
	shortWindowDelayMinutes  = 2
	mediumWindowDelayMinutes = 3
	defaultDelayMinutes      = 5

	shortSlotVarianceMinutes  = 5
	mediumSlotVarianceMinutes = 10
	defaultVarianceMinutes    = 15
)

// Distributor splits a resolved window into evenly based trigger times with
// adaptive jitter. The first trigger gets a short fixed delay instead of jitter
// so it never fires immediately after scheduling.
type Distributor struct {
	rng random.Source
}

func NewDistributor(rng random.Source) *Distributor {
	return &Distributor{rng: rng}
}

// initialDelay shrinks with the total window so short windows are not eaten by
// the lead-in: under 30 minutes 2, under 60 minutes 3, otherwise 5.
func initialDelay(total time.Duration) time.Duration {
	switch {
	case total < 30*time.Minute:
		return shortWindowDelayMinutes * time.Minute
	case total < 60*time.Minute:
		return mediumWindowDelayMinutes * time.Minute
	default:
		return defaultDelayMinutes * time.Minute
	}
}

// maxVariance scales the symmetric jitter bound down with the per-slot
// interval: under 30 minutes ±5, under 60 minutes ±10, otherwise ±15.
func maxVariance(slot time.Duration) int {
	switch {
	case slot < 30*time.Minute:
		return shortSlotVarianceMinutes
	case slot < 60*time.Minute:
		return mediumSlotVarianceMinutes
	default:
		return defaultVarianceMinutes
	}
}

// Distribute returns count trigger times in slot order. Jitter on non-first
// slots may land a time slightly past the window end, bounded by the variance;
// this slack is accepted rather than clamped, and slot order is kept as-is.
func (d *Distributor) Distribute(span window.Span, count int) []time.Time {
	total := span.Duration()
	slot := total / time.Duration(count)

	delay := initialDelay(total)
	variance := maxVariance(slot)

	slog.Debug("distributing triggers across window",
		slog.Time("start", span.Start),
		slog.Time("end", span.End),
		slog.Int("count", count),
		slog.Duration("slot", slot),
		slog.Duration("initial_delay", delay),
		slog.Int("max_variance_minutes", variance),
	)

	times := make([]time.Time, 0, count)
	for i := 0; i < count; i++ {
		base := span.Start.Add(slot * time.Duration(i))
		if i == 0 {
			times = append(times, base.Add(delay))
			continue
		}
		offset := d.rng.IntBetween(-variance, variance)
		times = append(times, base.Add(time.Duration(offset)*time.Minute))
	}

	return times
}
