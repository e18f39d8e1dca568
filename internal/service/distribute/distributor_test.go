package distribute

import (
	"testing"
	"time"

	"github.com/KasumiMercury/motiva-notification-scheduling/internal/random"
	"github.com/KasumiMercury/motiva-notification-scheduling/internal/service/window"
)

func spanOf(start time.Time, d time.Duration) window.Span {
	return window.Span{Start: start, End: start.Add(d)}
}

func TestInitialDelay(t *testing.T) {
	tests := []struct {
		total    time.Duration
		expected time.Duration
	}{
		{20 * time.Minute, 2 * time.Minute},
		{29 * time.Minute, 2 * time.Minute},
		{30 * time.Minute, 3 * time.Minute},
		{59 * time.Minute, 3 * time.Minute},
		{60 * time.Minute, 5 * time.Minute},
		{14 * time.Hour, 5 * time.Minute},
	}

	for _, tt := range tests {
		if got := initialDelay(tt.total); got != tt.expected {
			t.Errorf("initialDelay(%v): got %v, want %v", tt.total, got, tt.expected)
		}
	}
}

func TestMaxVariance(t *testing.T) {
	tests := []struct {
		slot     time.Duration
		expected int
	}{
		{10 * time.Minute, 5},
		{29 * time.Minute, 5},
		{30 * time.Minute, 10},
		{59 * time.Minute, 10},
		{60 * time.Minute, 15},
		{4 * time.Hour, 15},
	}

	for _, tt := range tests {
		if got := maxVariance(tt.slot); got != tt.expected {
			t.Errorf("maxVariance(%v): got %d, want %d", tt.slot, got, tt.expected)
		}
	}
}

func TestDistributeFirstSlotFixedDelay(t *testing.T) {
	d := NewDistributor(random.New(1))
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	// 60-minute window gets the full 5-minute lead-in.
	times := d.Distribute(spanOf(start, time.Hour), 2)
	if len(times) != 2 {
		t.Fatalf("got %d times, want 2", len(times))
	}
	want := start.Add(5 * time.Minute)
	if !times[0].Equal(want) {
		t.Errorf("first trigger: got %v, want %v", times[0], want)
	}
}

func TestDistributeShortWindowDelay(t *testing.T) {
	d := NewDistributor(random.New(1))
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	times := d.Distribute(spanOf(start, 20*time.Minute), 1)
	want := start.Add(2 * time.Minute)
	if !times[0].Equal(want) {
		t.Errorf("first trigger: got %v, want %v", times[0], want)
	}
}

func TestDistributeJitterWithinBounds(t *testing.T) {
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	// Run across many seeds so jitter edges get exercised.
	for seed := uint64(0); seed < 50; seed++ {
		d := NewDistributor(random.New(seed))

		// 14h window, 5 triggers: slot is 168m, variance ±15m.
		span := spanOf(start, 14*time.Hour)
		times := d.Distribute(span, 5)
		if len(times) != 5 {
			t.Fatalf("seed %d: got %d times, want 5", seed, len(times))
		}

		slot := 14 * time.Hour / 5
		for i := 1; i < 5; i++ {
			base := start.Add(slot * time.Duration(i))
			diff := times[i].Sub(base)
			if diff < -15*time.Minute || diff > 15*time.Minute {
				t.Errorf("seed %d: trigger[%d] jitter %v exceeds ±15m", seed, i, diff)
			}
		}
	}
}

func TestDistributeKeepsSlotOrder(t *testing.T) {
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	for seed := uint64(0); seed < 20; seed++ {
		d := NewDistributor(random.New(seed))
		times := d.Distribute(spanOf(start, 14*time.Hour), 5)

		// Slot bases are 168m apart with ±15m jitter, so order is stable.
		for i := 1; i < len(times); i++ {
			if !times[i].After(times[i-1]) {
				t.Errorf("seed %d: trigger[%d] %v not after trigger[%d] %v",
					seed, i, times[i], i-1, times[i-1])
			}
		}
	}
}

func TestDistributeCount(t *testing.T) {
	d := NewDistributor(random.New(7))
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	for _, count := range []int{1, 2, 3, 5} {
		times := d.Distribute(spanOf(start, 14*time.Hour), count)
		if len(times) != count {
			t.Errorf("count %d: got %d times", count, len(times))
		}
	}
}

func TestDistributeTightWindowSlackPastEnd(t *testing.T) {
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	// 40-minute window with 2 triggers: slot is 20m, variance ±5m. The last
	// trigger may jitter up to 5 minutes, always inside start..end+variance.
	span := spanOf(start, 40*time.Minute)
	limit := span.End.Add(5 * time.Minute)

	for seed := uint64(0); seed < 50; seed++ {
		d := NewDistributor(random.New(seed))
		times := d.Distribute(span, 2)
		for i, tm := range times {
			if tm.After(limit) {
				t.Errorf("seed %d: trigger[%d] %v past accepted slack limit %v", seed, i, tm, limit)
			}
		}
	}
}
