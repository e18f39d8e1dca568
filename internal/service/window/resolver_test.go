package window

import (
	"testing"
	"time"

	"github.com/KasumiMercury/motiva-notification-scheduling/internal/domain"
)

func TestResolve(t *testing.T) {
	w := domain.DailyWindow{
		Start: domain.ClockTime{Hour: 8},
		End:   domain.ClockTime{Hour: 22},
	}

	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "window still ahead today",
			now:       time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC),
		},
		{
			name:      "window already begun clamps start to now",
			now:       time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
			wantStart: time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC),
		},
		{
			name:      "window elapsed today rolls to tomorrow",
			now:       time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 11, 22, 0, 0, 0, time.UTC),
		},
		{
			name:      "exactly at window start stays unchanged",
			now:       time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC),
		},
	}

	r := NewResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := r.Resolve(w, tt.now)
			if !span.Start.Equal(tt.wantStart) {
				t.Errorf("Start: got %v, want %v", span.Start, tt.wantStart)
			}
			if !span.End.Equal(tt.wantEnd) {
				t.Errorf("End: got %v, want %v", span.End, tt.wantEnd)
			}
		})
	}
}

func TestResolvePreservesLocation(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	w := domain.DailyWindow{
		Start: domain.ClockTime{Hour: 9},
		End:   domain.ClockTime{Hour: 18},
	}
	now := time.Date(2026, 3, 10, 7, 0, 0, 0, loc)

	span := NewResolver().Resolve(w, now)
	if span.Start.Location() != loc {
		t.Errorf("Start location: got %v, want %v", span.Start.Location(), loc)
	}
	if got := span.Start.Hour(); got != 9 {
		t.Errorf("Start hour in local zone: got %d, want 9", got)
	}
}

func TestSpanDuration(t *testing.T) {
	span := Span{
		Start: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC),
	}
	if got := span.Duration(); got != 14*time.Hour {
		t.Errorf("got %v, want 14h", got)
	}
}
