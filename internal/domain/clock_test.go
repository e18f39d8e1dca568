package domain

import (
	"testing"
	"time"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ClockTime
		wantErr  bool
	}{
		{
			name:     "plain HH:MM",
			input:    "08:30",
			expected: ClockTime{Hour: 8, Minute: 30},
		},
		{
			name:     "with seconds segment",
			input:    "21:05:00",
			expected: ClockTime{Hour: 21, Minute: 5},
		},
		{
			name:     "midnight",
			input:    "00:00",
			expected: ClockTime{},
		},
		{
			name:    "missing minute",
			input:   "08",
			wantErr: true,
		},
		{
			name:    "hour out of range",
			input:   "24:00",
			wantErr: true,
		},
		{
			name:    "minute out of range",
			input:   "08:60",
			wantErr: true,
		},
		{
			name:    "non-numeric",
			input:   "ab:cd",
			wantErr: true,
		},
		{
			name:    "too many segments",
			input:   "08:30:00:00",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClockTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClockTimeAt(t *testing.T) {
	base := time.Date(2026, 3, 10, 15, 45, 30, 12345, time.UTC)
	ct := ClockTime{Hour: 8, Minute: 30}

	got := ct.At(base)
	want := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDailyWindowValidate(t *testing.T) {
	tests := []struct {
		name    string
		window  DailyWindow
		wantErr bool
	}{
		{
			name: "valid window",
			window: DailyWindow{
				Start: ClockTime{Hour: 8},
				End:   ClockTime{Hour: 22},
			},
		},
		{
			name: "one minute window",
			window: DailyWindow{
				Start: ClockTime{Hour: 12, Minute: 0},
				End:   ClockTime{Hour: 12, Minute: 1},
			},
		},
		{
			name: "zero length window",
			window: DailyWindow{
				Start: ClockTime{Hour: 12},
				End:   ClockTime{Hour: 12},
			},
			wantErr: true,
		},
		{
			name: "midnight crossing window",
			window: DailyWindow{
				Start: ClockTime{Hour: 22},
				End:   ClockTime{Hour: 2},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.window.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestToneForHour(t *testing.T) {
	tests := []struct {
		hour     int
		expected Tone
	}{
		{0, ToneMorning},
		{11, ToneMorning},
		{12, ToneAfternoon},
		{17, ToneAfternoon},
		{18, ToneEvening},
		{23, ToneEvening},
	}

	for _, tt := range tests {
		if got := ToneForHour(tt.hour); got != tt.expected {
			t.Errorf("hour %d: got %s, want %s", tt.hour, got, tt.expected)
		}
	}
}

func TestNotificationCountValidate(t *testing.T) {
	for _, valid := range []NotificationCount{1, 2, 3, 5} {
		if err := valid.Validate(); err != nil {
			t.Errorf("count %d should be valid: %v", valid, err)
		}
	}
	for _, invalid := range []NotificationCount{0, 4, 6, -1} {
		if err := invalid.Validate(); err == nil {
			t.Errorf("count %d should be invalid", invalid)
		}
	}
}

func TestSchedulingProfileConfigured(t *testing.T) {
	window := &DailyWindow{Start: ClockTime{Hour: 8}, End: ClockTime{Hour: 22}}

	tests := []struct {
		name     string
		profile  *SchedulingProfile
		expected bool
	}{
		{
			name: "fully configured",
			profile: &SchedulingProfile{
				UserID:              "u1",
				Window:              window,
				InterestCategoryIDs: []string{"c1"},
			},
			expected: true,
		},
		{
			name: "no window",
			profile: &SchedulingProfile{
				UserID:              "u1",
				InterestCategoryIDs: []string{"c1"},
			},
			expected: false,
		},
		{
			name: "no interests",
			profile: &SchedulingProfile{
				UserID: "u1",
				Window: window,
			},
			expected: false,
		},
		{
			name: "invalid window",
			profile: &SchedulingProfile{
				UserID:              "u1",
				Window:              &DailyWindow{Start: ClockTime{Hour: 22}, End: ClockTime{Hour: 2}},
				InterestCategoryIDs: []string{"c1"},
			},
			expected: false,
		},
		{
			name:     "nil profile",
			profile:  nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.Configured(); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}
