package reminder_test

import (
	"testing"
	"time"

	"homework-planner/internal/reminder"
)

func TestFormatCountdown(t *testing.T) {
	now := time.Date(2025, 12, 8, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		nearest *reminder.Deadline
		want    string
	}{
		{
			name: "sixteen hours out",
			nearest: &reminder.Deadline{
				Title: "Essay",
				Due:   now.Add(57600 * time.Second),
			},
			want: "Next due: Essay in 0d 16h 00m 00s",
		},
		{
			name: "multi-day with padding",
			nearest: &reminder.Deadline{
				Title: "Project",
				Due:   now.Add((2*86400 + 3*3600 + 7*60 + 9) * time.Second),
			},
			want: "Next due: Project in 2d 03h 07m 09s",
		},
		{
			name: "under a minute",
			nearest: &reminder.Deadline{
				Title: "Quiz",
				Due:   now.Add(42 * time.Second),
			},
			want: "Next due: Quiz in 0d 00h 00m 42s",
		},
		{
			name: "nothing upcoming",
			want: "No upcoming tasks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reminder.FormatCountdown(tt.nearest, now)
			if got != tt.want {
				t.Errorf("FormatCountdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Sub-second remainders truncate toward zero rather than rounding up.
func TestFormatCountdownTruncates(t *testing.T) {
	now := time.Date(2025, 12, 8, 8, 0, 0, 0, time.UTC)
	nearest := &reminder.Deadline{Title: "Essay", Due: now.Add(90*time.Second + 900*time.Millisecond)}

	got := reminder.FormatCountdown(nearest, now)
	want := "Next due: Essay in 0d 00h 01m 30s"
	if got != want {
		t.Errorf("FormatCountdown() = %q, want %q", got, want)
	}
}
