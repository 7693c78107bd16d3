package reminder_test

import (
	"testing"
	"time"

	"homework-planner/internal/model"
	"homework-planner/internal/reminder"
	"homework-planner/pkg/duedate"
)

var due = time.Date(2025, 12, 8, 23, 59, 59, 0, time.UTC)

const dueText = "2025-12-08T23:59:59Z"

func newScheduler() *reminder.Scheduler {
	return reminder.NewScheduler(duedate.New(time.UTC))
}

func TestTickWindowBoundaries(t *testing.T) {
	tests := []struct {
		name        string
		secondsLeft int64
		wantLabel   string
	}{
		{name: "window lower edge", secondsLeft: 3600 - 60, wantLabel: "1 hour"},
		{name: "exact threshold", secondsLeft: 3600, wantLabel: "1 hour"},
		{name: "window upper edge", secondsLeft: 3600 + 60, wantLabel: "1 hour"},
		{name: "one past upper edge", secondsLeft: 3600 + 61},
		{name: "one past lower edge", secondsLeft: 3600 - 61},
		{name: "day threshold", secondsLeft: 86400, wantLabel: "1 day"},
		{name: "between thresholds", secondsLeft: 57600}, // 16 hours
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScheduler()
			now := due.Add(-time.Duration(tt.secondsLeft) * time.Second)

			_, fired := s.Tick(now, []model.Task{{ID: 1, Title: "Essay", Due: dueText}})

			if tt.wantLabel == "" {
				if len(fired) != 0 {
					t.Fatalf("expected no reminders, got %+v", fired)
				}
				return
			}
			if len(fired) != 1 {
				t.Fatalf("expected 1 reminder, got %d", len(fired))
			}
			if fired[0].Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", fired[0].Label, tt.wantLabel)
			}
			if fired[0].TaskID != 1 {
				t.Errorf("task id = %d, want 1", fired[0].TaskID)
			}
		})
	}
}

func TestTickFiresAtMostOncePerThreshold(t *testing.T) {
	s := newScheduler()
	tasks := []model.Task{{ID: 1, Title: "Essay", Due: dueText}}

	now := due.Add(-3600 * time.Second)
	_, fired := s.Tick(now, tasks)
	if len(fired) != 1 {
		t.Fatalf("first tick: expected 1 reminder, got %d", len(fired))
	}

	// Subsequent ticks inside the same window stay silent.
	for i := 1; i <= 5; i++ {
		_, fired = s.Tick(now.Add(time.Duration(i)*time.Second), tasks)
		if len(fired) != 0 {
			t.Fatalf("tick %d: expected no reminders, got %+v", i, fired)
		}
	}

	// A different threshold for the same task still fires.
	_, fired = s.Tick(due.Add(-10800*time.Second), tasks)
	if len(fired) != 1 || fired[0].Label != "3 hours" {
		t.Fatalf("expected 3 hours reminder, got %+v", fired)
	}
}

func TestTickNearestSelection(t *testing.T) {
	s := newScheduler()
	now := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

	tasks := []model.Task{
		{ID: 1, Title: "Later", Due: "2025-12-10T00:00:00Z"},
		{ID: 2, Title: "Sooner", Due: "2025-12-03T00:00:00Z"},
		{ID: 3, Title: "Past", Due: "2025-11-01T00:00:00Z"},
	}

	nearest, _ := s.Tick(now, tasks)
	if nearest == nil {
		t.Fatal("expected a nearest deadline")
	}
	if nearest.TaskID != 2 {
		t.Errorf("nearest task id = %d, want 2", nearest.TaskID)
	}
}

func TestTickNearestTieFirstSeenWins(t *testing.T) {
	s := newScheduler()
	now := time.Date(2025, 12, 1, 12, 0, 0, 0, time.UTC)

	tasks := []model.Task{
		{ID: 7, Title: "First", Due: "2025-12-03T00:00:00Z"},
		{ID: 8, Title: "Second", Due: "2025-12-03T00:00:00Z"},
	}

	nearest, _ := s.Tick(now, tasks)
	if nearest == nil || nearest.TaskID != 7 {
		t.Fatalf("nearest = %+v, want task 7", nearest)
	}
}

func TestTickSkipsDoneUnparseableAndPast(t *testing.T) {
	s := newScheduler()
	now := due.Add(-3600 * time.Second)

	tasks := []model.Task{
		{ID: 1, Title: "Done", Due: dueText, Done: true},
		{ID: 2, Title: "No date", Due: "no due date"},
		{ID: 3, Title: "Garbage", Due: "whenever"},
		{ID: 4, Title: "Past", Due: "2020-01-01T00:00:00Z"},
	}

	nearest, fired := s.Tick(now, tasks)
	if nearest != nil {
		t.Errorf("nearest = %+v, want nil", nearest)
	}
	if len(fired) != 0 {
		t.Errorf("fired = %+v, want none", fired)
	}
}

// A deadline exactly at "now" is not upcoming.
func TestTickDueNowExcluded(t *testing.T) {
	s := newScheduler()

	nearest, fired := s.Tick(due, []model.Task{{ID: 1, Title: "Essay", Due: dueText}})
	if nearest != nil || len(fired) != 0 {
		t.Fatalf("nearest = %+v fired = %+v, want nothing", nearest, fired)
	}
}

func TestTickMultipleTasksIndependentFiredState(t *testing.T) {
	s := newScheduler()
	otherDue := due.Add(30 * time.Second)
	tasks := []model.Task{
		{ID: 1, Title: "Essay", Due: dueText},
		{ID: 2, Title: "Quiz", Due: otherDue.UTC().Format("2006-01-02T15:04:05") + "Z"},
	}

	// Both tasks sit inside the 1 hour window at this instant.
	_, fired := s.Tick(due.Add(-3600*time.Second), tasks)
	if len(fired) != 2 {
		t.Fatalf("expected 2 reminders, got %d: %+v", len(fired), fired)
	}
	if fired[0].TaskID != 1 || fired[1].TaskID != 2 {
		t.Errorf("fired order = %+v, want task-scan order", fired)
	}
}

func TestThresholdsSchedule(t *testing.T) {
	ths := reminder.Thresholds()
	want := []int64{86400, 43200, 21600, 10800, 3600}
	if len(ths) != len(want) {
		t.Fatalf("got %d thresholds, want %d", len(ths), len(want))
	}
	for i, th := range ths {
		if th.Seconds != want[i] {
			t.Errorf("threshold %d = %d, want %d", i, th.Seconds, want[i])
		}
	}
}
