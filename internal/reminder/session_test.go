package reminder_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"homework-planner/internal/model"
	"homework-planner/internal/reminder"
)

type stubLogger struct{}

func (stubLogger) Debug(ctx context.Context, args ...any)                  {}
func (stubLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (stubLogger) Info(ctx context.Context, args ...any)                   {}
func (stubLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (stubLogger) Warn(ctx context.Context, args ...any)                   {}
func (stubLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (stubLogger) Error(ctx context.Context, args ...any)                  {}
func (stubLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (stubLogger) DPanic(ctx context.Context, args ...any)                 {}
func (stubLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (stubLogger) Panic(ctx context.Context, args ...any)                  {}
func (stubLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (stubLogger) Fatal(ctx context.Context, args ...any)                  {}
func (stubLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubSource struct {
	mu    sync.Mutex
	tasks []model.Task
}

func (s *stubSource) List(ctx context.Context, userID int64) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks, nil
}

func (s *stubSource) set(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestSessionLifecycle(t *testing.T) {
	source := &stubSource{}
	// Due inside the 1 hour window so the first ticks fire a reminder.
	source.set([]model.Task{{
		ID:    1,
		Title: "Essay",
		Due:   time.Now().Add(3600 * time.Second).UTC().Format("2006-01-02T15:04:05") + "Z",
	}})

	m := reminder.NewManager(source, time.UTC, 10*time.Millisecond, stubLogger{})
	defer m.StopAll()

	s := m.StartSession(context.Background(), 1)
	if got := m.Get(1); got != s {
		t.Fatalf("Get(1) = %p, want the started session", got)
	}

	waitFor(t, 2*time.Second, func() bool {
		return s.Status().Nearest != nil
	})

	// A new login replaces the session and resets fired-state, so the same
	// reminder fires again.
	s2 := m.StartSession(context.Background(), 1)
	if s2 == s {
		t.Fatal("StartSession returned the old session")
	}

	var snap reminder.Snapshot
	waitFor(t, 2*time.Second, func() bool {
		got := s2.Status()
		if len(got.Fired) > 0 {
			snap = got
			return true
		}
		return false
	})
	if snap.Fired[0].Label != "1 hour" {
		t.Errorf("fired label = %q, want 1 hour", snap.Fired[0].Label)
	}

	// Drained events do not reappear.
	if again := s2.Status(); len(again.Fired) != 0 {
		t.Errorf("fired events delivered twice: %+v", again.Fired)
	}

	m.StopSession(1)
	if m.Get(1) != nil {
		t.Error("session survived StopSession")
	}

	// Stop is idempotent.
	s2.Stop()
	s2.Stop()
}

func TestSessionEmptySource(t *testing.T) {
	source := &stubSource{}
	m := reminder.NewManager(source, time.UTC, 10*time.Millisecond, stubLogger{})
	defer m.StopAll()

	s := m.StartSession(context.Background(), 1)

	waitFor(t, 2*time.Second, func() bool {
		snap := s.Status()
		return snap.Countdown == reminder.NoUpcomingMessage && snap.Nearest == nil
	})
}
