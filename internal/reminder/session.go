package reminder

import (
	"context"
	"sync"
	"time"

	"homework-planner/internal/model"
	"homework-planner/pkg/duedate"
	"homework-planner/pkg/log"
)

// TaskSource supplies the per-tick task snapshot. The session only reads;
// it never mutates task state.
type TaskSource interface {
	List(ctx context.Context, userID int64) ([]model.Task, error)
}

// Snapshot is the latest tick output retained for the presentation layer.
type Snapshot struct {
	Countdown string
	Nearest   *Deadline
	Fired     []Event // accumulated since the last drain
}

// Session drives one user's reminder loop: a single goroutine ticking at a
// fixed interval, so ticks are strictly sequential and never overlap.
type Session struct {
	ID     string
	UserID int64

	sched    *Scheduler
	source   TaskSource
	l        log.Logger
	interval time.Duration

	mu       sync.Mutex
	snapshot Snapshot

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

func newSession(id string, userID int64, source TaskSource, loc *time.Location, interval time.Duration, l log.Logger) *Session {
	return &Session{
		ID:       id,
		UserID:   userID,
		sched:    NewScheduler(duedate.New(loc)),
		source:   source,
		l:        l,
		interval: interval,
		snapshot: Snapshot{Countdown: NoUpcomingMessage},
		stopCh:   make(chan struct{}),
	}
}

// start launches the tick loop.
func (s *Session) start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.l.Infof(ctx, "reminder session %s started for user %d (interval %s)", s.ID, s.UserID, s.interval)

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			case <-ticker.C:
				s.tick(ctx)
			}
		}
	}()
}

// Stop cancels the loop and waits for the in-flight tick to finish. Safe to
// call more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

// tick reads a task snapshot, runs the scheduler, and retains the result.
// A failed read keeps the previous snapshot; the loop itself never stops on
// an error.
func (s *Session) tick(ctx context.Context) {
	tasks, err := s.source.List(ctx, s.UserID)
	if err != nil {
		s.l.Warnf(ctx, "reminder session %s: task snapshot failed: %v", s.ID, err)
		return
	}

	now := time.Now()
	nearest, fired := s.sched.Tick(now, tasks)
	countdown := FormatCountdown(nearest, now)

	s.mu.Lock()
	s.snapshot.Countdown = countdown
	s.snapshot.Nearest = nearest
	s.snapshot.Fired = append(s.snapshot.Fired, fired...)
	s.mu.Unlock()

	for _, ev := range fired {
		s.l.Infof(ctx, "reminder fired: user=%d task=%d %q due in %s", s.UserID, ev.TaskID, ev.Title, ev.Label)
	}
}

// Status returns the latest snapshot and drains accumulated fired events,
// so each reminder is handed to the presentation layer exactly once.
func (s *Session) Status() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot
	s.snapshot.Fired = nil
	return snap
}
