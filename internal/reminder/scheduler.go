package reminder

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"homework-planner/internal/model"
	"homework-planner/pkg/duedate"
)

const parseCacheSize = 512

type parseResult struct {
	instant time.Time
	ok      bool
}

// Scheduler tracks which reminder thresholds have already fired for one
// user session. It is created at session start and discarded at session end;
// fired-state is never persisted and never cleared while the session lives,
// even when a task is completed, deleted, or its due date edited afterwards.
type Scheduler struct {
	norm  *duedate.Normalizer
	fired map[int64]map[int64]struct{}
	cache *lru.Cache[string, parseResult]
}

// NewScheduler creates a session-scoped scheduler with empty fired-state.
func NewScheduler(norm *duedate.Normalizer) *Scheduler {
	cache, _ := lru.New[string, parseResult](parseCacheSize)
	return &Scheduler{
		norm:  norm,
		fired: make(map[int64]map[int64]struct{}),
		cache: cache,
	}
}

// Tick scans the task snapshot once. It returns the nearest strictly-future
// deadline (nil when none) and the reminders that crossed a threshold window
// for the first time this session, in task-scan order then threshold order.
// Tick never fails: unparseable due text simply excludes a task.
func (s *Scheduler) Tick(now time.Time, tasks []model.Task) (*Deadline, []Event) {
	var nearest *Deadline
	var fired []Event

	for _, t := range tasks {
		if t.Done {
			continue
		}
		instant, ok := s.normalize(t.Due)
		if !ok || !instant.After(now) {
			continue
		}

		// First-seen wins exact ties.
		if nearest == nil || instant.Before(nearest.Due) {
			nearest = &Deadline{TaskID: t.ID, Title: t.Title, Due: instant}
		}

		secondsLeft := int64(instant.Sub(now) / time.Second)
		for _, th := range thresholds {
			if secondsLeft < th.Seconds-windowSlack || secondsLeft > th.Seconds+windowSlack {
				continue
			}
			if s.alreadyFired(t.ID, th.Seconds) {
				continue
			}
			s.markFired(t.ID, th.Seconds)
			fired = append(fired, Event{
				TaskID: t.ID,
				Title:  t.Title,
				Due:    instant,
				Label:  th.Label,
			})
		}
	}

	return nearest, fired
}

// normalize parses due text through an LRU cache; the 1-second tick re-scans
// an unchanged task list almost every time.
func (s *Scheduler) normalize(due string) (time.Time, bool) {
	if res, hit := s.cache.Get(due); hit {
		return res.instant, res.ok
	}
	instant, ok := s.norm.Normalize(due)
	s.cache.Add(due, parseResult{instant: instant, ok: ok})
	return instant, ok
}

func (s *Scheduler) alreadyFired(taskID, seconds int64) bool {
	_, ok := s.fired[taskID][seconds]
	return ok
}

func (s *Scheduler) markFired(taskID, seconds int64) {
	set, ok := s.fired[taskID]
	if !ok {
		set = make(map[int64]struct{})
		s.fired[taskID] = set
	}
	set[seconds] = struct{}{}
}
