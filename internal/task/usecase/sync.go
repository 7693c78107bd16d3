package usecase

import (
	"context"
	"fmt"
	"time"

	"homework-planner/internal/model"
	"homework-planner/internal/task"
	"homework-planner/internal/task/repository"
	"homework-planner/pkg/canvas"
	"homework-planner/pkg/duedate"
	"homework-planner/pkg/gcalendar"
)

// Sync imports upcoming Canvas planner items (default window: now through
// +30 days) as local tasks. Import is all-or-partial: rows inserted before a
// failure remain. A fetch failure is wrapped in SyncError for the delivery
// layer to present as a dismissible message.
func (uc *implUseCase) Sync(ctx context.Context, sc model.Scope) (task.SyncOutput, error) {
	items, err := uc.planner.FetchPlannerItems(ctx, time.Time{}, time.Time{})
	if err != nil {
		return task.SyncOutput{}, &task.SyncError{Err: err}
	}

	locals := canvas.ToLocalTasks(items)
	uc.l.Infof(ctx, "Sync: user=%d fetched %d planner items", sc.UserID, len(locals))

	var out task.SyncOutput
	for _, lt := range locals {
		title := lt.Task
		if lt.Course != "" {
			title = fmt.Sprintf("%s (%s)", lt.Task, lt.Course)
		}
		due := lt.Due
		if due == "" {
			due = duedate.NoDueDate
		}

		created, inserted, err := uc.repo.AddIfAbsent(ctx, repository.AddTaskOptions{
			UserID: sc.UserID,
			Title:  title,
			Due:    due,
		})
		if err != nil {
			// Partial import: keep what was inserted so far.
			return out, &task.SyncError{Err: err}
		}
		if !inserted {
			out.Skipped++
			continue
		}
		out.Imported++

		if uc.mirrorDeadline(ctx, created) {
			out.Mirrored++
		}
	}

	uc.l.Infof(ctx, "Sync: user=%d imported=%d skipped=%d mirrored=%d",
		sc.UserID, out.Imported, out.Skipped, out.Mirrored)
	return out, nil
}

// mirrorDeadline pushes a newly imported deadline to the calendar when one
// is configured. Failures are logged, never fatal to the import.
func (uc *implUseCase) mirrorDeadline(ctx context.Context, t model.Task) bool {
	if uc.calendar == nil {
		return false
	}
	due, ok := uc.norm.Normalize(t.Due)
	if !ok {
		return false
	}

	_, err := uc.calendar.CreateDeadlineEvent(ctx, gcalendar.DeadlineEventRequest{
		Title:       t.Title,
		Description: fmt.Sprintf("Imported from Canvas (task #%d)", t.ID),
		Due:         due,
	})
	if err != nil {
		uc.l.Warnf(ctx, "Sync: calendar mirror failed for task %d (non-fatal): %v", t.ID, err)
		return false
	}
	return true
}
