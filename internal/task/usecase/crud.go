package usecase

import (
	"context"
	"errors"
	"strings"

	"homework-planner/internal/model"
	"homework-planner/internal/task"
	"homework-planner/internal/task/repository"
	"homework-planner/pkg/duedate"
)

// List returns the user's tasks.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	tasks, err := uc.repo.List(ctx, sc.UserID)
	if err != nil {
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: tasks}, nil
}

// Add creates a task. An empty due date is stored as the sentinel so the
// planner skips it without a parse attempt.
func (uc *implUseCase) Add(ctx context.Context, sc model.Scope, input task.AddInput) (task.AddOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.AddOutput{}, task.ErrEmptyTitle
	}

	due := strings.TrimSpace(input.Due)
	if due == "" {
		due = duedate.NoDueDate
	}

	created, err := uc.repo.Add(ctx, repository.AddTaskOptions{
		UserID: sc.UserID,
		Title:  title,
		Due:    due,
	})
	if err != nil {
		return task.AddOutput{}, err
	}

	uc.l.Infof(ctx, "Add: user=%d task=%d %q due=%q", sc.UserID, created.ID, created.Title, created.Due)
	return task.AddOutput{Task: created}, nil
}

// MarkDone flags a task as completed. Fired reminder state for the task is
// deliberately left alone; stale entries are harmless.
func (uc *implUseCase) MarkDone(ctx context.Context, sc model.Scope, taskID int64) error {
	if err := uc.repo.MarkDone(ctx, sc.UserID, taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		return err
	}
	return nil
}

// Delete removes a task.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, taskID int64) error {
	if err := uc.repo.Delete(ctx, sc.UserID, taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		return err
	}
	return nil
}
