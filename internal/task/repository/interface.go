package repository

import (
	"context"

	"homework-planner/internal/model"
)

// Repository is the interface for task data access.
type Repository interface {
	// List returns the user's tasks ordered by completion then id.
	List(ctx context.Context, userID int64) ([]model.Task, error)

	// Add inserts a task row.
	Add(ctx context.Context, opt AddTaskOptions) (model.Task, error)

	// AddIfAbsent inserts only when no row with the same title and due
	// exists for the user. The bool reports whether a row was created.
	AddIfAbsent(ctx context.Context, opt AddTaskOptions) (model.Task, bool, error)

	// MarkDone flags a task as completed. ErrNotFound when no row matches.
	MarkDone(ctx context.Context, userID, taskID int64) error

	// Delete removes a task. ErrNotFound when no row matches.
	Delete(ctx context.Context, userID, taskID int64) error
}
