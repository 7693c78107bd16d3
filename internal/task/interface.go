package task

import (
	"context"

	"homework-planner/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// List returns the user's tasks, incomplete first, then by id.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)

	// Add creates a task with free-text due date.
	Add(ctx context.Context, sc model.Scope, input AddInput) (AddOutput, error)

	// MarkDone flags a task as completed.
	MarkDone(ctx context.Context, sc model.Scope, taskID int64) error

	// Delete removes a task.
	Delete(ctx context.Context, sc model.Scope, taskID int64) error

	// Sync imports upcoming Canvas planner items as local tasks,
	// skipping items already present (same title and due).
	Sync(ctx context.Context, sc model.Scope) (SyncOutput, error)
}
