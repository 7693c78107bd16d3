package repository

import "errors"

// Repository-level errors for the task domain.
var (
	ErrNotFound       = errors.New("task not found")
	ErrFailedToInsert = errors.New("failed to insert task")
	ErrFailedToList   = errors.New("failed to list tasks")
	ErrFailedToUpdate = errors.New("failed to update task")
	ErrFailedToDelete = errors.New("failed to delete task")
)
