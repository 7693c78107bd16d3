package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyTitle   = errors.New("task title is empty")
	ErrTaskNotFound = errors.New("task not found")
)

// SyncError wraps a Canvas import failure: missing configuration, network
// error, or a non-success HTTP status. Tasks inserted before the failure
// remain.
type SyncError struct {
	Err error
}

func (e *SyncError) Error() string { return "canvas sync failed: " + e.Err.Error() }

func (e *SyncError) Unwrap() error { return e.Err }
