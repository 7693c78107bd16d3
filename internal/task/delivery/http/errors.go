package http

import (
	"errors"

	"homework-planner/internal/task"
	pkgErrors "homework-planner/pkg/errors"
)

// mapError translates domain errors into HTTP errors. A SyncError keeps its
// underlying message so the client can show it as a dismissible notice.
func (h *handler) mapError(err error) error {
	var syncErr *task.SyncError
	if errors.As(err, &syncErr) {
		return pkgErrors.NewHTTPError(502, syncErr.Error())
	}

	switch err {
	case task.ErrEmptyTitle:
		return pkgErrors.NewHTTPError(400, "task title is empty")
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	default:
		return pkgErrors.NewHTTPError(500, "something went wrong")
	}
}
