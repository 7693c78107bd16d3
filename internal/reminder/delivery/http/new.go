package http

import (
	"homework-planner/internal/reminder"
	pkgLog "homework-planner/pkg/log"
)

type handler struct {
	l        pkgLog.Logger
	sessions *reminder.Manager
}

// New creates a new HTTP handler for the reminder sessions.
func New(l pkgLog.Logger, sessions *reminder.Manager) *handler {
	return &handler{l: l, sessions: sessions}
}
