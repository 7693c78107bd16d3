package http

import (
	"homework-planner/internal/user"
	pkgLog "homework-planner/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc user.UseCase
}

// New creates a new HTTP handler for the user domain.
func New(l pkgLog.Logger, uc user.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
