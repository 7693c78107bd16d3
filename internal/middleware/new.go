package middleware

import (
	"homework-planner/pkg/log"
	"homework-planner/pkg/scope"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l      log.Logger
	tokens *scope.Manager
}

// New creates the middleware set.
func New(l log.Logger, tokens *scope.Manager) Middleware {
	return Middleware{l: l, tokens: tokens}
}
