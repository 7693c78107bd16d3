package usecase

import (
	"homework-planner/internal/reminder"
	"homework-planner/internal/user/repository"
	pkgLog "homework-planner/pkg/log"
	"homework-planner/pkg/scope"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	tokens   *scope.Manager
	sessions *reminder.Manager
}

// New creates a new user UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, tokens *scope.Manager, sessions *reminder.Manager) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		tokens:   tokens,
		sessions: sessions,
	}
}
