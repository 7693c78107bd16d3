package usecase

import (
	"context"
	"time"

	"homework-planner/internal/task/repository"
	"homework-planner/pkg/canvas"
	"homework-planner/pkg/duedate"
	"homework-planner/pkg/gcalendar"
	pkgLog "homework-planner/pkg/log"
)

// PlannerAPI is the remote course-management client consumed by Sync.
type PlannerAPI interface {
	FetchPlannerItems(ctx context.Context, start, end time.Time) ([]canvas.PlannerItem, error)
}

// CalendarMirror optionally mirrors imported deadlines to a calendar.
type CalendarMirror interface {
	CreateDeadlineEvent(ctx context.Context, req gcalendar.DeadlineEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	planner  PlannerAPI
	calendar CalendarMirror // nil when not configured
	norm     *duedate.Normalizer
}

// New creates a new task UseCase instance. calendar may be nil.
func New(l pkgLog.Logger, repo repository.Repository, planner PlannerAPI, calendar CalendarMirror, norm *duedate.Normalizer) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		planner:  planner,
		calendar: calendar,
		norm:     norm,
	}
}
