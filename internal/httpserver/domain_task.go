package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"homework-planner/internal/middleware"
	taskHTTP "homework-planner/internal/task/delivery/http"
	taskRepo "homework-planner/internal/task/repository/sqlite"
	taskUC "homework-planner/internal/task/usecase"
	"homework-planner/pkg/duedate"
)

// setupTaskDomain initializes the task domain and registers its routes.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := taskRepo.New(srv.db, srv.l)

	// 2. UseCase. A typed nil calendar must not reach the interface field.
	var calendar taskUC.CalendarMirror
	if srv.calendar != nil {
		calendar = srv.calendar
	}
	uc := taskUC.New(srv.l, repo, srv.canvas, calendar, duedate.New(srv.loc))

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/tasks/*
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
