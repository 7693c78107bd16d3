package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"homework-planner/internal/middleware"
	userHTTP "homework-planner/internal/user/delivery/http"
	userRepo "homework-planner/internal/user/repository/sqlite"
	userUC "homework-planner/internal/user/usecase"
)

// setupUserDomain initializes the user domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := userRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := userUC.New(srv.l, repo, srv.tokens, srv.sessions)

	// 3. HTTP Handler
	h := userHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/auth/*
	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
