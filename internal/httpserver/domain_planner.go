package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"homework-planner/internal/middleware"
	plannerHTTP "homework-planner/internal/reminder/delivery/http"
)

// setupPlannerDomain registers the reminder session routes. The session
// Manager is shared with the user domain, which starts and stops sessions on
// login and logout.
func (srv HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := plannerHTTP.New(srv.l, srv.sessions)

	plannerHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Planner domain registered")
	return nil
}
