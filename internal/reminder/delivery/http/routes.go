package http

import (
	"github.com/gin-gonic/gin"

	"homework-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	planner := rg.Group("/planner")
	{
		planner.GET("/status", mw.Auth(), h.Status)
		planner.POST("/start", mw.Auth(), h.Start)
		planner.POST("/stop", mw.Auth(), h.Stop)
	}
}
