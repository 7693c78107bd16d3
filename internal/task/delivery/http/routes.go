package http

import (
	"github.com/gin-gonic/gin"

	"homework-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", mw.Auth(), h.List)
		tasks.POST("", mw.Auth(), h.Add)
		tasks.POST("/sync", mw.Auth(), h.Sync)
		tasks.POST("/:id/done", mw.Auth(), h.MarkDone)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
