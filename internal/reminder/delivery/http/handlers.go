package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"homework-planner/internal/middleware"
	"homework-planner/pkg/response"
)

// Status godoc
// @Summary     Reminder session status
// @Description Returns the countdown line, the nearest deadline and any reminders fired since the last poll. Fired reminders are drained: each is delivered exactly once.
// @Tags        Planner
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/planner/status [GET]
func (h *handler) Status(c *gin.Context) {
	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	s := h.sessions.Get(sc.UserID)
	if s == nil {
		response.OK(c, newStatusResp(false, nil))
		return
	}

	snap := s.Status()
	response.OK(c, newStatusResp(true, &snap))
}

// Start godoc
// @Summary     Start a reminder session
// @Description Starts a fresh reminder session for the caller, replacing any active one and resetting fired-state.
// @Tags        Planner
// @Produce     json
// @Success     200 {object} startResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/planner/start [POST]
func (h *handler) Start(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	// The session must outlive this request.
	s := h.sessions.StartSession(context.WithoutCancel(ctx), sc.UserID)
	h.l.Infof(ctx, "planner session %s restarted for user %d", s.ID, sc.UserID)

	response.OK(c, startResp{SessionID: s.ID})
}

// Stop godoc
// @Summary     Stop the reminder session
// @Tags        Planner
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/planner/stop [POST]
func (h *handler) Stop(c *gin.Context) {
	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	h.sessions.StopSession(sc.UserID)
	response.OK(c, nil)
}
