package http

import (
	"github.com/gin-gonic/gin"

	"homework-planner/internal/middleware"
	"homework-planner/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks, incomplete first.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Add godoc
// @Summary     Add a task
// @Description Creates a task with a free-text due date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body addReq true "Task data"
// @Success     200 {object} addResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Add(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAddResp(output))
}

// MarkDone godoc
// @Summary     Mark a task complete
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/done [POST]
func (h *handler) MarkDone(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	taskID, err := h.processTaskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.MarkDone(ctx, sc, taskID); err != nil {
		h.l.Errorf(ctx, "uc.MarkDone: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	taskID, err := h.processTaskID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, taskID); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Sync godoc
// @Summary     Import upcoming Canvas items
// @Description Fetches planner items for the next 30 days and inserts the ones not already present.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} syncResp
// @Failure     502 {object} response.Resp "Canvas fetch failed"
// @Router      /api/v1/tasks/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Sync(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Sync: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSyncResp(output))
}
