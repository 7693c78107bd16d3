package http

import (
	"github.com/gin-gonic/gin"

	"homework-planner/internal/middleware"
	"homework-planner/pkg/response"
)

// Register godoc
// @Summary     Register a new account
// @Description Creates a user with the given username and password.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Credentials"
// @Success     200 {object} registerResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - username already exists"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRegisterResp(output))
}

// Login godoc
// @Summary     Log in
// @Description Verifies credentials, starts a reminder session, and returns an access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(output))
}

// Logout godoc
// @Summary     Log out
// @Description Stops the caller's reminder session.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Logout(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
