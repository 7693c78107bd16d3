package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "homework-planner/pkg/errors"
)

// processAddReq binds and validates the add task request body.
func (h *handler) processAddReq(c *gin.Context) (addReq, error) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processTaskID parses the :id path parameter. Clients send the structured
// id, never a rendered label.
func (h *handler) processTaskID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, pkgErrors.NewHTTPError(400, "invalid task id")
	}
	return id, nil
}
