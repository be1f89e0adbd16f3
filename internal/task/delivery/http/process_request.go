package http

import (
	"github.com/gin-gonic/gin"

	"github.com/gauravmalhotra04/raiden-ai/internal/task"
)

// processCreateReq binds the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

// processUpdateReq binds the update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, h.mapError(task.ErrTaskNotFound)
	}
	return req, nil
}
