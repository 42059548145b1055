package http

import (
	"github.com/gin-gonic/gin"

	"coursepilot/pkg/response"
)

// Extract extracts candidate tasks from academic text sources.
// @Summary      Extract candidate tasks
// @Description  Runs the extraction pipeline over the submitted sources and returns deduplicated candidate tasks. Only newly extracted tasks are returned: entries in existing_tasks suppress duplicates but are not echoed back, so callers union the result with their own list.
// @Tags         Extraction
// @Accept       json
// @Produce      json
// @Param        body body extractReq true "Sources, known courses, existing tasks and options"
// @Success      200 {object} response.Resp{data=extractResp}
// @Failure      400 {object} response.Resp
// @Failure      500 {object} response.Resp
// @Router       /api/v1/extraction/tasks [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "extraction.delivery.http.Extract.processExtractRequest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "extraction.delivery.http.Extract.Extract: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExtractResp(out))
}
