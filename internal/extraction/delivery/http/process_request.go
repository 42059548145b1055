package http

import (
	"github.com/gin-gonic/gin"

	"coursepilot/internal/extraction"
)

func (h *handler) processExtractRequest(c *gin.Context) (extractReq, error) {
	var req extractReq

	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "extraction.delivery.http.processExtractRequest.ShouldBindJSON: %v", err)
		return extractReq{}, extraction.ErrInvalidPayload
	}

	if err := req.validate(); err != nil {
		return extractReq{}, err
	}

	return req, nil
}
