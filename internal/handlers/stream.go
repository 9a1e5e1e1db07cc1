package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Marquin099/Cinema-Dublado/internal/models"
)

func (h *Handler) handleStream(c *gin.Context) {
	streamID := c.Param("id")

	h.services.Logger.Debugf("[StreamHandler] resolving streams - id: %s", streamID)

	loc := h.services.Store.Resolve(streamID)
	streams := h.services.Store.Streams(loc)

	h.services.Logger.Infof("[StreamHandler] returning %d streams for %s", len(streams), streamID)

	c.JSON(http.StatusOK, models.StreamResponse{Streams: streams})
}
