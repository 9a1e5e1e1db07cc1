package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Marquin099/Cinema-Dublado/internal/models"
)

func (h *Handler) handleCatalog(c *gin.Context) {
	catalogType := c.Param("type")
	catalogID := c.Param("id")
	search := c.Query("search")

	h.services.Logger.Debugf("[CatalogHandler] processing catalog request - type: %s, id: %s", catalogType, catalogID)

	metas := h.services.Store.ListCatalog(catalogType, catalogID)
	if search != "" {
		metas = filterByTitle(metas, search)
	}

	h.services.Logger.Infof("[CatalogHandler] returning %d items for %s/%s", len(metas), catalogType, catalogID)

	c.JSON(http.StatusOK, models.CatalogResponse{Metas: metas})
}

// filterByTitle keeps entries whose name contains the query,
// case-insensitively. Order is preserved; there is no ranking.
func filterByTitle(metas []models.Meta, query string) []models.Meta {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return metas
	}

	filtered := make([]models.Meta, 0, len(metas))
	for _, meta := range metas {
		if strings.Contains(strings.ToLower(meta.Name), query) {
			filtered = append(filtered, meta)
		}
	}
	return filtered
}
