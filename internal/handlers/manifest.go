package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Marquin099/Cinema-Dublado/internal/constants"
	"github.com/Marquin099/Cinema-Dublado/internal/models"
)

func (h *Handler) handleManifest(c *gin.Context) {
	c.JSON(http.StatusOK, h.createManifest())
}

func (h *Handler) createManifest() models.Manifest {
	return models.Manifest{
		ID:          constants.AddonID,
		Version:     constants.AddonVersion,
		Name:        constants.AddonName,
		Description: constants.AddonDescription,
		Types:       []string{constants.TypeMovie, constants.TypeSeries},
		Resources:   []string{"catalog", "meta", "stream"},
		Catalogs:    h.services.Store.CatalogDescriptors(),
		BehaviorHints: models.BehaviorHints{
			Configurable: false,
		},
		// No idPrefixes: display ids fall back to free-form internal ids
		// when a record has no TMDB id, and a prefix list would keep
		// clients from routing those back to us.
		Logo: constants.AddonLogo,
	}
}
