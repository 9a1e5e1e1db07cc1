package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Marquin099/Cinema-Dublado/internal/models"
	"github.com/Marquin099/Cinema-Dublado/internal/store"
)

func (h *Handler) handleMeta(c *gin.Context) {
	metaID := c.Param("id")

	h.services.Logger.Debugf("[MetaHandler] fetching metadata - id: %s", metaID)

	cacheKey := "meta:" + metaID
	if cached, found := h.services.Cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, models.MetaResponse{Meta: cached.(models.Meta)})
		return
	}

	loc := h.services.Store.Resolve(metaID)
	meta, ok := h.services.Store.ProjectDetail(loc)
	if !ok {
		// Unknown ids are routine (stale clients, foreign catalogs);
		// answer with an empty detail object, never an error.
		h.services.Logger.Debugf("[MetaHandler] no record for id %s", metaID)
		c.JSON(http.StatusOK, models.MetaResponse{})
		return
	}

	h.enrich(&meta, loc)
	h.services.Cache.Set(cacheKey, meta)

	c.JSON(http.StatusOK, models.MetaResponse{Meta: meta})
}

// enrich fills empty detail fields from TMDB when the service is
// configured and the record carries a TMDB id. Failures only cost the
// enrichment fields; the projection from the local record stands.
func (h *Handler) enrich(meta *models.Meta, loc store.Locator) {
	if h.services.TMDB == nil {
		return
	}

	var tmdbID string
	switch loc.Kind {
	case store.KindMovie:
		tmdbID = loc.Movie.TMDB.String()
	case store.KindSeries, store.KindEpisode:
		tmdbID = loc.Series.TMDB.String()
	}
	if tmdbID == "" {
		return
	}

	data, err := h.services.TMDB.GetMetadata(meta.Type, tmdbID)
	if err != nil {
		h.services.Logger.Debugf("[MetaHandler] enrichment unavailable for %s: %v", meta.ID, err)
		return
	}

	if meta.Description == "" {
		meta.Description = data.Description
	}
	if meta.Poster == "" {
		meta.Poster = data.Poster
	}
	if meta.Background == "" {
		meta.Background = data.Background
	}
	if meta.IMDBRating == 0 && data.Rating > 0 {
		meta.IMDBRating = data.Rating
	}
	if len(meta.Genres) == 0 {
		meta.Genres = data.Genres
	}
}
