// Package handlers implements HTTP request handlers for the Stremio addon API.
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Marquin099/Cinema-Dublado/internal/config"
	"github.com/Marquin099/Cinema-Dublado/internal/services"
)

// Handler handles HTTP requests for the Stremio addon.
type Handler struct {
	services *services.Container
	config   *config.Config
}

// New creates a new Handler with the provided services and configuration.
func New(services *services.Container, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

// RegisterRoutes registers all HTTP routes for the Stremio addon.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// Home route
	r.GET("/", h.handleHome)

	// Manifest route
	r.GET("/manifest.json", h.handleManifest)

	// Catalog routes - handle both with and without .json in the handler
	r.GET("/catalog/:type/:id", h.handleCatalogWrapper)
	r.GET("/catalog/:type/:id/*extra", h.handleCatalogWrapper)

	// Meta routes
	r.GET("/meta/:type/:id", h.handleMetaWrapper)

	// Stream routes
	r.GET("/stream/:type/:id", h.handleStreamWrapper)
}

func (h *Handler) handleHome(c *gin.Context) {
	c.String(200, "Cinema Dublado addon. Install via /manifest.json")
}

// Wrapper functions to handle .json extension
func (h *Handler) handleCatalogWrapper(c *gin.Context) {
	stripJSONExtension(c, "id")

	// Handle extra path parameters (e.g., /catalog/movie/movie-all/search=term.json)
	extra := c.Param("extra")
	if extra != "" {
		extra = strings.TrimPrefix(extra, "/")
		extra = strings.TrimSuffix(extra, ".json")

		// Parse path-based parameters (e.g., "search=term&genre=terror")
		params := strings.Split(extra, "&")
		for _, param := range params {
			parts := strings.SplitN(param, "=", 2)
			if len(parts) == 2 {
				// Add as query parameter so the handler can access it via c.Query()
				c.Request.URL.RawQuery = c.Request.URL.RawQuery + "&" + parts[0] + "=" + parts[1]
			}
		}

		c.Request.URL.RawQuery = strings.TrimPrefix(c.Request.URL.RawQuery, "&")
	}

	h.handleCatalog(c)
}

func (h *Handler) handleMetaWrapper(c *gin.Context) {
	stripJSONExtension(c, "id")
	h.handleMeta(c)
}

func (h *Handler) handleStreamWrapper(c *gin.Context) {
	stripJSONExtension(c, "id")
	h.handleStream(c)
}
