// Package services provides the optional TMDB metadata enrichment and
// the dependency injection container handed to the HTTP handlers.
package services

import (
	"github.com/Marquin099/Cinema-Dublado/internal/cache"
	"github.com/Marquin099/Cinema-Dublado/internal/database"
	"github.com/Marquin099/Cinema-Dublado/internal/models"
	"github.com/Marquin099/Cinema-Dublado/internal/store"
	"github.com/Marquin099/Cinema-Dublado/pkg/logger"
)

// Container holds all application services for dependency injection.
// TMDB is nil when no API key is configured; handlers must treat it as
// optional and serve record-only data without it.
type Container struct {
	Store  *store.Store
	TMDB   TMDBService
	Cache  *cache.LRUCache
	DB     database.Database
	Logger logger.Logger
}

// TMDBService defines the interface for TMDB metadata lookups.
type TMDBService interface {
	// GetMetadata fetches enrichment data for one title. mediaType is
	// "movie" or "series"; tmdbID is the bare numeric id.
	GetMetadata(mediaType, tmdbID string) (*models.TMDBData, error)
}
