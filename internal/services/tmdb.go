package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Marquin099/Cinema-Dublado/internal/cache"
	"github.com/Marquin099/Cinema-Dublado/internal/constants"
	"github.com/Marquin099/Cinema-Dublado/internal/database"
	apperrors "github.com/Marquin099/Cinema-Dublado/internal/errors"
	"github.com/Marquin099/Cinema-Dublado/internal/models"
	"github.com/Marquin099/Cinema-Dublado/pkg/logger"
	"github.com/Marquin099/Cinema-Dublado/pkg/ratelimiter"
	"github.com/Marquin099/Cinema-Dublado/pkg/security"
)

const (
	defaultTMDBBaseURL = "https://api.themoviedb.org/3"
	tmdbImageBaseURL   = "https://image.tmdb.org/t/p"
	tmdbPosterSize     = "w500"
	tmdbBackdropSize   = "original"
)

// TMDB fetches metadata from themoviedb.org to fill gaps in local
// records. Results go through two cache layers: the in-memory LRU for
// hot entries and the Bolt database so restarts do not refetch.
type TMDB struct {
	apiKey      string
	baseURL     string
	cache       *cache.LRUCache
	cacheTTL    time.Duration
	db          database.Database
	rateLimiter *ratelimiter.TokenBucket
	httpClient  *http.Client
	logger      logger.Logger
	validator   *security.APIKeyValidator
}

// NewTMDB creates the enrichment service. The key is sanitized before
// use; an empty or invalid key makes every lookup fail soft, which the
// callers already tolerate.
func NewTMDB(apiKey string, c *cache.LRUCache, cacheTTL time.Duration, log logger.Logger) *TMDB {
	validator := security.NewAPIKeyValidator()

	sanitizedKey := ""
	if apiKey != "" {
		sanitizedKey = validator.SanitizeAPIKey(apiKey)
	}

	return &TMDB{
		apiKey:      sanitizedKey,
		baseURL:     defaultTMDBBaseURL,
		cache:       c,
		cacheTTL:    cacheTTL,
		rateLimiter: ratelimiter.NewTokenBucket(constants.TMDBRateLimit, constants.TMDBRateBurst),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:    log,
		validator: validator,
	}
}

// SetDB attaches the persistent cache. Optional; without it only the
// in-memory cache is used.
func (t *TMDB) SetDB(db database.Database) {
	t.db = db
}

// SetBaseURL overrides the API endpoint, used by tests.
func (t *TMDB) SetBaseURL(baseURL string) {
	t.baseURL = baseURL
}

// GetMetadata returns enrichment data for one title, consulting the
// LRU cache, then the Bolt cache, then the TMDB API.
func (t *TMDB) GetMetadata(mediaType, tmdbID string) (*models.TMDBData, error) {
	// TMDB numbers movies and TV shows independently, so the bare id is
	// ambiguous; the key carries the API resource to keep the two
	// namespaces apart in both cache layers.
	cacheKey := fmt.Sprintf("%s%s:%s", constants.TMDBIDPrefix, tmdbResource(mediaType), tmdbID)

	if data, found := t.cache.Get(cacheKey); found {
		return data.(*models.TMDBData), nil
	}

	if t.db != nil {
		if cached, err := t.db.GetCachedTMDB(cacheKey); err == nil && cached != nil {
			if time.Since(cached.CreatedAt) < t.cacheTTL {
				data := &models.TMDBData{
					Type:        cached.Type,
					Title:       cached.Title,
					Description: cached.Description,
					Poster:      cached.Poster,
					Background:  cached.Background,
					Rating:      cached.Rating,
					Genres:      cached.Genres,
				}
				t.cache.Set(cacheKey, data)
				return data, nil
			}
		}
	}

	if t.apiKey == "" {
		return nil, apperrors.NewAPIKeyMissingError("TMDB")
	}

	if !t.validator.IsValidTMDBKey(t.apiKey) {
		return nil, apperrors.NewTMDBError(
			fmt.Sprintf("invalid API key format (key: %s)", t.validator.MaskAPIKey(t.apiKey)), nil)
	}

	data, err := t.fetch(mediaType, tmdbID)
	if err != nil {
		return nil, err
	}

	t.cache.Set(cacheKey, data)

	if t.db != nil {
		entry := &database.TMDBCache{
			ID:          cacheKey,
			Type:        data.Type,
			Title:       data.Title,
			Description: data.Description,
			Poster:      data.Poster,
			Background:  data.Background,
			Rating:      data.Rating,
			Genres:      data.Genres,
		}
		if err := t.db.StoreTMDBCache(entry); err != nil {
			t.logger.Errorf("[TMDB] failed to store cache: %v", err)
		}
	}

	return data, nil
}

// tmdbResource maps a media type onto the TMDB API resource name.
func tmdbResource(mediaType string) string {
	if mediaType == constants.TypeSeries {
		return "tv"
	}
	return "movie"
}

func (t *TMDB) fetch(mediaType, tmdbID string) (*models.TMDBData, error) {
	t.rateLimiter.Wait()

	resource := tmdbResource(mediaType)

	url := fmt.Sprintf("%s/%s/%s?api_key=%s&language=pt-BR", t.baseURL, resource, tmdbID, t.apiKey)

	t.logger.Debugf("[TMDB] fetching %s metadata for id %s", mediaType, tmdbID)

	resp, err := t.httpClient.Get(url)
	if err != nil {
		return nil, apperrors.NewTMDBError("request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewTMDBError(fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	if mediaType == constants.TypeSeries {
		var details models.TMDBTVDetails
		if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
			return nil, apperrors.NewTMDBError("failed to decode response", err)
		}
		return &models.TMDBData{
			Type:        constants.TypeSeries,
			Title:       details.Name,
			Description: details.Overview,
			Poster:      imageURL(details.PosterPath, tmdbPosterSize),
			Background:  imageURL(details.BackdropPath, tmdbBackdropSize),
			Rating:      details.VoteAverage,
			Genres:      genreNames(details.Genres),
		}, nil
	}

	var details models.TMDBMovieDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, apperrors.NewTMDBError("failed to decode response", err)
	}
	return &models.TMDBData{
		Type:        constants.TypeMovie,
		Title:       details.Title,
		Description: details.Overview,
		Poster:      imageURL(details.PosterPath, tmdbPosterSize),
		Background:  imageURL(details.BackdropPath, tmdbBackdropSize),
		Rating:      details.VoteAverage,
		Genres:      genreNames(details.Genres),
	}, nil
}

func imageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s%s", tmdbImageBaseURL, size, path)
}

func genreNames(genres []models.TMDBGenre) []string {
	if len(genres) == 0 {
		return nil
	}
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}
