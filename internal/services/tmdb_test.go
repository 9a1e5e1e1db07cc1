package services

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marquin099/Cinema-Dublado/internal/cache"
	"github.com/Marquin099/Cinema-Dublado/internal/database"
	"github.com/Marquin099/Cinema-Dublado/pkg/logger"
)

const testAPIKey = "0123456789abcdef0123456789abcdef"

func newTestTMDB(t *testing.T, handler http.Handler) (*TMDB, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tmdb := NewTMDB(testAPIKey, cache.New(100, time.Minute), time.Hour, logger.NewWithLevel(logger.LevelError))
	tmdb.SetBaseURL(server.URL)
	return tmdb, server
}

func TestGetMetadataMovie(t *testing.T) {
	tmdb, _ := newTestTMDB(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/948", r.URL.Path)
		assert.Equal(t, testAPIKey, r.URL.Query().Get("api_key"))
		assert.Equal(t, "pt-BR", r.URL.Query().Get("language"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": 948,
			"title": "Halloween",
			"overview": "A noite do terror.",
			"poster_path": "/poster.jpg",
			"backdrop_path": "/backdrop.jpg",
			"vote_average": 7.7,
			"genres": [{"id": 27, "name": "Terror"}, {"id": 53, "name": "Thriller"}]
		}`))
	}))

	data, err := tmdb.GetMetadata("movie", "948")
	require.NoError(t, err)

	assert.Equal(t, "movie", data.Type)
	assert.Equal(t, "Halloween", data.Title)
	assert.Equal(t, "A noite do terror.", data.Description)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", data.Poster)
	assert.Equal(t, "https://image.tmdb.org/t/p/original/backdrop.jpg", data.Background)
	assert.InDelta(t, 7.7, data.Rating, 0.001)
	assert.Equal(t, []string{"Terror", "Thriller"}, data.Genres)
}

func TestGetMetadataSeriesUsesTVResource(t *testing.T) {
	tmdb, _ := newTestTMDB(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/93405", r.URL.Path)
		w.Write([]byte(`{"id": 93405, "name": "Round 6", "overview": "Jogos mortais.", "vote_average": 8.0}`))
	}))

	data, err := tmdb.GetMetadata("series", "93405")
	require.NoError(t, err)
	assert.Equal(t, "series", data.Type)
	assert.Equal(t, "Round 6", data.Title)
	assert.Empty(t, data.Poster)
}

func TestGetMetadataCachesResult(t *testing.T) {
	var calls atomic.Int32
	tmdb, _ := newTestTMDB(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"id": 948, "title": "Halloween"}`))
	}))

	_, err := tmdb.GetMetadata("movie", "948")
	require.NoError(t, err)
	_, err = tmdb.GetMetadata("movie", "948")
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
}

func TestGetMetadataSameIDAcrossTypes(t *testing.T) {
	// Movie and TV id spaces overlap at TMDB; a shared numeric id must
	// not let one type's cached payload answer for the other.
	tmdb, _ := newTestTMDB(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/movie/603":
			w.Write([]byte(`{"id": 603, "title": "Matrix", "overview": "Filme."}`))
		case "/tv/603":
			w.Write([]byte(`{"id": 603, "name": "Hannibal", "overview": "Série."}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	movie, err := tmdb.GetMetadata("movie", "603")
	require.NoError(t, err)
	series, err := tmdb.GetMetadata("series", "603")
	require.NoError(t, err)

	assert.Equal(t, "Matrix", movie.Title)
	assert.Equal(t, "Hannibal", series.Title)
	assert.Equal(t, "series", series.Type)

	// Repeat lookups keep resolving to their own type.
	movie, err = tmdb.GetMetadata("movie", "603")
	require.NoError(t, err)
	assert.Equal(t, "Matrix", movie.Title)
}

func TestGetMetadataUsesPersistentCache(t *testing.T) {
	var calls atomic.Int32
	tmdb, _ := newTestTMDB(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"id": 948, "title": "Halloween"}`))
	}))

	db, err := database.NewBolt(t.TempDir() + "/cache.db")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	tmdb.SetDB(db)

	_, err = tmdb.GetMetadata("movie", "948")
	require.NoError(t, err)

	// A fresh in-memory cache must be served from Bolt, not the API.
	tmdb.cache = cache.New(100, time.Minute)
	data, err := tmdb.GetMetadata("movie", "948")
	require.NoError(t, err)
	assert.Equal(t, "Halloween", data.Title)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetMetadataFailsSoftOnServerError(t *testing.T) {
	tmdb, _ := newTestTMDB(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := tmdb.GetMetadata("movie", "948")
	assert.Error(t, err)
}

func TestGetMetadataWithoutAPIKey(t *testing.T) {
	tmdb := NewTMDB("", cache.New(10, time.Minute), time.Hour, logger.NewWithLevel(logger.LevelError))

	_, err := tmdb.GetMetadata("movie", "948")
	assert.Error(t, err)
}

func TestGetMetadataRejectsMalformedKey(t *testing.T) {
	tmdb := NewTMDB("not-a-real-key", cache.New(10, time.Minute), time.Hour, logger.NewWithLevel(logger.LevelError))

	_, err := tmdb.GetMetadata("movie", "948")
	assert.Error(t, err)
}
