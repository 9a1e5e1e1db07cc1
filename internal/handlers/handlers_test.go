package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marquin099/Cinema-Dublado/internal/cache"
	"github.com/Marquin099/Cinema-Dublado/internal/config"
	"github.com/Marquin099/Cinema-Dublado/internal/models"
	"github.com/Marquin099/Cinema-Dublado/internal/services"
	"github.com/Marquin099/Cinema-Dublado/internal/store"
	"github.com/Marquin099/Cinema-Dublado/pkg/logger"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	movies := []models.Movie{
		{ID: "filme-halloween", TMDB: "948", Name: "Halloween", Category: "Terror", Year: 1978, Stream: "http://cdn.example.com/halloween.mp4"},
		{ID: "filme-avulso", Name: "Filme Avulso", Stream: "https://drive.example.com/open?id=xyz"},
	}
	series := []models.Series{
		{
			ID: "serie-round6", TMDB: "93405", IMDB: "tt10919420", Name: "Round 6", Category: "Netflix",
			Seasons: []models.Season{
				{Season: 1, Episodes: []models.Episode{
					{Episode: 1, Title: "S1E1", Stream: "http://cdn.example.com/r6-s1e1.mp4"},
				}},
			},
		},
	}

	log := logger.NewWithLevel(logger.LevelError)
	container := &services.Container{
		Store:  store.New(movies, series, log),
		Cache:  cache.New(100, time.Minute),
		Logger: log,
	}

	r := gin.New()
	handler := New(container, &config.Config{})
	handler.RegisterRoutes(r)
	return r
}

func doRequest(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest("GET", path, nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)
	return w
}

func TestManifestEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(t, router, "/manifest.json")
	require.Equal(t, http.StatusOK, w.Code)

	var manifest models.Manifest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &manifest))

	assert.Equal(t, "cinema-dublado", manifest.ID)
	assert.Equal(t, []string{"catalog", "meta", "stream"}, manifest.Resources)
	assert.Equal(t, []string{"movie", "series"}, manifest.Types)

	ids := make([]string, len(manifest.Catalogs))
	for i, c := range manifest.Catalogs {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"movie-all", "movie-terror", "series-all", "series-netflix"}, ids)
}

func TestCatalogEndpoint(t *testing.T) {
	router := setupTestRouter()

	for _, path := range []string{"/catalog/movie/movie-all", "/catalog/movie/movie-all.json"} {
		w := doRequest(t, router, path)
		require.Equal(t, http.StatusOK, w.Code, "path %s", path)

		var resp models.CatalogResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Metas, 2)
		assert.Equal(t, "tmdb:948", resp.Metas[0].ID)
		assert.Equal(t, "filme-avulso", resp.Metas[1].ID)
	}
}

func TestCatalogEndpointSearchExtra(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(t, router, "/catalog/movie/movie-all/search=halloween.json")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Metas, 1)
	assert.Equal(t, "Halloween", resp.Metas[0].Name)
}

func TestCatalogEndpointUnknownID(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(t, router, "/catalog/movie/movie-inexistente.json")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CatalogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Metas)
	assert.Contains(t, w.Body.String(), `"metas":[]`)
}

func TestMetaEndpointMovie(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(t, router, "/meta/movie/tmdb:948.json")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.MetaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tmdb:948", resp.Meta.ID)
	require.Len(t, resp.Meta.Videos, 1)
	assert.Equal(t, "Filme Completo", resp.Meta.Videos[0].Title)
}

func TestMetaEndpointSeries(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(t, router, "/meta/series/tmdb:93405.json")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.MetaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Round 6", resp.Meta.Name)
	require.Len(t, resp.Meta.Videos, 1)
	assert.Equal(t, "tmdb:93405:1:1", resp.Meta.Videos[0].ID)
}

func TestMetaEndpointUnknownID(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(t, router, "/meta/movie/does-not-exist.json")
	require.Equal(t, http.StatusOK, w.Code)

	assert.JSONEq(t, `{"meta":{}}`, w.Body.String())
}

func TestStreamEndpointMovie(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(t, router, "/stream/movie/tmdb:948.json")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.StreamResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Streams, 1)
	assert.Equal(t, "http://cdn.example.com/halloween.mp4", resp.Streams[0].URL)
}

func TestStreamEndpointEpisode(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(t, router, "/stream/series/tt10919420:1:1.json")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.StreamResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Streams, 1)
	assert.Equal(t, "S1E1 - Dublado", resp.Streams[0].Title)
}

func TestStreamEndpointExternalReference(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(t, router, "/stream/movie/filme-avulso.json")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.StreamResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Streams, 1)
	assert.Equal(t, "external:https://drive.example.com/open?id=xyz", resp.Streams[0].URL)
}

func TestStreamEndpointUnknownID(t *testing.T) {
	router := setupTestRouter()

	w := doRequest(t, router, "/stream/movie/does-not-exist.json")
	require.Equal(t, http.StatusOK, w.Code)

	assert.JSONEq(t, `{"streams":[]}`, w.Body.String())
}
