package store

import (
	"fmt"
	"sort"

	"github.com/Marquin099/Cinema-Dublado/internal/constants"
	"github.com/Marquin099/Cinema-Dublado/internal/models"
)

// ProjectDetail builds the full detail object for a resolved locator.
// The second return value is false only for KindNone; missing optional
// display fields never fail a projection, they are simply omitted.
func (s *Store) ProjectDetail(loc Locator) (models.Meta, bool) {
	switch loc.Kind {
	case KindMovie:
		return movieDetail(loc.Movie), true
	case KindSeries, KindEpisode:
		// A compound episode id details the whole series; Stremio asks
		// for series-level meta and picks the episode client-side.
		return seriesDetail(loc.Series), true
	default:
		return models.Meta{}, false
	}
}

// movieDetail carries one synthetic "full item" video entry so a
// playable entry point exists even though movies have no episodes.
func movieDetail(m *models.Movie) models.Meta {
	meta := models.Meta{
		ID:          MovieID(m),
		Type:        constants.TypeMovie,
		Name:        m.Name,
		Poster:      m.Poster,
		Background:  m.Background,
		Description: m.Description,
		ReleaseInfo: yearInfo(m.Year),
		Videos: []models.Video{
			{
				ID:       MovieID(m),
				Title:    constants.MovieVideoTitle,
				Released: yearReleaseDate(m.Year),
			},
		},
	}
	return meta
}

func seriesDetail(sr *models.Series) models.Meta {
	meta := models.Meta{
		ID:          SeriesID(sr),
		Type:        constants.TypeSeries,
		Name:        sr.Name,
		Poster:      sr.Poster,
		Background:  sr.Background,
		Logo:        sr.Logo,
		Description: sr.Description,
		ReleaseInfo: yearInfo(sr.Year),
		Runtime:     sr.Runtime,
		Genres:      sr.Genres,
		Videos:      flattenEpisodes(sr),
	}

	if rating, err := sr.Rating.IMDB.Float64(); err == nil && rating > 0 {
		meta.IMDBRating = rating
	}

	return meta
}

// flattenEpisodes lists every episode of every season sorted by
// (season, episode) ascending, regardless of the order the source file
// stores them in. Each entry's id uses the same compound grammar the
// resolver accepts, so detail output feeds straight back into Resolve.
func flattenEpisodes(sr *models.Series) []models.Video {
	base := SeriesID(sr)

	seasons := make([]models.Season, len(sr.Seasons))
	copy(seasons, sr.Seasons)
	sort.SliceStable(seasons, func(i, j int) bool {
		return seasons[i].Season < seasons[j].Season
	})

	var videos []models.Video
	for _, season := range seasons {
		episodes := make([]models.Episode, len(season.Episodes))
		copy(episodes, season.Episodes)
		sort.SliceStable(episodes, func(i, j int) bool {
			return episodes[i].Episode < episodes[j].Episode
		})

		for _, ep := range episodes {
			videos = append(videos, models.Video{
				ID:        EpisodeID(base, season.Season, ep.Episode),
				Title:     ep.Title,
				Season:    season.Season,
				Episode:   ep.Episode,
				Released:  ep.Released,
				Overview:  ep.Overview,
				Thumbnail: ep.Thumbnail,
			})
		}
	}
	return videos
}

func yearReleaseDate(year int) string {
	if year == 0 {
		return ""
	}
	return fmt.Sprintf("%04d-01-01T00:00:00.000Z", year)
}
