package store

import (
	"github.com/Marquin099/Cinema-Dublado/internal/constants"
	"github.com/Marquin099/Cinema-Dublado/internal/models"
)

// LocatorKind tags what an identifier resolved to.
type LocatorKind int

const (
	KindNone LocatorKind = iota
	KindMovie
	KindSeries
	KindEpisode
)

// Locator is the result of identifier resolution: exactly one of the
// record pointers is set according to Kind. For KindEpisode the Season
// and Episode numbers come from the compound id; whether that episode
// actually exists is left to the caller's navigation, so a dangling
// number degrades to an empty stream list instead of an error.
type Locator struct {
	Kind    LocatorKind
	Movie   *models.Movie
	Series  *models.Series
	Season  int
	Episode int
}

// Resolve maps an inbound identifier to a record. Upstream display ids
// are inconsistently shaped, so resolution runs a strict, ordered
// strategy chain; the first strategy that matches wins and no later
// strategy is consulted:
//
//  1. movie, by internal id or canonical TMDB form
//  2. series, by canonical TMDB form or internal id
//  3. episode, by compound id whose base is tried against each series
//     namespace in turn (TMDB canonical, then IMDb, then internal)
//
// An identifier that matches nothing yields KindNone; that is a normal
// outcome, not an error.
func (s *Store) Resolve(id string) Locator {
	if m := s.findMovie(id); m != nil {
		return Locator{Kind: KindMovie, Movie: m}
	}

	if sr := s.findSeries(id); sr != nil {
		return Locator{Kind: KindSeries, Series: sr}
	}

	base, season, episode, ok := ParseEpisodeID(id)
	if ok {
		if sr := s.findSeriesByBase(base); sr != nil {
			return Locator{Kind: KindEpisode, Series: sr, Season: season, Episode: episode}
		}
	}

	return Locator{Kind: KindNone}
}

func (s *Store) findMovie(id string) *models.Movie {
	for i := range s.movies {
		m := &s.movies[i]
		if id == m.ID {
			return m
		}
		if m.TMDB != "" && id == constants.TMDBIDPrefix+m.TMDB.String() {
			return m
		}
	}
	return nil
}

func (s *Store) findSeries(id string) *models.Series {
	for i := range s.series {
		sr := &s.series[i]
		if sr.TMDB != "" && id == constants.TMDBIDPrefix+sr.TMDB.String() {
			return sr
		}
		if id == sr.ID {
			return sr
		}
	}
	return nil
}

// findSeriesByBase matches an episode id base against the series list,
// one namespace at a time: all TMDB canonical forms first, then IMDb
// ids, then internal ids. Separate passes keep a base that collides
// across namespaces (one series' internal id equal to another's IMDb
// id) binding to the higher-priority namespace.
func (s *Store) findSeriesByBase(base string) *models.Series {
	for i := range s.series {
		sr := &s.series[i]
		if sr.TMDB != "" && base == constants.TMDBIDPrefix+sr.TMDB.String() {
			return sr
		}
	}
	for i := range s.series {
		sr := &s.series[i]
		if sr.IMDB != "" && base == sr.IMDB {
			return sr
		}
	}
	for i := range s.series {
		sr := &s.series[i]
		if base == sr.ID {
			return sr
		}
	}
	return nil
}
