// Package models defines the record types loaded from the local JSON
// sources and the Stremio wire structures returned by the handlers.
package models

import "encoding/json"

// Movie is a single movie record as stored in the movies source file.
// Every field except ID is optional in the raw JSON; absent fields keep
// their zero value. TMDB uses json.Number because the source files mix
// numeric and string ids.
type Movie struct {
	ID          string      `json:"id"`
	TMDB        json.Number `json:"tmdb,omitempty"`
	Name        string      `json:"name"`
	Category    string      `json:"category,omitempty"`
	Poster      string      `json:"poster,omitempty"`
	Background  string      `json:"background,omitempty"`
	Description string      `json:"description,omitempty"`
	Year        int         `json:"year,omitempty"`
	Stream      string      `json:"stream,omitempty"`
}

// Series is a single series record. IMDB is a secondary external id
// ("tt" prefixed) that some records carry in addition to the TMDB id.
// Season numbers are unique within a series and episode numbers unique
// within a season, but neither needs to be contiguous or sorted.
type Series struct {
	ID          string       `json:"id"`
	TMDB        json.Number  `json:"tmdb,omitempty"`
	IMDB        string       `json:"imdb,omitempty"`
	Name        string       `json:"name"`
	Category    string       `json:"category,omitempty"`
	Poster      string       `json:"poster,omitempty"`
	Background  string       `json:"background,omitempty"`
	Logo        string       `json:"logo,omitempty"`
	Description string       `json:"description,omitempty"`
	Year        int          `json:"year,omitempty"`
	Runtime     string       `json:"runtime,omitempty"`
	Genres      []string     `json:"genres,omitempty"`
	Rating      SeriesRating `json:"rating,omitempty"`
	Seasons     []Season     `json:"seasons,omitempty"`
}

// SeriesRating holds per-source rating values. Only the IMDb score is
// used today; json.Number tolerates both "8.4" and 8.4 in the source.
type SeriesRating struct {
	IMDB json.Number `json:"imdb,omitempty"`
}

// Season groups the episodes of one season.
type Season struct {
	Season   int       `json:"season"`
	Episodes []Episode `json:"episodes,omitempty"`
}

// Episode is a single playable episode.
type Episode struct {
	Episode   int    `json:"episode"`
	Title     string `json:"title,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Overview  string `json:"overview,omitempty"`
	Released  string `json:"released,omitempty"`
	Stream    string `json:"stream,omitempty"`
}
