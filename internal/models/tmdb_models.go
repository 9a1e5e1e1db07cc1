package models

// TMDB API response structures used by the optional metadata enrichment.

// TMDBData is the normalized enrichment payload cached and applied to
// detail objects. Fields are only used to fill gaps in the local record.
type TMDBData struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Poster      string   `json:"poster"`
	Background  string   `json:"background"`
	Rating      float64  `json:"rating"`
	Genres      []string `json:"genres"`
}

// TMDBMovieDetails mirrors the fields consumed from /3/movie/{id}.
type TMDBMovieDetails struct {
	ID           int         `json:"id"`
	Title        string      `json:"title"`
	Overview     string      `json:"overview"`
	PosterPath   string      `json:"poster_path"`
	BackdropPath string      `json:"backdrop_path"`
	ReleaseDate  string      `json:"release_date"`
	VoteAverage  float64     `json:"vote_average"`
	Genres       []TMDBGenre `json:"genres"`
}

// TMDBTVDetails mirrors the fields consumed from /3/tv/{id}.
type TMDBTVDetails struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Overview     string      `json:"overview"`
	PosterPath   string      `json:"poster_path"`
	BackdropPath string      `json:"backdrop_path"`
	FirstAirDate string      `json:"first_air_date"`
	VoteAverage  float64     `json:"vote_average"`
	Genres       []TMDBGenre `json:"genres"`
}

type TMDBGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
