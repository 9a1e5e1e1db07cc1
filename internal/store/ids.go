package store

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Marquin099/Cinema-Dublado/internal/constants"
	"github.com/Marquin099/Cinema-Dublado/internal/models"
)

// Identifier grammar. Catalog output and resolver input share these
// encode/decode helpers so the two sides cannot drift apart:
//
//	movie:   "tmdb:<id>" when the record has a TMDB id, else the
//	         record's internal id
//	series:  same rule as movies
//	episode: "<series base>:<season>:<episode>" where the base is any
//	         id the series answers to (TMDB canonical, IMDb, internal)
//	         and season/episode are decimal integers

var nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)

// MovieID returns the display id for a movie record.
func MovieID(m *models.Movie) string {
	if m.TMDB != "" {
		return constants.TMDBIDPrefix + m.TMDB.String()
	}
	return m.ID
}

// SeriesID returns the display id for a series record.
func SeriesID(s *models.Series) string {
	if s.TMDB != "" {
		return constants.TMDBIDPrefix + s.TMDB.String()
	}
	return s.ID
}

// EpisodeID builds the compound id for one episode of a series.
func EpisodeID(base string, season, episode int) string {
	return fmt.Sprintf("%s:%d:%d", base, season, episode)
}

// ParseEpisodeID splits a compound episode id into base, season and
// episode. The base may itself contain colons ("tmdb:603:1:2" has base
// "tmdb:603"), so only the last two segments are positional. Season and
// episode are returned as numbers; callers compare them by value so
// zero-padded input ("X:01:2") matches unpadded record numbers.
func ParseEpisodeID(id string) (base string, season, episode int, ok bool) {
	parts := strings.Split(id, ":")
	if len(parts) < 3 {
		return "", 0, 0, false
	}

	season, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return "", 0, 0, false
	}

	episode, err = strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return "", 0, 0, false
	}

	base = strings.Join(parts[:len(parts)-2], ":")
	if base == "" {
		return "", 0, 0, false
	}

	return base, season, episode, true
}

// CatalogID derives the stable catalog identifier for a media type and
// category key. The key side is slugged so ids stay URL-safe and
// reproducible across restarts regardless of label spelling.
func CatalogID(mediaType, categoryKey string) string {
	return mediaType + constants.CatalogIDSeparator + slugify(categoryKey)
}

// normalizeCategory lower-cases and trims a raw category label; this is
// the key used for case-insensitive deduplication.
func normalizeCategory(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// slugify collapses a normalized category key into a URL-safe token.
func slugify(key string) string {
	key = normalizeCategory(key)
	key = nonAlphaNum.ReplaceAllString(key, "-")
	return strings.Trim(key, "-")
}
