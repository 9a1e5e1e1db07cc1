package store

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Marquin099/Cinema-Dublado/internal/constants"
	"github.com/Marquin099/Cinema-Dublado/internal/models"
)

// Streams returns the playable entries for a resolved locator, at most
// one in this addon. Any navigation miss (no such season, no such
// episode, blank playback reference) yields an empty list.
func (s *Store) Streams(loc Locator) []models.Stream {
	switch loc.Kind {
	case KindMovie:
		if loc.Movie.Stream == "" {
			return []models.Stream{}
		}
		return []models.Stream{
			{
				Title: constants.MovieStreamTitle,
				URL:   NormalizeReference(loc.Movie.Stream),
			},
		}

	case KindEpisode:
		ep := findEpisode(loc.Series, loc.Season, loc.Episode)
		if ep == nil || ep.Stream == "" {
			return []models.Stream{}
		}
		return []models.Stream{
			{
				Title: fmt.Sprintf("S%dE%d - %s", loc.Season, loc.Episode, constants.StreamLangTag),
				URL:   NormalizeReference(ep.Stream),
			},
		}

	default:
		return []models.Stream{}
	}
}

// findEpisode navigates series -> season -> episode by numeric
// equality, so zero-padded numbers in the inbound id cannot cause a
// false miss against unpadded record numbers.
func findEpisode(sr *models.Series, season, episode int) *models.Episode {
	for i := range sr.Seasons {
		if sr.Seasons[i].Season != season {
			continue
		}
		eps := sr.Seasons[i].Episodes
		for j := range eps {
			if eps[j].Episode == episode {
				return &eps[j]
			}
		}
		return nil
	}
	return nil
}

// NormalizeReference prepares a stored playback reference for the
// client. An HTTP URL that does not point at a recognizable media or
// container file is wrapped with the external-handler prefix so the
// client hands it to an external resolver instead of trying to play it
// directly. Already-wrapped references and opaque locators pass
// through unchanged, which makes the normalization idempotent.
func NormalizeReference(ref string) string {
	if strings.HasPrefix(ref, constants.ExternalPlayerPrefix) {
		return ref
	}

	if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
		return ref
	}

	if isDirectMedia(ref) {
		return ref
	}

	return constants.ExternalPlayerPrefix + ref
}

func isDirectMedia(rawURL string) bool {
	path := rawURL
	if parsed, err := url.Parse(rawURL); err == nil {
		path = parsed.Path
	}

	lower := strings.ToLower(path)
	for _, ext := range constants.MediaExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
