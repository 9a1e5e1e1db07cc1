// Package store implements the read-only record engine behind the
// addon: it loads the movie and series sources once at startup and
// answers catalog, identifier, detail and stream lookups against the
// resulting immutable view.
package store

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/Marquin099/Cinema-Dublado/internal/errors"
	"github.com/Marquin099/Cinema-Dublado/internal/models"
	"github.com/Marquin099/Cinema-Dublado/pkg/logger"
)

// Store holds the normalized record lists. It is built once, before the
// server accepts requests, and never mutated afterwards; every method
// only reads, so concurrent request handling needs no locking.
type Store struct {
	movies []models.Movie
	series []models.Series
	log    logger.Logger
}

// New builds a Store directly from record slices. Load is the normal
// entry point; New exists for wiring and tests.
func New(movies []models.Movie, series []models.Series, log logger.Logger) *Store {
	return &Store{
		movies: movies,
		series: series,
		log:    log,
	}
}

// Load reads both record sources and returns the populated store. A
// missing or unparsable source degrades that collection to an empty
// list: the addon keeps serving whatever loaded.
func Load(moviesPath, seriesPath string, log logger.Logger) *Store {
	movies := loadCollection[models.Movie](moviesPath, log, func(m *models.Movie, category string) {
		m.Category = category
	})
	series := loadCollection[models.Series](seriesPath, log, func(s *models.Series, category string) {
		s.Category = category
	})

	log.Infof("[Store] loaded %d movies and %d series", len(movies), len(series))

	return New(movies, series, log)
}

// MovieCount returns the number of loaded movie records.
func (s *Store) MovieCount() int { return len(s.movies) }

// SeriesCount returns the number of loaded series records.
func (s *Store) SeriesCount() int { return len(s.series) }

// loadCollection reads one source file and decodes it in either of the
// two accepted shapes: a flat record list, or a mapping from category
// label to record list. The grouped shape is flattened with the map key
// written into each record's category field; groups are appended in
// sorted key order so the resulting record order is deterministic.
func loadCollection[T any](path string, log logger.Logger, setCategory func(*T, string)) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("[Store] %v", errors.NewSourceError(path, err))
		return nil
	}

	var flat []T
	if err := json.Unmarshal(data, &flat); err == nil {
		return flat
	}

	var grouped map[string][]T
	if err := json.Unmarshal(data, &grouped); err != nil {
		log.Warnf("[Store] %v", errors.NewSourceError(path, err))
		return nil
	}

	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var records []T
	for _, key := range keys {
		group := grouped[key]
		for i := range group {
			setCategory(&group[i], key)
			records = append(records, group[i])
		}
	}
	return records
}
