package store

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Marquin099/Cinema-Dublado/internal/constants"
	"github.com/Marquin099/Cinema-Dublado/internal/models"
)

var titleCaser = cases.Title(language.BrazilianPortuguese)

// CatalogDescriptors derives the manifest catalog list from the loaded
// records. Per media type it emits the "all items" catalog first, then
// one catalog per distinct non-empty category in first-seen order.
// Categories whose slugged keys coincide (case, spacing or punctuation
// variants) collapse into one catalog; the displayed label is
// title-cased from the first-seen lower-cased key, so the list is
// identical across restarts for the same data.
func (s *Store) CatalogDescriptors() []models.Catalog {
	catalogs := []models.Catalog{
		{
			Type:  constants.TypeMovie,
			ID:    CatalogID(constants.TypeMovie, constants.CatalogAllKey),
			Name:  "Todos os Filmes",
			Extra: searchExtra(),
		},
	}

	for _, key := range distinctCategories(s.movies, func(m *models.Movie) string { return m.Category }) {
		catalogs = append(catalogs, models.Catalog{
			Type:  constants.TypeMovie,
			ID:    CatalogID(constants.TypeMovie, key),
			Name:  "Filmes - " + titleCaser.String(key),
			Extra: searchExtra(),
		})
	}

	catalogs = append(catalogs, models.Catalog{
		Type:  constants.TypeSeries,
		ID:    CatalogID(constants.TypeSeries, constants.CatalogAllKey),
		Name:  "Todas as Séries",
		Extra: searchExtra(),
	})

	for _, key := range distinctCategories(s.series, func(sr *models.Series) string { return sr.Category }) {
		catalogs = append(catalogs, models.Catalog{
			Type:  constants.TypeSeries,
			ID:    CatalogID(constants.TypeSeries, key),
			Name:  "Séries - " + titleCaser.String(key),
			Extra: searchExtra(),
		})
	}

	return catalogs
}

// ListCatalog returns the summary projection of every record the
// catalog id selects, preserving load order. Unknown catalog ids are a
// normal occurrence from stale clients and yield an empty list.
func (s *Store) ListCatalog(mediaType, catalogID string) []models.Meta {
	prefix := mediaType + constants.CatalogIDSeparator
	if !strings.HasPrefix(catalogID, prefix) {
		return []models.Meta{}
	}
	key := strings.TrimPrefix(catalogID, prefix)

	metas := []models.Meta{}
	switch mediaType {
	case constants.TypeMovie:
		for i := range s.movies {
			if catalogMatches(key, s.movies[i].Category) {
				metas = append(metas, movieSummary(&s.movies[i]))
			}
		}
	case constants.TypeSeries:
		for i := range s.series {
			if catalogMatches(key, s.series[i].Category) {
				metas = append(metas, seriesSummary(&s.series[i]))
			}
		}
	}
	return metas
}

// catalogMatches reports whether a record with the given raw category
// belongs to the catalog selected by key. Records without a category
// appear only in the "all items" catalog.
func catalogMatches(key, rawCategory string) bool {
	if key == constants.CatalogAllKey {
		return true
	}
	if strings.TrimSpace(rawCategory) == "" {
		return false
	}
	return slugify(rawCategory) == key
}

// distinctCategories walks the records once and returns the normalized
// category keys in first-seen order, skipping blanks. Deduplication is
// on the slugged key — the part that ends up in the catalog id — so
// spellings like "sci fi" and "sci-fi" cannot emit two catalogs with
// the same id; the first-seen spelling provides the display label.
func distinctCategories[T any](records []T, category func(*T) string) []string {
	seen := make(map[string]bool)
	var keys []string
	for i := range records {
		key := normalizeCategory(category(&records[i]))
		if key == "" {
			continue
		}
		slug := slugify(key)
		if seen[slug] {
			continue
		}
		seen[slug] = true
		keys = append(keys, key)
	}
	return keys
}

func searchExtra() []models.ExtraField {
	return []models.ExtraField{
		{Name: "search", IsRequired: false},
	}
}

func movieSummary(m *models.Movie) models.Meta {
	return models.Meta{
		ID:          MovieID(m),
		Type:        constants.TypeMovie,
		Name:        m.Name,
		Poster:      m.Poster,
		Description: m.Description,
		ReleaseInfo: yearInfo(m.Year),
	}
}

func seriesSummary(sr *models.Series) models.Meta {
	return models.Meta{
		ID:          SeriesID(sr),
		Type:        constants.TypeSeries,
		Name:        sr.Name,
		Poster:      sr.Poster,
		Description: sr.Description,
		ReleaseInfo: yearInfo(sr.Year),
	}
}

func yearInfo(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}
