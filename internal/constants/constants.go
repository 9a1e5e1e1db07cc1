// Package constants defines application-wide constants and default values.
package constants

const (
	// Addon metadata
	AddonID          = "cinema-dublado"
	AddonVersion     = "1.0.4"
	AddonName        = "Cinema Dublado"
	AddonDescription = "Filmes e séries dublados PT-BR com categorias!"
	AddonLogo        = "https://i.imgur.com/0eM1y5b.jpeg"

	// Media types served by the addon
	TypeMovie  = "movie"
	TypeSeries = "series"

	// Default configuration values
	DefaultPort       = "7000"
	DefaultLogLevel   = "info"
	DefaultMoviesFile = "data/filmes.json"
	DefaultSeriesFile = "data/series.json"

	// Cache settings
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 24 // hours

	// Rate limiting
	TMDBRateLimit = 20 // requests per second
	TMDBRateBurst = 5  // burst capacity
)

// Identifier namespaces accepted by the resolver. TMDBIDPrefix is the
// canonical form for the primary namespace; IMDb ids carry their own
// "tt" prefix and need no extra marker.
const (
	TMDBIDPrefix = "tmdb:"
	IMDBIDPrefix = "tt"
)

// Catalog id grammar: "<type>-<category key>", with a reserved key for
// the catalog that lists every record of a type.
const (
	CatalogIDSeparator = "-"
	CatalogAllKey      = "all"
)

// ExternalPlayerPrefix marks a stream URL that is not a direct media
// resource, telling the client to delegate playback to an external
// resolver instead of opening the URL itself.
const ExternalPlayerPrefix = "external:"

// Fixed display titles used when building video and stream entries.
const (
	MovieVideoTitle  = "Filme Completo"
	MovieStreamTitle = "Filme Dublado"
	StreamLangTag    = "Dublado"
)

// MediaExtensions lists file extensions recognized as directly playable
// media or container formats.
var MediaExtensions = []string{
	".mp4",
	".mkv",
	".webm",
	".avi",
	".mov",
	".m4v",
	".m3u8",
	".ts",
	".flv",
}
