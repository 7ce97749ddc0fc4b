package recommend

import (
	"context"
	"errors"
)

// ErrMissingCredentials is returned when a pipeline is invoked without the
// catalog client ID/secret pair. No recommendation is possible without them.
var ErrMissingCredentials = errors.New("missing catalog credentials")

// Track is a catalog track record, reduced to the fields the pipeline uses.
type Track struct {
	ID         string
	Name       string
	ArtistID   string
	ArtistName string
	Popularity int
	URL        string
}

// Artist is a catalog artist record.
type Artist struct {
	ID         string
	Name       string
	Genres     []string
	Popularity int
	URL        string
}

// Catalog is the set of catalog operations the pipeline depends on. The
// transport implementation handles auth, rate-limit retries and URL
// fallbacks; errors it surfaces are absorbed per-call by the pipeline.
type Catalog interface {
	SearchTracks(ctx context.Context, query string, limit int, market string) ([]Track, error)
	GetArtist(ctx context.Context, id string) (Artist, error)
	GetArtistTopTracks(ctx context.Context, id, market string, limit int) ([]Track, error)
	GetRelatedArtists(ctx context.Context, id string) ([]Artist, error)
	SearchArtistsByGenre(ctx context.Context, genre string, limit, offset int, market string) ([]Artist, error)
}
