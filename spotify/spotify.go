package spotify

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"songrec/config"
	"songrec/recommend"
)

const (
	tokenTimeout   = 15 * time.Second
	requestTimeout = 20 * time.Second

	// Client-credentials tokens live one hour; refreshing three minutes
	// early (95% of the lifetime) avoids mid-pipeline expiry.
	tokenRefreshMargin = 3 * time.Minute
)

// Client implements recommend.Catalog over the Spotify Web API. The token
// source behind it is the sole cross-request shared state: lazily
// populated, cached, refreshed before expiry.
type Client struct {
	c *spotify.Client
}

// New builds an authenticated client from a client-credentials pair.
func New(clientID, clientSecret string) (*Client, error) {
	clientID = strings.TrimSpace(clientID)
	clientSecret = strings.TrimSpace(clientSecret)
	if clientID == "" || clientSecret == "" {
		return nil, recommend.ErrMissingCredentials
	}

	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: tokenTimeout})
	cache := oauth2.ReuseTokenSourceWithExpiry(nil, conf.TokenSource(tokenCtx), tokenRefreshMargin)

	httpClient := oauth2.NewClient(context.Background(), cache)
	httpClient.Timeout = requestTimeout

	return &Client{c: spotify.New(httpClient, spotify.WithRetry(true))}, nil
}

// SearchTracks runs a track search; query may use field filters or free text.
func (cl *Client) SearchTracks(ctx context.Context, query string, limit int, market string) ([]recommend.Track, error) {
	results, err := cl.c.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(limit), spotify.Market(market))
	if err != nil {
		return nil, err
	}
	if results.Tracks == nil {
		return nil, nil
	}
	tracks := make([]recommend.Track, 0, len(results.Tracks.Tracks))
	for _, tr := range results.Tracks.Tracks {
		tracks = append(tracks, toTrack(tr))
	}
	return tracks, nil
}

// GetArtist fetches full artist metadata (genres, popularity).
func (cl *Client) GetArtist(ctx context.Context, id string) (recommend.Artist, error) {
	a, err := cl.c.GetArtist(ctx, spotify.ID(id))
	if err != nil {
		return recommend.Artist{}, err
	}
	return toArtist(*a), nil
}

// GetArtistTopTracks fetches an artist's top tracks for a market, sliced to limit.
func (cl *Client) GetArtistTopTracks(ctx context.Context, id, market string, limit int) ([]recommend.Track, error) {
	full, err := cl.c.GetArtistsTopTracks(ctx, spotify.ID(id), market)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(full) > limit {
		full = full[:limit]
	}
	tracks := make([]recommend.Track, 0, len(full))
	for _, tr := range full {
		tracks = append(tracks, toTrack(tr))
	}
	return tracks, nil
}

// GetRelatedArtists fetches artists related to the given artist.
func (cl *Client) GetRelatedArtists(ctx context.Context, id string) ([]recommend.Artist, error) {
	full, err := cl.c.GetRelatedArtists(ctx, spotify.ID(id))
	if err != nil {
		return nil, err
	}
	artists := make([]recommend.Artist, 0, len(full))
	for _, a := range full {
		artists = append(artists, toArtist(a))
	}
	return artists, nil
}

// SearchArtistsByGenre searches artists carrying a genre tag.
func (cl *Client) SearchArtistsByGenre(ctx context.Context, genre string, limit, offset int, market string) ([]recommend.Artist, error) {
	q := fmt.Sprintf("genre:%q", genre)
	results, err := cl.c.Search(ctx, q, spotify.SearchTypeArtist,
		spotify.Limit(limit), spotify.Offset(offset), spotify.Market(market))
	if err != nil {
		return nil, err
	}
	if results.Artists == nil {
		return nil, nil
	}
	artists := make([]recommend.Artist, 0, len(results.Artists.Artists))
	for _, a := range results.Artists.Artists {
		artists = append(artists, toArtist(a))
	}
	return artists, nil
}

func toTrack(tr spotify.FullTrack) recommend.Track {
	t := recommend.Track{
		ID:         tr.ID.String(),
		Name:       tr.Name,
		Popularity: int(tr.Popularity),
		URL:        tr.ExternalURLs["spotify"],
	}
	if len(tr.Artists) > 0 {
		t.ArtistID = tr.Artists[0].ID.String()
		t.ArtistName = tr.Artists[0].Name
	}
	if t.URL == "" && t.ID != "" {
		t.URL = "https://open.spotify.com/track/" + t.ID
	}
	return t
}

func toArtist(a spotify.FullArtist) recommend.Artist {
	out := recommend.Artist{
		ID:         a.ID.String(),
		Name:       a.Name,
		Genres:     a.Genres,
		Popularity: int(a.Popularity),
		URL:        a.ExternalURLs["spotify"],
	}
	if out.URL == "" && out.ID != "" {
		out.URL = "https://open.spotify.com/artist/" + out.ID
	}
	return out
}

// ProvideCatalog provides the catalog client for the fx app.
func ProvideCatalog(cfg config.Config) recommend.Catalog {
	client, err := New(cfg.SpotifyID, cfg.SpotifySecret)
	if err != nil {
		log.Fatalf("Failed to create Spotify client: %v", err)
	}
	return client
}

var Options = ProvideCatalog
