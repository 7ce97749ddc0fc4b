package recommend

import (
	"context"
	"log"
)

// Bucket labels, emitted in this order even when empty so the caller can
// render a "nothing found" message per group.
const (
	BucketHiddenGems    = "Hidden gems"
	BucketRisingRelated = "Rising stars (related)"
	BucketRisingGenre   = "Rising stars (by genre)"
)

// genreSearchLimit is how many artists each genre query requests.
const genreSearchLimit = 10

// Bucketize produces the niche recommendation groups: low-popularity tracks
// from the favorite artists, low-popularity related artists, and
// low-popularity artists sharing a favorite's genre. Each bucket is capped
// at PerBucket and tolerates its own catalog failures; display texts are
// unique across the whole result.
func Bucketize(ctx context.Context, cat Catalog, artists []ResolvedArtist, p Params) []Bucket {
	seen := make(map[string]struct{})
	resolvedIDs := make(map[string]struct{}, len(artists))
	for _, a := range artists {
		resolvedIDs[a.ID] = struct{}{}
	}

	return []Bucket{
		{Label: BucketHiddenGems, Items: hiddenGems(ctx, cat, artists, p, seen)},
		{Label: BucketRisingRelated, Items: relatedRisingStars(ctx, cat, artists, p, seen, resolvedIDs)},
		{Label: BucketRisingGenre, Items: genreRisingStars(ctx, cat, artists, p, seen, resolvedIDs)},
	}
}

func hiddenGems(ctx context.Context, cat Catalog, artists []ResolvedArtist, p Params, seen map[string]struct{}) []Item {
	items := make([]Item, 0, p.PerBucket)
	for _, a := range artists {
		if len(items) >= p.PerBucket {
			break
		}
		top, err := cat.GetArtistTopTracks(ctx, a.ID, p.Market, topTrackLimit)
		if err != nil {
			log.Printf("Top tracks failed for artist %s: %v", a.Name, err)
			continue
		}
		for _, tr := range top {
			if len(items) >= p.PerBucket {
				break
			}
			if tr.Name == "" || tr.ArtistName == "" || tr.Popularity > p.TrackPopMax {
				continue
			}
			text := displayText(tr.Name, tr.ArtistName)
			if _, dup := seen[text]; dup {
				continue
			}
			seen[text] = struct{}{}
			items = append(items, Item{Text: text, URL: tr.URL})
		}
	}
	return items
}

func relatedRisingStars(ctx context.Context, cat Catalog, artists []ResolvedArtist, p Params, seen, resolvedIDs map[string]struct{}) []Item {
	items := make([]Item, 0, p.PerBucket)
	for _, a := range artists {
		if len(items) >= p.PerBucket {
			break
		}
		related, err := cat.GetRelatedArtists(ctx, a.ID)
		if err != nil {
			log.Printf("Related artists failed for %s: %v", a.Name, err)
			continue
		}
		items = appendRisingStars(ctx, cat, items, related, p, seen, resolvedIDs)
	}
	return items
}

func genreRisingStars(ctx context.Context, cat Catalog, artists []ResolvedArtist, p Params, seen, resolvedIDs map[string]struct{}) []Item {
	items := make([]Item, 0, p.PerBucket)
	for _, genre := range distinctGenres(artists) {
		if len(items) >= p.PerBucket {
			break
		}
		found, err := cat.SearchArtistsByGenre(ctx, genre, genreSearchLimit, 0, p.Market)
		if err != nil {
			log.Printf("Genre search failed for %q: %v", genre, err)
			continue
		}
		items = appendRisingStars(ctx, cat, items, found, p, seen, resolvedIDs)
	}
	return items
}

func appendRisingStars(ctx context.Context, cat Catalog, items []Item, candidates []Artist, p Params, seen, resolvedIDs map[string]struct{}) []Item {
	for _, a := range candidates {
		if len(items) >= p.PerBucket {
			break
		}
		if a.Name == "" || a.Popularity > p.ArtistPopMax {
			continue
		}
		if _, isFavorite := resolvedIDs[a.ID]; isFavorite {
			continue
		}
		if _, dup := seen[a.Name]; dup {
			continue
		}
		seen[a.Name] = struct{}{}
		items = append(items, Item{Text: a.Name, URL: artistSpotlightURL(ctx, cat, a, p.Market)})
	}
	return items
}

// artistSpotlightURL links a rising-star entry to the artist's current top
// track, falling back to the artist page when the lookup fails or the
// artist has no tracks in this market.
func artistSpotlightURL(ctx context.Context, cat Catalog, a Artist, market string) string {
	top, err := cat.GetArtistTopTracks(ctx, a.ID, market, 1)
	if err != nil {
		log.Printf("Top track lookup failed for artist %s: %v", a.Name, err)
		return a.URL
	}
	if len(top) > 0 && top[0].URL != "" {
		return top[0].URL
	}
	return a.URL
}

func distinctGenres(artists []ResolvedArtist) []string {
	seen := make(map[string]struct{})
	var genres []string
	for _, a := range artists {
		for _, g := range a.Genres {
			if g == "" {
				continue
			}
			if _, dup := seen[g]; dup {
				continue
			}
			seen[g] = struct{}{}
			genres = append(genres, g)
		}
	}
	return genres
}
