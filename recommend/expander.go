package recommend

import (
	"context"
	"log"

	"songrec/normalize"
)

// topTrackLimit caps how many top tracks each resolved artist contributes.
const topTrackLimit = 10

// Expand turns resolved artists into the standard recommendation list: each
// artist's top tracks in order, minus exact duplicates of the original
// favorites, deduplicated by display text and truncated to maxRecs. A
// failed top-tracks call means that artist contributes nothing; the rest of
// the expansion still runs.
func Expand(ctx context.Context, cat Catalog, artists []ResolvedArtist, favKeys map[string]struct{}, market string, maxRecs int) []Item {
	items := make([]Item, 0, maxRecs)
	seen := make(map[string]struct{})

	for _, a := range artists {
		top, err := cat.GetArtistTopTracks(ctx, a.ID, market, topTrackLimit)
		if err != nil {
			log.Printf("Top tracks failed for artist %s: %v", a.Name, err)
			continue
		}
		for _, tr := range top {
			if tr.Name == "" || tr.ArtistName == "" {
				continue
			}
			if _, dup := favKeys[normalize.Key(tr.Name, tr.ArtistName)]; dup {
				continue
			}
			text := displayText(tr.Name, tr.ArtistName)
			if _, dup := seen[text]; dup {
				continue
			}
			seen[text] = struct{}{}
			items = append(items, Item{Text: text, URL: tr.URL})
			if len(items) >= maxRecs {
				return items
			}
		}
	}
	return items
}

func displayText(track, artist string) string {
	return track + " — " + artist
}
