package recommend

import (
	"context"
	"fmt"
	"log"
	"strings"

	"songrec/normalize"
)

// Candidate scoring weights artist similarity over title similarity: artist
// names are shorter and more templated, so they discriminate better on
// typo-heavy input.
const (
	artistWeight = 0.6
	titleWeight  = 0.4
)

// searchLimit is how many candidates each cascade step requests.
const searchLimit = 5

// Resolver matches one favorite to a catalog artist via a cascade of search
// queries and fuzzy scoring over the returned candidates.
type Resolver struct {
	cat       Catalog
	threshold float64
}

// NewResolver creates a resolver accepting matches at or above threshold;
// a non-positive threshold falls back to the default.
func NewResolver(cat Catalog, threshold float64) *Resolver {
	if threshold <= 0 {
		threshold = DefaultAcceptThreshold
	}
	return &Resolver{cat: cat, threshold: threshold}
}

// Resolve finds the catalog artist behind a (title, artist) pair. The
// second return is false when no candidate clears the acceptance threshold
// or every cascade step comes back empty. Search failures are swallowed so
// the cascade keeps going; a failed artist-metadata fetch degrades to the
// track record's artist name with no genres.
func (r *Resolver) Resolve(ctx context.Context, title, artist, market string) (ResolvedArtist, bool) {
	var candidates []Track
	for _, q := range candidateQueries(title, artist) {
		tracks, err := r.cat.SearchTracks(ctx, q, searchLimit, market)
		if err != nil {
			log.Printf("Track search failed for query %q: %v", q, err)
			continue
		}
		if len(tracks) > 0 {
			candidates = tracks
			break
		}
	}
	if len(candidates) == 0 {
		return ResolvedArtist{}, false
	}

	normTitle := normalize.Normalize(title)
	normArtist := normalize.Normalize(artist)

	best := candidates[0]
	bestScore := -1.0
	for _, tr := range candidates {
		score := artistWeight*normalize.Similarity(normArtist, normalize.Normalize(tr.ArtistName)) +
			titleWeight*normalize.Similarity(normTitle, normalize.Normalize(tr.Name))
		if score > bestScore {
			bestScore = score
			best = tr
		}
	}
	if bestScore < r.threshold || best.ArtistID == "" {
		return ResolvedArtist{}, false
	}

	resolved := ResolvedArtist{ID: best.ArtistID, Name: best.ArtistName}
	full, err := r.cat.GetArtist(ctx, best.ArtistID)
	if err != nil {
		log.Printf("Artist lookup failed for %s: %v", best.ArtistID, err)
		return resolved, true
	}
	if full.Name != "" {
		resolved.Name = full.Name
	}
	resolved.Genres = full.Genres
	return resolved, true
}

// candidateQueries builds the cascade, most precise first: quoted field
// filters, unquoted field filters, free text, title only, artist only, and
// a first-token-of-each-field last resort for heavy typos.
func candidateQueries(title, artist string) []string {
	queries := []string{
		fmt.Sprintf("track:%q artist:%q", title, artist),
		buildFieldQuery(title, artist),
		strings.TrimSpace(title + " " + artist),
	}
	if title != "" {
		queries = append(queries, title)
	}
	if artist != "" {
		queries = append(queries, artist)
	}
	if q := strings.TrimSpace(firstToken(title) + " " + firstToken(artist)); q != "" {
		queries = append(queries, q)
	}
	return queries
}

func buildFieldQuery(title, artist string) string {
	var q strings.Builder
	q.WriteString("track:")
	q.WriteString(title)
	q.WriteString(" ")
	q.WriteString("artist:")
	q.WriteString(artist)
	return q.String()
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
