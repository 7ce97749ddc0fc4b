package recommend

import (
	"context"
	"fmt"
)

type searchReply struct {
	tracks []Track
	err    error
}

// fakeCatalog scripts catalog responses for tests. Track searches are served
// from searchScript in call order when it is set, otherwise from the
// per-query maps. Every search query is recorded.
type fakeCatalog struct {
	searchScript []searchReply
	searchByQ    map[string][]Track
	searchErrByQ map[string]error
	queries      []string

	artists   map[string]Artist
	artistErr map[string]error

	topTracks map[string][]Track
	topErr    map[string]error

	related    map[string][]Artist
	relatedErr map[string]error

	genreArtists map[string][]Artist
	genreErr     map[string]error
}

func (f *fakeCatalog) SearchTracks(_ context.Context, query string, _ int, _ string) ([]Track, error) {
	f.queries = append(f.queries, query)
	if len(f.searchScript) > 0 {
		reply := f.searchScript[0]
		f.searchScript = f.searchScript[1:]
		return reply.tracks, reply.err
	}
	if err, ok := f.searchErrByQ[query]; ok {
		return nil, err
	}
	return f.searchByQ[query], nil
}

func (f *fakeCatalog) GetArtist(_ context.Context, id string) (Artist, error) {
	if err, ok := f.artistErr[id]; ok {
		return Artist{}, err
	}
	a, ok := f.artists[id]
	if !ok {
		return Artist{}, fmt.Errorf("unknown artist %s", id)
	}
	return a, nil
}

func (f *fakeCatalog) GetArtistTopTracks(_ context.Context, id, _ string, limit int) ([]Track, error) {
	if err, ok := f.topErr[id]; ok {
		return nil, err
	}
	tracks := f.topTracks[id]
	if limit > 0 && len(tracks) > limit {
		tracks = tracks[:limit]
	}
	return tracks, nil
}

func (f *fakeCatalog) GetRelatedArtists(_ context.Context, id string) ([]Artist, error) {
	if err, ok := f.relatedErr[id]; ok {
		return nil, err
	}
	return f.related[id], nil
}

func (f *fakeCatalog) SearchArtistsByGenre(_ context.Context, genre string, _, _ int, _ string) ([]Artist, error) {
	if err, ok := f.genreErr[genre]; ok {
		return nil, err
	}
	return f.genreArtists[genre], nil
}
