package recommend

import "context"

// Service runs the recommendation pipelines against a catalog.
type Service struct {
	cat Catalog
}

// NewService creates a Service on top of an authenticated catalog.
func NewService(cat Catalog) *Service {
	return &Service{cat: cat}
}

// StandardResult is the outcome of a standard pipeline run: partial-input
// warnings plus the ordered recommendation list. Both may be empty.
type StandardResult struct {
	Warnings []string
	Items    []Item
}

// NicheResult is the outcome of a niche pipeline run; Buckets always holds
// all three labels, in definition order.
type NicheResult struct {
	Warnings []string
	Buckets  []Bucket
}

// Standard resolves each usable favorite to an artist and expands those
// artists into up to MaxRecs deduplicated top-track recommendations. Zero
// resolved artists or zero surviving candidates is a valid empty result.
func (s *Service) Standard(ctx context.Context, rows []Favorite, p Params) (StandardResult, error) {
	if s == nil || s.cat == nil {
		return StandardResult{}, ErrMissingCredentials
	}
	p = p.Clamp()

	favs, warnings := CollectFavorites(rows)
	res := StandardResult{Warnings: warnings, Items: []Item{}}
	if len(favs) == 0 {
		return res, nil
	}

	favKeys := FavoriteKeys(favs)
	resolved := s.resolveAll(ctx, favs, p)
	res.Items = Expand(ctx, s.cat, resolved, favKeys, p.Market, p.MaxRecs)
	return res, nil
}

// Niche resolves the favorites and groups recommendations into the
// popularity-capped buckets. All three buckets are emitted even when empty.
func (s *Service) Niche(ctx context.Context, rows []Favorite, p Params) (NicheResult, error) {
	if s == nil || s.cat == nil {
		return NicheResult{}, ErrMissingCredentials
	}
	p = p.Clamp()

	favs, warnings := CollectFavorites(rows)
	resolved := s.resolveAll(ctx, favs, p)
	return NicheResult{
		Warnings: warnings,
		Buckets:  Bucketize(ctx, s.cat, resolved, p),
	}, nil
}

func (s *Service) resolveAll(ctx context.Context, favs []Favorite, p Params) []ResolvedArtist {
	resolver := NewResolver(s.cat, p.AcceptThreshold)
	var resolved []ResolvedArtist
	for _, f := range favs {
		if ra, ok := resolver.Resolve(ctx, f.Title, f.Artist, p.Market); ok {
			resolved = append(resolved, ra)
		}
	}
	return resolved
}
