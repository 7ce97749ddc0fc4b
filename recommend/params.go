package recommend

import "strings"

// Defaults for the caller-facing configuration surface.
const (
	DefaultMarket          = "US"
	DefaultMaxRecs         = 3
	DefaultTrackPopMax     = 35
	DefaultArtistPopMax    = 45
	DefaultPerBucket       = 5
	DefaultAcceptThreshold = 72.0
)

// Params is the fully specified parameter set for one pipeline run. Defaults
// come from the caller's config; Clamp bounds everything once at the
// boundary so the pipeline never re-validates.
type Params struct {
	Market          string
	MaxRecs         int
	TrackPopMax     int
	ArtistPopMax    int
	PerBucket       int
	AcceptThreshold float64
}

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		Market:          DefaultMarket,
		MaxRecs:         DefaultMaxRecs,
		TrackPopMax:     DefaultTrackPopMax,
		ArtistPopMax:    DefaultArtistPopMax,
		PerBucket:       DefaultPerBucket,
		AcceptThreshold: DefaultAcceptThreshold,
	}
}

// Clamp bounds every field to its documented range.
func (p Params) Clamp() Params {
	if strings.TrimSpace(p.Market) == "" {
		p.Market = DefaultMarket
	}
	if p.MaxRecs < 1 {
		p.MaxRecs = DefaultMaxRecs
	}
	p.TrackPopMax = clampInt(p.TrackPopMax, 0, 100)
	p.ArtistPopMax = clampInt(p.ArtistPopMax, 0, 100)
	p.PerBucket = clampInt(p.PerBucket, 1, 10)
	if p.AcceptThreshold <= 0 {
		p.AcceptThreshold = DefaultAcceptThreshold
	}
	return p
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
