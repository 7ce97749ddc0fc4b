package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"songrec/config"
	"songrec/recommend"
)

type RecommendHandler struct {
	svc *recommend.Service
	cfg config.Config
}

func NewRecommendHandler(cat recommend.Catalog, cfg config.Config) *RecommendHandler {
	return &RecommendHandler{
		svc: recommend.NewService(cat),
		cfg: cfg,
	}
}

type recommendRequest struct {
	Market       string               `json:"market"`
	Favorites    []recommend.Favorite `json:"favorites"`
	MaxRecs      *int                 `json:"maxRecs"`
	TrackPopMax  *int                 `json:"trackPopMax"`
	ArtistPopMax *int                 `json:"artistPopMax"`
	PerBucket    *int                 `json:"perBucket"`
}

type standardResponse struct {
	Warnings        []string         `json:"warnings"`
	Recommendations []recommend.Item `json:"recommendations"`
}

type nicheResponse struct {
	Warnings []string           `json:"warnings"`
	Buckets  []recommend.Bucket `json:"buckets"`
}

// Handle serves POST /recommend/{mode} where mode is "standard" or "niche".
func (h *RecommendHandler) Handle(w http.ResponseWriter, r *http.Request) {
	mode := mux.Vars(r)["mode"]
	if mode != "standard" && mode != "niche" {
		http.Error(w, "Invalid recommendation mode", http.StatusBadRequest)
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Favorites) == 0 {
		http.Error(w, "At least one favorite is required", http.StatusBadRequest)
		return
	}
	if len(req.Favorites) > recommend.MaxFavorites {
		http.Error(w, "At most three favorites are supported", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	p := h.params(req)

	if mode == "standard" {
		res, err := h.svc.Standard(ctx, req.Favorites, p)
		if err != nil {
			h.writeError(w, err)
			return
		}
		log.Printf("Standard recommendation: %d favorites in, %d items out", len(req.Favorites), len(res.Items))
		writeJSON(w, standardResponse{
			Warnings:        nonNil(res.Warnings),
			Recommendations: res.Items,
		})
		return
	}

	res, err := h.svc.Niche(ctx, req.Favorites, p)
	if err != nil {
		h.writeError(w, err)
		return
	}
	log.Printf("Niche recommendation: %d favorites in, %d buckets out", len(req.Favorites), len(res.Buckets))
	writeJSON(w, nicheResponse{
		Warnings: nonNil(res.Warnings),
		Buckets:  res.Buckets,
	})
}

// params starts from the configured defaults and overlays whatever the
// request supplied, then clamps once.
func (h *RecommendHandler) params(req recommendRequest) recommend.Params {
	p := recommend.Params{
		Market:          h.cfg.Market,
		MaxRecs:         h.cfg.MaxRecs,
		TrackPopMax:     h.cfg.TrackPopMax,
		ArtistPopMax:    h.cfg.ArtistPopMax,
		PerBucket:       h.cfg.PerBucket,
		AcceptThreshold: h.cfg.AcceptThreshold,
	}
	if m := strings.TrimSpace(req.Market); m != "" {
		p.Market = m
	}
	if req.MaxRecs != nil {
		p.MaxRecs = *req.MaxRecs
	}
	if req.TrackPopMax != nil {
		p.TrackPopMax = *req.TrackPopMax
	}
	if req.ArtistPopMax != nil {
		p.ArtistPopMax = *req.ArtistPopMax
	}
	if req.PerBucket != nil {
		p.PerBucket = *req.PerBucket
	}
	return p.Clamp()
}

func (h *RecommendHandler) writeError(w http.ResponseWriter, err error) {
	log.Printf("Recommendation failed: %v", err)
	if errors.Is(err, recommend.ErrMissingCredentials) {
		http.Error(w, "Catalog credentials are not configured", http.StatusServiceUnavailable)
		return
	}
	http.Error(w, "Recommendation failed: "+err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func nonNil(warnings []string) []string {
	if warnings == nil {
		return []string{}
	}
	return warnings
}
