package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/fx"

	"songrec/config"
	"songrec/handlers"
	"songrec/spotify"
)

func main() {
	fx.New(
		fx.Provide(
			config.Options,
			spotify.Options,
			handlers.NewRecommendHandler,
			NewRouter,
		),
		fx.Invoke(StartServer),
	).Run()
}

func NewRouter(h *handlers.RecommendHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/recommend/{mode}", h.Handle).Methods("POST")

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("API is running"))
	})
	return r
}

func StartServer(lifecycle fx.Lifecycle, router *mux.Router, cfg config.Config) {
	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				log.Printf("Starting server on %s", cfg.Addr)
				if err := server.ListenAndServe(); err != nil {
					log.Printf("Server failed: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
