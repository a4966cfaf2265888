// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/handlers"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/store"
	"github.com/danielhkuo/polls/templates"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, pages *templates.Set) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.WithLogging)
	r.Use(middleware.CORS)

	pollHandler := handlers.NewPollHandler(store.New(db), cfg, pages)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Polls
	r.Route("/polls", func(r chi.Router) {
		r.Get("/", pollHandler.Index)
		r.Get("/{id}/", pollHandler.Detail)
		r.Get("/{id}/results/", pollHandler.Results)
		r.Post("/{id}/vote/", pollHandler.Vote)
	})

	// Root endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/polls/", http.StatusFound)
	})

	return r
}
