// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/media-ranker/cliparse"
	"github.com/danielhkuo/media-ranker/handlers"
	"github.com/danielhkuo/media-ranker/middleware"
	"github.com/danielhkuo/media-ranker/session"
)

func NewRouter(db *sql.DB, store *session.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	workHandler := handlers.NewWorkHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	sessionHandler := handlers.NewSessionHandler(db, store, cfg)
	homeHandler := handlers.NewHomeHandler(db, cfg)

	// Guarded routes resolve the session and apply the access policy
	// before the handler runs
	protected := func(route string, h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireLogin(store, route, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Landing page (always allowed, any catalog state)
	mux.HandleFunc("GET /{$}", middleware.WithLogging(homeHandler.Landing))

	// Work catalog (authenticated)
	mux.HandleFunc("GET /works", protected(middleware.RouteWorks, workHandler.Index))
	mux.HandleFunc("GET /works/new", protected(middleware.RouteWorks, workHandler.New))
	mux.HandleFunc("POST /works", protected(middleware.RouteWorks, workHandler.Create))
	mux.HandleFunc("GET /works/{id}", protected(middleware.RouteWorks, workHandler.Show))
	mux.HandleFunc("GET /works/{id}/edit", protected(middleware.RouteWorks, workHandler.Edit))
	mux.HandleFunc("PATCH /works/{id}", protected(middleware.RouteWorks, workHandler.Update))
	mux.HandleFunc("DELETE /works/{id}", protected(middleware.RouteWorks, workHandler.Destroy))

	// Voting (authenticated; anonymous deny redirects without a flash)
	mux.HandleFunc("POST /works/{id}/upvote", protected(middleware.RouteUpvote, voteHandler.Upvote))

	// Accounts and sessions
	mux.HandleFunc("POST /users", middleware.WithLogging(sessionHandler.Signup))
	mux.HandleFunc("POST /login", middleware.WithLogging(sessionHandler.Login))
	mux.HandleFunc("DELETE /logout", middleware.WithLogging(sessionHandler.Logout))

	return mux
}
