// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/media-ranker/cliparse"
	"github.com/danielhkuo/media-ranker/middleware"
	"github.com/danielhkuo/media-ranker/models"
	"github.com/danielhkuo/media-ranker/votes"
)

// topListSize caps each per-category list on the landing page
const topListSize = 10

type HomeHandler struct {
	ledger *votes.Ledger
	cfg    cliparse.Config
}

func NewHomeHandler(db *sql.DB, cfg cliparse.Config) *HomeHandler {
	return &HomeHandler{ledger: votes.NewLedger(db), cfg: cfg}
}

// Landing handles GET /. It succeeds for any caller and any catalog state:
// zero, some, or all categories populated. Empty categories come back as
// empty lists; with no works at all the spotlight is omitted.
func (h *HomeHandler) Landing(w http.ResponseWriter, r *http.Request) {
	spotlight, err := h.ledger.Spotlight()
	if err != nil {
		slog.Error("failed to load spotlight", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.LandingResponse{Spotlight: spotlight}

	lists := []struct {
		category string
		dest     *[]models.WorkWithVotes
	}{
		{models.CategoryAlbum, &resp.Albums},
		{models.CategoryBook, &resp.Books},
		{models.CategoryMovie, &resp.Movies},
	}
	for _, l := range lists {
		top, err := h.ledger.TopByCategory(l.category, topListSize)
		if err != nil {
			slog.Error("failed to load top works", "error", err, "category", l.category)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		*l.dest = top
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
