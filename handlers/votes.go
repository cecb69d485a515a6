// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/media-ranker/cliparse"
	"github.com/danielhkuo/media-ranker/middleware"
	"github.com/danielhkuo/media-ranker/votes"
)

type VoteHandler struct {
	ledger *votes.Ledger
	cfg    cliparse.Config
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{ledger: votes.NewLedger(db), cfg: cfg}
}

// Upvote handles POST /works/{id}/upvote. The guard runs first, so the
// acting user is always present in the request context here; a duplicate
// vote redirects exactly like a fresh one.
func (h *VoteHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		// Unreachable behind RequireLogin; mirror its deny path anyway
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	workID := r.PathValue("id")

	outcome, err := h.ledger.Upvote(userID, workID)
	if err != nil {
		slog.Error("failed to record upvote", "error", err, "work_id", workID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	switch outcome {
	case votes.OutcomeWorkNotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, "Work not found")
	case votes.OutcomeCreated:
		slog.Info("vote recorded", "user_id", userID, "work_id", workID)
		http.Redirect(w, r, "/works/"+workID, http.StatusFound)
	default: // OutcomeAlreadyExists: idempotent no-op
		http.Redirect(w, r, "/works/"+workID, http.StatusFound)
	}
}
