// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/media-ranker/cliparse"
	"github.com/danielhkuo/media-ranker/middleware"
	"github.com/danielhkuo/media-ranker/models"
	"github.com/danielhkuo/media-ranker/votes"
	"github.com/danielhkuo/media-ranker/works"
)

type WorkHandler struct {
	registry *works.Registry
	ledger   *votes.Ledger
	cfg      cliparse.Config
}

func NewWorkHandler(db *sql.DB, cfg cliparse.Config) *WorkHandler {
	return &WorkHandler{
		registry: works.NewRegistry(db),
		ledger:   votes.NewLedger(db),
		cfg:      cfg,
	}
}

// Index handles GET /works
func (h *WorkHandler) Index(w http.ResponseWriter, r *http.Request) {
	list, err := h.registry.List()
	if err != nil {
		slog.Error("failed to list works", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WorkListResponse{Works: list})
}

// New handles GET /works/new
func (h *WorkHandler) New(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.NewWorkResponse{
		Categories: models.Categories,
	})
}

// Create handles POST /works
func (h *WorkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields models.WorkFields
	if err := middleware.ParseJSONBody(r, &fields); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	work, err := h.registry.Create(fields)
	if models.IsValidationError(err) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to create work", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create work")
		return
	}

	slog.Info("work created", "work_id", work.ID, "category", work.Category)

	http.Redirect(w, r, "/works/"+work.ID, http.StatusFound)
}

// Show handles GET /works/{id}
func (h *WorkHandler) Show(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	work, err := h.registry.Fetch(id)
	if errors.Is(err, works.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Work not found")
		return
	}
	if err != nil {
		slog.Error("failed to fetch work", "error", err, "work_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	count, err := h.ledger.CountFor(id)
	if err != nil {
		slog.Error("failed to count votes", "error", err, "work_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WorkWithVotes{Work: work, Votes: count})
}

// Edit handles GET /works/{id}/edit
func (h *WorkHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	work, err := h.registry.Fetch(id)
	if errors.Is(err, works.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Work not found")
		return
	}
	if err != nil {
		slog.Error("failed to fetch work", "error", err, "work_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EditWorkResponse{
		Work:       work,
		Categories: models.Categories,
	})
}

// Update handles PATCH /works/{id}. The body carries the full replacement
// field set; a validation failure leaves the stored record untouched.
func (h *WorkHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var fields models.WorkFields
	if err := middleware.ParseJSONBody(r, &fields); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	work, err := h.registry.Update(id, fields)
	if models.IsValidationError(err) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if errors.Is(err, works.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Work not found")
		return
	}
	if err != nil {
		slog.Error("failed to update work", "error", err, "work_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update work")
		return
	}

	slog.Info("work updated", "work_id", work.ID)

	http.Redirect(w, r, "/works/"+work.ID, http.StatusFound)
}

// Destroy handles DELETE /works/{id}. Votes for the work are removed in
// the same transaction as the work itself.
func (h *WorkHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.registry.Destroy(id)
	if errors.Is(err, works.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Work not found")
		return
	}
	if err != nil {
		slog.Error("failed to destroy work", "error", err, "work_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete work")
		return
	}

	slog.Info("work destroyed", "work_id", id)

	http.Redirect(w, r, "/", http.StatusFound)
}
