// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/media-ranker/auth"
	"github.com/danielhkuo/media-ranker/cliparse"
	"github.com/danielhkuo/media-ranker/db"
	"github.com/danielhkuo/media-ranker/middleware"
	"github.com/danielhkuo/media-ranker/models"
	"github.com/danielhkuo/media-ranker/session"
)

type SessionHandler struct {
	db    *sql.DB
	store *session.Store
	cfg   cliparse.Config
}

func NewSessionHandler(dbConn *sql.DB, store *session.Store, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{db: dbConn, store: store, cfg: cfg}
}

// Signup handles POST /users
func (h *SessionHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}
	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	}

	digest, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	userID, err := auth.GenerateID(8)
	if err != nil {
		slog.Error("failed to generate user ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	// The UNIQUE constraint on username is the source of truth for
	// duplicates, same as the vote ledger's pair constraint
	_, err = h.db.Exec(`
		INSERT INTO users (id, username, password_digest, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, req.Username, digest, time.Now())
	if err != nil {
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "Username already taken")
			return
		}
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	slog.Info("user created", "user_id", userID, "username", req.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.SignupResponse{
		UserID:   userID,
		Username: req.Username,
	})
}

// Login handles POST /login. A successful login establishes a session and
// sets the session cookie; the token is also returned for header-based
// clients.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var userID, digest string
	err := h.db.QueryRow(`
		SELECT id, password_digest FROM users WHERE username = $1
	`, req.Username).Scan(&userID, &digest)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(digest, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		slog.Error("failed to check password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	token := h.store.Establish(userID)
	middleware.SetSessionCookie(w, token)

	slog.Info("user logged in", "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		UserID:   userID,
		Username: req.Username,
		Token:    token,
	})
}

// Logout handles DELETE /logout. Revocation is immediate: the old token
// resolves to anonymous on the very next request.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r)
	if token != "" {
		h.store.Revoke(token)
	}
	middleware.ClearSessionCookie(w)

	http.Redirect(w, r, "/", http.StatusFound)
}
