// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/danielhkuo/media-ranker/session"
)

// Route classes for the access policy. Every works page shares one class;
// the upvote action and the landing page have their own deny semantics.
const (
	RouteLanding = "landing"
	RouteWorks   = "works"
	RouteUpvote  = "upvote"
)

// LoginWarning is the flash message shown when an anonymous caller is
// turned away from a protected page.
const LoginWarning = "You must be logged in to view this section"

const (
	// SessionCookie carries the session token for browser clients.
	// API clients may send the X-Session-Token header instead.
	SessionCookie = "session_token"
	sessionHeader = "X-Session-Token"

	// FlashCookie carries a one-shot "level|message" notice for the next page.
	FlashCookie = "flash"
)

// Decision is the outcome of the access policy for one request. A denied
// request redirects to the landing route; Warning, when non-empty, is
// surfaced as a warning-level flash alongside the redirect.
type Decision struct {
	Allowed bool
	Warning string
}

// Authorize is the pure access policy: it maps a route class and a
// resolved identity to a decision, with no side effects.
//
// The landing route is always allowed. Anonymous callers are denied every
// protected route; page views carry the login warning, while a denied
// upvote redirects silently so the two cases stay distinguishable.
func Authorize(route, userID string) Decision {
	if route == RouteLanding || userID != session.Anonymous {
		return Decision{Allowed: true}
	}
	if route == RouteUpvote {
		return Decision{}
	}
	return Decision{Warning: LoginWarning}
}

// SessionToken extracts the caller's credential from the session cookie,
// falling back to the X-Session-Token header. Empty means anonymous.
func SessionToken(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	return r.Header.Get(sessionHeader)
}

// SetSessionCookie attaches the session token to the response
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}

// ClearSessionCookie expires the session cookie
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// SetFlash stores a one-shot notice as a "level|message" cookie. The
// client clears it after display.
func SetFlash(w http.ResponseWriter, level, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:  FlashCookie,
		Value: url.QueryEscape(level + "|" + message),
		Path:  "/",
	})
}

// userIDKey is the context key for the authenticated user's ID.
type userIDKey struct{}

// WithUserID returns a context carrying the authenticated user's ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the authenticated user's ID, or "" when the
// request was not guarded or the caller is anonymous.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey{}).(string)
	return userID
}

// RequireLogin resolves the caller's session and applies Authorize before
// the wrapped handler runs, so authorization always precedes side effects.
// Denied requests are redirected to the landing route (with the warning
// flash when the policy carries one) and the handler is never invoked.
// Allowed requests run with the user's ID in the request context.
func RequireLogin(store *session.Store, route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := store.Resolve(SessionToken(r))

		decision := Authorize(route, userID)
		if !decision.Allowed {
			if decision.Warning != "" {
				SetFlash(w, "warning", decision.Warning)
			}
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		next(w, r.WithContext(WithUserID(r.Context(), userID)))
	}
}
