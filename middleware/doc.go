// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware, the access guard, and
response helpers.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Access Guard

Authorize is a pure policy function from (route class, identity) to a
decision; RequireLogin applies it around a handler:

	mux.HandleFunc("GET /works",
		middleware.WithLogging(
			middleware.RequireLogin(store, middleware.RouteWorks, h.Index)))

Anonymous callers on protected pages get a 302 to the landing route plus a
warning flash cookie - never a 401 or 403. A denied upvote redirects
without the flash. Allowed requests carry the user ID in the request
context (UserIDFromContext).

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}
*/
package middleware
