// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the media-ranker API.

# Route Registration

NewRouter wires handlers, logging, and the access guard into a ServeMux:

	mux := router.NewRouter(db, store, cfg)

# Endpoints

Public:

	GET    /health
	GET    /              - Landing page (spotlight + top lists)
	POST   /users         - Sign up
	POST   /login         - Log in (sets session cookie)
	DELETE /logout        - Log out (revokes session)

Authenticated (anonymous callers are redirected to /):

	GET    /works             - List works
	GET    /works/new         - Creation form data
	POST   /works             - Create work
	GET    /works/{id}        - Show work with vote count
	GET    /works/{id}/edit   - Edit form data
	PATCH  /works/{id}        - Full-field update
	DELETE /works/{id}        - Destroy work (cascades votes)
	POST   /works/{id}/upvote - Upvote as the logged-in user
*/
package router
