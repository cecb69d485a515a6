// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the media-ranker API.

# Handler Types

Each handler is a struct with its dependencies, created via a constructor:

  - WorkHandler: work CRUD (index, new, create, show, edit, update, destroy)
  - VoteHandler: the upvote action
  - SessionHandler: signup, login, logout
  - HomeHandler: the landing page (spotlight + per-category top lists)

	workHandler := handlers.NewWorkHandler(db, cfg)

# Response Conventions

Validation failures are 400 with the violation message; unknown work ids
are 404. Successful creates, updates, upvotes, and destroys are 302
redirects, matching the browser-flow origins of this surface. Handlers
assume the access guard has already run: anonymous callers never reach a
protected handler, so authorization always precedes any mutation.
*/
package handlers
