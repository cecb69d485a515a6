// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the media-ranker API server.

Media Ranker is a catalog of creative works - albums, books, and movies -
with user accounts, session login, and one-per-user upvoting. The landing
page spotlights the most-upvoted work and lists the top works in each
category.

# Starting the Server

The server requires a database URL via environment variable, .env file, or
CLI flag:

	DATABASE_URL=media.db go run main.go

Or with flags:

	go run main.go -p 3314 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3314)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

# Sessions

Login sessions are held in process memory. Restarting the server revokes
every outstanding session.
*/
package main
