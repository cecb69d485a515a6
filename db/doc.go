// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening a Connection

Open dispatches on the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types are "sqlite" (modernc.org/sqlite, pure Go - used for
development and the test suite) and "postgres" (lib/pq). The schema uses
only syntax both engines accept. For sqlite, pass
_pragma=foreign_keys(1) in the URL if you want the declared cascades
enforced; destroy-side cascades do not depend on it because they are
issued explicitly inside the delete transaction.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: account identity and password digest
  - works: catalogued media (category constrained to album/book/movie)
  - votes: one (user_id, work_id) row per upvote, PRIMARY KEY on the pair

# Constraint Errors

IsUniqueViolation and IsForeignKeyViolation classify driver errors by
message text, since neither driver exports stable error types. Callers use
them to turn a duplicate vote insert into an idempotent no-op.
*/
package db
