// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the database selected by databaseType ("sqlite" or
// "postgres"). The caller owns the returned handle and should Ping it
// before use.
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	switch databaseType {
	case "sqlite":
		return sql.Open("sqlite", databaseURL)
	case "postgres":
		return sql.Open("postgres", databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database type: %q (use sqlite or postgres)", databaseType)
	}
}

// IsUniqueViolation reports whether err is a unique-constraint violation
// from either supported driver. Neither driver exports a stable error type
// for this, so we match the message text.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// IsForeignKeyViolation reports whether err is a foreign-key violation from
// either supported driver.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "violates foreign key constraint")
}
