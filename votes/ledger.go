// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package votes

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/media-ranker/db"
	"github.com/danielhkuo/media-ranker/models"
)

// Outcome is the result of an upvote attempt. A duplicate upvote is a
// successful no-op, not an error.
type Outcome int

const (
	OutcomeCreated Outcome = iota
	OutcomeAlreadyExists
	OutcomeWorkNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeAlreadyExists:
		return "already_exists"
	case OutcomeWorkNotFound:
		return "work_not_found"
	}
	return "unknown"
}

// Ledger records at most one vote per (user, work) pair.
type Ledger struct {
	db *sql.DB
}

func NewLedger(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

// Upvote records userID's vote for workID. The insert runs under the
// votes table's composite primary key; a constraint violation from a
// concurrent or repeated identical request is classified as
// OutcomeAlreadyExists rather than surfaced as an error. The constraint,
// not the preceding existence check, is what guarantees uniqueness.
func (l *Ledger) Upvote(userID, workID string) (Outcome, error) {
	var exists bool
	err := l.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM works WHERE id = $1)`, workID).Scan(&exists)
	if err != nil {
		return OutcomeWorkNotFound, fmt.Errorf("failed to look up work: %w", err)
	}
	if !exists {
		return OutcomeWorkNotFound, nil
	}

	_, err = l.db.Exec(`
		INSERT INTO votes (user_id, work_id, created_at)
		VALUES ($1, $2, $3)
	`, userID, workID, time.Now())
	if err != nil {
		if db.IsUniqueViolation(err) {
			return OutcomeAlreadyExists, nil
		}
		// The work can disappear between the lookup and the insert
		if db.IsForeignKeyViolation(err) {
			return OutcomeWorkNotFound, nil
		}
		return OutcomeWorkNotFound, fmt.Errorf("failed to insert vote: %w", err)
	}

	return OutcomeCreated, nil
}

// CountFor returns the number of votes referencing workID. Voteless and
// unknown works both count zero.
func (l *Ledger) CountFor(workID string) (int, error) {
	var count int
	err := l.db.QueryRow(`SELECT COUNT(*) FROM votes WHERE work_id = $1`, workID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}

// HasVoted reports whether userID has already upvoted workID.
func (l *Ledger) HasVoted(userID, workID string) (bool, error) {
	var exists bool
	err := l.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM votes WHERE user_id = $1 AND work_id = $2)
	`, userID, workID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check vote: %w", err)
	}
	return exists, nil
}

// Spotlight returns the most-upvoted work in the catalog, or nil when the
// catalog is empty. Ties break toward the alphabetically first title.
func (l *Ledger) Spotlight() (*models.WorkWithVotes, error) {
	var work models.WorkWithVotes
	err := l.db.QueryRow(rankedWorksQuery+`
		ORDER BY votes DESC, w.title ASC
		LIMIT 1
	`).Scan(&work.ID, &work.Title, &work.Creator, &work.Description,
		&work.Category, &work.PublicationYear, &work.CreatedAt, &work.Votes)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query spotlight: %w", err)
	}

	return &work, nil
}

// TopByCategory returns up to limit works in the category, most-upvoted
// first. An unpopulated category yields an empty slice, not an error.
func (l *Ledger) TopByCategory(category string, limit int) ([]models.WorkWithVotes, error) {
	rows, err := l.db.Query(`
	SELECT w.id, w.title, w.creator, w.description, w.category, w.publication_year, w.created_at,
	       COUNT(v.user_id) AS votes
	FROM works w
	LEFT JOIN votes v ON v.work_id = w.id
	WHERE w.category = $1
	GROUP BY w.id, w.title, w.creator, w.description, w.category, w.publication_year, w.created_at
	ORDER BY votes DESC, w.title ASC
	LIMIT $2
	`, category, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top works: %w", err)
	}
	defer rows.Close()

	top := []models.WorkWithVotes{}
	for rows.Next() {
		var work models.WorkWithVotes
		if err := rows.Scan(&work.ID, &work.Title, &work.Creator, &work.Description,
			&work.Category, &work.PublicationYear, &work.CreatedAt, &work.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan ranked work: %w", err)
		}
		top = append(top, work)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ranked works: %w", err)
	}

	return top, nil
}

// Vote counts are always derived from the votes table at read time; they
// are never stored on the work row.
const rankedWorksQuery = `
	SELECT w.id, w.title, w.creator, w.description, w.category, w.publication_year, w.created_at,
	       COUNT(v.user_id) AS votes
	FROM works w
	LEFT JOIN votes v ON v.work_id = w.id
	GROUP BY w.id, w.title, w.creator, w.description, w.category, w.publication_year, w.created_at
`
