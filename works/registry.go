// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package works

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/media-ranker/auth"
	"github.com/danielhkuo/media-ranker/models"
)

var ErrNotFound = errors.New("work not found")

// Registry validates and persists work records.
type Registry struct {
	db *sql.DB
}

func NewRegistry(db *sql.DB) *Registry {
	return &Registry{db: db}
}

// Create validates fields and inserts a new work. Validation errors
// (see models.IsValidationError) are returned before anything is written.
func (r *Registry) Create(f models.WorkFields) (models.Work, error) {
	if err := f.Validate(); err != nil {
		return models.Work{}, err
	}

	id, err := auth.GenerateID(8)
	if err != nil {
		return models.Work{}, fmt.Errorf("failed to generate work ID: %w", err)
	}

	now := time.Now()
	_, err = r.db.Exec(`
		INSERT INTO works (id, title, creator, description, category, publication_year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, f.Title, f.Creator, f.Description, f.Category, f.PublicationYear, now)
	if err != nil {
		return models.Work{}, fmt.Errorf("failed to insert work: %w", err)
	}

	return models.Work{
		ID:              id,
		Title:           f.Title,
		Creator:         f.Creator,
		Description:     f.Description,
		Category:        f.Category,
		PublicationYear: f.PublicationYear,
		CreatedAt:       now,
	}, nil
}

// Update replaces every field of the work with id. The full proposed set is
// validated first; on a validation error the stored row is untouched.
// Returns ErrNotFound for an unknown id. Partial updates never happen.
func (r *Registry) Update(id string, f models.WorkFields) (models.Work, error) {
	if err := f.Validate(); err != nil {
		return models.Work{}, err
	}

	res, err := r.db.Exec(`
		UPDATE works
		SET title = $1, creator = $2, description = $3, category = $4, publication_year = $5
		WHERE id = $6
	`, f.Title, f.Creator, f.Description, f.Category, f.PublicationYear, id)
	if err != nil {
		return models.Work{}, fmt.Errorf("failed to update work: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Work{}, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return models.Work{}, ErrNotFound
	}

	return r.Fetch(id)
}

// Fetch returns the work with id, or ErrNotFound.
func (r *Registry) Fetch(id string) (models.Work, error) {
	var work models.Work
	err := r.db.QueryRow(`
		SELECT id, title, creator, description, category, publication_year, created_at
		FROM works WHERE id = $1
	`, id).Scan(&work.ID, &work.Title, &work.Creator, &work.Description,
		&work.Category, &work.PublicationYear, &work.CreatedAt)

	if err == sql.ErrNoRows {
		return models.Work{}, ErrNotFound
	}
	if err != nil {
		return models.Work{}, fmt.Errorf("failed to query work: %w", err)
	}

	return work, nil
}

// Destroy deletes the work with id and every vote referencing it, in one
// transaction (votes first, then the work). Returns ErrNotFound for an
// unknown id, in which case nothing is deleted.
func (r *Registry) Destroy(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM votes WHERE work_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete votes for work: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM works WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		// Rolled back by the deferred Rollback
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	return nil
}

// List returns every work. Callers must not rely on ordering.
func (r *Registry) List() ([]models.Work, error) {
	rows, err := r.db.Query(`
		SELECT id, title, creator, description, category, publication_year, created_at
		FROM works
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query works: %w", err)
	}
	defer rows.Close()

	list := []models.Work{}
	for rows.Next() {
		var work models.Work
		if err := rows.Scan(&work.ID, &work.Title, &work.Creator, &work.Description,
			&work.Category, &work.PublicationYear, &work.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan work: %w", err)
		}
		list = append(list, work)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate works: %w", err)
	}

	return list, nil
}
