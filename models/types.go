// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"time"
)

// Work category constants
const (
	CategoryAlbum = "album"
	CategoryBook  = "book"
	CategoryMovie = "movie"
)

// Categories lists every valid work category, in display order.
var Categories = []string{CategoryAlbum, CategoryBook, CategoryMovie}

// Validation errors returned from WorkFields.Validate
var (
	ErrTitleRequired   = errors.New("title is required")
	ErrCreatorRequired = errors.New("creator is required")
	ErrInvalidCategory = errors.New("category must be one of: album, book, movie")
)

// IsValidCategory reports whether category exactly matches one of the
// allowed values. Matching is case-sensitive and untrimmed: "Album",
// "album " and "albumstrailingtext" are all invalid.
func IsValidCategory(category string) bool {
	switch category {
	case CategoryAlbum, CategoryBook, CategoryMovie:
		return true
	}
	return false
}

// IsValidationError reports whether err is a work-field validation failure,
// as opposed to a not-found or storage error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrCreatorRequired) ||
		errors.Is(err, ErrInvalidCategory)
}

// Request types

// WorkFields is the full replacement field set for creating or updating a
// work. Updates validate the entire proposed set before anything is written.
type WorkFields struct {
	Title           string `json:"title"`
	Creator         string `json:"creator"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	PublicationYear int    `json:"publication_year"`
}

// Validate checks every invariant against the proposed fields. It returns
// the first violation found, or nil.
func (f WorkFields) Validate() error {
	if f.Title == "" {
		return ErrTitleRequired
	}
	if f.Creator == "" {
		return ErrCreatorRequired
	}
	if !IsValidCategory(f.Category) {
		return ErrInvalidCategory
	}
	return nil
}

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response types

type SignupResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type LoginResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type WorkListResponse struct {
	Works []Work `json:"works"`
}

type NewWorkResponse struct {
	Categories []string `json:"categories"`
}

type EditWorkResponse struct {
	Work       Work     `json:"work"`
	Categories []string `json:"categories"`
}

type LandingResponse struct {
	Spotlight *WorkWithVotes  `json:"spotlight,omitempty"`
	Albums    []WorkWithVotes `json:"albums"`
	Books     []WorkWithVotes `json:"books"`
	Movies    []WorkWithVotes `json:"movies"`
}

// Domain types

type Work struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Creator         string    `json:"creator"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	PublicationYear int       `json:"publication_year"`
	CreatedAt       time.Time `json:"created_at"`
}

// WorkWithVotes pairs a work with its derived vote count. The count is
// always computed from the votes table, never stored on the work row.
type WorkWithVotes struct {
	Work
	Votes int `json:"votes"`
}

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	PasswordDigest string    `json:"-"` // Never expose in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// Vote is a presence fact: one row means the user has upvoted the work.
// There is no mutable state after creation and no counter semantics.
type Vote struct {
	UserID    string    `json:"user_id"`
	WorkID    string    `json:"work_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
