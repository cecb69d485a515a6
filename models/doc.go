// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Categories

Works belong to exactly one category: album, book, or movie. Category
matching is strict - case-sensitive, untrimmed, no prefixes. Validation
lives on WorkFields.Validate, which checks the full proposed field set so
callers can reject a change before any storage write happens.

# Request Types

Types for parsing incoming JSON:

  - WorkFields: title, creator, description, category, publication_year
  - SignupRequest / LoginRequest: username, password

# Response Types

Types for JSON responses:

  - WorkListResponse: works
  - WorkWithVotes: a work plus its derived vote count
  - LandingResponse: spotlight plus per-category top lists
  - SignupResponse / LoginResponse: user identity (and session token)
  - ErrorResponse: error, message

# Domain Types

Work, User, and Vote mirror the database rows. A Vote is a bare
(user_id, work_id) pair - upvoting is a presence fact, not a counter.
*/
package models
