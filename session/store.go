// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"sync"

	"github.com/danielhkuo/media-ranker/auth"
)

// Anonymous is the identity returned by Resolve for missing, unknown, or
// revoked tokens.
const Anonymous = ""

// Store maps session tokens to user IDs. Sessions live only as long as the
// process; there is no durable record of them.
type Store struct {
	mu      sync.RWMutex
	byToken map[string]string
}

func NewStore() *Store {
	return &Store{byToken: make(map[string]string)}
}

// Establish creates a session for userID and returns its token. Each call
// returns a fresh token, so one user may hold several concurrent sessions.
func (s *Store) Establish(userID string) string {
	token := auth.GenerateSessionToken()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byToken[token] = userID

	return token
}

// Resolve returns the user ID for token, or Anonymous if the token is
// empty, unknown, or revoked. Resolve never fails.
func (s *Store) Resolve(token string) string {
	if token == "" {
		return Anonymous
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byToken[token]
}

// Revoke invalidates token immediately. Revoking an unknown token is a
// no-op.
func (s *Store) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byToken, token)
}
