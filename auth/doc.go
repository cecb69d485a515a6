// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential and ID generation utilities.

# Record IDs

Record IDs are random hex strings:

	id, err := auth.GenerateID(8) // 16 hex chars

# Session Tokens

Session tokens are UUIDv4 strings:

	token := auth.GenerateSessionToken()

Tokens carry no embedded meaning. The session store is the only mapping
from a token to a user; revoking the token there is sufficient to log the
holder out.

# Passwords

Passwords are hashed with bcrypt:

	digest, err := auth.HashPassword(password)
	err = auth.CheckPassword(digest, attempt)

CheckPassword returns ErrInvalidCredentials on any mismatch. Login handlers
respond with the same message for unknown usernames and wrong passwords.
*/
package auth
