// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session holds the in-process login session store.

# Lifecycle

	store := session.NewStore()
	token := store.Establish(userID) // on login
	userID = store.Resolve(token)    // per request; "" means anonymous
	store.Revoke(token)              // on logout, effective immediately

Resolve never returns an error: any token that does not map to a live
session - missing, malformed, or revoked - resolves to Anonymous. Sessions
are intentionally not persisted; restarting the server logs everyone out.
*/
package session
