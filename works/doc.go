// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package works is the catalog registry: validated create, update, fetch,
destroy, and list for work records.

Every write validates the complete proposed field set before touching
storage, so a rejected create or update leaves the table exactly as it
was. Destroy removes the work and its votes in one transaction.

	registry := works.NewRegistry(db)
	work, err := registry.Create(fields)

Validation failures satisfy models.IsValidationError; unknown ids return
works.ErrNotFound.
*/
package works
