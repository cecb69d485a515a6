// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package votes is the vote ledger: at most one vote per (user, work) pair.

# Upvoting

Upvote is an atomic insert attempt classified into a tagged outcome:

	outcome, err := ledger.Upvote(userID, workID)
	// OutcomeCreated, OutcomeAlreadyExists, or OutcomeWorkNotFound

OutcomeAlreadyExists is a success, not an error: repeating an upvote has
the same effect as issuing it once, including under concurrent identical
requests. Uniqueness is enforced by the votes table's composite primary
key, so check-then-insert races cannot double a count.

# Derived Reads

CountFor, HasVoted, Spotlight, and TopByCategory compute vote standings
from the votes table at query time. Counts are never cached on work rows.
*/
package votes
