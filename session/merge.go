package session

import "civicconnect-be/models"

// MergeIssues combines the immutable seed set with persisted user records
// into a canonical list. Unauthenticated sessions see the seed set only;
// previously visible user records are hidden, not deleted, and reappear on
// the next authenticated merge. Records carrying the seed prefix are never
// accepted from persisted storage, so a poisoned payload cannot shadow or
// duplicate a demo issue.
//
// The merge is idempotent and order-stable: seed records first in fixed
// order, then user records in persisted order.
func MergeIssues(seed, persisted []models.Issue, authenticated bool) []models.Issue {
	merged := make([]models.Issue, 0, len(seed)+len(persisted))
	merged = append(merged, seed...)
	if !authenticated {
		return merged
	}
	for _, issue := range persisted {
		if issue.IsSeed() {
			continue
		}
		merged = append(merged, issue)
	}
	return merged
}
