package session

import "civicconnect-be/models"

// CanMutate is the authorization check applied before any update or
// delete. Demo issues are refused under all inputs. Admin mode bypasses
// ownership, but it is a client-local capability flag with no server-side
// verification; it gates affordances only and must not be mistaken for
// real authorization.
//
// The anonymous branch lets a logged-in user reclaim an issue that was
// submitted under the anonymous sentinel by matching their display name or
// email against the owner label captured at submission time. That label is
// user-controlled, so the reclaim is a weak heuristic and not
// authoritative.
func CanMutate(issue models.Issue, requester models.Identity, adminMode bool) bool {
	if issue.IsSeed() {
		return false
	}
	if adminMode {
		return true
	}
	if requester.ID != "" && requester.ID == issue.OwnerID {
		return true
	}
	if issue.OwnerID == models.AnonymousOwner {
		if requester.DisplayName != "" && requester.DisplayName == issue.OwnerLabel {
			return true
		}
		if requester.Email != "" && requester.Email == issue.OwnerLabel {
			return true
		}
	}
	return false
}
