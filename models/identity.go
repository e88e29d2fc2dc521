package models

// Identity is the latest known value of the authentication signal. It is
// consumed, never produced, by the session core: changes arrive through
// the auth surface and drive a re-merge of the canonical issue list.
type Identity struct {
	Authenticated bool   `json:"authenticated"`
	ID            string `json:"id,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	Email         string `json:"email,omitempty"`
}

// Anonymous is the unauthenticated identity.
func Anonymous() Identity {
	return Identity{}
}

// OwnerID returns the id recorded on submitted issues: the user id when
// authenticated, otherwise the anonymous sentinel.
func (id Identity) OwnerID() string {
	if id.Authenticated && id.ID != "" {
		return id.ID
	}
	return AnonymousOwner
}

// Label returns the display name captured on submitted issues. It is
// denormalized at submission time and never re-derived later.
func (id Identity) Label() string {
	if id.DisplayName != "" {
		return id.DisplayName
	}
	if id.Email != "" {
		return id.Email
	}
	return "Anonymous"
}
