package session

import (
	"errors"
	"log"
	"sync"

	"civicconnect-be/models"
)

// ErrUnknownStatus is returned when a status update carries a value
// outside the three known statuses.
var ErrUnknownStatus = errors.New("unknown issue status")

// ErrSeedImmutable is returned when a mutation targets a demo issue.
var ErrSeedImmutable = errors.New("demo issues cannot be modified")

// LocalStore is the durable local storage collaborator. It holds only
// user-submitted issues under a single fixed namespace; seed issues are
// filtered out before every write and re-injected on every merge, never
// re-read. Both operations may degrade silently: Read returns nil for
// missing, corrupt or unreachable data, and a failed Write must not
// disturb the in-memory state.
type LocalStore interface {
	ReadUserIssues() []models.Issue
	WriteUserIssues(issues []models.Issue) error
}

// Store holds the canonical issue list for the session. It is the single
// source of truth: every view (status filter, map markers, analytics) is
// derived from it, and every mutation flows through it. Operations are
// serialized by a mutex so no caller can observe a partially applied
// mutation.
type Store struct {
	mu       sync.Mutex
	seed     []models.Issue
	issues   []models.Issue
	identity models.Identity
	local    LocalStore
}

// NewStore creates a session store whose canonical list starts as the
// seed set only, before any merge with persisted data. That guarantees a
// deterministic first state regardless of how slowly the auth signal
// resolves.
func NewStore(local LocalStore) *Store {
	seed := SeedIssues()
	return &Store{
		seed:   seed,
		issues: append([]models.Issue(nil), seed...),
		local:  local,
	}
}

// Identity returns the latest known auth signal value.
func (s *Store) Identity() models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// OnIdentityChange replaces the canonical list by re-running the merge
// policy against persisted storage. This is the only bulk-replacement
// trigger. Two overlapping identity changes are not sequenced against
// each other; last writer wins.
func (s *Store) OnIdentityChange(identity models.Identity) {
	var persisted []models.Issue
	if identity.Authenticated && s.local != nil {
		persisted = s.local.ReadUserIssues()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = identity
	s.issues = MergeIssues(s.seed, persisted, identity.Authenticated)
	if identity.Authenticated {
		log.Printf("session: merged %d user issues with %d demo issues", len(s.issues)-len(s.seed), len(s.seed))
	} else {
		log.Println("session: logged out, showing demo issues only")
	}
}

// Issues returns a copy of the canonical list, newest user reports first.
func (s *Store) Issues() []models.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Issue(nil), s.issues...)
}

// Insert prepends a new issue to the canonical list. Newest-first
// ordering is an observable contract: fresh reports appear at the head of
// any unfiltered rendering.
func (s *Store) Insert(issue models.Issue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issues = append([]models.Issue{issue}, s.issues...)
	s.persistLocked()
}

// UpdateStatus replaces the status of the issue with the given id. An
// unknown id is silently ignored. Unknown status values and seed ids are
// rejected: demo issues are immutable under every operation.
func (s *Store) UpdateStatus(id string, status models.IssueStatus) error {
	if !models.ValidStatus(status) {
		return ErrUnknownStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, issue := range s.issues {
		if issue.ID != id {
			continue
		}
		if issue.IsSeed() {
			return ErrSeedImmutable
		}
		s.issues[i].Status = status
		s.persistLocked()
		return nil
	}
	return nil
}

// Get returns the issue with the given id from the canonical list.
func (s *Store) Get(id string) (models.Issue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, issue := range s.issues {
		if issue.ID == id {
			return issue, true
		}
	}
	return models.Issue{}, false
}

// Delete removes the issue with the given id if the mutation gate allows
// it. Denial is an outcome, not an error: the store is left untouched and
// the caller surfaces the refusal as a warning.
func (s *Store) Delete(id string, requester models.Identity, adminMode bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, issue := range s.issues {
		if issue.ID != id {
			continue
		}
		if !CanMutate(issue, requester, adminMode) {
			return false
		}
		s.issues = append(s.issues[:i:i], s.issues[i+1:]...)
		s.persistLocked()
		return true
	}
	return false
}

// Upvote increments the informational upvote counter. Seed issues keep
// their fixed counts. Reports whether the id was found and counted.
func (s *Store) Upvote(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, issue := range s.issues {
		if issue.ID != id {
			continue
		}
		if issue.IsSeed() {
			return false
		}
		s.issues[i].Upvotes++
		s.persistLocked()
		return true
	}
	return false
}

// persistLocked writes the user-record subset to durable local storage.
// Failures are logged and swallowed: the in-memory canonical list stays
// authoritative for the rest of the session. Callers must hold s.mu.
func (s *Store) persistLocked() {
	if s.local == nil {
		return
	}
	user := make([]models.Issue, 0, len(s.issues))
	for _, issue := range s.issues {
		if !issue.IsSeed() {
			user = append(user, issue)
		}
	}
	if err := s.local.WriteUserIssues(user); err != nil {
		log.Printf("session: failed to persist %d user issues: %v", len(user), err)
	}
}
