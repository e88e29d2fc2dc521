package session

import (
	"errors"
	"testing"

	"civicconnect-be/models"
)

// memLocal is an in-memory LocalStore used to exercise the persistence
// side effects without Redis.
type memLocal struct {
	issues     []models.Issue
	failWrites bool
}

func (m *memLocal) ReadUserIssues() []models.Issue {
	return append([]models.Issue(nil), m.issues...)
}

func (m *memLocal) WriteUserIssues(issues []models.Issue) error {
	if m.failWrites {
		return errors.New("write failed")
	}
	m.issues = append([]models.Issue(nil), issues...)
	return nil
}

func authedIdentity(id, name, email string) models.Identity {
	return models.Identity{Authenticated: true, ID: id, DisplayName: name, Email: email}
}

func seedSnapshot(s *Store) []models.Issue {
	var seeds []models.Issue
	for _, issue := range s.Issues() {
		if issue.IsSeed() {
			seeds = append(seeds, issue)
		}
	}
	return seeds
}

func TestNewStoreStartsWithSeedOnly(t *testing.T) {
	s := NewStore(&memLocal{})

	issues := s.Issues()
	if len(issues) != 3 {
		t.Fatalf("initial canonical list has %d issues, want 3", len(issues))
	}
	for _, issue := range issues {
		if !issue.IsSeed() {
			t.Fatalf("initial canonical list contains non-seed issue %q", issue.ID)
		}
	}
}

func TestSubmitReportScenario(t *testing.T) {
	s := NewStore(&memLocal{})
	s.OnIdentityChange(authedIdentity("u1", "Asha", "asha@example.com"))

	issue, err := s.SubmitReport(ReportInput{
		Title:       "Pothole",
		Category:    models.Pothole,
		Description: "deep",
		Latitude:    28.7,
		Longitude:   77.1,
	}, authedIdentity("u1", "Asha", "asha@example.com"))
	if err != nil {
		t.Fatalf("SubmitReport failed: %v", err)
	}

	head := s.Issues()[0]
	if head.ID != issue.ID {
		t.Fatalf("canonical list head is %q, want the new report %q", head.ID, issue.ID)
	}
	if head.Status != models.Reported {
		t.Errorf("new report status = %q, want reported", head.Status)
	}
	if head.OwnerID != "u1" {
		t.Errorf("new report owner = %q, want u1", head.OwnerID)
	}
	if head.Upvotes != 1 {
		t.Errorf("new report upvotes = %d, want 1", head.Upvotes)
	}

	reported := FilterByStatus(s.Issues(), "reported")
	found := false
	for _, r := range reported {
		if r.ID == issue.ID {
			found = true
		}
	}
	if !found {
		t.Error("reported filter does not include the new report")
	}

	for _, r := range FilterByStatus(s.Issues(), "resolved") {
		if r.ID == issue.ID {
			t.Error("resolved filter includes the new report")
		}
	}
}

func TestSubmitReportValidation(t *testing.T) {
	s := NewStore(&memLocal{})

	cases := []struct {
		name  string
		input ReportInput
	}{
		{name: "empty title", input: ReportInput{Description: "deep"}},
		{name: "empty description", input: ReportInput{Title: "Pothole"}},
		{name: "whitespace only", input: ReportInput{Title: "  ", Description: "\t"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.SubmitReport(tc.input, authedIdentity("u1", "Asha", ""))
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("SubmitReport error = %v, want ErrValidation", err)
			}
		})
	}

	if len(s.Issues()) != 3 {
		t.Fatal("failed submissions mutated the canonical list")
	}
}

func TestSubmitReportAnonymousFallback(t *testing.T) {
	s := NewStore(&memLocal{})

	issue, err := s.SubmitReport(ReportInput{Title: "Pothole", Description: "deep"}, models.Anonymous())
	if err != nil {
		t.Fatalf("SubmitReport failed: %v", err)
	}
	if issue.OwnerID != models.AnonymousOwner {
		t.Errorf("owner id = %q, want the anonymous sentinel", issue.OwnerID)
	}
	if issue.OwnerLabel != "Anonymous" {
		t.Errorf("owner label = %q, want Anonymous", issue.OwnerLabel)
	}
}

func TestSubmitReportUnknownCategoryFallsBack(t *testing.T) {
	s := NewStore(&memLocal{})

	issue, err := s.SubmitReport(ReportInput{
		Title:       "Weird",
		Description: "unclassifiable",
		Category:    models.IssueCategory("ufo"),
	}, authedIdentity("u1", "Asha", ""))
	if err != nil {
		t.Fatalf("SubmitReport failed: %v", err)
	}
	if issue.Category != models.Other {
		t.Errorf("category = %q, want other", issue.Category)
	}
}

func TestDeleteSeedDenied(t *testing.T) {
	s := NewStore(&memLocal{})

	if s.Delete("demo-1", authedIdentity("demo", "", ""), false) {
		t.Fatal("delete of demo-1 allowed for owner-like requester")
	}
	if s.Delete("demo-1", authedIdentity("u1", "", ""), true) {
		t.Fatal("delete of demo-1 allowed in admin mode")
	}

	if _, ok := s.Get("demo-1"); !ok {
		t.Fatal("demo-1 missing from the canonical list after denied deletes")
	}
}

func TestDeleteOwnershipAndAdmin(t *testing.T) {
	local := &memLocal{}
	s := NewStore(local)
	owner := authedIdentity("u1", "Asha", "asha@example.com")
	s.OnIdentityChange(owner)

	issue, err := s.SubmitReport(ReportInput{Title: "Pothole", Description: "deep"}, owner)
	if err != nil {
		t.Fatalf("SubmitReport failed: %v", err)
	}

	if s.Delete(issue.ID, authedIdentity("u2", "", ""), false) {
		t.Fatal("delete allowed for non-owner")
	}
	if _, ok := s.Get(issue.ID); !ok {
		t.Fatal("denied delete removed the issue")
	}

	if !s.Delete(issue.ID, authedIdentity("u2", "", ""), true) {
		t.Fatal("delete denied in admin mode")
	}
	if _, ok := s.Get(issue.ID); ok {
		t.Fatal("issue still present after admin delete")
	}
	if len(local.issues) != 0 {
		t.Fatalf("persisted user subset has %d issues after delete, want 0", len(local.issues))
	}
}

func TestUpdateStatus(t *testing.T) {
	s := NewStore(&memLocal{})
	owner := authedIdentity("u1", "Asha", "")
	s.OnIdentityChange(owner)

	issue, err := s.SubmitReport(ReportInput{Title: "Pothole", Description: "deep"}, owner)
	if err != nil {
		t.Fatalf("SubmitReport failed: %v", err)
	}

	// Transitions are free-form: any status is reachable from any other.
	for _, status := range []models.IssueStatus{models.Resolved, models.InProgress, models.Reported} {
		if err := s.UpdateStatus(issue.ID, status); err != nil {
			t.Fatalf("UpdateStatus(%q) failed: %v", status, err)
		}
		got, _ := s.Get(issue.ID)
		if got.Status != status {
			t.Fatalf("status = %q, want %q", got.Status, status)
		}
	}

	if err := s.UpdateStatus(issue.ID, models.IssueStatus("closed")); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("unknown status error = %v, want ErrUnknownStatus", err)
	}

	if err := s.UpdateStatus("demo-1", models.Resolved); !errors.Is(err, ErrSeedImmutable) {
		t.Fatalf("seed status update error = %v, want ErrSeedImmutable", err)
	}
	demo, _ := s.Get("demo-1")
	if demo.Status != models.Reported {
		t.Fatalf("demo-1 status = %q after refused update, want reported", demo.Status)
	}

	// Unknown id is silently ignored.
	if err := s.UpdateStatus("issue-missing", models.Resolved); err != nil {
		t.Fatalf("UpdateStatus on unknown id = %v, want nil", err)
	}
}

func TestSeedInvarianceUnderMutationSequence(t *testing.T) {
	s := NewStore(&memLocal{})
	owner := authedIdentity("u1", "Asha", "")
	s.OnIdentityChange(owner)
	before := seedSnapshot(s)

	issue, _ := s.SubmitReport(ReportInput{Title: "Pothole", Description: "deep"}, owner)
	s.UpdateStatus(issue.ID, models.Resolved)
	s.Upvote(issue.ID)
	s.Delete(issue.ID, owner, false)
	s.Delete("demo-2", owner, true)
	s.UpdateStatus("demo-3", models.Reported)
	s.Upvote("demo-1")

	after := seedSnapshot(s)
	if len(after) != len(before) {
		t.Fatalf("seed cardinality changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i].ID != after[i].ID || before[i].Status != after[i].Status || before[i].Upvotes != after[i].Upvotes {
			t.Fatalf("seed record %q changed: %+v -> %+v", before[i].ID, before[i], after[i])
		}
	}
}

func TestIdentityRoundTrip(t *testing.T) {
	local := &memLocal{}
	s := NewStore(local)
	owner := authedIdentity("u1", "Asha", "asha@example.com")

	s.OnIdentityChange(owner)
	issue, err := s.SubmitReport(ReportInput{Title: "Pothole", Description: "deep"}, owner)
	if err != nil {
		t.Fatalf("SubmitReport failed: %v", err)
	}

	// Logging out hides user reports: the canonical list is exactly the
	// seed set again.
	s.OnIdentityChange(models.Anonymous())
	for _, i := range s.Issues() {
		if !i.IsSeed() {
			t.Fatalf("canonical list still holds user issue %q after logout", i.ID)
		}
	}
	if len(s.Issues()) != 3 {
		t.Fatalf("canonical list has %d issues after logout, want 3", len(s.Issues()))
	}

	// Logging back in recovers them from durable storage.
	s.OnIdentityChange(owner)
	if _, ok := s.Get(issue.ID); !ok {
		t.Fatal("submitted issue not recovered after re-login")
	}
}

func TestPersistenceFailureIsNonFatal(t *testing.T) {
	local := &memLocal{failWrites: true}
	s := NewStore(local)
	owner := authedIdentity("u1", "Asha", "")
	s.OnIdentityChange(owner)

	issue, err := s.SubmitReport(ReportInput{Title: "Pothole", Description: "deep"}, owner)
	if err != nil {
		t.Fatalf("SubmitReport failed: %v", err)
	}

	// The in-memory canonical list stays authoritative.
	if _, ok := s.Get(issue.ID); !ok {
		t.Fatal("failed persistence write dropped the in-memory insert")
	}
}

func TestUpvote(t *testing.T) {
	s := NewStore(&memLocal{})
	owner := authedIdentity("u1", "Asha", "")
	s.OnIdentityChange(owner)

	issue, _ := s.SubmitReport(ReportInput{Title: "Pothole", Description: "deep"}, owner)

	if !s.Upvote(issue.ID) {
		t.Fatal("upvote of user issue refused")
	}
	got, _ := s.Get(issue.ID)
	if got.Upvotes != 2 {
		t.Fatalf("upvotes = %d, want 2", got.Upvotes)
	}

	if s.Upvote("demo-1") {
		t.Fatal("upvote of demo issue allowed")
	}
	if s.Upvote("issue-missing") {
		t.Fatal("upvote of unknown issue reported success")
	}
}

func TestStoreWithoutLocalStore(t *testing.T) {
	s := NewStore(nil)
	owner := authedIdentity("u1", "Asha", "")
	s.OnIdentityChange(owner)

	issue, err := s.SubmitReport(ReportInput{Title: "Pothole", Description: "deep"}, owner)
	if err != nil {
		t.Fatalf("SubmitReport failed: %v", err)
	}
	if _, ok := s.Get(issue.ID); !ok {
		t.Fatal("insert lost without a local store")
	}
}
