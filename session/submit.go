package session

import (
	"fmt"
	"strings"
	"time"

	"civicconnect-be/models"
)

// ErrValidation wraps submission input problems. It is a local error
// returned to the caller for display; the form stays open for correction.
var ErrValidation = fmt.Errorf("validation failed")

// ReportInput is the submission form payload. The image, if any, has
// already been handed to the upload collaborator; only the resulting URL
// travels through the pipeline.
type ReportInput struct {
	Title       string
	Description string
	Category    models.IssueCategory
	Latitude    float64
	Longitude   float64
	Address     string
	ImageURL    *string
}

// SubmitReport validates the form input, constructs a new issue record
// and inserts it at the head of the canonical list. New reports always
// start as reported with a single upvote from the submitter. Owner id and
// label are captured from the identity at submission time, falling back
// to the anonymous sentinel when unauthenticated.
func (s *Store) SubmitReport(in ReportInput, identity models.Identity) (models.Issue, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return models.Issue{}, fmt.Errorf("%w: title and description are required", ErrValidation)
	}

	category := in.Category
	if !models.ValidCategory(category) {
		category = models.Other
	}

	issue := models.Issue{
		ID:          fmt.Sprintf("issue-%d", time.Now().UnixNano()),
		OwnerID:     identity.OwnerID(),
		OwnerLabel:  identity.Label(),
		Title:       in.Title,
		Description: in.Description,
		Category:    category,
		Location:    &models.LatLng{Lat: in.Latitude, Lng: in.Longitude},
		Address:     in.Address,
		ImageURL:    in.ImageURL,
		Status:      models.Reported,
		CreatedAt:   time.Now(),
		Upvotes:     1,
	}

	s.Insert(issue)
	return issue, nil
}
