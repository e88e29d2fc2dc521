package models

import (
	"strings"
	"time"
)

// IssueCategory enum
type IssueCategory string

const (
	Pothole     IssueCategory = "pothole"
	Traffic     IssueCategory = "traffic"
	StreetLight IssueCategory = "streetLight"
	Garbage     IssueCategory = "garbage"
	Water       IssueCategory = "water"
	Other       IssueCategory = "other"
)

// IssueStatus enum
type IssueStatus string

const (
	Reported   IssueStatus = "reported"
	InProgress IssueStatus = "inProgress"
	Resolved   IssueStatus = "resolved"
)

// SeedPrefix marks demo issues that are always present, never persisted
// and never deletable.
const SeedPrefix = "demo-"

// AnonymousOwner is the sentinel owner id for unauthenticated submissions.
const AnonymousOwner = "anonymous"

// ValidStatus reports whether s is one of the three known status values.
// Unknown values are rejected at the store boundary instead of being
// rendered with a fallback color.
func ValidStatus(s IssueStatus) bool {
	switch s {
	case Reported, InProgress, Resolved:
		return true
	}
	return false
}

// ValidCategory reports whether c is a known category tag.
func ValidCategory(c IssueCategory) bool {
	switch c {
	case Pothole, Traffic, StreetLight, Garbage, Water, Other:
		return true
	}
	return false
}

// LatLng is a map coordinate pair.
type LatLng struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Issue represents a civic issue reported by a citizen. Issues without a
// location stay in list views but are excluded from the map projection.
type Issue struct {
	ID          string        `bson:"_id" json:"id"`
	OwnerID     string        `bson:"ownerId" json:"ownerId"`
	OwnerLabel  string        `bson:"ownerLabel" json:"ownerLabel"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Category    IssueCategory `bson:"category" json:"category"`
	Location    *LatLng       `bson:"location,omitempty" json:"location,omitempty"`
	Address     string        `bson:"address,omitempty" json:"address,omitempty"`
	ImageURL    *string       `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Status      IssueStatus   `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	Upvotes     int           `bson:"upvotes" json:"upvotes"`
}

// IsSeed reports whether the issue belongs to the fixed demo set.
func (i Issue) IsSeed() bool {
	return strings.HasPrefix(i.ID, SeedPrefix)
}
