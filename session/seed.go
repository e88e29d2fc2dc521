package session

import (
	"time"

	"civicconnect-be/models"
)

// SeedIssues returns the fixed demo dataset. The three demo issues are
// always present in the canonical list, are never persisted and can never
// be mutated or deleted. Each call returns fresh copies so callers cannot
// alias the seed backing array.
func SeedIssues() []models.Issue {
	now := time.Now()
	return []models.Issue{
		{
			ID:          "demo-1",
			OwnerID:     "demo",
			OwnerLabel:  "Rajesh Kumar",
			Title:       "Road Damage - Connaught Place",
			Category:    models.Pothole,
			Description: "Large crater-sized pothole on CP road causing traffic congestion. Needs immediate attention.",
			Status:      models.Reported,
			CreatedAt:   now.Add(-2 * 24 * time.Hour),
			Upvotes:     12,
			Location:    &models.LatLng{Lat: 28.7041, Lng: 77.1025},
		},
		{
			ID:          "demo-2",
			OwnerID:     "demo",
			OwnerLabel:  "Priya Singh",
			Title:       "Signal Malfunction - Kasturba Nagar",
			Category:    models.Traffic,
			Description: "Traffic signal at Kasturba Nagar junction is malfunctioning. Causing traffic problems.",
			Status:      models.InProgress,
			CreatedAt:   now.Add(-24 * time.Hour),
			Upvotes:     8,
			Location:    &models.LatLng{Lat: 28.6129, Lng: 77.2295},
		},
		{
			ID:          "demo-3",
			OwnerID:     "demo",
			OwnerLabel:  "Amit Patel",
			Title:       "Street Light Repaired - Greater Kailash",
			Category:    models.StreetLight,
			Description: "Broken street light at Greater Kailash has been successfully repaired by municipal team.",
			Status:      models.Resolved,
			CreatedAt:   now.Add(-3 * time.Hour),
			Upvotes:     5,
			Location:    &models.LatLng{Lat: 28.5355, Lng: 77.3910},
		},
	}
}
