package session

import "civicconnect-be/models"

// FilterAll is the predicate that selects every issue.
const FilterAll = "all"

// FilterByStatus derives the display subset of issues matching the status
// predicate, which is either FilterAll or one exact status value. The
// input is never mutated and its order is preserved.
func FilterByStatus(issues []models.Issue, status string) []models.Issue {
	filtered := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if status == FilterAll || string(issue.Status) == status {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}
