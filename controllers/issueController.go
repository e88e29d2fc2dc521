package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sort"
	"time"

	"civicconnect-be/models"
	"civicconnect-be/session"

	"github.com/gin-gonic/gin"
)

// GetAllIssues returns the canonical list filtered by the status
// predicate ("all" or one exact status value).
func GetAllIssues(c *gin.Context) {
	status := c.DefaultQuery("status", session.FilterAll)
	if status != session.FilterAll && !models.ValidStatus(models.IssueStatus(status)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	issues := session.FilterByStatus(sessionStore.Issues(), status)

	c.JSON(http.StatusOK, gin.H{
		"issues":      issues,
		"totalIssues": len(issues),
		"status":      status,
	})
}

// GetIssue retrieves an issue by its ID
func GetIssue(c *gin.Context) {
	issue, ok := sessionStore.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}
	c.JSON(http.StatusOK, issue)
}

// CreateIssue handles the submission pipeline: validate the form, upload
// the optional image, construct the record and insert it at the head of
// the canonical list. The insert is optimistic; the remote write-through
// afterwards is best-effort and never rolls it back.
func CreateIssue(c *gin.Context) {
	identity := identityFrom(c)
	if !identity.Authenticated {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Title       string  `form:"title" json:"title" binding:"max=200"`
		Description string  `form:"description" json:"description" binding:"max=1000"`
		Category    string  `form:"category" json:"category"`
		Latitude    float64 `form:"latitude" json:"latitude"`
		Longitude   float64 `form:"longitude" json:"longitude"`
		Address     string  `form:"address" json:"address" binding:"max=200"`
	}

	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var imageURL *string
	if file, header, err := c.Request.FormFile("image"); err == nil {
		defer file.Close()
		if uploader == nil {
			log.Println("Image attached but no uploader configured, skipping")
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			url, uploadErr := uploader.UploadIssueImage(ctx, file, header.Header.Get("Content-Type"))
			cancel()
			if uploadErr != nil {
				log.Println("Image upload failed, reporting without image:", uploadErr)
			} else {
				imageURL = &url
			}
		}
	}

	issue, err := sessionStore.SubmitReport(session.ReportInput{
		Title:       input.Title,
		Description: input.Description,
		Category:    models.IssueCategory(input.Category),
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Address:     input.Address,
		ImageURL:    imageURL,
	}, identity)
	if err != nil {
		if errors.Is(err, session.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	synced := false
	if remoteStore != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := remoteStore.Create(ctx, issue); err != nil {
			log.Println("Remote issue create failed, keeping local copy:", err)
		} else {
			synced = true
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"issue":  issue,
		"synced": synced,
	})
}

// UpdateIssueStatus changes an issue's status. The status editor is an
// admin surface, so admin mode is required on top of the gate.
func UpdateIssueStatus(c *gin.Context) {
	if !adminMode(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin mode required"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := sessionStore.UpdateStatus(c.Param("id"), models.IssueStatus(input.Status))
	switch {
	case errors.Is(err, session.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
	case errors.Is(err, session.ErrSeedImmutable):
		c.JSON(http.StatusForbidden, gin.H{"error": "Demo issues cannot be modified"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Issue status updated"})
	}
}

// DeleteIssue removes an issue when the mutation gate allows it. A
// refusal is surfaced as a warning, never an error state.
func DeleteIssue(c *gin.Context) {
	id := c.Param("id")
	if _, ok := sessionStore.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	if !sessionStore.Delete(id, identityFrom(c), adminMode(c)) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to delete this issue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Issue deleted successfully"})
}

// UpvoteIssue bumps the informational upvote counter.
func UpvoteIssue(c *gin.Context) {
	id := c.Param("id")
	if !sessionStore.Upvote(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	issue, _ := sessionStore.Get(id)
	c.JSON(http.StatusOK, gin.H{
		"message": "Vote counted",
		"upvotes": issue.Upvotes,
	})
}

// GetIssueAnalytics returns analytical data about the canonical list
func GetIssueAnalytics(c *gin.Context) {
	issues := sessionStore.Issues()

	byCategory := map[models.IssueCategory]int{}
	byStatus := map[models.IssueStatus]int{}
	totalUpvotes := 0
	openIssues := 0
	for _, issue := range issues {
		byCategory[issue.Category]++
		byStatus[issue.Status]++
		totalUpvotes += issue.Upvotes
		if issue.Status != models.Resolved {
			openIssues++
		}
	}

	type categoryCount struct {
		Name  models.IssueCategory `json:"name"`
		Value int                  `json:"value"`
	}
	issuesByCategory := make([]categoryCount, 0, len(byCategory))
	for category, count := range byCategory {
		issuesByCategory = append(issuesByCategory, categoryCount{Name: category, Value: count})
	}
	sort.Slice(issuesByCategory, func(i, j int) bool {
		return issuesByCategory[i].Name < issuesByCategory[j].Name
	})

	type upvotedIssue struct {
		ID       string               `json:"id"`
		Title    string               `json:"title"`
		Category models.IssueCategory `json:"category"`
		Upvotes  int                  `json:"upvotes"`
	}
	topUpvoted := make([]upvotedIssue, 0, len(issues))
	for _, issue := range issues {
		topUpvoted = append(topUpvoted, upvotedIssue{
			ID:       issue.ID,
			Title:    issue.Title,
			Category: issue.Category,
			Upvotes:  issue.Upvotes,
		})
	}
	sort.Slice(topUpvoted, func(i, j int) bool {
		return topUpvoted[i].Upvotes > topUpvoted[j].Upvotes
	})
	if len(topUpvoted) > 5 {
		topUpvoted = topUpvoted[:5]
	}

	c.JSON(http.StatusOK, gin.H{
		"issuesByCategory": issuesByCategory,
		"issuesByStatus":   byStatus,
		"topVotedIssues":   topUpvoted,
		"totalIssues":      len(issues),
		"totalVotes":       totalUpvotes,
		"openIssues":       openIssues,
	})
}

// RecentIssues returns the most recent issues that carry a location
func RecentIssues(c *gin.Context) {
	const limit = 19

	issues := sessionStore.Issues()
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].CreatedAt.After(issues[j].CreatedAt)
	})

	type issueResponse struct {
		ID        string               `json:"id"`
		Title     string               `json:"title"`
		Latitude  float64              `json:"latitude"`
		Longitude float64              `json:"longitude"`
		Address   string               `json:"address,omitempty"`
		Category  models.IssueCategory `json:"category,omitempty"`
		CreatedAt time.Time            `json:"createdAt,omitempty"`
	}

	response := make([]issueResponse, 0, limit)
	for _, issue := range issues {
		if issue.Location == nil {
			continue
		}
		response = append(response, issueResponse{
			ID:        issue.ID,
			Title:     issue.Title,
			Latitude:  issue.Location.Lat,
			Longitude: issue.Location.Lng,
			Address:   issue.Address,
			Category:  issue.Category,
			CreatedAt: issue.CreatedAt,
		})
		if len(response) == limit {
			break
		}
	}

	c.JSON(http.StatusOK, response)
}
