package controllers

import (
	"net/http"

	"civicconnect-be/models"
	"civicconnect-be/session"

	"github.com/gin-gonic/gin"
)

// GetMapMarkers reconciles the map overlay against the filtered view and
// returns the resulting issue markers. Each call is a full replace:
// afterwards the overlay carries exactly one marker per geolocated issue
// in the view.
func GetMapMarkers(c *gin.Context) {
	status := c.DefaultQuery("status", session.FilterAll)
	if status != session.FilterAll && !models.ValidStatus(models.IssueStatus(status)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	view := session.FilterByStatus(sessionStore.Issues(), status)
	markers.Reconcile(view)

	center, zoom := mapOverlay.View()
	c.JSON(http.StatusOK, gin.H{
		"markers":   mapOverlay.IssueMarkers(),
		"center":    center,
		"zoom":      zoom,
		"tileLayer": mapOverlay.TileLayer(),
	})
}

// FocusIssue pans the map to an issue's location.
func FocusIssue(c *gin.Context) {
	issue, ok := sessionStore.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}
	if issue.Location == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Issue has no location"})
		return
	}

	mapOverlay.PanTo(*issue.Location, 16)

	center, zoom := mapOverlay.View()
	c.JSON(http.StatusOK, gin.H{
		"center": center,
		"zoom":   zoom,
	})
}
