package routes

import (
	"civicconnect-be/controllers"
	"civicconnect-be/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue and map routes
func IssueRoutes(r *gin.Engine) {
	issue := r.Group("/api/issue")
	{
		issue.GET("/", controllers.GetAllIssues)
		issue.GET("/recent", controllers.RecentIssues)
		issue.GET("/analytics", controllers.GetIssueAnalytics)
		issue.GET("/:id", controllers.GetIssue)
		issue.POST("/create", middlewares.AuthMiddleware(), middlewares.ReportRateLimiter(10), controllers.CreateIssue)
		issue.PATCH("/:id/status", middlewares.AuthMiddleware(), controllers.UpdateIssueStatus)
		issue.DELETE("/:id", middlewares.AuthMiddleware(), controllers.DeleteIssue)
		issue.POST("/:id/upvote", middlewares.AuthMiddleware(), controllers.UpvoteIssue)
	}

	mapGroup := r.Group("/api/map")
	{
		mapGroup.GET("/markers", controllers.GetMapMarkers)
		mapGroup.POST("/focus/:id", controllers.FocusIssue)
	}
}
