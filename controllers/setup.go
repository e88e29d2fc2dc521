package controllers

import (
	"civicconnect-be/mapview"
	"civicconnect-be/models"
	"civicconnect-be/session"
	"civicconnect-be/storage"

	"github.com/gin-gonic/gin"
)

var (
	sessionStore *session.Store
	remoteStore  *storage.RemoteStore
	uploader     *storage.Uploader
	mapOverlay   *mapview.Overlay
	markers      *mapview.Reconciler
)

// Setup wires the controllers to their collaborators. Remote store and
// uploader may be nil; the session core carries all in-memory guarantees
// without them.
func Setup(store *session.Store, remote *storage.RemoteStore, up *storage.Uploader, overlay *mapview.Overlay, rec *mapview.Reconciler) {
	sessionStore = store
	remoteStore = remote
	uploader = up
	mapOverlay = overlay
	markers = rec
}

// identityFrom rebuilds the identity signal from the claims the auth
// middleware stored on the context.
func identityFrom(c *gin.Context) models.Identity {
	userID, exists := c.Get("user_id")
	id, ok := userID.(string)
	if !exists || !ok || id == "" {
		return models.Anonymous()
	}
	name, _ := c.Get("user_name")
	email, _ := c.Get("user_email")
	displayName, _ := name.(string)
	emailStr, _ := email.(string)
	return models.Identity{
		Authenticated: true,
		ID:            id,
		DisplayName:   displayName,
		Email:         emailStr,
	}
}

// adminMode reads the client-local admin flag. It gates affordances
// only; there is no server-side role behind it.
func adminMode(c *gin.Context) bool {
	return c.GetHeader("X-Admin-Mode") == "true"
}
