package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"civicconnect-be/config"
	"civicconnect-be/controllers"
	"civicconnect-be/mapview"
	"civicconnect-be/models"
	"civicconnect-be/routes"
	"civicconnect-be/session"
	"civicconnect-be/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}
	log.Println("MongoDB connection established successfully!")

	config.ConnectRedis()

	// Durable local storage backs the session across logins; the session
	// store stays authoritative in memory even when Redis misbehaves.
	local := storage.NewRedisLocal(config.RedisClient)
	store := session.NewStore(local)

	remote := storage.NewRemoteStore(db)
	listCtx, cancelList := context.WithTimeout(context.Background(), 10*time.Second)
	if remoteIssues, err := remote.List(listCtx); err != nil {
		log.Println("Could not read remote issues:", err)
	} else {
		log.Printf("Remote store holds %d issues", len(remoteIssues))
	}
	cancelList()

	var uploader *storage.Uploader
	up, err := storage.NewUploader(context.Background())
	if err != nil {
		log.Println("Image upload disabled:", err)
	} else {
		uploader = up
		defer uploader.Close()
	}

	// Map overlay, created with the view and destroyed with the process.
	overlay := mapview.NewOverlay(models.LatLng{Lat: 28.7041, Lng: 77.1025}, 13)
	overlay.AddTileLayer(
		"https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
		"&copy; OpenStreetMap contributors",
	)
	defer overlay.Destroy()

	reconciler := mapview.NewReconciler()
	reconciler.Bind(overlay)
	reconciler.Reconcile(store.Issues())

	controllers.Setup(store, remote, uploader, overlay, reconciler)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("FRONTEND_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Admin-Mode"},
		AllowCredentials: true,
	}))

	routes.AuthRoutes(r)
	routes.IssueRoutes(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
