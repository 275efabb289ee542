package routes

import (
	"os"
	"time"

	"popout/controllers"
	"popout/middlewares"
	"popout/notify"
	"popout/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, sender notify.Sender, store storage.Uploader, oauthConf *oauth2.Config) *gin.Engine {
	r := gin.Default()

	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontend},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	analytics := &controllers.AnalyticsController{DB: db}

	// Auth

	auth := r.Group("/auth")
	{
		auth.GET("/google", controllers.GoogleLogin(oauthConf))
		auth.GET("/google/callback", controllers.GoogleCallback(db, oauthConf))
		auth.POST("/logout", controllers.Logout())
		auth.GET("/me", middlewares.AuthMiddleware(), controllers.CurrentUser(db))
	}

	// Public events + search

	r.GET("/events", controllers.GetEvents(db))
	r.GET("/events/:id", controllers.GetEventDetails(db))
	r.GET("/search", controllers.SearchEvents(db))

	// Public vendor surface

	r.GET("/vendors/:id", controllers.GetVendor(db))
	r.GET("/vendors/:id/reviews", controllers.GetVendorReviews(db))
	r.GET("/vendors/:id/average-rating", analytics.GetAverageRating)
	r.GET("/vendors/spotlight/top3", analytics.GetSpotlightTop3)

	r.GET("/api/preferences", controllers.GetCategories(db))

	// Protected routes

	events := r.Group("/events").Use(middlewares.AuthMiddleware())
	{
		events.POST("", controllers.CreateEvent(db, sender))
		events.PUT("/:id", controllers.UpdateEvent(db))
		events.DELETE("/:id", controllers.DeleteEvent(db, store))
		events.POST("/:id/bookmark", controllers.BookmarkEvent(db))
		events.DELETE("/:id/bookmark", controllers.UnbookmarkEvent(db))
	}

	vendors := r.Group("/vendors").Use(middlewares.AuthMiddleware())
	{
		vendors.POST("/:id/follow", controllers.FollowVendor(db))
		vendors.DELETE("/:id/follow", controllers.UnfollowVendor(db))
		vendors.POST("/:id/reviews", controllers.CreateReview(db))
	}

	vendor := r.Group("/vendor").Use(middlewares.AuthMiddleware())
	{
		vendor.POST("", controllers.CreateVendor(db))
		vendor.GET("/me", controllers.GetMyVendor(db))
		vendor.PUT("/me", controllers.UpdateVendor(db))
		vendor.DELETE("/me", controllers.DeleteVendor(db, store))
	}

	users := r.Group("/users").Use(middlewares.AuthMiddleware())
	{
		users.GET("/me", controllers.GetProfile(db))
		users.PATCH("/me", controllers.UpdateProfile(db))
		users.DELETE("/me", controllers.DeleteAccount(db, store))
		users.GET("/me/follows", controllers.GetUserFollows(db))
		users.GET("/me/bookmarks", controllers.GetUserBookmarks(db))
	}

	api := r.Group("/api").Use(middlewares.AuthMiddleware())
	{
		api.GET("/preferences/me", controllers.GetPreferences(db))
		api.PUT("/preferences", controllers.SetPreferences(db))
		api.POST("/images/:kind/:id", controllers.UploadImage(db, store))
		api.DELETE("/images/:id", controllers.DeleteImage(db, store))
	}

	r.DELETE("/reviews/:id", middlewares.AuthMiddleware(), controllers.DeleteReview(db))

	// Fallback for unknown routes

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "page not found"})
	})

	return r
}
