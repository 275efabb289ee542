package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"popout/config"
	"popout/controllers"
	"popout/models"
	"popout/notify"
	"popout/routes"
	"popout/storage"
	"popout/utils"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	utils.SeedCategories(db)

	ctx := context.Background()

	var sender notify.Sender
	sender, err = notify.NewFCMSender(ctx)
	if err != nil {
		log.Printf("FCM unavailable (%v), notifications will be logged only", err)
		sender = notify.LogSender{}
	}

	store, err := storage.NewCloudinaryUploader()
	if err != nil {
		log.Fatalf("cloudinary setup failed: %v", err)
	}

	r := routes.SetupRouter(db, sender, store, controllers.GoogleOAuthConfig())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	log.Printf("server running on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Vendor{}, &models.Event{}, &models.Category{},
		&models.EventCategory{}, &models.Review{}, &models.Image{},
		&models.VendorFollow{}, &models.EventBookmark{}, &models.UserPreference{})
}
