package controllers

import (
	"net/http"
	"time"

	"popout/models"
	"popout/notify"
	"popout/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventRequest struct {
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	StartDate     time.Time `json:"startDate" binding:"required"`
	EndDate       time.Time `json:"endDate" binding:"required"`
	Venue         string    `json:"venue_name"`
	Location      string    `json:"location"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	IsFree        bool      `json:"isFree"`
	IsKidFriendly bool      `json:"isKidFriendly"`
	IsSober       bool      `json:"isSober"`
	ImageURL      string    `json:"image_url"`
	Categories    []string  `json:"categories"`
}

// followerTokens returns the push tokens of users following the vendor.
func followerTokens(db *gorm.DB, vendorID uint) []string {
	var tokens []string
	db.Table("vendor_follows").
		Joins("JOIN users ON users.id = vendor_follows.user_id").
		Where("vendor_follows.vendor_id = ? AND users.fcm_token IS NOT NULL", vendorID).
		Pluck("users.fcm_token", &tokens)
	return tokens
}

// CreateEvent persists a new event for the logged-in vendor, attaches
// category tags and fans out a push notification to every follower
// with a device token. Notification failures never roll back the
// event.
func CreateEvent(db *gorm.DB, sender notify.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		var vendor models.Vendor
		if err := db.Where("user_id = ?", userID).First(&vendor).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only vendors can create events"})
			return
		}

		var req EventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !req.EndDate.After(req.StartDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be after startDate"})
			return
		}

		var categories []models.Category
		if len(req.Categories) > 0 {
			if err := db.Where("name IN ?", req.Categories).Find(&categories).Error; err != nil || len(categories) != len(req.Categories) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
				return
			}
		}

		event := models.Event{
			Title:         req.Title,
			Description:   req.Description,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			Venue:         req.Venue,
			Location:      req.Location,
			Latitude:      req.Latitude,
			Longitude:     req.Longitude,
			IsFree:        req.IsFree,
			IsKidFriendly: req.IsKidFriendly,
			IsSober:       req.IsSober,
			ImageURL:      req.ImageURL,
			VendorID:      vendor.ID,
		}

		if err := db.Create(&event).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
			return
		}

		for _, cat := range categories {
			db.Create(&models.EventCategory{EventID: event.ID, CategoryID: cat.ID})
		}

		tokens := followerTokens(db, vendor.ID)
		notified := notify.Fanout(c.Request.Context(), sender, tokens,
			vendor.BusinessName+" added a new event!",
			event.Title)

		var full models.Event
		if err := db.Preload("Categories.Category").Preload("Vendor").First(&full, event.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event details"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "Event created successfully",
			"event":    full,
			"notified": notified,
		})
	}
}

// GetEvents is the public upcoming-events feed.
func GetEvents(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var events []models.Event

		now := time.Now()
		if err := db.Preload("Vendor").Preload("Categories.Category").
			Where("end_date >= ?", now).
			Order("start_date asc").
			Find(&events).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
			return
		}

		c.JSON(http.StatusOK, events)
	}
}

func GetEventDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var event models.Event
		if err := db.Preload("Vendor").Preload("Categories.Category").First(&event, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}

		c.JSON(http.StatusOK, event)
	}
}

// ownedEvent loads the event and checks the logged-in user owns its
// vendor.
func ownedEvent(c *gin.Context, db *gorm.DB) (*models.Event, bool) {
	userID := c.GetUint("userId")
	id := c.Param("id")

	var event models.Event
	if err := db.First(&event, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return nil, false
	}

	var vendor models.Vendor
	if err := db.First(&vendor, event.VendorID).Error; err != nil || vendor.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your event"})
		return nil, false
	}

	return &event, true
}

func UpdateEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, ok := ownedEvent(c, db)
		if !ok {
			return
		}

		var req EventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !req.EndDate.After(req.StartDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be after startDate"})
			return
		}

		var categories []models.Category
		if len(req.Categories) > 0 {
			if err := db.Where("name IN ?", req.Categories).Find(&categories).Error; err != nil || len(categories) != len(req.Categories) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
				return
			}
		}

		event.Title = req.Title
		event.Description = req.Description
		event.StartDate = req.StartDate
		event.EndDate = req.EndDate
		event.Venue = req.Venue
		event.Location = req.Location
		event.Latitude = req.Latitude
		event.Longitude = req.Longitude
		event.IsFree = req.IsFree
		event.IsKidFriendly = req.IsKidFriendly
		event.IsSober = req.IsSober
		if req.ImageURL != "" {
			event.ImageURL = req.ImageURL
		}

		if err := db.Save(event).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
			return
		}

		// Replace the tag set wholesale.
		db.Where("event_id = ?", event.ID).Delete(&models.EventCategory{})
		for _, cat := range categories {
			db.Create(&models.EventCategory{EventID: event.ID, CategoryID: cat.ID})
		}

		c.JSON(http.StatusOK, event)
	}
}

func DeleteEvent(db *gorm.DB, store storage.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, ok := ownedEvent(c, db)
		if !ok {
			return
		}

		var cloudErr error
		var image models.Image
		if err := db.Where("event_id = ?", event.ID).First(&image).Error; err == nil {
			cloudErr = store.Destroy(c.Request.Context(), image.PublicID)
			db.Delete(&image)
		}

		db.Where("event_id = ?", event.ID).Delete(&models.EventCategory{})
		db.Where("event_id = ?", event.ID).Delete(&models.EventBookmark{})

		if err := db.Delete(event).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
			return
		}

		if cloudErr != nil {
			c.JSON(http.StatusOK, gin.H{
				"message": "Event deleted, but cloud image cleanup failed",
				"details": cloudErr.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
	}
}
