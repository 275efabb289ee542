package controllers

import (
	"net/http"

	"popout/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BookmarkEvent saves an event for the logged-in user. Idempotent in
// outcome.
func BookmarkEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")
		eventID := c.Param("id")

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var event models.Event
		if err := db.First(&event, eventID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}

		var existing models.EventBookmark
		if err := db.Where("user_id = ? AND event_id = ?", user.ID, event.ID).First(&existing).Error; err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Event already bookmarked"})
			return
		}

		bookmark := models.EventBookmark{UserID: user.ID, EventID: event.ID}
		if err := db.Create(&bookmark).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to bookmark event"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Event bookmarked successfully"})
	}
}

func UnbookmarkEvent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")
		eventID := c.Param("id")

		var event models.Event
		if err := db.First(&event, eventID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}

		if err := db.Where("user_id = ? AND event_id = ?", userID, event.ID).Delete(&models.EventBookmark{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove bookmark"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed successfully"})
	}
}
