package controllers

import (
	"net/http"

	"popout/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SearchEvents filters events by free-text query, category name and
// boolean flags.
func SearchEvents(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Event{}).
			Preload("Vendor").
			Preload("Categories.Category")

		if q := c.Query("q"); q != "" {
			like := "%" + q + "%"
			query = query.Where(
				"LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(venue) LIKE LOWER(?)",
				like, like, like)
		}

		if category := c.Query("category"); category != "" {
			query = query.
				Joins("JOIN event_categories ON event_categories.event_id = events.id").
				Joins("JOIN categories ON categories.id = event_categories.category_id").
				Where("categories.name = ?", category)
		}

		if c.Query("isFree") == "true" {
			query = query.Where("is_free = ?", true)
		}
		if c.Query("isKidFriendly") == "true" {
			query = query.Where("is_kid_friendly = ?", true)
		}
		if c.Query("isSober") == "true" {
			query = query.Where("is_sober = ?", true)
		}

		var events []models.Event
		if err := query.Order("start_date asc").Find(&events).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search events"})
			return
		}

		c.JSON(http.StatusOK, events)
	}
}
