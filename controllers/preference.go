package controllers

import (
	"net/http"

	"popout/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name asc").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, categories)
	}
}

// SetPreferences replaces the logged-in user's category preferences
// with the given set of category names.
func SetPreferences(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		var body struct {
			Categories []string `json:"categories"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		var categories []models.Category
		if len(body.Categories) > 0 {
			if err := db.Where("name IN ?", body.Categories).Find(&categories).Error; err != nil || len(categories) != len(body.Categories) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
				return
			}
		}

		db.Where("user_id = ?", userID).Delete(&models.UserPreference{})
		for _, cat := range categories {
			db.Create(&models.UserPreference{UserID: userID, CategoryID: cat.ID})
		}

		var prefs []models.UserPreference
		if err := db.Preload("Category").Where("user_id = ?", userID).Find(&prefs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch preferences"})
			return
		}

		c.JSON(http.StatusOK, prefs)
	}
}

func GetPreferences(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		var prefs []models.UserPreference
		if err := db.Preload("Category").Where("user_id = ?", userID).Find(&prefs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch preferences"})
			return
		}

		c.JSON(http.StatusOK, prefs)
	}
}
