package controllers

import (
	"errors"
	"net/http"
	"time"

	"popout/models"
	"popout/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateUserRequest struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	FCMToken *string `json:"fcm_token"`
}

func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		var user models.User
		if err := db.Preload("Vendor").
			Preload("Preferences.Category").
			First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		var req UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		if req.Name != "" {
			user.Name = req.Name
		}
		if req.Location != "" {
			user.Location = req.Location
		}
		if req.FCMToken != nil {
			// Empty string clears the token so the user drops out of
			// push fan-outs.
			if *req.FCMToken == "" {
				user.FCMToken = nil
			} else {
				user.FCMToken = req.FCMToken
			}
		}
		user.UpdatedAt = time.Now()

		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// DeleteAccount removes the user and everything hanging off it,
// including the vendor and its cloud-stored image.
func DeleteAccount(db *gorm.DB, store storage.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var cloudErr error
		var vendor models.Vendor
		if err := db.Where("user_id = ?", userID).First(&vendor).Error; err == nil {
			cloudErr = removeVendorData(c, db, store, vendor.ID)
		}

		db.Where("user_id = ?", userID).Delete(&models.VendorFollow{})
		db.Where("user_id = ?", userID).Delete(&models.EventBookmark{})
		db.Where("user_id = ?", userID).Delete(&models.UserPreference{})
		db.Where("user_id = ?", userID).Delete(&models.Review{})

		// Profile images get the same cloud cleanup as vendor images.
		var images []models.Image
		db.Where("user_id = ?", userID).Find(&images)
		for i := range images {
			if err := store.Destroy(c.Request.Context(), images[i].PublicID); err != nil {
				cloudErr = errors.Join(cloudErr, err)
			}
			db.Delete(&images[i])
		}

		if err := db.Delete(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}

		if cloudErr != nil {
			c.JSON(http.StatusOK, gin.H{
				"message": "Account deleted, but cloud image cleanup failed",
				"details": cloudErr.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
	}
}

func GetUserFollows(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		var follows []models.VendorFollow
		if err := db.Preload("Vendor").Where("user_id = ?", userID).Find(&follows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch follows"})
			return
		}

		c.JSON(http.StatusOK, follows)
	}
}

func GetUserBookmarks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		var bookmarks []models.EventBookmark
		if err := db.Preload("Event").Preload("Event.Vendor").
			Where("user_id = ?", userID).
			Order("created_at desc").
			Find(&bookmarks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookmarks"})
			return
		}

		c.JSON(http.StatusOK, bookmarks)
	}
}
