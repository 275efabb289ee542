package controllers

import (
	"net/http"
	"strconv"

	"popout/models"
	"popout/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UploadImage relays a multipart "image" file to cloud storage and
// records the assigned public ID against exactly one of user, vendor
// or event. A second vendor image is rejected.
func UploadImage(db *gorm.DB, store storage.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")
		kind := c.Param("kind")

		id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
			return
		}
		targetID := uint(id64)

		image := models.Image{}
		switch kind {
		case "user":
			if targetID != userID {
				c.JSON(http.StatusForbidden, gin.H{"error": "Not your profile"})
				return
			}
			image.UserID = &targetID

		case "vendor":
			var vendor models.Vendor
			if err := db.First(&vendor, targetID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
				return
			}
			if vendor.UserID != userID {
				c.JSON(http.StatusForbidden, gin.H{"error": "Not your vendor"})
				return
			}
			var existing models.Image
			if err := db.Where("vendor_id = ?", vendor.ID).First(&existing).Error; err == nil {
				c.JSON(http.StatusConflict, gin.H{"error": "Vendor already has an image"})
				return
			}
			image.VendorID = &targetID

		case "event":
			var event models.Event
			if err := db.First(&event, targetID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
				return
			}
			var vendor models.Vendor
			if err := db.First(&vendor, event.VendorID).Error; err != nil || vendor.UserID != userID {
				c.JSON(http.StatusForbidden, gin.H{"error": "Not your event"})
				return
			}
			image.EventID = &targetID

		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown image kind"})
			return
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image file"})
			return
		}
		defer file.Close()

		res, err := store.Upload(c.Request.Context(), file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image", "details": err.Error()})
			return
		}

		image.PublicID = res.PublicID
		image.ReferenceURL = res.URL

		if err := db.Create(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
			return
		}

		// Keep the denormalized URLs in sync.
		switch kind {
		case "user":
			db.Model(&models.User{}).Where("id = ?", targetID).Update("profile_picture", res.URL)
		case "event":
			db.Model(&models.Event{}).Where("id = ?", targetID).Update("image_url", res.URL)
		}

		c.JSON(http.StatusCreated, image)
	}
}

// DeleteImage removes the record and, best effort, the cloud copy.
func DeleteImage(db *gorm.DB, store storage.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")
		id := c.Param("id")

		var image models.Image
		if err := db.First(&image, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
			return
		}

		if !ownsImage(db, userID, &image) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your image"})
			return
		}

		cloudErr := store.Destroy(c.Request.Context(), image.PublicID)

		if err := db.Delete(&image).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
			return
		}

		if cloudErr != nil {
			c.JSON(http.StatusOK, gin.H{
				"message": "Image deleted, but cloud cleanup failed",
				"details": cloudErr.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
	}
}

func ownsImage(db *gorm.DB, userID uint, image *models.Image) bool {
	switch {
	case image.UserID != nil:
		return *image.UserID == userID
	case image.VendorID != nil:
		var vendor models.Vendor
		return db.First(&vendor, *image.VendorID).Error == nil && vendor.UserID == userID
	case image.EventID != nil:
		var event models.Event
		if db.First(&event, *image.EventID).Error != nil {
			return false
		}
		var vendor models.Vendor
		return db.First(&vendor, event.VendorID).Error == nil && vendor.UserID == userID
	}
	return false
}
