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

type VendorRequest struct {
	BusinessName string `json:"business_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Description  string `json:"description"`
	Facebook     string `json:"facebook"`
	Instagram    string `json:"instagram"`
	Website      string `json:"website"`
}

// CreateVendor registers a business for the logged-in user and flips
// is_vendor on.
func CreateVendor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		var req VendorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var existing models.Vendor
		if err := db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "User already has a vendor"})
			return
		}
		if err := db.Where("business_name = ?", req.BusinessName).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Business name already taken"})
			return
		}

		vendor := models.Vendor{
			BusinessName: req.BusinessName,
			Email:        req.Email,
			Description:  req.Description,
			Facebook:     req.Facebook,
			Instagram:    req.Instagram,
			Website:      req.Website,
			UserID:       userID,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}

		if err := db.Create(&vendor).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vendor"})
			return
		}

		user.IsVendor = true
		db.Save(&user)

		c.JSON(http.StatusCreated, gin.H{"message": "Vendor created successfully", "vendor": vendor})
	}
}

func GetMyVendor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		var vendor models.Vendor
		if err := db.Preload("Events").Where("user_id = ?", userID).First(&vendor).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
			return
		}

		c.JSON(http.StatusOK, vendor)
	}
}

// GetVendor is the public vendor profile, events included.
func GetVendor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var vendor models.Vendor
		if err := db.Preload("Events").Preload("Reviews").First(&vendor, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
			return
		}

		c.JSON(http.StatusOK, vendor)
	}
}

func UpdateVendor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		var vendor models.Vendor
		if err := db.Where("user_id = ?", userID).First(&vendor).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
			return
		}

		var req VendorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if req.BusinessName != vendor.BusinessName {
			var other models.Vendor
			if err := db.Where("business_name = ? AND id <> ?", req.BusinessName, vendor.ID).First(&other).Error; err == nil {
				c.JSON(http.StatusConflict, gin.H{"error": "Business name already taken"})
				return
			}
		}

		vendor.BusinessName = req.BusinessName
		vendor.Email = req.Email
		vendor.Description = req.Description
		vendor.Facebook = req.Facebook
		vendor.Instagram = req.Instagram
		vendor.Website = req.Website
		vendor.UpdatedAt = time.Now()

		if err := db.Save(&vendor).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vendor"})
			return
		}

		c.JSON(http.StatusOK, vendor)
	}
}

// removeVendorData deletes everything owned by a vendor, the vendor row
// included. Every image removed from the database also gets a cloud
// destroy. Cloud removal is best effort: failures are collected and
// returned for reporting but local deletion proceeds regardless.
func removeVendorData(c *gin.Context, db *gorm.DB, store storage.Uploader, vendorID uint) error {
	var cloudErr error

	destroyImage := func(image *models.Image) {
		if err := store.Destroy(c.Request.Context(), image.PublicID); err != nil {
			cloudErr = errors.Join(cloudErr, err)
		}
		db.Delete(image)
	}

	var image models.Image
	if err := db.Where("vendor_id = ?", vendorID).First(&image).Error; err == nil {
		destroyImage(&image)
	}

	var events []models.Event
	db.Where("vendor_id = ?", vendorID).Find(&events)
	for _, event := range events {
		db.Where("event_id = ?", event.ID).Delete(&models.EventCategory{})
		db.Where("event_id = ?", event.ID).Delete(&models.EventBookmark{})
		var eventImage models.Image
		if err := db.Where("event_id = ?", event.ID).First(&eventImage).Error; err == nil {
			destroyImage(&eventImage)
		}
	}
	db.Where("vendor_id = ?", vendorID).Delete(&models.Event{})

	db.Where("vendor_id = ?", vendorID).Delete(&models.Review{})
	db.Where("vendor_id = ?", vendorID).Delete(&models.VendorFollow{})
	db.Delete(&models.Vendor{}, vendorID)

	return cloudErr
}

// DeleteVendor tears down the business and resets is_vendor on the
// owner.
func DeleteVendor(db *gorm.DB, store storage.Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		var vendor models.Vendor
		if err := db.Where("user_id = ?", userID).First(&vendor).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
			return
		}

		cloudErr := removeVendorData(c, db, store, vendor.ID)

		var user models.User
		if err := db.First(&user, userID).Error; err == nil {
			user.IsVendor = false
			db.Save(&user)
		}

		if cloudErr != nil {
			c.JSON(http.StatusOK, gin.H{
				"message": "Vendor deleted, but cloud image cleanup failed",
				"details": cloudErr.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Vendor deleted successfully"})
	}
}
