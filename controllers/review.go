package controllers

import (
	"net/http"

	"popout/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// CreateReview posts a review on a vendor. One review per user per
// vendor, and vendors cannot review themselves.
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")
		vendorID := c.Param("id")

		var req ReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}

		if req.Rating < 1 || req.Rating > 5 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
			return
		}

		var vendor models.Vendor
		if err := db.First(&vendor, vendorID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
			return
		}

		if vendor.UserID == userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You cannot review your own business"})
			return
		}

		var existing models.Review
		if err := db.Where("user_id = ? AND vendor_id = ?", userID, vendor.ID).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "You already reviewed this vendor"})
			return
		}

		review := models.Review{
			Rating:   req.Rating,
			Comment:  req.Comment,
			UserID:   userID,
			VendorID: vendor.ID,
		}

		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Review created successfully", "review": review})
	}
}

func GetVendorReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorID := c.Param("id")

		var reviews []models.Review
		if err := db.Preload("User").
			Where("vendor_id = ?", vendorID).
			Order("created_at desc").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK, reviews)
	}
}

func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")
		id := c.Param("id")

		var review models.Review
		if err := db.First(&review, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}

		if review.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your review"})
			return
		}

		if err := db.Delete(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
	}
}
