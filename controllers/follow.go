package controllers

import (
	"net/http"

	"popout/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FollowVendor subscribes the logged-in user to the vendor. Following
// an already-followed vendor is a no-op, not a duplicate row.
func FollowVendor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")
		vendorID := c.Param("id")

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var vendor models.Vendor
		if err := db.First(&vendor, vendorID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
			return
		}

		var existing models.VendorFollow
		if err := db.Where("user_id = ? AND vendor_id = ?", user.ID, vendor.ID).First(&existing).Error; err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Already following this vendor"})
			return
		}

		follow := models.VendorFollow{UserID: user.ID, VendorID: vendor.ID}
		if err := db.Create(&follow).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow vendor"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Vendor followed successfully"})
	}
}

func UnfollowVendor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")
		vendorID := c.Param("id")

		var vendor models.Vendor
		if err := db.First(&vendor, vendorID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
			return
		}

		if err := db.Where("user_id = ? AND vendor_id = ?", userID, vendor.ID).Delete(&models.VendorFollow{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow vendor"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Vendor unfollowed successfully"})
	}
}
